// Package signalhub pairs anonymous connections into rooms and relays
// signaling and chat traffic between the two matched parties.
package signalhub

import (
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"pixelmeet/backend/internal/models"
	"pixelmeet/backend/internal/storage"
)

// How often the hub checks for waiting rooms that outlived the TTL.
const sweepInterval = 10 * time.Second

// Hub is the coordinator for all live connections. Every mutation of the
// connection registry and the room store flows through the single Run
// goroutine, which gives the matching step its global ordering; the pumps
// only ever touch their own channels.
type Hub struct {
	RegisterCh   chan Client
	UnregisterCh chan Client
	InboundCh    chan models.Signal

	clients map[string]Client
	storage storage.Storage

	// waitingTTL bounds how long a waiting room stays matchable before its
	// creator is told to retry. Zero disables expiry.
	waitingTTL time.Duration

	validate    *validator.Validate
	clientCount atomic.Int64
	done        chan struct{}
}

// NewHub creates a hub backed by the given storage.
func NewHub(s storage.Storage, waitingTTL time.Duration) *Hub {
	return &Hub{
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		InboundCh:    make(chan models.Signal),
		clients:      make(map[string]Client),
		storage:      s,
		waitingTTL:   waitingTTL,
		validate:     validator.New(),
		done:         make(chan struct{}),
	}
}

// Run is the hub's main loop. It owns the clients map and all room
// transitions until Stop is called.
func (h *Hub) Run() {
	var sweep <-chan time.Time
	if h.waitingTTL > 0 {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		sweep = ticker.C
	}

	for {
		select {
		case client := <-h.RegisterCh:
			h.register(client)
		case client := <-h.UnregisterCh:
			h.unregister(client)
		case sig := <-h.InboundCh:
			h.dispatch(sig)
		case <-sweep:
			h.expireWaitingRooms()
		case <-h.done:
			return
		}
	}
}

// Stop terminates the Run loop.
func (h *Hub) Stop() {
	close(h.done)
}

// ClientCount reports how many connections are currently registered.
func (h *Hub) ClientCount() int64 {
	return h.clientCount.Load()
}

func (h *Hub) register(client Client) {
	h.clients[client.GetHandle()] = client
	h.clientCount.Store(int64(len(h.clients)))
	logrus.WithField("handle", client.GetHandle()).Info("client connected")
}

// unregister tears down the client's room and removes it from the registry.
// A leave followed by a transport close both end up here; the registry check
// makes the second invocation a no-op.
func (h *Hub) unregister(client Client) {
	handle := client.GetHandle()
	if registered, ok := h.clients[handle]; !ok || registered != client {
		return
	}
	h.leaveRoom(client)
	delete(h.clients, handle)
	h.clientCount.Store(int64(len(h.clients)))
	client.Close()
	logrus.WithField("handle", handle).Info("client disconnected")
}

// send delivers a signal to the handle's connection, best-effort: it reports
// false instead of blocking or failing when the handle is unknown or the
// connection cannot accept more output.
func (h *Hub) send(handle string, sig models.Signal) bool {
	client, ok := h.clients[handle]
	if !ok {
		return false
	}
	select {
	case client.GetSendChannel() <- sig:
		return true
	default:
		return false
	}
}

// expireWaitingRooms closes waiting rooms whose creator never got a match
// within the TTL and tells the creator to retry.
func (h *Hub) expireWaitingRooms() {
	cutoff := time.Now().Add(-h.waitingTTL)
	for _, room := range h.storage.StaleWaitingRooms(cutoff) {
		if _, closed := h.storage.DeactivateRoom(room.ID); !closed {
			continue
		}
		h.send(room.Initiator, models.Signal{Type: models.SignalPairingTimeout})
		if client, ok := h.clients[room.Initiator]; ok {
			client.ClearRoom()
		}
		logrus.WithFields(logrus.Fields{
			"room":   room.ID,
			"handle": room.Initiator,
		}).Info("waiting room expired")
	}
}
