package signalhub

import (
	"github.com/sirupsen/logrus"

	"pixelmeet/backend/internal/models"
)

// chatPayload is the structural shape a chat-message signal must satisfy
// before it is archived and relayed.
type chatPayload struct {
	Content string `validate:"required,max=2000"`
}

// dispatch classifies one inbound signal and routes it. SenderID was stamped
// by the read pump, so a sender missing from the registry means the
// connection closed while the signal was in flight; such signals are stale
// and dropped.
func (h *Hub) dispatch(sig models.Signal) {
	sender, ok := h.clients[sig.SenderID]
	if !ok {
		return
	}

	switch sig.Type {
	case models.SignalFindPeer:
		h.handleFindPeer(sender)
	case models.SignalOffer, models.SignalAnswer, models.SignalICECandidate:
		h.relayHandshake(sender, sig)
	case models.SignalChat:
		h.handleChat(sender, sig)
	case models.SignalDisconnect:
		h.leaveRoom(sender)
	default:
		h.send(sender.GetHandle(), models.ErrorSignal("unknown message type"))
	}
}

// handleFindPeer matches the sender into a room. The new arrival and any
// pre-existing occupant are both told about the pairing; a lone requester is
// told to wait.
func (h *Hub) handleFindPeer(sender Client) {
	// A repeated find-peer abandons the current room first, so the old
	// counterpart is notified and no stale room lingers.
	if sender.GetRoomID() != "" {
		h.leaveRoom(sender)
	}

	room, role := h.storage.FindOrCreateRoom(sender.GetHandle())
	sender.SetRoom(room.ID, role)

	if role == models.RoleInitiator {
		h.send(sender.GetHandle(), models.Signal{
			Type:     models.SignalWaitingForPeer,
			RoomID:   room.ID,
			PeerRole: models.RoleInitiator,
		})
		logrus.WithFields(logrus.Fields{
			"room":   room.ID,
			"handle": sender.GetHandle(),
		}).Info("waiting for peer")
		return
	}

	h.send(room.Initiator, models.Signal{
		Type:         models.SignalPeerFound,
		RoomID:       room.ID,
		PeerRole:     models.RoleInitiator,
		RemotePeerID: sender.GetHandle(),
	})
	h.send(sender.GetHandle(), models.Signal{
		Type:         models.SignalPeerFound,
		RoomID:       room.ID,
		PeerRole:     models.RoleResponder,
		RemotePeerID: room.Initiator,
	})
	logrus.WithFields(logrus.Fields{
		"room":      room.ID,
		"initiator": room.Initiator,
		"responder": sender.GetHandle(),
	}).Info("peers matched")
}

// relayHandshake forwards an opaque offer/answer/candidate payload to the
// sender's counterpart, stamped with the sender's handle. A sender without a
// room or a reachable counterpart gets a silent drop: late handshake traffic
// after a teardown is expected, not a fault.
func (h *Hub) relayHandshake(sender Client, sig models.Signal) {
	roomID := sender.GetRoomID()
	if roomID == "" {
		return
	}
	room, ok := h.storage.GetRoom(roomID)
	if !ok || !room.Active {
		return
	}
	peer := room.CounterpartOf(sender.GetHandle())
	if peer == "" {
		return
	}
	h.send(peer, models.Signal{
		Type:     sig.Type,
		Payload:  sig.Payload,
		SenderID: sender.GetHandle(),
	})
}

// handleChat validates, archives and relays a chat message to both room
// occupants. The sender is echoed the archived copy so its state reflects
// the server-assigned message id and timestamp.
func (h *Hub) handleChat(sender Client, sig models.Signal) {
	roomID := sender.GetRoomID()
	if roomID == "" {
		return
	}
	if err := h.validate.Struct(chatPayload{Content: sig.Content}); err != nil {
		h.send(sender.GetHandle(), models.ErrorSignal("invalid message format"))
		return
	}
	room, ok := h.storage.GetRoom(roomID)
	if !ok || !room.Active {
		return
	}

	msg := h.storage.AppendMessage(roomID, sender.GetHandle(), sig.Content)
	for _, occupant := range room.Occupants() {
		h.send(occupant, models.Signal{Type: models.SignalChat, Message: &msg})
	}
}

// leaveRoom runs the teardown transition for the sender's current room:
// deactivate, notify the counterpart once, and free both sides for new
// pairing. Safe to call when the sender holds no room, and safe to race with
// a transport close because DeactivateRoom reports the closing call.
func (h *Hub) leaveRoom(sender Client) {
	roomID := sender.GetRoomID()
	role := sender.GetRole()
	sender.ClearRoom()
	if roomID == "" {
		return
	}

	room, closed := h.storage.DeactivateRoom(roomID)
	if !closed {
		return
	}
	logrus.WithFields(logrus.Fields{
		"room":   roomID,
		"handle": sender.GetHandle(),
		"role":   role,
	}).Info("room closed")

	peer := room.CounterpartOf(sender.GetHandle())
	if peer == "" {
		return
	}
	h.send(peer, models.Signal{Type: models.SignalPeerDisconnected})
	if client, ok := h.clients[peer]; ok {
		client.ClearRoom()
	}
}
