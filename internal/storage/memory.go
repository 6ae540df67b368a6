package storage

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"pixelmeet/backend/internal/models"
)

// Memory is the in-process implementation of Storage. A single mutex guards
// both the room store and the archive, which gives FindOrCreateRoom its
// atomic check-and-assign and serializes archive appends per room.
type Memory struct {
	mu        sync.Mutex
	rooms     map[string]*models.Room
	roomOrder []string // creation order, oldest first
	messages  map[string][]models.ChatMessage
}

// NewMemory creates an empty store.
func NewMemory() *Memory {
	return &Memory{
		rooms:    make(map[string]*models.Room),
		messages: make(map[string][]models.ChatMessage),
	}
}

// FindOrCreateRoom scans waiting rooms oldest-first. A room created by the
// requester itself is never a match candidate.
func (m *Memory) FindOrCreateRoom(requester string) (models.Room, models.Role) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, id := range m.roomOrder {
		room := m.rooms[id]
		if room.State() != models.RoomWaiting || room.Initiator == requester {
			continue
		}
		room.Responder = requester
		return *room, models.RoleResponder
	}

	room := &models.Room{
		ID:        uuid.New().String(),
		Initiator: requester,
		Active:    true,
		CreatedAt: time.Now(),
	}
	m.rooms[room.ID] = room
	m.roomOrder = append(m.roomOrder, room.ID)
	return *room, models.RoleInitiator
}

func (m *Memory) GetRoom(roomID string) (models.Room, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	room, ok := m.rooms[roomID]
	if !ok {
		return models.Room{}, false
	}
	return *room, true
}

func (m *Memory) DeactivateRoom(roomID string) (models.Room, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	room, ok := m.rooms[roomID]
	if !ok || !room.Active {
		return models.Room{}, false
	}
	room.Active = false
	room.EndedAt = time.Now()
	return *room, true
}

func (m *Memory) StaleWaitingRooms(cutoff time.Time) []models.Room {
	m.mu.Lock()
	defer m.mu.Unlock()

	stale := lo.FilterMap(m.roomOrder, func(id string, _ int) (models.Room, bool) {
		room := m.rooms[id]
		if room.State() == models.RoomWaiting && room.CreatedAt.Before(cutoff) {
			return *room, true
		}
		return models.Room{}, false
	})
	return stale
}

func (m *Memory) AppendMessage(roomID, senderID, content string) models.ChatMessage {
	m.mu.Lock()
	defer m.mu.Unlock()

	ts := time.Now()
	if log := m.messages[roomID]; len(log) > 0 {
		// Clock regressions must not break per-room ordering.
		if last := log[len(log)-1].Timestamp; ts.Before(last) {
			ts = last
		}
	}

	msg := models.ChatMessage{
		ID:        uuid.New().String(),
		RoomID:    roomID,
		SenderID:  senderID,
		Content:   content,
		Timestamp: ts,
	}
	m.messages[roomID] = append(m.messages[roomID], msg)
	return msg
}

func (m *Memory) RoomMessages(roomID string) []models.ChatMessage {
	m.mu.Lock()
	defer m.mu.Unlock()

	log := m.messages[roomID]
	out := make([]models.ChatMessage, len(log))
	copy(out, log)
	return out
}

func (m *Memory) Stats() (active, waiting int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rooms := lo.Values(m.rooms)
	active = lo.CountBy(rooms, func(r *models.Room) bool { return r.Active })
	waiting = lo.CountBy(rooms, func(r *models.Room) bool { return r.State() == models.RoomWaiting })
	return active, waiting
}
