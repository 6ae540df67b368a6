// Package storage owns the room and message state of the server. All state
// is process-memory-resident and lost on restart; durability is explicitly
// out of scope for this system.
package storage

import (
	"time"

	"pixelmeet/backend/internal/models"
)

// Storage is the contract the signaling hub depends on. The room store owns
// room lifetime, the archive owns message lifetime; callers never reach into
// either directly.
type Storage interface {
	// FindOrCreateRoom matches the requester into an existing waiting room
	// or creates a fresh one with the requester as initiator. The returned
	// room is a snapshot taken under the store lock; the assignment of the
	// responder and the waiting->paired transition are a single atomic
	// step, so two concurrent requests can never both win the same room,
	// and a room is never matched back to its own creator.
	FindOrCreateRoom(requester string) (models.Room, models.Role)

	// GetRoom returns a snapshot of the room, if it exists.
	GetRoom(roomID string) (models.Room, bool)

	// DeactivateRoom closes the room and reports whether this call was the
	// one that closed it. Idempotent: closing an already-closed or unknown
	// room returns false, so the caller notifies occupants at most once.
	DeactivateRoom(roomID string) (models.Room, bool)

	// StaleWaitingRooms returns waiting rooms created before the cutoff.
	StaleWaitingRooms(cutoff time.Time) []models.Room

	// AppendMessage archives a chat message for the room, assigning its id
	// and a per-room monotonically non-decreasing timestamp.
	AppendMessage(roomID, senderID, content string) models.ChatMessage

	// RoomMessages returns the room's archived messages in append order.
	// Closed rooms keep their archive for historical lookup.
	RoomMessages(roomID string) []models.ChatMessage

	// Stats reports the current number of active and waiting rooms.
	Stats() (active, waiting int)
}
