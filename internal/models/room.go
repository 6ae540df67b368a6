package models

import "time"

// Role identifies which side of a room a connection occupies.
// It is meaningful only while the connection holds a room.
type Role string

const (
	RoleNone      Role = ""
	RoleInitiator Role = "initiator"
	RoleResponder Role = "responder"
)

// RoomState is derived from the room fields: a room is waiting until a
// responder joins, paired while both occupants are present, and closed
// once deactivated. Closed is terminal.
type RoomState string

const (
	RoomWaiting RoomState = "waiting"
	RoomPaired  RoomState = "paired"
	RoomClosed  RoomState = "closed"
)

// Room represents one pairwise session between two anonymous connections.
type Room struct {
	// ID is the unique identifier for the room (UUID).
	ID string `json:"id"`
	// Initiator is the handle of the connection that created the room.
	Initiator string `json:"initiator"`
	// Responder is the handle of the second occupant, empty until matched.
	Responder string `json:"responder,omitempty"`
	// Active is true from creation until deactivation. Rooms are never
	// reactivated; a new room is created for any subsequent pairing.
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	EndedAt   time.Time `json:"endedAt,omitempty"`
}

// State reports the room's position in the waiting -> paired -> closed
// lifecycle.
func (r *Room) State() RoomState {
	switch {
	case !r.Active:
		return RoomClosed
	case r.Responder == "":
		return RoomWaiting
	default:
		return RoomPaired
	}
}

// CounterpartOf returns the handle of the other occupant, or "" when the
// given handle is not in the room or no counterpart exists yet.
func (r *Room) CounterpartOf(handle string) string {
	switch handle {
	case r.Initiator:
		return r.Responder
	case r.Responder:
		return r.Initiator
	default:
		return ""
	}
}

// RoleOf returns the role the given handle plays in the room.
func (r *Room) RoleOf(handle string) Role {
	switch handle {
	case r.Initiator:
		return RoleInitiator
	case r.Responder:
		return RoleResponder
	default:
		return RoleNone
	}
}

// Occupants returns the handles currently attached to the room.
func (r *Room) Occupants() []string {
	occupants := []string{r.Initiator}
	if r.Responder != "" {
		occupants = append(occupants, r.Responder)
	}
	return occupants
}
