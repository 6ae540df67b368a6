package signalhub

import "pixelmeet/backend/internal/models"

// Client is the interface for one live connection managed by the hub. It
// abstracts the underlying transport so the hub can route signals without
// knowing how they are delivered.
//
// Room state on a client (room id and role) is owned by the hub goroutine:
// only the hub reads or writes it after registration.
type Client interface {
	// GetHandle returns the server-issued opaque identifier for the
	// connection, stable for its lifetime.
	GetHandle() string

	// GetRoomID returns the id of the room the client currently occupies,
	// or "" when idle.
	GetRoomID() string
	// GetRole returns the client's role inside its current room.
	GetRole() models.Role
	// SetRoom attaches the client to a room. Called by the hub after a
	// successful match.
	SetRoom(roomID string, role models.Role)
	// ClearRoom detaches the client from its room, making it eligible to
	// request pairing again.
	ClearRoom()

	// GetSendChannel returns the channel the hub enqueues outbound signals
	// onto. Delivery is best-effort; the write pump drains it in order.
	GetSendChannel() chan<- models.Signal

	// Run starts the client's read and write pumps.
	Run()
	// Close shuts down the client's send channel, stopping its write pump.
	Close()
}
