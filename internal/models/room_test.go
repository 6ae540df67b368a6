package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pixelmeet/backend/internal/models"
)

func TestRoomState(t *testing.T) {
	room := models.Room{ID: "r1", Initiator: "client_A", Active: true}
	assert.Equal(t, models.RoomWaiting, room.State())

	room.Responder = "client_B"
	assert.Equal(t, models.RoomPaired, room.State())

	room.Active = false
	assert.Equal(t, models.RoomClosed, room.State())
}

func TestRoomCounterpartOf(t *testing.T) {
	room := models.Room{Initiator: "client_A", Responder: "client_B"}

	assert.Equal(t, "client_B", room.CounterpartOf("client_A"))
	assert.Equal(t, "client_A", room.CounterpartOf("client_B"))
	assert.Empty(t, room.CounterpartOf("client_C"), "strangers have no counterpart")

	waiting := models.Room{Initiator: "client_A"}
	assert.Empty(t, waiting.CounterpartOf("client_A"), "no counterpart before pairing")
}

func TestRoomRoleOf(t *testing.T) {
	room := models.Room{Initiator: "client_A", Responder: "client_B"}

	assert.Equal(t, models.RoleInitiator, room.RoleOf("client_A"))
	assert.Equal(t, models.RoleResponder, room.RoleOf("client_B"))
	assert.Equal(t, models.RoleNone, room.RoleOf("client_C"))
}

func TestRoomOccupants(t *testing.T) {
	waiting := models.Room{Initiator: "client_A"}
	assert.Equal(t, []string{"client_A"}, waiting.Occupants())

	paired := models.Room{Initiator: "client_A", Responder: "client_B"}
	assert.Equal(t, []string{"client_A", "client_B"}, paired.Occupants())
}
