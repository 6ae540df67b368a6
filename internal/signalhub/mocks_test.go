package signalhub

import (
	"time"

	"github.com/stretchr/testify/mock"

	"pixelmeet/backend/internal/models"
)

// mockClient is a transport-less test double for the Client interface.
// RecvChannel is what the hub sees through GetSendChannel.
type mockClient struct {
	handle      string
	roomID      string
	role        models.Role
	RecvChannel chan models.Signal
	closed      bool
}

func newMockClient(handle string) *mockClient {
	return &mockClient{
		handle:      handle,
		RecvChannel: make(chan models.Signal, 10),
	}
}

func (c *mockClient) GetHandle() string    { return c.handle }
func (c *mockClient) GetRoomID() string    { return c.roomID }
func (c *mockClient) GetRole() models.Role { return c.role }

func (c *mockClient) SetRoom(roomID string, role models.Role) {
	c.roomID = roomID
	c.role = role
}

func (c *mockClient) ClearRoom() {
	c.roomID = ""
	c.role = models.RoleNone
}

func (c *mockClient) GetSendChannel() chan<- models.Signal { return c.RecvChannel }

func (c *mockClient) Run() {}

func (c *mockClient) Close() {
	c.closed = true
	close(c.RecvChannel)
}

// drain empties the receive channel and returns everything delivered so far.
func (c *mockClient) drain() []models.Signal {
	var signals []models.Signal
	for {
		select {
		case sig := <-c.RecvChannel:
			signals = append(signals, sig)
		default:
			return signals
		}
	}
}

// MockStorage is a testify mock of the storage.Storage interface for tests
// that pin down how the hub consults the store.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) FindOrCreateRoom(requester string) (models.Room, models.Role) {
	args := m.Called(requester)
	return args.Get(0).(models.Room), args.Get(1).(models.Role)
}

func (m *MockStorage) GetRoom(roomID string) (models.Room, bool) {
	args := m.Called(roomID)
	return args.Get(0).(models.Room), args.Bool(1)
}

func (m *MockStorage) DeactivateRoom(roomID string) (models.Room, bool) {
	args := m.Called(roomID)
	return args.Get(0).(models.Room), args.Bool(1)
}

func (m *MockStorage) StaleWaitingRooms(cutoff time.Time) []models.Room {
	args := m.Called(cutoff)
	return args.Get(0).([]models.Room)
}

func (m *MockStorage) AppendMessage(roomID, senderID, content string) models.ChatMessage {
	args := m.Called(roomID, senderID, content)
	return args.Get(0).(models.ChatMessage)
}

func (m *MockStorage) RoomMessages(roomID string) []models.ChatMessage {
	args := m.Called(roomID)
	return args.Get(0).([]models.ChatMessage)
}

func (m *MockStorage) Stats() (int, int) {
	args := m.Called()
	return args.Int(0), args.Int(1)
}
