package models

import "time"

// ChatMessage is one archived text message inside a room. Messages are
// immutable once appended; ID and Timestamp are assigned by the server at
// receipt.
type ChatMessage struct {
	ID        string    `json:"id"`
	RoomID    string    `json:"roomId"`
	SenderID  string    `json:"senderId"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
