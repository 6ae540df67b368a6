package models

import "encoding/json"

// Client -> server signal kinds.
const (
	SignalFindPeer     = "find-peer"
	SignalOffer        = "webrtc-offer"
	SignalAnswer       = "webrtc-answer"
	SignalICECandidate = "webrtc-ice-candidate"
	SignalChat         = "chat-message"
	SignalDisconnect   = "disconnect"
)

// Server -> client signal kinds.
const (
	SignalWaitingForPeer   = "waiting-for-peer"
	SignalPeerFound        = "peer-found"
	SignalPeerDisconnected = "peer-disconnected"
	SignalPairingTimeout   = "pairing-timeout"
	SignalError            = "error"
)

// Signal is the wire envelope exchanged over the WebSocket connection in
// both directions. Type selects which of the optional fields are present.
// Payload carries the opaque handshake blob produced by the media layer;
// the server forwards it verbatim and never inspects it.
type Signal struct {
	Type         string          `json:"type"`
	RoomID       string          `json:"roomId,omitempty"`
	PeerRole     Role            `json:"peerRole,omitempty"`
	RemotePeerID string          `json:"remotePeerId,omitempty"`
	SenderID     string          `json:"senderId,omitempty"`
	Content      string          `json:"content,omitempty"`
	Payload      json.RawMessage `json:"payload,omitempty"`

	// Message holds a *ChatMessage on chat-message signals and an error
	// string on error signals, matching the wire format either way.
	Message any `json:"message,omitempty"`
}

// ErrorSignal builds the error envelope sent back to a misbehaving sender.
func ErrorSignal(reason string) Signal {
	return Signal{Type: SignalError, Message: reason}
}
