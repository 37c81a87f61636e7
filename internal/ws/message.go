package ws

import "encoding/json"

// Message represents a WebSocket message with type-based routing.
type Message struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Message types - Lobby
const (
	TypeCreateGame  = "create_game"
	TypeJoinGame    = "join_game"
	TypeLeaveGame   = "leave_game"
	TypeStartGame   = "start_game"
	TypeLeaderboard = "leaderboard"
)

// Message types - Gameplay
const (
	TypePlayerInput = "player_input"
	TypePauseGame   = "pause_game"
	TypeGameState   = "game_state"
	TypeGameEvent   = "game_event"
	TypeGameOver    = "game_over"
)

// Message types - System
const (
	TypeError    = "error"
	TypeRoomInfo = "room_info"
)

// ErrorMessage is sent when an error occurs.
type ErrorMessage struct {
	Message string `json:"message"`
}

// NewErrorMessage creates a Message with an error payload.
func NewErrorMessage(msg string) Message {
	data, _ := json.Marshal(ErrorMessage{Message: msg})
	return Message{Type: TypeError, Data: data}
}

// NewMessage creates a Message with a typed payload.
func NewMessage(msgType string, payload any) (Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: msgType, Data: data}, nil
}

// EventMessage wraps a simulation event for transport: the event kind plus its
// serialized payload.
type EventMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// NewEventMessage creates a TypeGameEvent message for a simulation event.
func NewEventMessage(kind string, payload any) (Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return NewMessage(TypeGameEvent, EventMessage{Event: kind, Data: data})
}
