package ws

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	msg, err := NewMessage(TypeGameState, map[string]int{"score": 120})
	require.NoError(t, err)

	assert.Equal(t, TypeGameState, msg.Type)
	assert.JSONEq(t, `{"score":120}`, string(msg.Data))
}

func TestNewErrorMessage(t *testing.T) {
	msg := NewErrorMessage("room not found")

	assert.Equal(t, TypeError, msg.Type)

	var payload ErrorMessage
	require.NoError(t, json.Unmarshal(msg.Data, &payload))
	assert.Equal(t, "room not found", payload.Message)
}

func TestNewEventMessage(t *testing.T) {
	msg, err := NewEventMessage("ghost_eaten", map[string]int{"points": 400})
	require.NoError(t, err)

	assert.Equal(t, TypeGameEvent, msg.Type)

	var ev EventMessage
	require.NoError(t, json.Unmarshal(msg.Data, &ev))
	assert.Equal(t, "ghost_eaten", ev.Event)
	assert.JSONEq(t, `{"points":400}`, string(ev.Data))
}

func TestMessageRoundTrip(t *testing.T) {
	msg, err := NewMessage(TypeRoomInfo, map[string]string{"code": "ABCD"})
	require.NoError(t, err)

	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	var decoded Message
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, msg.Type, decoded.Type)
	assert.JSONEq(t, string(msg.Data), string(decoded.Data))
}
