package room

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yomru/ghostchase-server/internal/game"
	"github.com/yomru/ghostchase-server/internal/store"
	"github.com/yomru/ghostchase-server/internal/ws"
)

func mockClient(id string) *ws.Client {
	return &ws.Client{ID: id, Send: make(chan []byte, 256)}
}

func newTestRoom() *Room {
	return NewRoom("TEST", store.NewMemoryStore())
}

func TestJoin(t *testing.T) {
	r := newTestRoom()

	first := mockClient("c1")
	m1, err := r.Join(first, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", m1.Nickname)
	assert.True(t, r.IsController("c1"), "first joiner controls the player")

	second := mockClient("c2")
	_, err = r.Join(second, "bob")
	require.NoError(t, err)
	assert.False(t, r.IsController("c2"), "later joiners spectate")
	assert.Equal(t, 2, r.MemberCount())
}

func TestBroadcastMessage(t *testing.T) {
	r := newTestRoom()
	c1 := mockClient("c1")
	c2 := mockClient("c2")
	_, _ = r.Join(c1, "alice")
	_, _ = r.Join(c2, "bob")

	msg, err := ws.NewMessage(ws.TypeRoomInfo, map[string]string{"code": "TEST"})
	require.NoError(t, err)
	r.BroadcastMessage(msg)

	for _, c := range []*ws.Client{c1, c2} {
		select {
		case data := <-c.Send:
			var got ws.Message
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, ws.TypeRoomInfo, got.Type)
		default:
			t.Fatalf("client %s received no frame", c.ID)
		}
	}
}

func TestBroadcastSkipsSlowClient(t *testing.T) {
	r := newTestRoom()
	slow := &ws.Client{ID: "slow", Send: make(chan []byte)}
	ok := mockClient("ok")
	_, _ = r.Join(slow, "alice")
	_, _ = r.Join(ok, "bob")

	msg, err := ws.NewMessage(ws.TypeRoomInfo, map[string]string{"code": "TEST"})
	require.NoError(t, err)
	r.BroadcastMessage(msg) // must not block on the full unbuffered channel

	select {
	case <-ok.Send:
	default:
		t.Fatal("healthy client received no frame")
	}
}

func TestJoinFullRoom(t *testing.T) {
	r := newTestRoom()

	for i := 0; i < MaxMembers; i++ {
		_, err := r.Join(mockClient(fmt.Sprintf("c%d", i)), "player")
		require.NoError(t, err)
	}

	_, err := r.Join(mockClient("overflow"), "late")
	assert.ErrorIs(t, err, ErrRoomFull)
}

func TestLeaveTransfersControl(t *testing.T) {
	r := newTestRoom()
	_, _ = r.Join(mockClient("c1"), "alice")
	_, _ = r.Join(mockClient("c2"), "bob")

	r.Leave("c1")

	assert.Equal(t, 1, r.MemberCount())
	assert.True(t, r.IsController("c2"), "control transfers to a remaining member")
}

func TestControllerLeavingStopsGame(t *testing.T) {
	r := newTestRoom()
	_, _ = r.Join(mockClient("c1"), "alice")
	_, _ = r.Join(mockClient("c2"), "bob")
	require.NoError(t, r.Start("c1", 1))
	defer r.Stop()

	r.Leave("c1")

	r.mu.RLock()
	stopped := r.stopped
	r.mu.RUnlock()
	assert.True(t, stopped)
}

func TestStart(t *testing.T) {
	r := newTestRoom()
	_, _ = r.Join(mockClient("c1"), "alice")
	_, _ = r.Join(mockClient("c2"), "bob")
	defer r.Stop()

	assert.ErrorIs(t, r.Start("c2", 1), ErrNotController)
	assert.NoError(t, r.Start("c1", 1))
	assert.ErrorIs(t, r.Start("c1", 1), ErrAlreadyStarted)
}

func TestInputGating(t *testing.T) {
	r := newTestRoom()
	_, _ = r.Join(mockClient("c1"), "alice")
	_, _ = r.Join(mockClient("c2"), "bob")
	defer r.Stop()

	assert.ErrorIs(t, r.SetDirection("c1", game.DirLeft), ErrNotStarted)
	assert.ErrorIs(t, r.TogglePause("c1"), ErrNotStarted)

	require.NoError(t, r.Start("c1", 1))

	assert.ErrorIs(t, r.SetDirection("c2", game.DirLeft), ErrNotController)
	assert.NoError(t, r.SetDirection("c1", game.DirLeft))
	assert.NoError(t, r.TogglePause("c1"))
}

func TestStopIsIdempotent(t *testing.T) {
	r := newTestRoom()
	_, _ = r.Join(mockClient("c1"), "alice")
	require.NoError(t, r.Start("c1", 1))

	r.Stop()
	r.Stop()
}

func TestTickLoopBroadcastsState(t *testing.T) {
	r := newTestRoom()
	client := mockClient("c1")
	_, _ = r.Join(client, "alice")
	require.NoError(t, r.Start("c1", 1))
	defer r.Stop()

	require.Eventually(t, func() bool {
		for {
			select {
			case data := <-client.Send:
				var msg ws.Message
				if err := json.Unmarshal(data, &msg); err != nil {
					return false
				}
				if msg.Type != ws.TypeGameState {
					continue
				}
				var view struct {
					State  string            `json:"state"`
					Ghosts []json.RawMessage `json:"ghosts"`
				}
				if err := json.Unmarshal(msg.Data, &view); err != nil {
					return false
				}
				return view.State != "" && len(view.Ghosts) == game.GhostCount
			default:
				return false
			}
		}
	}, 2*time.Second, 20*time.Millisecond, "no game_state frame arrived")
}

func TestManager(t *testing.T) {
	m := NewManager(store.NewMemoryStore())

	r := m.CreateRoom()
	assert.Len(t, r.Code, 4)
	assert.Equal(t, 1, m.RoomCount())
	assert.Same(t, r, m.GetRoom(r.Code))
	assert.Nil(t, m.GetRoom("ZZZZ"))

	client := mockClient("c1")
	_, err := r.Join(client, "alice")
	require.NoError(t, err)
	assert.Same(t, r, m.FindRoomByClient("c1"))
	assert.Nil(t, m.FindRoomByClient("nobody"))

	m.RemoveRoom(r.Code)
	assert.Equal(t, 0, m.RoomCount())
	assert.Nil(t, m.GetRoom(r.Code))
}

func TestGenerateCode(t *testing.T) {
	existing := map[string]bool{}
	for i := 0; i < 50; i++ {
		code := GenerateCode(existing)
		assert.Len(t, code, 4)
		assert.False(t, existing[code], "codes must not collide with existing ones")
		for _, r := range code {
			assert.NotContains(t, []rune{'I', 'O'}, r)
			assert.True(t, r >= 'A' && r <= 'Z')
		}
		existing[code] = true
	}
}
