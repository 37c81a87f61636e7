package room

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yomru/ghostchase-server/internal/game"
	"github.com/yomru/ghostchase-server/internal/score"
	"github.com/yomru/ghostchase-server/internal/store"
	"github.com/yomru/ghostchase-server/internal/ws"
)

// MaxMembers caps a room: one controlling player plus spectators.
const MaxMembers = 8

const saveTimeout = 5 * time.Second

var (
	ErrRoomFull       = errors.New("room is full")
	ErrNotController  = errors.New("only the controlling player may do that")
	ErrAlreadyStarted = errors.New("game already started")
	ErrNotStarted     = errors.New("game not started")
)

// Member is one connected participant. The first member to join controls the
// player actor; later members spectate.
type Member struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
}

// Room owns one game session and the clients watching it. The session is
// mutated only under mu, inside the tick loop and the input handlers.
type Room struct {
	Code string

	mu           sync.RWMutex
	members      map[string]*Member // client ID -> member
	clients      map[string]*ws.Client
	controllerID string // client ID of the controlling player

	session *game.Session
	stopCh  chan struct{}
	stopped bool

	scores store.ScoreStore
}

// NewRoom creates an empty room.
func NewRoom(code string, scores store.ScoreStore) *Room {
	return &Room{
		Code:    code,
		members: make(map[string]*Member),
		clients: make(map[string]*ws.Client),
		scores:  scores,
	}
}

// Join adds a client to the room. The first joiner becomes the controller.
func (r *Room) Join(client *ws.Client, nickname string) (*Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.members) >= MaxMembers {
		return nil, ErrRoomFull
	}

	m := &Member{ID: uuid.New().String(), Nickname: nickname}
	r.members[client.ID] = m
	r.clients[client.ID] = client
	if r.controllerID == "" {
		r.controllerID = client.ID
	}
	return m, nil
}

// Leave removes a client. If the controller leaves mid-game the session
// stops; spectators leaving has no effect on the simulation.
func (r *Room) Leave(clientID string) {
	r.mu.Lock()
	wasController := clientID == r.controllerID
	delete(r.members, clientID)
	delete(r.clients, clientID)
	if wasController {
		r.controllerID = ""
		for id := range r.members {
			r.controllerID = id
			break
		}
	}
	running := r.session != nil && !r.stopped
	r.mu.Unlock()

	if wasController && running {
		r.Stop()
	}
}

// MemberCount returns the number of connected participants.
func (r *Room) MemberCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.members)
}

// IsEmpty returns true if the room has no participants.
func (r *Room) IsEmpty() bool {
	return r.MemberCount() == 0
}

// IsController reports whether the client controls the player actor.
func (r *Room) IsController(clientID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return clientID == r.controllerID
}

// Members returns the current member list.
func (r *Room) Members() []*Member {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Member, 0, len(r.members))
	for _, m := range r.members {
		out = append(out, m)
	}
	return out
}

// Start builds the session and launches the tick loop. Only the controlling
// client may start, and only once per room.
func (r *Room) Start(clientID string, seed int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if clientID != r.controllerID {
		return ErrNotController
	}
	if r.session != nil {
		return ErrAlreadyStarted
	}

	session, err := game.NewSession(seed)
	if err != nil {
		return err
	}
	r.session = session
	r.stopCh = make(chan struct{})

	go r.tickLoop()

	slog.Info("game started", "room", r.Code, "seed", seed)
	return nil
}

// SetDirection buffers the controller's intended direction.
func (r *Room) SetDirection(clientID string, dir game.Direction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if clientID != r.controllerID {
		return ErrNotController
	}
	if r.session == nil {
		return ErrNotStarted
	}
	r.session.SetDirection(dir)
	return nil
}

// TogglePause pauses or resumes the simulation. While paused no session
// timer advances.
func (r *Room) TogglePause(clientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if clientID != r.controllerID {
		return ErrNotController
	}
	if r.session == nil {
		return ErrNotStarted
	}
	r.session.TogglePause()
	return nil
}

// Stop halts the tick loop. Safe to call multiple times.
func (r *Room) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopOnce()
}

// stopOnce closes the stop channel. Caller must hold r.mu.
func (r *Room) stopOnce() {
	if r.stopCh == nil || r.stopped {
		return
	}
	r.stopped = true
	close(r.stopCh)
}

// BroadcastMessage fans a message out to every participant. The payload is
// marshalled once; a client whose send buffer is full misses the frame
// rather than stalling the tick loop.
func (r *Room) BroadcastMessage(msg ws.Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("failed to marshal broadcast", "room", r.Code, "error", err)
		return
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, client := range r.clients {
		if !client.Enqueue(data) {
			slog.Warn("dropping frame for slow client", "room", r.Code, "client", client.ID)
		}
	}
}

// tickLoop drives the simulation at the fixed tick rate and relays state and
// events to the participants.
func (r *Room) tickLoop() {
	ticker := time.NewTicker(game.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ticker.C:
			r.mu.Lock()
			events := r.session.Step(game.TickInterval)
			view := r.session.View()
			r.mu.Unlock()

			if msg, err := ws.NewMessage(ws.TypeGameState, view); err == nil {
				r.BroadcastMessage(msg)
			}

			for _, ev := range events {
				if msg, err := ws.NewEventMessage(ev.Kind(), ev); err == nil {
					r.BroadcastMessage(msg)
				}
				if over, ok := ev.(game.GameOverEvent); ok {
					r.finishGame(over)
					return
				}
			}
		}
	}
}

// finishGame persists the result and announces game over.
func (r *Room) finishGame(over game.GameOverEvent) {
	r.mu.Lock()
	nickname := ""
	if m, ok := r.members[r.controllerID]; ok {
		nickname = m.Nickname
	}
	r.stopOnce()
	r.mu.Unlock()

	if r.scores != nil && nickname != "" {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		rec := score.NewRecord(nickname, over.Score, over.Level)
		if err := r.scores.Save(ctx, rec); err != nil {
			slog.Error("failed to save score", "room", r.Code, "error", err)
		}
	}

	if msg, err := ws.NewMessage(ws.TypeGameOver, over); err == nil {
		r.BroadcastMessage(msg)
	}
	slog.Info("game ended", "room", r.Code, "score", over.Score, "level", over.Level)
}
