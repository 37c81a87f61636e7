package room

import (
	"log/slog"
	"sync"

	"github.com/yomru/ghostchase-server/internal/store"
)

// Manager manages all active rooms.
type Manager struct {
	rooms  map[string]*Room // code -> room
	scores store.ScoreStore
	mu     sync.RWMutex
}

// NewManager creates a new room manager. Finished games persist their scores
// through the given store.
func NewManager(scores store.ScoreStore) *Manager {
	return &Manager{
		rooms:  make(map[string]*Room),
		scores: scores,
	}
}

// CreateRoom creates a new room and returns it.
func (m *Manager) CreateRoom() *Room {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing := make(map[string]bool, len(m.rooms))
	for code := range m.rooms {
		existing[code] = true
	}

	code := GenerateCode(existing)
	r := NewRoom(code, m.scores)
	m.rooms[code] = r

	slog.Info("room created", "code", code)
	return r
}

// GetRoom returns a room by its code.
func (m *Manager) GetRoom(code string) *Room {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rooms[code]
}

// RemoveRoom stops and removes a room by its code.
func (m *Manager) RemoveRoom(code string) {
	m.mu.Lock()
	r := m.rooms[code]
	delete(m.rooms, code)
	m.mu.Unlock()

	if r != nil {
		r.Stop()
	}
	slog.Info("room removed", "code", code)
}

// RoomCount returns the number of active rooms.
func (m *Manager) RoomCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rooms)
}

// FindRoomByClient finds the room containing a connected client.
func (m *Manager) FindRoomByClient(clientID string) *Room {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.rooms {
		r.mu.RLock()
		_, exists := r.members[clientID]
		r.mu.RUnlock()
		if exists {
			return r
		}
	}
	return nil
}

// Scores exposes the score store for leaderboard queries.
func (m *Manager) Scores() store.ScoreStore {
	return m.scores
}
