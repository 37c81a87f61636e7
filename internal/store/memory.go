package store

import (
	"context"
	"sort"
	"sync"

	"github.com/yomru/ghostchase-server/internal/score"
)

// MemoryStore implements ScoreStore in memory. Used in tests and when the
// server runs without a database.
type MemoryStore struct {
	mu      sync.RWMutex
	records []*score.Record
}

// NewMemoryStore creates an empty in-memory score store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save inserts a finished game's record.
func (s *MemoryStore) Save(_ context.Context, rec *score.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *rec
	s.records = append(s.records, &cp)
	return nil
}

// Top returns the highest-scoring records, best first.
func (s *MemoryStore) Top(_ context.Context, limit int) ([]*score.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sorted := make([]*score.Record, len(s.records))
	copy(sorted, s.records)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Points != sorted[j].Points {
			return sorted[i].Points > sorted[j].Points
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	if limit < len(sorted) {
		sorted = sorted[:limit]
	}
	out := make([]*score.Record, len(sorted))
	for i, rec := range sorted {
		cp := *rec
		out[i] = &cp
	}
	return out, nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
