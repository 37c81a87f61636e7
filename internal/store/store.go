package store

import (
	"context"

	"github.com/yomru/ghostchase-server/internal/score"
)

// ScoreStore defines the interface for persistent high-score storage.
type ScoreStore interface {
	// Save inserts a finished game's record.
	Save(ctx context.Context, rec *score.Record) error
	// Top returns the highest-scoring records, best first.
	Top(ctx context.Context, limit int) ([]*score.Record, error)
	// Close releases storage resources.
	Close() error
}
