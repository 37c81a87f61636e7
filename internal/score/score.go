package score

import (
	"time"

	"github.com/google/uuid"
)

// Record is one finished game's result.
type Record struct {
	ID        string    `json:"id"`
	Nickname  string    `json:"nickname"`
	Points    int       `json:"points"`
	Level     int       `json:"level"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRecord creates a record for a finished game.
func NewRecord(nickname string, points, level int) *Record {
	return &Record{
		ID:        uuid.New().String(),
		Nickname:  nickname,
		Points:    points,
		Level:     level,
		CreatedAt: time.Now(),
	}
}
