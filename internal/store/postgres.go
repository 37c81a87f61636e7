package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yomru/ghostchase-server/internal/score"
)

const schema = `
CREATE TABLE IF NOT EXISTS scores (
    id TEXT PRIMARY KEY,
    nickname TEXT NOT NULL,
    points INTEGER NOT NULL,
    level INTEGER NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_scores_points ON scores(points DESC);
`

// PostgresStore implements ScoreStore using PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to PostgreSQL and initializes the schema.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{pool: pool}, nil
}

// Save inserts a finished game's record.
func (s *PostgresStore) Save(ctx context.Context, rec *score.Record) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO scores (id, nickname, points, level, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		rec.ID, rec.Nickname, rec.Points, rec.Level, rec.CreatedAt)
	return err
}

// Top returns the highest-scoring records, best first.
func (s *PostgresStore) Top(ctx context.Context, limit int) ([]*score.Record, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, nickname, points, level, created_at
		 FROM scores ORDER BY points DESC, created_at ASC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*score.Record
	for rows.Next() {
		rec := &score.Record{}
		if err := rows.Scan(&rec.ID, &rec.Nickname, &rec.Points, &rec.Level, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close releases the connection pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
