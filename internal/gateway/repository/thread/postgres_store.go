package thread

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresStore persists threads in a single append-only table.
type PostgresStore struct {
	db *sql.DB

	schemaOnce sync.Once
	schemaErr  error
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", strings.TrimSpace(dsn))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	s.schemaOnce.Do(func() {
		_, s.schemaErr = s.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS thread_turns (
  id BIGSERIAL PRIMARY KEY,
  thread_id TEXT NOT NULL,
  seq INTEGER NOT NULL,
  role TEXT NOT NULL,
  content TEXT NOT NULL,
  created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_thread_turns_thread_id ON thread_turns (thread_id, seq);
`)
	})
	return s.schemaErr
}

func (s *PostgresStore) Append(ctx context.Context, threadID string, turn Turn) error {
	key := strings.TrimSpace(threadID)
	if key == "" {
		return nil
	}
	if err := s.ensureSchema(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if turn.CreatedAt.IsZero() {
		turn.CreatedAt = time.Now()
	}
	// Seq is derived inside the insert so two in-flight appends cannot
	// silently drop a turn; they land in arrival order.
	_, err := s.db.ExecContext(ctx, `
INSERT INTO thread_turns (thread_id, seq, role, content, created_at)
SELECT $1, COALESCE(MAX(seq) + 1, 0), $2, $3, $4
FROM thread_turns WHERE thread_id = $1`,
		key, string(turn.Role), turn.Content, turn.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context, threadID string) ([]Turn, error) {
	key := strings.TrimSpace(threadID)
	if key == "" {
		return []Turn{}, nil
	}
	if err := s.ensureSchema(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT seq, role, content, created_at
FROM thread_turns WHERE thread_id = $1 ORDER BY seq, id`, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	turns := make([]Turn, 0, 16)
	for rows.Next() {
		var t Turn
		var role string
		if err := rows.Scan(&t.Seq, &role, &t.Content, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		t.Role = Role(role)
		turns = append(turns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return turns, nil
}
