package thread

import (
	"context"
	"errors"
	"time"
)

// Role tags who produced a turn.
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
	RoleAgent  Role = "agent"
)

// Turn is one message within a thread. Seq is assigned by the store on append
// and reflects arrival order.
type Turn struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Seq       int       `json:"seq"`
	CreatedAt time.Time `json:"created_at"`
}

// Store defines operations for persisting conversation threads.
// History is append-only: turns are never edited or removed.
type Store interface {
	// Append durably stores one turn at the end of the thread.
	Append(ctx context.Context, threadID string, turn Turn) error
	// Load returns all turns of the thread in append order.
	// An unseen threadID yields an empty slice, not an error.
	Load(ctx context.Context, threadID string) ([]Turn, error)
}

// ErrUnavailable indicates the backing store could not be reached.
// The whole operation is safe to retry.
var ErrUnavailable = errors.New("thread store unavailable")
