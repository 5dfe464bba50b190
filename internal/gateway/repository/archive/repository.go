package archive

import (
	"context"
	"errors"
)

// Store persists emitted blueprint documents per thread. Archiving is
// best-effort: the orchestrator logs and continues when a Put fails.
type Store interface {
	Put(ctx context.Context, threadID, path string, content []byte) error
	Get(ctx context.Context, threadID, path string) ([]byte, error)
	List(ctx context.Context, threadID string) ([]string, error)
}

var ErrNotFound = errors.New("archived document not found")
