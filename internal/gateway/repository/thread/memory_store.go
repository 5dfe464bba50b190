package thread

import (
	"context"
	"strings"
	"sync"
	"time"
)

// MemoryStore keeps threads in process memory. Used when no connection
// string is configured and as the baseline for store tests.
type MemoryStore struct {
	mu      sync.RWMutex
	threads map[string][]Turn
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{threads: make(map[string][]Turn)}
}

func (s *MemoryStore) Append(_ context.Context, threadID string, turn Turn) error {
	key := strings.TrimSpace(threadID)
	if key == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	turn.Seq = len(s.threads[key])
	if turn.CreatedAt.IsZero() {
		turn.CreatedAt = time.Now()
	}
	s.threads[key] = append(s.threads[key], turn)
	return nil
}

func (s *MemoryStore) Load(_ context.Context, threadID string) ([]Turn, error) {
	key := strings.TrimSpace(threadID)
	s.mu.RLock()
	defer s.mu.RUnlock()
	turns := s.threads[key]
	out := make([]Turn, len(turns))
	copy(out, turns)
	return out, nil
}
