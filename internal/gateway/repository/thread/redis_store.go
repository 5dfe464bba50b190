package thread

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	backend "github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "architect:thread:"

// RedisStore persists each thread as a Redis list of JSON-encoded turns.
type RedisStore struct {
	client *backend.Client
	prefix string
}

func NewRedisStore(url string) (*RedisStore, error) {
	opts, err := backend.ParseURL(strings.TrimSpace(url))
	if err != nil {
		return nil, err
	}
	return NewRedisStoreFromClient(backend.NewClient(opts)), nil
}

// NewRedisStoreFromClient wraps an existing client (used by tests).
func NewRedisStoreFromClient(client *backend.Client) *RedisStore {
	return &RedisStore{client: client, prefix: defaultRedisPrefix}
}

func (s *RedisStore) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

func (s *RedisStore) key(threadID string) string {
	return s.prefix + strings.TrimSpace(threadID)
}

func (s *RedisStore) Append(ctx context.Context, threadID string, turn Turn) error {
	key := strings.TrimSpace(threadID)
	if key == "" {
		return nil
	}
	if turn.CreatedAt.IsZero() {
		turn.CreatedAt = time.Now()
	}
	data, err := json.Marshal(turn)
	if err != nil {
		return err
	}
	if err := s.client.RPush(ctx, s.key(key), data).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context, threadID string) ([]Turn, error) {
	key := strings.TrimSpace(threadID)
	if key == "" {
		return []Turn{}, nil
	}
	raw, err := s.client.LRange(ctx, s.key(key), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	turns := make([]Turn, 0, len(raw))
	for i, item := range raw {
		var t Turn
		if err := json.Unmarshal([]byte(item), &t); err != nil {
			return nil, fmt.Errorf("decode turn %d of thread %s: %w", i, key, err)
		}
		// List position is authoritative for ordering.
		t.Seq = i
		turns = append(turns, t)
	}
	return turns, nil
}
