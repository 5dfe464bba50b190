package archive

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryStore keeps archived documents in memory. Used when no S3 endpoint
// is configured and in tests.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

func (s *MemoryStore) Put(_ context.Context, threadID, path string, content []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(content))
	copy(cp, content)
	s.docs[objectKey(strings.TrimSpace(threadID), strings.TrimSpace(path))] = cp
	return nil
}

func (s *MemoryStore) Get(_ context.Context, threadID, path string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.docs[objectKey(strings.TrimSpace(threadID), strings.TrimSpace(path))]
	if !ok {
		return nil, ErrNotFound
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

func (s *MemoryStore) List(_ context.Context, threadID string) ([]string, error) {
	prefix := strings.TrimSpace(threadID) + "/"
	s.mu.RLock()
	defer s.mu.RUnlock()
	paths := make([]string, 0, 8)
	for key := range s.docs {
		if strings.HasPrefix(key, prefix) {
			paths = append(paths, strings.TrimPrefix(key, prefix))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
