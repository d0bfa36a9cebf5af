package memory

import (
	"context"
	"sync"

	"github.com/iudanet/gourmet/internal/client/storage"
)

// Storage keeps values in process memory only. It is used when durable
// storage is unavailable and in tests.
type Storage struct {
	values map[string]string
	mu     sync.RWMutex
	closed bool
}

var _ storage.KeyValueStorage = (*Storage)(nil)

// New creates an empty in-memory storage.
func New() *Storage {
	return &Storage{values: make(map[string]string)}
}

func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return "", storage.ErrStorageClosed
	}
	value, ok := s.values[key]
	if !ok {
		return "", storage.ErrNotFound
	}
	return value, nil
}

func (s *Storage) Apply(ctx context.Context, writes ...storage.Write) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storage.ErrStorageClosed
	}
	for _, w := range writes {
		if w.Delete {
			delete(s.values, w.Key)
			continue
		}
		s.values[w.Key] = w.Value
	}
	return nil
}

func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
