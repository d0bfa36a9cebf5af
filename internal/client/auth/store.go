package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/iudanet/gourmet/internal/client/storage"
	"github.com/iudanet/gourmet/internal/client/storage/memory"
	"github.com/iudanet/gourmet/internal/models"
)

// Ключи в хранилище профиля
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// undefinedValues are stored values that mean "not set". They are left over
// by writers that serialized a missing value instead of deleting the key.
var undefinedValues = map[string]bool{
	"":          true,
	"undefined": true,
	"null":      true,
}

// Store persists the credential and the user profile of one browsing context.
// It never returns errors: when the backend fails it logs the failure and
// switches to process memory for the rest of its lifetime.
type Store struct {
	backend  storage.KeyValueStorage
	fallback *memory.Storage
	logger   *slog.Logger
	mu       sync.Mutex
	degraded bool
}

// NewStore wraps backend. A nil backend means memory-only storage.
func NewStore(backend storage.KeyValueStorage, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		backend:  backend,
		fallback: memory.New(),
		logger:   logger,
	}
	if backend == nil {
		s.degraded = true
	}
	return s
}

// Degraded reports whether the store fell back to memory.
func (s *Store) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

// Load returns the stored token and user, each independently optional.
// A user value that does not parse, or has no username, is discarded without
// discarding the token.
func (s *Store) Load(ctx context.Context) (string, *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, err := s.get(ctx, KeyToken)
	if err != nil {
		s.degrade(ctx, "load", err)
		token, _ = s.get(ctx, KeyToken)
	}

	rawUser, err := s.get(ctx, KeyUser)
	if err != nil {
		s.degrade(ctx, "load", err)
		rawUser, _ = s.get(ctx, KeyUser)
	}

	var user *models.User
	if rawUser != "" {
		var parsed models.User
		if err := json.Unmarshal([]byte(rawUser), &parsed); err != nil {
			s.logger.ErrorContext(ctx, "stored user is not valid JSON, ignoring it", "error", err)
		} else if err := parsed.Validate(); err != nil {
			s.logger.ErrorContext(ctx, "stored user is invalid, ignoring it", "error", err)
		} else {
			user = &parsed
		}
	}

	return token, user
}

// Save writes the token and the user in one transaction.
// An empty token or a nil user removes the corresponding key.
func (s *Store) Save(ctx context.Context, token string, user *models.User) {
	writes := make([]storage.Write, 0, 2)

	if token == "" {
		writes = append(writes, storage.Delete(KeyToken))
	} else {
		writes = append(writes, storage.Put(KeyToken, token))
	}

	if user == nil {
		writes = append(writes, storage.Delete(KeyUser))
	} else {
		data, err := json.Marshal(user)
		if err != nil {
			// models.User всегда сериализуется, сюда попасть нельзя
			s.logger.ErrorContext(ctx, "failed to marshal user", "error", err)
			writes = append(writes, storage.Delete(KeyUser))
		} else {
			writes = append(writes, storage.Put(KeyUser, string(data)))
		}
	}

	s.apply(ctx, "save", writes...)
}

// Clear removes both keys.
func (s *Store) Clear(ctx context.Context) {
	s.apply(ctx, "clear", storage.Delete(KeyToken), storage.Delete(KeyUser))
}

func (s *Store) apply(ctx context.Context, op string, writes ...storage.Write) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.degraded {
		err := s.backend.Apply(ctx, writes...)
		if err == nil {
			return
		}
		s.degrade(ctx, op, err)
	}

	// memory.Storage падает только после Close, который Store никогда не вызывает
	_ = s.fallback.Apply(ctx, writes...)
}

// get returns "" for absent and undefined values. Caller holds mu.
func (s *Store) get(ctx context.Context, key string) (string, error) {
	var (
		value string
		err   error
	)
	if s.degraded {
		value, err = s.fallback.Get(ctx, key)
	} else {
		value, err = s.backend.Get(ctx, key)
	}

	if errors.Is(err, storage.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if undefinedValues[value] {
		return "", nil
	}
	return value, nil
}

// degrade switches to memory. Caller holds mu.
func (s *Store) degrade(ctx context.Context, op string, err error) {
	if s.degraded {
		return
	}
	s.degraded = true
	s.logger.ErrorContext(ctx, "session storage unavailable, keeping session in memory only",
		"operation", op,
		"error", err)
}
