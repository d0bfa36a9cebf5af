package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gourmet/internal/client/storage"
	"github.com/iudanet/gourmet/internal/client/storage/memory"
	"github.com/iudanet/gourmet/internal/models"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	store := NewStore(backend, discardLogger())

	user := &models.User{Username: "alice", ID: "1", Name: "Alice", Email: "alice@example.com"}
	store.Save(ctx, "tok-1", user)

	token, loaded := store.Load(ctx)
	assert.Equal(t, "tok-1", token)
	require.NotNil(t, loaded)
	assert.Equal(t, *user, *loaded)
	assert.False(t, store.Degraded())

	// Данные лежат в backend под фиксированными ключами
	raw, err := backend.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", raw)
	_, err = backend.Get(ctx, KeyUser)
	require.NoError(t, err)
}

func TestStore_Empty(t *testing.T) {
	store := NewStore(memory.New(), discardLogger())

	token, user := store.Load(context.Background())
	assert.Empty(t, token)
	assert.Nil(t, user)
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	store := NewStore(backend, discardLogger())

	store.Save(ctx, "tok-1", &models.User{Username: "alice"})
	store.Clear(ctx)

	token, user := store.Load(ctx)
	assert.Empty(t, token)
	assert.Nil(t, user)

	_, err := backend.Get(ctx, KeyToken)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = backend.Get(ctx, KeyUser)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStore_SavePartial(t *testing.T) {
	ctx := context.Background()
	store := NewStore(memory.New(), discardLogger())

	store.Save(ctx, "tok-1", &models.User{Username: "alice"})
	store.Save(ctx, "tok-2", nil)

	token, user := store.Load(ctx)
	assert.Equal(t, "tok-2", token)
	assert.Nil(t, user)
}

func TestStore_UndefinedValues(t *testing.T) {
	for _, literal := range []string{"undefined", "null", ""} {
		t.Run("literal "+literal, func(t *testing.T) {
			ctx := context.Background()
			backend := memory.New()
			require.NoError(t, backend.Apply(ctx,
				storage.Put(KeyToken, literal),
				storage.Put(KeyUser, literal),
			))

			token, user := NewStore(backend, discardLogger()).Load(ctx)
			assert.Empty(t, token)
			assert.Nil(t, user)
		})
	}
}

func TestStore_InvalidUserKeepsToken(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: "{not json"},
		{name: "wrong shape", raw: `["alice"]`},
		{name: "missing username", raw: `{"name":"Alice"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			backend := memory.New()
			require.NoError(t, backend.Apply(ctx,
				storage.Put(KeyToken, "tok-1"),
				storage.Put(KeyUser, tt.raw),
			))

			token, user := NewStore(backend, discardLogger()).Load(ctx)
			assert.Equal(t, "tok-1", token)
			assert.Nil(t, user)
		})
	}
}

func TestStore_BackendFailureDegradesToMemory(t *testing.T) {
	ctx := context.Background()
	errDisk := errors.New("disk is gone")
	backend := &storage.KeyValueStorageMock{
		GetFunc: func(ctx context.Context, key string) (string, error) {
			return "", errDisk
		},
		ApplyFunc: func(ctx context.Context, writes ...storage.Write) error {
			return errDisk
		},
	}
	store := NewStore(backend, discardLogger())

	require.NotPanics(t, func() {
		store.Save(ctx, "tok-1", &models.User{Username: "alice"})
	})
	assert.True(t, store.Degraded())

	// После деградации значения живут в памяти процесса
	token, user := store.Load(ctx)
	assert.Equal(t, "tok-1", token)
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)

	// backend больше не трогаем
	store.Clear(ctx)
	assert.Len(t, backend.ApplyCalls(), 1)
	assert.Empty(t, backend.GetCalls())

	token, user = store.Load(ctx)
	assert.Empty(t, token)
	assert.Nil(t, user)
}

func TestStore_ReadFailureDegrades(t *testing.T) {
	ctx := context.Background()
	backend := &storage.KeyValueStorageMock{
		GetFunc: func(ctx context.Context, key string) (string, error) {
			return "", storage.ErrStorageClosed
		},
	}
	store := NewStore(backend, discardLogger())

	token, user := store.Load(ctx)
	assert.Empty(t, token)
	assert.Nil(t, user)
	assert.True(t, store.Degraded())
	assert.Len(t, backend.GetCalls(), 1)
}

func TestStore_NilBackend(t *testing.T) {
	ctx := context.Background()
	store := NewStore(nil, discardLogger())
	assert.True(t, store.Degraded())

	store.Save(ctx, "tok-1", &models.User{Username: "alice"})
	token, user := store.Load(ctx)
	assert.Equal(t, "tok-1", token)
	require.NotNil(t, user)
}
