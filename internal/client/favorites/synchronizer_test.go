package favorites

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gourmet/internal/client/api"
	"github.com/iudanet/gourmet/internal/client/auth"
	"github.com/iudanet/gourmet/internal/models"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeSession is a switchable session source
type fakeSession struct {
	sess auth.Session
	mu   sync.Mutex
	ok   bool
}

func (f *fakeSession) source() *SessionSourceMock {
	return &SessionSourceMock{
		CurrentFunc: func() (auth.Session, bool) {
			f.mu.Lock()
			defer f.mu.Unlock()
			return f.sess, f.ok
		},
	}
}

func (f *fakeSession) login(username string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sess = auth.Session{
		Token: "T-" + username,
		User:  models.User{Username: username},
		Epoch: f.sess.Epoch + 1,
	}
	f.ok = true
}

func (f *fakeSession) logout() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sess = auth.Session{Epoch: f.sess.Epoch + 1}
	f.ok = false
}

// fakeServer keeps favorites per user behind APIMock
type fakeServer struct {
	favorites map[string][]models.RecipeID
	mu        sync.Mutex
}

func newFakeServer() *fakeServer {
	return &fakeServer{favorites: make(map[string][]models.RecipeID)}
}

func (f *fakeServer) mock() *APIMock {
	return &APIMock{
		ListFavoritesFunc: func(ctx context.Context, token string) ([]models.Favorite, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			username := token[len("T-"):]
			out := make([]models.Favorite, 0)
			for _, id := range f.favorites[username] {
				out = append(out, models.Favorite{Recipe: models.Recipe{ID: id, Name: "recipe " + id.String()}})
			}
			return out, nil
		},
		AddFavoriteFunc: func(ctx context.Context, token, username string, id models.RecipeID) (string, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.favorites[username] = append(f.favorites[username], id)
			return "Added", nil
		},
		RemoveFavoriteFunc: func(ctx context.Context, token, username string, id models.RecipeID) (string, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			kept := f.favorites[username][:0]
			for _, fid := range f.favorites[username] {
				if fid != id {
					kept = append(kept, fid)
				}
			}
			f.favorites[username] = kept
			return "Removed", nil
		},
	}
}

func newTestSynchronizer(t *testing.T, opts ...Option) (*Synchronizer, *APIMock, *fakeSession, *fakeServer) {
	t.Helper()
	server := newFakeServer()
	mock := server.mock()
	session := &fakeSession{}
	opts = append([]Option{WithLogger(discardLogger())}, opts...)
	return New(mock, session.source(), opts...), mock, session, server
}

func TestSynchronizer_AnonymousShortCircuit(t *testing.T) {
	s, mock, _, _ := newTestSynchronizer(t)

	fav, err := s.IsFavorite(context.Background(), "42")
	require.NoError(t, err)
	assert.False(t, fav)
	assert.Empty(t, mock.ListFavoritesCalls())

	_, err = s.List(context.Background())
	assert.ErrorIs(t, err, auth.ErrNotAuthenticated)
	assert.ErrorIs(t, s.Add(context.Background(), "42"), auth.ErrNotAuthenticated)
	assert.ErrorIs(t, s.Remove(context.Background(), "42"), auth.ErrNotAuthenticated)
	assert.Empty(t, mock.AddFavoriteCalls())
	assert.Nil(t, s.Recipes())
}

func TestSynchronizer_OptimisticUpdates(t *testing.T) {
	ctx := context.Background()
	s, mock, session, _ := newTestSynchronizer(t)
	session.login("alice")

	fav, err := s.IsFavorite(ctx, "42")
	require.NoError(t, err)
	assert.False(t, fav)
	require.Len(t, mock.ListFavoritesCalls(), 1)
	assert.Equal(t, "T-alice", mock.ListFavoritesCalls()[0].Token)

	require.NoError(t, s.Add(ctx, "42"))
	fav, err = s.IsFavorite(ctx, "42")
	require.NoError(t, err)
	assert.True(t, fav)

	require.Len(t, mock.AddFavoriteCalls(), 1)
	call := mock.AddFavoriteCalls()[0]
	assert.Equal(t, "T-alice", call.Token)
	assert.Equal(t, "alice", call.Username)
	assert.Equal(t, models.RecipeID("42"), call.ID)

	require.NoError(t, s.Remove(ctx, "42"))
	fav, err = s.IsFavorite(ctx, "42")
	require.NoError(t, err)
	assert.False(t, fav)

	// Ни одного повторного list после мутаций
	assert.Len(t, mock.ListFavoritesCalls(), 1)
}

func TestSynchronizer_AddFailureLeavesCache(t *testing.T) {
	ctx := context.Background()
	errGateway := &api.RequestError{Status: 500, Body: "boom"}

	for _, initial := range []bool{false, true} {
		s, mock, session, server := newTestSynchronizer(t)
		session.login("alice")
		if initial {
			server.favorites["alice"] = []models.RecipeID{"42"}
		}
		mock.AddFavoriteFunc = func(ctx context.Context, token, username string, id models.RecipeID) (string, error) {
			return "", errGateway
		}
		mock.RemoveFavoriteFunc = mock.AddFavoriteFunc

		_, err := s.List(ctx)
		require.NoError(t, err)

		err = s.Add(ctx, "42")
		assert.Same(t, errGateway, err)
		fav, err := s.IsFavorite(ctx, "42")
		require.NoError(t, err)
		assert.Equal(t, initial, fav)

		err = s.Remove(ctx, "42")
		assert.Same(t, errGateway, err)
		fav, err = s.IsFavorite(ctx, "42")
		require.NoError(t, err)
		assert.Equal(t, initial, fav)
	}
}

func TestSynchronizer_DuplicateAddIsSuccess(t *testing.T) {
	ctx := context.Background()
	s, mock, session, _ := newTestSynchronizer(t)
	session.login("alice")
	mock.AddFavoriteFunc = func(ctx context.Context, token, username string, id models.RecipeID) (string, error) {
		return "", &api.DuplicateFavoriteError{
			Request:  &api.RequestError{Status: 500, Body: "Recette déjà dans les favoris"},
			RecipeID: id.String(),
		}
	}

	_, err := s.List(ctx)
	require.NoError(t, err)

	require.NoError(t, s.Add(ctx, "42"))
	fav, err := s.IsFavorite(ctx, "42")
	require.NoError(t, err)
	assert.True(t, fav)
}

func TestSynchronizer_ListReplacesWholesale(t *testing.T) {
	ctx := context.Background()
	s, _, session, server := newTestSynchronizer(t)
	session.login("alice")
	server.favorites["alice"] = []models.RecipeID{"1", "2", "2"}

	set, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, set, 2)
	assert.True(t, set.Has("1"))

	recipes := s.Recipes()
	require.Len(t, recipes, 2)
	assert.Equal(t, models.RecipeID("1"), recipes[0].ID)
	assert.Equal(t, models.RecipeID("2"), recipes[1].ID)

	// Изменение на сервере из другого места
	server.favorites["alice"] = []models.RecipeID{"3"}
	set, err = s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, Set{"3": {}}, set)

	fav, err := s.IsFavorite(ctx, "1")
	require.NoError(t, err)
	assert.False(t, fav)

	// Возвращенное множество - копия
	set["99"] = struct{}{}
	fav, err = s.IsFavorite(ctx, "99")
	require.NoError(t, err)
	assert.False(t, fav)
}

func TestSynchronizer_RemoveUpdatesRecipes(t *testing.T) {
	ctx := context.Background()
	s, _, session, server := newTestSynchronizer(t)
	session.login("alice")
	server.favorites["alice"] = []models.RecipeID{"1", "2"}

	_, err := s.List(ctx)
	require.NoError(t, err)
	require.NoError(t, s.Remove(ctx, "1"))

	recipes := s.Recipes()
	require.Len(t, recipes, 1)
	assert.Equal(t, models.RecipeID("2"), recipes[0].ID)
}

func TestSynchronizer_ListErrorKeepsCache(t *testing.T) {
	ctx := context.Background()
	s, mock, session, server := newTestSynchronizer(t)
	session.login("alice")
	server.favorites["alice"] = []models.RecipeID{"1"}

	_, err := s.List(ctx)
	require.NoError(t, err)

	errGateway := errors.New("offline")
	mock.ListFavoritesFunc = func(ctx context.Context, token string) ([]models.Favorite, error) {
		return nil, errGateway
	}
	_, err = s.List(ctx)
	assert.ErrorIs(t, err, errGateway)

	fav, err := s.IsFavorite(ctx, "1")
	require.NoError(t, err)
	assert.True(t, fav)
}

func TestSynchronizer_IsFavoriteListError(t *testing.T) {
	s, mock, session, _ := newTestSynchronizer(t)
	session.login("alice")
	errGateway := errors.New("offline")
	mock.ListFavoritesFunc = func(ctx context.Context, token string) ([]models.Favorite, error) {
		return nil, errGateway
	}

	fav, err := s.IsFavorite(context.Background(), "1")
	assert.ErrorIs(t, err, errGateway)
	assert.False(t, fav)
}

func TestSynchronizer_SessionChangeDropsCache(t *testing.T) {
	ctx := context.Background()
	s, mock, session, server := newTestSynchronizer(t)
	server.favorites["alice"] = []models.RecipeID{"1"}

	session.login("alice")
	fav, err := s.IsFavorite(ctx, "1")
	require.NoError(t, err)
	assert.True(t, fav)

	// Новый пользователь без Invalidate: кэш alice не должен быть виден
	session.login("bob")
	fav, err = s.IsFavorite(ctx, "1")
	require.NoError(t, err)
	assert.False(t, fav)
	require.Len(t, mock.ListFavoritesCalls(), 2)
	assert.Equal(t, "T-bob", mock.ListFavoritesCalls()[1].Token)

	session.logout()
	s.Invalidate()
	fav, err = s.IsFavorite(ctx, "1")
	require.NoError(t, err)
	assert.False(t, fav)
	assert.Len(t, mock.ListFavoritesCalls(), 2)
}

func TestSynchronizer_DiscardsStaleList(t *testing.T) {
	ctx := context.Background()
	s, mock, session, server := newTestSynchronizer(t)
	server.favorites["alice"] = []models.RecipeID{"1"}
	session.login("alice")

	list := mock.ListFavoritesFunc
	mock.ListFavoritesFunc = func(ctx context.Context, token string) ([]models.Favorite, error) {
		// Сессия меняется, пока запрос в полете
		session.logout()
		s.Invalidate()
		session.login("bob")
		return list(ctx, token)
	}

	set, err := s.List(ctx)
	require.NoError(t, err)
	assert.True(t, set.Has("1"))

	// Результат alice не попал в кэш bob
	mock.ListFavoritesFunc = list
	fav, err := s.IsFavorite(ctx, "1")
	require.NoError(t, err)
	assert.False(t, fav)
	assert.Len(t, mock.ListFavoritesCalls(), 2)
}

func TestSynchronizer_DiscardsStaleAdd(t *testing.T) {
	ctx := context.Background()
	s, mock, session, _ := newTestSynchronizer(t)
	session.login("alice")

	_, err := s.List(ctx)
	require.NoError(t, err)

	add := mock.AddFavoriteFunc
	mock.AddFavoriteFunc = func(ctx context.Context, token, username string, id models.RecipeID) (string, error) {
		s.Invalidate()
		return add(ctx, token, username, id)
	}

	require.NoError(t, s.Add(ctx, "42"))
	assert.Nil(t, s.Recipes())
}

func TestSynchronizer_Toggle(t *testing.T) {
	ctx := context.Background()
	s, mock, session, _ := newTestSynchronizer(t)
	session.login("alice")

	fav, err := s.Toggle(ctx, "7")
	require.NoError(t, err)
	assert.True(t, fav)
	assert.Len(t, mock.AddFavoriteCalls(), 1)

	fav, err = s.Toggle(ctx, "7")
	require.NoError(t, err)
	assert.False(t, fav)
	assert.Len(t, mock.RemoveFavoriteCalls(), 1)

	mock.AddFavoriteFunc = func(ctx context.Context, token, username string, id models.RecipeID) (string, error) {
		return "", errors.New("boom")
	}
	fav, err = s.Toggle(ctx, "7")
	require.Error(t, err)
	assert.False(t, fav)
}

func TestSynchronizer_SerializedToggles(t *testing.T) {
	ctx := context.Background()
	s, mock, session, server := newTestSynchronizer(t, WithSerializedMutations())
	session.login("alice")

	_, err := s.List(ctx)
	require.NoError(t, err)

	const toggles = 10
	var wg sync.WaitGroup
	for range toggles {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Toggle(ctx, "5")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// Каждое переключение видит результат предыдущего
	assert.Len(t, mock.AddFavoriteCalls(), toggles/2)
	assert.Len(t, mock.RemoveFavoriteCalls(), toggles/2)
	assert.Empty(t, server.favorites["alice"])

	fav, err := s.IsFavorite(ctx, "5")
	require.NoError(t, err)
	assert.False(t, fav)
}

func TestKeyedMutex_ReleasesEntries(t *testing.T) {
	k := newKeyedMutex()

	unlockA := k.lock("a")
	unlockB := k.lock("b")
	assert.Len(t, k.entries, 2)

	unlockA()
	unlockB()
	assert.Empty(t, k.entries)
}
