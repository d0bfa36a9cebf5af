// Package favorites keeps the client-side view of the current user's
// favorite recipes and performs add/remove mutations.
//
// The local view is never authoritative: List replaces it wholesale with
// what the server returns, and Add/Remove only patch it after the server
// accepted the mutation.
package favorites

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/iudanet/gourmet/internal/client/api"
	"github.com/iudanet/gourmet/internal/client/auth"
	"github.com/iudanet/gourmet/internal/models"
)

//go:generate moq -out api_mock.go . API
//go:generate moq -out session_mock.go . SessionSource

// API is the part of the gateway the synchronizer needs.
type API interface {
	ListFavorites(ctx context.Context, token string) ([]models.Favorite, error)
	AddFavorite(ctx context.Context, token, username string, id models.RecipeID) (string, error)
	RemoveFavorite(ctx context.Context, token, username string, id models.RecipeID) (string, error)
}

// SessionSource provides the current session snapshot. *auth.Manager implements it.
type SessionSource interface {
	Current() (auth.Session, bool)
}

// Set is a set of recipe ids.
type Set map[models.RecipeID]struct{}

// Has reports whether id is in the set.
func (s Set) Has(id models.RecipeID) bool {
	_, ok := s[id]
	return ok
}

// Option configures a Synchronizer.
type Option func(*Synchronizer)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Synchronizer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSerializedMutations makes Add, Remove and Toggle for the same recipe
// wait for each other. Without it concurrent toggles of one recipe may both
// read the same membership and issue conflicting mutations.
func WithSerializedMutations() Option {
	return func(s *Synchronizer) {
		s.locks = newKeyedMutex()
	}
}

// Synchronizer owns the favorite membership cache of the current session.
// It is the only writer of that cache.
//
// The cache belongs to one (username, session epoch) pair. It is dropped by
// Invalidate (the session manager calls it on login and logout) and ignored
// whenever the session snapshot no longer matches, so a different user can
// never observe it. Results of requests started under an older session are
// discarded.
type Synchronizer struct {
	api     API
	session SessionSource
	logger  *slog.Logger
	locks   *keyedMutex
	members Set
	// recipes of the last reconciled list, server order
	recipes  []models.Recipe
	username string
	epoch    uint64
	// generation bumps on every Invalidate
	generation uint64
	mu         sync.Mutex
	loaded     bool
}

// New creates a Synchronizer. Subscribe it to the session manager so that it
// is invalidated on every session change.
func New(api API, session SessionSource, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		api:     api,
		session: session,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Invalidate drops the cache. Requests in flight will not repopulate it.
func (s *Synchronizer) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
	s.generation++
}

// IsFavorite reports whether the current user favorited id. It returns false
// without a network call when anonymous. The first query of a session loads
// the full list; later queries are answered from the cache.
func (s *Synchronizer) IsFavorite(ctx context.Context, id models.RecipeID) (bool, error) {
	sess, ok := s.session.Current()
	if !ok {
		return false, nil
	}

	s.mu.Lock()
	if s.validFor(sess) {
		has := s.members.Has(id)
		s.mu.Unlock()
		return has, nil
	}
	s.mu.Unlock()

	set, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	return set.Has(id), nil
}

// List fetches the full favorites list and replaces the cache with it.
// The returned set is a copy owned by the caller.
func (s *Synchronizer) List(ctx context.Context) (Set, error) {
	sess, ok := s.session.Current()
	if !ok {
		return nil, auth.ErrNotAuthenticated
	}
	generation := s.currentGeneration()

	favorites, err := s.api.ListFavorites(ctx, sess.Token)
	if err != nil {
		return nil, err
	}

	set := make(Set, len(favorites))
	recipes := make([]models.Recipe, 0, len(favorites))
	for _, f := range favorites {
		if set.Has(f.Recipe.ID) {
			continue
		}
		set[f.Recipe.ID] = struct{}{}
		recipes = append(recipes, f.Recipe)
	}

	s.mu.Lock()
	if s.stillCurrent(sess, generation) {
		s.members = make(Set, len(set))
		for id := range set {
			s.members[id] = struct{}{}
		}
		s.recipes = recipes
		s.username = sess.User.Username
		s.epoch = sess.Epoch
		s.loaded = true
	} else {
		s.logger.DebugContext(ctx, "session changed during favorites fetch, discarding result",
			"username", sess.User.Username)
	}
	s.mu.Unlock()

	return set, nil
}

// Recipes returns the recipes of the last reconciled list, minus the ones
// removed since. It returns nil when the cache is not loaded for the current
// session.
func (s *Synchronizer) Recipes() []models.Recipe {
	sess, ok := s.session.Current()
	if !ok {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.validFor(sess) {
		return nil
	}
	out := make([]models.Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out
}

// Add creates the favorite on the server and then marks id as favorited.
// A duplicate response counts as success. On any other error the cache is
// left unchanged and the error is returned as is.
func (s *Synchronizer) Add(ctx context.Context, id models.RecipeID) error {
	if s.locks != nil {
		unlock := s.locks.lock(id)
		defer unlock()
	}
	return s.add(ctx, id)
}

// Remove deletes the favorite on the server and then marks id as not
// favorited. On error the cache is left unchanged.
func (s *Synchronizer) Remove(ctx context.Context, id models.RecipeID) error {
	if s.locks != nil {
		unlock := s.locks.lock(id)
		defer unlock()
	}
	return s.remove(ctx, id)
}

// Toggle removes id when it is favorited and adds it otherwise. It returns
// the new membership.
//
// Toggle reads then acts. Two concurrent toggles of the same recipe can
// read the same membership and both add (or both remove); the cache then
// reflects whichever finishes last until the next List. Use
// WithSerializedMutations to make toggles of one recipe wait for each other.
func (s *Synchronizer) Toggle(ctx context.Context, id models.RecipeID) (bool, error) {
	if s.locks != nil {
		unlock := s.locks.lock(id)
		defer unlock()
	}

	favorite, err := s.IsFavorite(ctx, id)
	if err != nil {
		return false, err
	}
	if favorite {
		if err := s.remove(ctx, id); err != nil {
			return true, err
		}
		return false, nil
	}
	if err := s.add(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Synchronizer) add(ctx context.Context, id models.RecipeID) error {
	sess, ok := s.session.Current()
	if !ok {
		return auth.ErrNotAuthenticated
	}
	generation := s.currentGeneration()

	_, err := s.api.AddFavorite(ctx, sess.Token, sess.User.Username, id)
	if err != nil {
		var dup *api.DuplicateFavoriteError
		if !errors.As(err, &dup) {
			return err
		}
		s.logger.DebugContext(ctx, "recipe already in favorites", "recipe_id", id.String())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.validFor(sess) && s.stillCurrent(sess, generation) {
		s.members[id] = struct{}{}
	}
	return nil
}

func (s *Synchronizer) remove(ctx context.Context, id models.RecipeID) error {
	sess, ok := s.session.Current()
	if !ok {
		return auth.ErrNotAuthenticated
	}
	generation := s.currentGeneration()

	if _, err := s.api.RemoveFavorite(ctx, sess.Token, sess.User.Username, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.validFor(sess) && s.stillCurrent(sess, generation) {
		delete(s.members, id)
		kept := s.recipes[:0]
		for _, r := range s.recipes {
			if r.ID != id {
				kept = append(kept, r)
			}
		}
		s.recipes = kept
	}
	return nil
}

func (s *Synchronizer) currentGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// validFor reports whether the cache belongs to sess. Caller holds mu.
func (s *Synchronizer) validFor(sess auth.Session) bool {
	return s.loaded && s.username == sess.User.Username && s.epoch == sess.Epoch
}

// stillCurrent reports whether a request started with sess at generation may
// still write to the cache. Caller holds mu.
func (s *Synchronizer) stillCurrent(sess auth.Session, generation uint64) bool {
	if s.generation != generation {
		return false
	}
	now, ok := s.session.Current()
	return ok && now.Epoch == sess.Epoch && now.User.Username == sess.User.Username
}

// reset empties the cache. Caller holds mu.
func (s *Synchronizer) reset() {
	s.loaded = false
	s.members = nil
	s.recipes = nil
	s.username = ""
	s.epoch = 0
}
