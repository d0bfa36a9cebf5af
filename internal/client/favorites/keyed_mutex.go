package favorites

import (
	"sync"

	"github.com/iudanet/gourmet/internal/models"
)

// keyedMutex is a set of mutexes, one per recipe id. Entries live only while
// someone holds or waits for them.
type keyedMutex struct {
	entries map[models.RecipeID]*keyedEntry
	mu      sync.Mutex
}

type keyedEntry struct {
	mu      sync.Mutex
	waiters int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{entries: make(map[models.RecipeID]*keyedEntry)}
}

// lock blocks until id is free and returns the matching unlock.
func (k *keyedMutex) lock(id models.RecipeID) func() {
	k.mu.Lock()
	e, ok := k.entries[id]
	if !ok {
		e = &keyedEntry{}
		k.entries[id] = e
	}
	e.waiters++
	k.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		k.mu.Lock()
		e.waiters--
		if e.waiters == 0 {
			delete(k.entries, id)
		}
		k.mu.Unlock()
	}
}
