package storage

import "context"

//go:generate moq -out storage_mock.go . KeyValueStorage

// KeyValueStorage defines the lowest client storage layer: string values under
// fixed keys, scoped to one browsing context (profile). It knows nothing about
// what the values mean.
type KeyValueStorage interface {
	// Get returns the value stored under key.
	// Returns ErrNotFound if the key is absent
	Get(ctx context.Context, key string) (string, error)

	// Apply performs all writes in a single transaction: either every write
	// becomes visible or none does
	Apply(ctx context.Context, writes ...Write) error

	// Close releases the underlying resources
	Close() error
}

// Write is a single put or delete inside Apply.
type Write struct {
	Key    string
	Value  string
	Delete bool
}

// Put returns a write that stores value under key.
func Put(key, value string) Write {
	return Write{Key: key, Value: value}
}

// Delete returns a write that removes key.
func Delete(key string) Write {
	return Write{Key: key, Delete: true}
}
