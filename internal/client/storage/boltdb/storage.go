package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/gourmet/internal/client/storage"
)

// DefaultScope is the bucket used when no profile is given
const DefaultScope = "default"

// bucketPrefix отделяет buckets сессий от возможных служебных buckets
const bucketPrefix = "session:"

// Storage represents BoltDB storage implementation for client.
// Each Storage works inside one bucket, so several browsing contexts
// (profiles) can share one database file without seeing each other.
type Storage struct {
	db     *bbolt.DB
	bucket []byte
}

// Compile-time check that Storage implements KeyValueStorage
var _ storage.KeyValueStorage = (*Storage)(nil)

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file, scope selects the profile bucket
func New(ctx context.Context, dbPath, scope string) (*Storage, error) {
	if scope == "" {
		scope = DefaultScope
	}

	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db, bucket: []byte(bucketPrefix + scope)}

	// Инициализируем bucket профиля
	if err := s.initBuckets(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// initBuckets создает bucket профиля если он не существует
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(s.bucket); err != nil {
			return fmt.Errorf("failed to create %s bucket: %w", s.bucket, err)
		}
		return nil
	})
}

// Get retrieves the value stored under key
func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	if s.db == nil {
		return "", storage.ErrStorageClosed
	}

	var value string
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(s.bucket)
		if bucket == nil {
			return fmt.Errorf("%s bucket not found", s.bucket)
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return storage.ErrNotFound
		}

		// Копируем: data действителен только внутри транзакции
		value = string(data)
		return nil
	})
	if err != nil {
		return "", err
	}

	return value, nil
}

// Apply performs the writes in one bbolt transaction
func (s *Storage) Apply(ctx context.Context, writes ...storage.Write) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(s.bucket)
		if bucket == nil {
			return fmt.Errorf("%s bucket not found", s.bucket)
		}

		for _, w := range writes {
			if w.Delete {
				if err := bucket.Delete([]byte(w.Key)); err != nil {
					return fmt.Errorf("failed to delete %q: %w", w.Key, err)
				}
				continue
			}
			if err := bucket.Put([]byte(w.Key), []byte(w.Value)); err != nil {
				return fmt.Errorf("failed to save %q: %w", w.Key, err)
			}
		}

		return nil
	})
}
