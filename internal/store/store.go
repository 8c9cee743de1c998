// Package store wraps a bbolt file with the keyed JSON document layout
// shared by all repositories: five top-level documents (orders,
// favorites, dishes, categories, settings) plus a rolling backup.
package store

import (
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"

	"github.com/talkincode/foodking/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var bucketName = []byte("foodking")

// CorruptStateError reports a stored document that could not be
// parsed. The read fails outright; callers decide whether to reset
// the key or surface the failure.
type CorruptStateError struct {
	Key string
	Err error
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("corrupt state for key %q: %s", e.Key, e.Err)
}

func (e *CorruptStateError) Unwrap() error {
	return e.Err
}

// IsCorruptState reports whether err is a CorruptStateError.
func IsCorruptState(err error) bool {
	var ce *CorruptStateError
	return errors.As(err, &ce)
}

// Store is the persistent key-value adapter.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the store file and seeds any absent domain
// document with its default value.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 3 * time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "open store file")
	}
	s := &Store{db: db}
	if err := s.seedDefaults(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying file.
func (s *Store) Close() error {
	return s.db.Close()
}

// Read unmarshals the document stored under key into out. An absent
// key leaves out untouched, so callers pass their empty default.
// Unparsable data yields a CorruptStateError.
func (s *Store) Read(key string, out interface{}) error {
	return s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		if b == nil {
			return nil
		}
		raw := b.Get([]byte(key))
		if raw == nil {
			return nil
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return &CorruptStateError{Key: key, Err: err}
		}
		return nil
	})
}

// Write marshals value and stores it under key, replacing any
// previous document.
func (s *Store) Write(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "marshal %q", key)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketName)
		if err != nil {
			return err
		}
		return b.Put([]byte(key), raw)
	})
}

// Delete removes a document. Absent keys are a no-op.
func (s *Store) Delete(key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(key))
	})
}

// Size returns the total byte length of all stored documents.
func (s *Store) Size() (int64, error) {
	var total int64
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			total += int64(len(v))
			return nil
		})
	})
	return total, err
}

// has reports whether a key holds any document.
func (s *Store) has(key string) (bool, error) {
	var found bool
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		if b == nil {
			return nil
		}
		found = b.Get([]byte(key)) != nil
		return nil
	})
	return found, err
}

// Settings reads the singleton settings record.
func (s *Store) Settings() (domain.Settings, error) {
	cfg := DefaultSettings()
	err := s.Read(domain.KeySettings, &cfg)
	return cfg, err
}

// UpdateSettings applies the patch over the stored settings and
// persists the result.
func (s *Store) UpdateSettings(patch domain.SettingsPatch) (domain.Settings, error) {
	cfg, err := s.Settings()
	if err != nil {
		return cfg, err
	}
	patch.Apply(&cfg)
	if err := s.Write(domain.KeySettings, cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
