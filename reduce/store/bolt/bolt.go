package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"go.etcd.io/bbolt"
)

// Store keeps partial aggregates in a bbolt database, one bbolt bucket per
// partition. Values are JSON-encoded, so V must marshal cleanly.
type Store[V any] struct {
	db *bbolt.DB
}

func New[V any](path string) (*Store[V], error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 30 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("create bolt store: %w", err)
	}

	return &Store[V]{
		db: db,
	}, nil
}

func (s *Store[V]) Merge(ctx context.Context, bucket string, key string, val V, combine func(V, V) V) {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		buck, err := tx.CreateBucketIfNotExists([]byte(bucket))
		if err != nil {
			log.Panicf("key: '%s', val: %v, err: %s", key, val, err)
		}

		if cur, ok := get[V](buck, key); ok {
			val = combine(cur, val)
		}

		data, err := json.Marshal(val)
		if err != nil {
			log.Panicf("key: '%s', val: %v, err: %s", key, val, err)
		}

		err = buck.Put([]byte(key), data)
		if err != nil {
			log.Panicf("key: '%s', val: %v, err: %s", key, val, err)
		}

		return nil
	})
	if err != nil {
		panic(err)
	}
}

func (s *Store[V]) Get(ctx context.Context, bucket string, key string) (V, bool) {
	var (
		val V
		ok  bool
	)

	err := s.db.Update(func(tx *bbolt.Tx) error {
		buck, err := tx.CreateBucketIfNotExists([]byte(bucket))
		if err != nil {
			return err
		}

		val, ok = get[V](buck, key)

		return nil
	})
	if err != nil {
		panic(err)
	}

	return val, ok
}

func (s *Store[V]) Keys(ctx context.Context, bucket string) []string {
	var keys []string

	err := s.db.Update(func(tx *bbolt.Tx) error {
		buck, err := tx.CreateBucketIfNotExists([]byte(bucket))
		if err != nil {
			return err
		}

		c := buck.Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			keys = append(keys, string(k))
		}

		return nil
	})
	if err != nil {
		panic(err)
	}

	return keys
}

// Close must be called to release the database file.
func (s *Store[V]) Close() error {
	return s.db.Close()
}

// Destroy closes the database and removes the file.
func (s *Store[V]) Destroy() error {
	path := s.db.Path()
	_ = s.Close()
	return os.Remove(path)
}

func get[V any](buck *bbolt.Bucket, key string) (V, bool) {
	var val V

	data := buck.Get([]byte(key))
	if len(data) == 0 {
		return val, false
	}

	err := json.Unmarshal(data, &val)
	if err != nil {
		panic(err)
	}

	return val, true
}
