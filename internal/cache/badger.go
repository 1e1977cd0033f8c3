// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

package cache

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/reelmix/internal/logging"
	"github.com/tomtom215/reelmix/internal/metrics"
)

// badgerKeyPrefix namespaces cache keys so the directory can be shared.
const badgerKeyPrefix = "reco:"

// BadgerCache is a Store backed by BadgerDB. Expiry uses Badger's per-entry TTL.
type BadgerCache struct {
	db  *badger.DB
	ttl time.Duration
	// owned is true when the cache opened db and must close it.
	owned bool
}

// NewBadgerCache opens (or creates) a BadgerDB directory at path.
func NewBadgerCache(path string, ttl time.Duration) (*BadgerCache, error) {
	if path == "" {
		return nil, errors.New("badger cache path is required")
	}
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // Suppress BadgerDB internal logs
	opts.ValueLogFileSize = 64 << 20

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for cache: %w", err)
	}

	c := NewBadgerCacheFromDB(db, ttl)
	c.owned = true
	return c, nil
}

// NewBadgerCacheFromDB wraps an existing database. Close will not close db.
func NewBadgerCacheFromDB(db *badger.DB, ttl time.Duration) *BadgerCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &BadgerCache{db: db, ttl: ttl}
}

// Get implements Store. Read errors are logged and reported as a miss.
func (c *BadgerCache) Get(key string) ([]byte, bool) {
	var value []byte

	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(badgerKeyPrefix + key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})

	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			logging.Warn().Err(err).Str("key", key).Msg("badger cache read failed")
		}
		metrics.RecordCacheLookup(BackendBadger, false)
		return nil, false
	}

	metrics.RecordCacheLookup(BackendBadger, true)
	return value, true
}

// Set implements Store. Write errors are logged; a failed write is only a lost cache entry.
func (c *BadgerCache) Set(key string, value []byte) {
	err := c.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(badgerKeyPrefix+key), value).WithTTL(c.ttl)
		return txn.SetEntry(entry)
	})
	if err != nil {
		logging.Warn().Err(err).Str("key", key).Msg("badger cache write failed")
	}
}

// Purge implements Store. Keys outside the cache prefix are untouched.
func (c *BadgerCache) Purge() error {
	keys := c.keys()

	wb := c.db.NewWriteBatch()
	defer wb.Cancel()
	for _, k := range keys {
		if err := wb.Delete(k); err != nil {
			return fmt.Errorf("delete cache key: %w", err)
		}
	}
	if err := wb.Flush(); err != nil {
		return fmt.Errorf("flush cache purge: %w", err)
	}

	metrics.CacheSize.WithLabelValues(BackendBadger).Set(0)
	return nil
}

// keys returns a copy of every live cache key.
func (c *BadgerCache) keys() [][]byte {
	var keys [][]byte
	_ = c.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(badgerKeyPrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		return nil
	})
	return keys
}

// Len implements Store by counting live keys.
func (c *BadgerCache) Len() int {
	n := len(c.keys())
	metrics.CacheSize.WithLabelValues(BackendBadger).Set(float64(n))
	return n
}

// Name implements Store.
func (c *BadgerCache) Name() string { return BackendBadger }

// Close closes the database when this cache opened it.
func (c *BadgerCache) Close() error {
	if !c.owned {
		return nil
	}
	return c.db.Close()
}
