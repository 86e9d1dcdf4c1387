// Package regcache provides the on-disk, user-cache-directory layer that
// `hfp sync` refreshes and that registry loads consult before falling
// back to the bundle embedded in the binary. It wraps a single BadgerDB
// instance over a small, fixed keyspace: one handle, explicit Close.
package regcache

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// Key names for the two registry tables this cache holds. Unexported:
// callers use the typed Hardware()/Cloud() accessors below rather than
// raw Get/Put so a renamed table can't silently orphan old entries.
const (
	keyHardware = "hardware.yaml"
	keyCloud    = "cloud.yaml"
)

// Cache is a BadgerDB-backed key-value store holding synced copies of the
// hardware and cloud registry tables. A zero Cache is not usable; build
// one with Open.
type Cache struct {
	db *badger.DB
}

// Options configures Open.
type Options struct {
	// DataDir is the user cache directory `sync` writes into, e.g.
	// "$XDG_CACHE_HOME/hfp/registry". Required unless InMemory is set.
	DataDir string

	// InMemory runs the cache with no backing files, for tests.
	InMemory bool
}

// Open opens (creating if absent) the registry cache at opts.DataDir.
func Open(opts Options) (*Cache, error) {
	bopts := badger.DefaultOptions(opts.DataDir)
	bopts = bopts.WithLogger(nil)
	if opts.InMemory {
		bopts = bopts.WithInMemory(true)
	}
	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("regcache: open: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Hardware returns the cached hardware table, or (nil, false, nil) when
// sync has never populated it.
func (c *Cache) Hardware() ([]byte, bool, error) {
	return c.get(keyHardware)
}

// Cloud returns the cached cloud-offering table, or (nil, false, nil)
// when sync has never populated it.
func (c *Cache) Cloud() ([]byte, bool, error) {
	return c.get(keyCloud)
}

// PutHardware overwrites the cached hardware table. Called by `sync`
// after a successful remote refresh.
func (c *Cache) PutHardware(data []byte) error {
	return c.put(keyHardware, data)
}

// PutCloud overwrites the cached cloud-offering table.
func (c *Cache) PutCloud(data []byte) error {
	return c.put(keyCloud, data)
}

func (c *Cache) get(key string) ([]byte, bool, error) {
	var out []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			out = append([]byte(nil), val...)
			return nil
		})
	})
	if err != nil {
		return nil, false, fmt.Errorf("regcache: get %s: %w", key, err)
	}
	return out, out != nil, nil
}

func (c *Cache) put(key string, data []byte) error {
	err := c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("regcache: put %s: %w", key, err)
	}
	return nil
}
