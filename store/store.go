// SPDX-License-Identifier: MIT

// Package store keeps the best known cover of every instance in BadgerDB.
// Iterated-restart runs read it for their first incumbent and the CLI writes
// back whatever beats it.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "store")

// keyPrefix namespaces solution records.
const keyPrefix = "solution/"

// ErrNotFound is returned by Get when no record exists for an instance.
var ErrNotFound = errors.New("store: no solution stored for instance")

// Config configures Open.
type Config struct {
	// Path is the database directory; ignored when InMemory.
	Path string `yaml:"path"`

	// InMemory keeps everything in RAM (tests, dry runs).
	InMemory bool `yaml:"in_memory"`

	// SyncWrites fsyncs every commit.
	SyncWrites bool `yaml:"sync_writes"`
}

// Record is the stored best cover of one instance.
type Record struct {
	Instance      string    `json:"instance"`
	Solution      []int     `json:"solution"`
	Cost          int       `json:"cost"`
	NumSamples    int       `json:"num_samples"`
	NumCandidates int       `json:"num_candidates"`
	RunID         string    `json:"run_id,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Store wraps an open Badger database.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the database described by cfg.
func Open(cfg Config) (*Store, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("store: path is required for a persistent database")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("create store directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).
		WithNumVersionsToKeep(1).
		WithLogger(log)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

// Get returns the stored record of instance.
//
// Errors: ErrNotFound, decode and I/O errors.
func (s *Store) Get(instance string) (Record, error) {
	var rec Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + instance))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%s: %w", instance, ErrNotFound)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})

	return rec, err
}

// Put stores rec unless an equal-or-cheaper record for the same instance
// already exists. It reports whether rec was written.
func (s *Store) Put(rec Record) (bool, error) {
	if rec.Instance == "" {
		return false, errors.New("store: record has no instance name")
	}
	rec.Cost = len(rec.Solution)
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = time.Now().UTC()
	}

	stored := false
	err := s.db.Update(func(txn *badger.Txn) error {
		key := []byte(keyPrefix + rec.Instance)
		item, err := txn.Get(key)
		switch {
		case errors.Is(err, badger.ErrKeyNotFound):
		case err != nil:
			return err
		default:
			var prev Record
			if err := item.Value(func(val []byte) error { return json.Unmarshal(val, &prev) }); err != nil {
				return err
			}
			if prev.Cost <= rec.Cost {
				return nil
			}
		}

		val, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		stored = true
		return txn.Set(key, val)
	})
	if err != nil {
		return false, fmt.Errorf("store %s: %w", rec.Instance, err)
	}
	if stored {
		log.WithFields(logrus.Fields{"instance": rec.Instance, "cost": rec.Cost}).Info("New best solution stored")
	}

	return stored, nil
}

// List returns every stored record in key order.
func (s *Store) List() ([]Record, error) {
	var out []Record
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(keyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var rec Record
			if err := it.Item().Value(func(val []byte) error { return json.Unmarshal(val, &rec) }); err != nil {
				return err
			}
			out = append(out, rec)
		}
		return nil
	})

	return out, err
}
