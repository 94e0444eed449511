// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package transcript

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// BadgerConfig configures the embedded turn store.
type BadgerConfig struct {
	// Path is the directory for the database files. Ignored when
	// InMemory is set.
	Path string

	// InMemory disables disk persistence. Used by tests.
	InMemory bool

	// SyncWrites enables synchronous writes for durability.
	SyncWrites bool
}

// BadgerStore keeps per-session turn snapshots in an embedded
// BadgerDB, for server deployments that host many sessions.
//
// Keys: "seq/<session>" holds the next turn number, "turn/<session>/"
// prefixes the ordered snapshots.
//
// # Thread Safety
//
// Safe for concurrent use across sessions; Badger serializes
// transactions internally.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadger opens (or creates) the store.
func OpenBadger(cfg BadgerConfig) (*BadgerStore, error) {
	opts := badger.DefaultOptions(cfg.Path).
		WithInMemory(cfg.InMemory).
		WithSyncWrites(cfg.SyncWrites).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger store: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

// Append records one turn for a session.
func (s *BadgerStore) Append(sessionID string, turn Turn) error {
	data, err := json.Marshal(turn)
	if err != nil {
		return fmt.Errorf("encode turn: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		seqKey := []byte("seq/" + sessionID)
		seq := uint64(0)
		item, err := txn.Get(seqKey)
		if err == nil {
			if err := item.Value(func(val []byte) error {
				if len(val) == 8 {
					for _, b := range val {
						seq = seq<<8 | uint64(b)
					}
				}
				return nil
			}); err != nil {
				return err
			}
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		turnKey := fmt.Appendf(nil, "turn/%s/%012d", sessionID, seq)
		if err := txn.Set(turnKey, data); err != nil {
			return err
		}

		next := make([]byte, 8)
		seq++
		for i := 7; i >= 0; i-- {
			next[i] = byte(seq)
			seq >>= 8
		}
		return txn.Set(seqKey, next)
	})
}

// Turns returns a session's snapshots in turn order.
func (s *BadgerStore) Turns(sessionID string) ([]Turn, error) {
	var turns []Turn
	prefix := []byte("turn/" + sessionID + "/")

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var turn Turn
				if err := json.Unmarshal(val, &turn); err != nil {
					return fmt.Errorf("decode turn %s: %w", it.Item().Key(), err)
				}
				turns = append(turns, turn)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return turns, nil
}

// Close releases the database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
