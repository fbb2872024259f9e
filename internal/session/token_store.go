// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/Shashivarun2464480/Project-fe/internal/config"
)

// TokenStore persists the signed-in session across restarts.
type TokenStore interface {
	// Load returns nil, nil when nothing is stored.
	Load(ctx context.Context) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Clear(ctx context.Context) error
	Close() error
}

// MemoryTokenStore keeps the session for the life of the process.
type MemoryTokenStore struct {
	mu      sync.RWMutex
	session *Session
}

// NewMemoryTokenStore returns an empty in-memory store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

// Load implements TokenStore.
func (m *MemoryTokenStore) Load(_ context.Context) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session == nil {
		return nil, nil
	}
	cp := *m.session
	return &cp, nil
}

// Save implements TokenStore.
func (m *MemoryTokenStore) Save(_ context.Context, s *Session) error {
	cp := *s
	m.mu.Lock()
	m.session = &cp
	m.mu.Unlock()
	return nil
}

// Clear implements TokenStore.
func (m *MemoryTokenStore) Clear(_ context.Context) error {
	m.mu.Lock()
	m.session = nil
	m.mu.Unlock()
	return nil
}

// Close implements TokenStore.
func (m *MemoryTokenStore) Close() error { return nil }

var sessionKey = []byte("session:current")

// BadgerTokenStore persists the session in a BadgerDB directory.
type BadgerTokenStore struct {
	db     *badger.DB
	ownsDB bool
}

// NewBadgerTokenStore wraps an open database. The caller keeps ownership.
func NewBadgerTokenStore(db *badger.DB) *BadgerTokenStore {
	return &BadgerTokenStore{db: db}
}

// OpenBadgerTokenStore opens (or creates) a database at path. An empty path
// opens an in-memory database.
func OpenBadgerTokenStore(path string) (*BadgerTokenStore, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	return &BadgerTokenStore{db: db, ownsDB: true}, nil
}

// Load implements TokenStore.
func (b *BadgerTokenStore) Load(_ context.Context) (*Session, error) {
	var s Session
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sessionKey)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &s)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return &s, nil
}

// Save implements TokenStore.
func (b *BadgerTokenStore) Save(_ context.Context, s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return b.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(sessionKey, data); err != nil {
			return fmt.Errorf("set session: %w", err)
		}
		return nil
	})
}

// Clear implements TokenStore.
func (b *BadgerTokenStore) Clear(_ context.Context) error {
	return b.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(sessionKey); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("delete session: %w", err)
		}
		return nil
	})
}

// Close closes the database when this store opened it.
func (b *BadgerTokenStore) Close() error {
	if !b.ownsDB {
		return nil
	}
	return b.db.Close()
}

// NewTokenStore builds the store selected by cfg.
func NewTokenStore(cfg config.SessionConfig) (TokenStore, error) {
	switch cfg.Store {
	case config.SessionStoreBadger:
		st, err := OpenBadgerTokenStore(cfg.Path)
		if err != nil {
			return nil, err
		}
		return st, nil
	case config.SessionStoreMemory, "":
		return NewMemoryTokenStore(), nil
	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.Store)
	}
}
