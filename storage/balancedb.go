// Copyright (C) 2024-2026 the linera-protocol authors.
// This file is part of linera-protocol
//
// linera-protocol is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// linera-protocol is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with linera-protocol.  If not, see <https://www.gnu.org/licenses/>.

// Package storage persists per-owner account balances in a pebble
// key-value store.
package storage

import (
	"context"
	"errors"

	"github.com/algorand/go-deadlock"
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"

	"github.com/sasim081/linera-protocol/data/basics"
	"github.com/sasim081/linera-protocol/logging"
	"github.com/sasim081/linera-protocol/protocol"
)

// ownerBalancePrefix namespaces owner-balance keys within the store.
var ownerBalancePrefix = []byte("ob-")

// BalanceDB is a pebble-backed implementation of execution.BalanceStore.
type BalanceDB struct {
	mu  deadlock.Mutex
	db  *pebble.DB
	wo  *pebble.WriteOptions
	log logging.Logger
}

// Open opens (or creates) a balance database in dbdir.
func Open(dbdir string) (*BalanceDB, error) {
	return open(dbdir, &pebble.Options{})
}

// OpenMem opens a balance database backed by an in-memory filesystem.
func OpenMem() (*BalanceDB, error) {
	return open("", &pebble.Options{FS: vfs.NewMem()})
}

func open(dbdir string, opts *pebble.Options) (*BalanceDB, error) {
	db, err := pebble.Open(dbdir, opts)
	if err != nil {
		return nil, err
	}
	return &BalanceDB{
		db:  db,
		wo:  &pebble.WriteOptions{Sync: true},
		log: logging.Base(),
	}, nil
}

// Close closes the database.
func (s *BalanceDB) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// ownerKey derives the storage key of an owner's balance entry. The
// encoding is positional (kind tag then address bytes), so it is stable
// across runs.
func ownerKey(owner basics.AccountOwner) []byte {
	key := make([]byte, 0, len(ownerBalancePrefix)+1+len(owner.Addr))
	key = append(key, ownerBalancePrefix...)
	key = append(key, byte(owner.Kind))
	key = append(key, owner.Addr[:]...)
	return key
}

// OwnerBalance returns the stored balance of owner, and whether the owner
// has an entry at all.
func (s *BalanceDB) OwnerBalance(ctx context.Context, owner basics.AccountOwner) (basics.Amount, bool, error) {
	if err := ctx.Err(); err != nil {
		return basics.Amount{}, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	value, closer, err := s.db.Get(ownerKey(owner))
	if errors.Is(err, pebble.ErrNotFound) {
		return basics.Amount{}, false, nil
	}
	if err != nil {
		return basics.Amount{}, false, err
	}
	defer closer.Close()

	var balance basics.Amount
	if err := protocol.DecodeReflect(value, &balance); err != nil {
		s.log.With("owner", owner.String()).Errorf("corrupt balance entry: %v", err)
		return basics.Amount{}, false, err
	}
	return balance, true, nil
}

// SetOwnerBalance stores the balance of owner.
func (s *BalanceDB) SetOwnerBalance(ctx context.Context, owner basics.AccountOwner, balance basics.Amount) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Set(ownerKey(owner), protocol.EncodeReflect(balance), s.wo)
}
