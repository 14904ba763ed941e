// Copyright 2022 Silvio Böhler
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package store persists the account collection in a named slot of a
// key-value backend. The whole collection is read and written at once.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/sboehler/bank/lib/account"
)

// DefaultSlot is the name of the slot holding the accounts.
const DefaultSlot = "bankAccounts"

// Backend is a key-value storage of named slots.
type Backend interface {
	// Get returns the contents of the slot, and false if it does not exist.
	Get(slot string) ([]byte, bool, error)
	// Put replaces the contents of the slot.
	Put(slot string, data []byte) error
}

// Store loads and saves the account collection from one slot.
type Store struct {
	backend Backend
	slot    string
}

// New creates a store on the given slot.
func New(b Backend, slot string) *Store {
	return &Store{backend: b, slot: slot}
}

// Slot returns the slot name.
func (s *Store) Slot() string {
	return s.slot
}

// Load reads the collection. A missing slot is an empty collection.
func (s *Store) Load() (account.Collection, error) {
	data, ok, err := s.backend.Get(s.slot)
	if err != nil {
		return nil, fmt.Errorf("reading slot %s: %w", s.slot, err)
	}
	if !ok || len(bytes.TrimSpace(data)) == 0 {
		return account.Collection{}, nil
	}
	var c account.Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decoding slot %s: %w", s.slot, err)
	}
	if c == nil {
		c = account.Collection{}
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("slot %s: %w", s.slot, err)
	}
	return c, nil
}

// Save writes the whole collection.
func (s *Store) Save(c account.Collection) error {
	if c == nil {
		c = account.Collection{}
	}
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding slot %s: %w", s.slot, err)
	}
	if err := s.backend.Put(s.slot, data); err != nil {
		return fmt.Errorf("writing slot %s: %w", s.slot, err)
	}
	return nil
}
