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

package store

import (
	"errors"

	badger "github.com/dgraph-io/badger/v3"
)

// Badger is a backend which stores slots in a badger database.
type Badger struct {
	bd *badger.DB
}

var _ Backend = (*Badger)(nil)

// OpenBadger opens the badger database at path.
func OpenBadger(path string) (*Badger, error) {
	b, err := badger.Open(badger.DefaultOptions(path).WithLogger(nil))
	if err != nil {
		return nil, err
	}
	return &Badger{bd: b}, nil
}

// Close closes the database.
func (db *Badger) Close() error {
	return db.bd.Close()
}

func keyFor(slot string) []byte {
	return []byte("slots/" + slot)
}

// Get implements Backend.
func (db *Badger) Get(slot string) ([]byte, bool, error) {
	var data []byte
	err := db.bd.View(func(txn *badger.Txn) error {
		item, err := txn.Get(keyFor(slot))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Put implements Backend. The slot is replaced in a single transaction.
func (db *Badger) Put(slot string, data []byte) error {
	return db.bd.Update(func(txn *badger.Txn) error {
		return txn.Set(keyFor(slot), data)
	})
}
