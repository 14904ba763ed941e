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
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"go.uber.org/multierr"
	"golang.org/x/exp/slices"
)

// Memory is a backend which keeps slots in memory.
type Memory struct {
	slots map[string][]byte
}

var _ Backend = (*Memory)(nil)

// NewMemory creates an empty memory backend.
func NewMemory() *Memory {
	return &Memory{slots: make(map[string][]byte)}
}

// Get implements Backend.
func (m *Memory) Get(slot string) ([]byte, bool, error) {
	data, ok := m.slots[slot]
	return slices.Clone(data), ok, nil
}

// Put implements Backend.
func (m *Memory) Put(slot string, data []byte) error {
	m.slots[slot] = slices.Clone(data)
	return nil
}

// Dir is a backend which stores every slot as a file in a directory.
type Dir struct {
	path string
}

var _ Backend = (*Dir)(nil)

// NewDir creates a directory backend. The directory is created when the
// first slot is written.
func NewDir(path string) *Dir {
	return &Dir{path: path}
}

func (d *Dir) file(slot string) string {
	return filepath.Join(d.path, slot+".json")
}

// Get implements Backend.
func (d *Dir) Get(slot string) (data []byte, ok bool, err error) {
	f, err := os.Open(d.file(slot))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()
	if data, err = io.ReadAll(f); err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Put implements Backend. The file is replaced atomically.
func (d *Dir) Put(slot string, data []byte) error {
	if err := os.MkdirAll(d.path, 0o755); err != nil {
		return err
	}
	return atomic.WriteFile(d.file(slot), bytes.NewReader(data))
}
