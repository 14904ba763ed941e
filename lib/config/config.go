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

// Package config reads the bank's configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"

	"github.com/sboehler/bank/lib/store"
)

// Config is the bank's configuration.
type Config struct {
	// Backend is the kind of storage, "dir" or "badger".
	Backend string `yaml:"backend"`
	// Data is the directory holding the storage slots.
	Data string `yaml:"data"`
	// Slot is the name of the slot holding the accounts.
	Slot string `yaml:"slot"`
	// Locale determines how numbers are grouped.
	Locale string `yaml:"locale"`
	// Currency is the glyph printed before amounts.
	Currency string `yaml:"currency"`
	// Color enables colored output.
	Color bool `yaml:"color"`
	// StrictModify enforces the minimum balance when modifying accounts.
	StrictModify bool `yaml:"strict_modify"`
}

// Storage backends.
const (
	Dir    = "dir"
	Badger = "badger"
)

// Default returns the default configuration.
func Default() Config {
	data := ".bank"
	if home, err := os.UserHomeDir(); err == nil {
		data = filepath.Join(home, ".bank")
	}
	return Config{
		Backend:  Dir,
		Data:     data,
		Slot:     store.DefaultSlot,
		Locale:   "en-IN",
		Currency: "₹",
		Color:    true,
	}
}

// Load reads the configuration at path on top of the defaults. An empty
// path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()
	if cfg, err = Decode(f); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode decodes a configuration on top of the defaults.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.SetStrict(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate checks the configuration.
func (c Config) Validate() error {
	var err error
	if c.Backend != Dir && c.Backend != Badger {
		err = multierr.Append(err, fmt.Errorf("invalid backend %q, expected %s or %s", c.Backend, Dir, Badger))
	}
	if strings.TrimSpace(c.Slot) == "" {
		err = multierr.Append(err, errors.New("slot must not be empty"))
	}
	if strings.ContainsAny(c.Slot, `/\`) {
		err = multierr.Append(err, fmt.Errorf("invalid slot name %q", c.Slot))
	}
	if strings.TrimSpace(c.Data) == "" {
		err = multierr.Append(err, errors.New("data directory must not be empty"))
	}
	if _, lerr := language.Parse(c.Locale); lerr != nil {
		err = multierr.Append(err, fmt.Errorf("invalid locale %q: %w", c.Locale, lerr))
	}
	return err
}

// Tag returns the language tag of the configured locale.
func (c Config) Tag() language.Tag {
	t, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}
	return t
}
