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

package flags

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/sboehler/bank/lib/config"
	"github.com/sboehler/bank/lib/format"
	"github.com/sboehler/bank/lib/ledger"
	"github.com/sboehler/bank/lib/store"
)

// Ledger manages the flags which locate and configure the ledger.
type Ledger struct {
	config string
	data   string
	slot   string
	color  bool
}

// Setup configures the flags as persistent flags of cmd.
func (lf *Ledger) Setup(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&lf.config, "config", "", "configuration file (yaml)")
	cmd.PersistentFlags().StringVar(&lf.data, "data", "", "directory holding the account data")
	cmd.PersistentFlags().StringVar(&lf.slot, "slot", "", "name of the storage slot")
	cmd.PersistentFlags().BoolVar(&lf.color, "color", true, "print output in color")
}

// Config loads the configuration file and applies the flags on top.
func (lf *Ledger) Config(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(lf.config)
	if err != nil {
		return cfg, err
	}
	if lf.data != "" {
		cfg.Data = lf.data
	}
	if lf.slot != "" {
		cfg.Slot = lf.slot
	}
	if f := cmd.Flags().Lookup("color"); f != nil && f.Changed {
		cfg.Color = lf.color
	}
	return cfg, cfg.Validate()
}

// Session bundles what a command needs to talk to the ledger.
type Session struct {
	Ledger  *ledger.Ledger
	Printer *format.Printer
	Banner  *format.Banner
	Color   bool

	closer io.Closer
}

// Close releases the storage backend.
func (s *Session) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// Open opens the ledger.
func (lf *Ledger) Open(cmd *cobra.Command) (*Session, error) {
	cfg, err := lf.Config(cmd)
	if err != nil {
		return nil, err
	}
	var (
		backend store.Backend
		closer  io.Closer
	)
	switch cfg.Backend {
	case config.Badger:
		bd, err := store.OpenBadger(cfg.Data)
		if err != nil {
			return nil, err
		}
		backend, closer = bd, bd
	default:
		backend = store.NewDir(cfg.Data)
	}
	s := store.New(backend, cfg.Slot)
	return &Session{
		Ledger:  ledger.New(s, ledger.Options{StrictModify: cfg.StrictModify}),
		Printer: format.NewPrinter(cfg.Tag(), cfg.Currency),
		Banner:  format.NewBanner(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Color),
		Color:   cfg.Color,
		closer:  closer,
	}, nil
}
