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

// Package commands contains the subcommands of the bank command.
package commands

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/sboehler/bank/cmd/flags"
)

// ReportedError is an error which has already been shown to the user.
type ReportedError struct {
	error
}

func (e ReportedError) Unwrap() error {
	return e.error
}

// action is the body of a command.
type action func(cmd *cobra.Command, s *flags.Session, args []string) error

// withSession opens the ledger for f and reports the error returned by f
// on the session's banner.
func withSession(lf *flags.Ledger, f action) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		s, err := lf.Open(cmd)
		if err != nil {
			return err
		}
		defer func() {
			err = multierr.Append(err, s.Close())
		}()
		if err := f(cmd, s, args); err != nil {
			var rerr ReportedError
			if errors.As(err, &rerr) {
				return err
			}
			if berr := s.Banner.Error(err); berr != nil {
				return berr
			}
			return ReportedError{err}
		}
		return nil
	}
}
