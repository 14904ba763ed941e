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

package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/sboehler/bank/cmd/flags"
	"github.com/sboehler/bank/lib/account"
	"github.com/sboehler/bank/lib/format"
)

// CreateBalanceCommand creates the command.
func CreateBalanceCommand(lf *flags.Ledger) *cobra.Command {
	return &cobra.Command{
		Use:   "balance ACNO",
		Short: "show the details of an account",

		Args: cobra.ExactArgs(1),

		RunE: withSession(lf, balance),
	}
}

func balance(cmd *cobra.Command, s *flags.Session, args []string) error {
	n, err := flags.ParseNumber(args[0])
	if err != nil {
		return err
	}
	a, err := s.Ledger.Inquire(n)
	var nf *account.NotFoundError
	if errors.As(err, &nf) {
		if err := s.Banner.Fail(format.DoesNotExist); err != nil {
			return err
		}
		return ReportedError{err}
	}
	if err != nil {
		return err
	}
	return s.Printer.Details(cmd.OutOrStdout(), a)
}
