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
	"github.com/spf13/cobra"

	"github.com/sboehler/bank/cmd/flags"
	"github.com/sboehler/bank/lib/account"
	"github.com/sboehler/bank/lib/format"
)

// CreateNewCommand creates the command.
func CreateNewCommand(lf *flags.Ledger) *cobra.Command {
	var r newRunner

	cmd := &cobra.Command{
		Use:   "new ACNO NAME TYPE DEPOSIT",
		Short: "open a new account",
		Long: `Open a new account. TYPE is S (savings) or C (current). The opening
deposit must be at least 500 for savings and 1000 for current accounts.`,

		Args: cobra.ExactArgs(4),

		RunE: withSession(lf, r.execute),
	}
	return cmd
}

type newRunner struct{}

func (r *newRunner) execute(cmd *cobra.Command, s *flags.Session, args []string) error {
	n, err := flags.ParseNumber(args[0])
	if err != nil {
		return err
	}
	t, err := account.ParseType(args[2])
	if err != nil {
		return err
	}
	deposit, err := flags.ParseAmount(args[3])
	if err != nil {
		return err
	}
	if _, err := s.Ledger.Create(n, args[1], t, deposit); err != nil {
		return err
	}
	return s.Banner.Success(format.Created)
}
