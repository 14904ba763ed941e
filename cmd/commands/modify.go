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
	"github.com/sboehler/bank/lib/format"
)

// CreateModifyCommand creates the command.
func CreateModifyCommand(lf *flags.Ledger) *cobra.Command {
	var r modifyRunner

	cmd := &cobra.Command{
		Use:   "modify ACNO",
		Short: "modify an account",
		Long: `Modify the name, type and balance of an account. Values which are not given
are kept. The minimum balance is not enforced, unless strict_modify is
set in the configuration.`,

		Args: cobra.ExactArgs(1),

		RunE: withSession(lf, r.execute),
	}
	r.setupFlags(cmd)
	return cmd
}

type modifyRunner struct {
	name    string
	typ     flags.TypeFlag
	deposit int64
}

func (r *modifyRunner) setupFlags(c *cobra.Command) {
	c.Flags().StringVar(&r.name, "name", "", "new holder name")
	c.Flags().Var(&r.typ, "type", "new account type")
	c.Flags().Int64Var(&r.deposit, "deposit", 0, "new balance")
}

func (r *modifyRunner) execute(cmd *cobra.Command, s *flags.Session, args []string) error {
	n, err := flags.ParseNumber(args[0])
	if err != nil {
		return err
	}
	a, err := s.Ledger.Inquire(n)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("name") {
		a.Name = r.name
	}
	if cmd.Flags().Changed("deposit") {
		a.Deposit = r.deposit
	}
	a.Type = r.typ.ValueOr(a.Type)
	if _, err := s.Ledger.Modify(n, a.Name, a.Type, a.Deposit); err != nil {
		return err
	}
	return s.Banner.Success(format.Updated)
}
