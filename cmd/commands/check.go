// Copyright 2021 Silvio Böhler
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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sboehler/bank/cmd/flags"
)

// CreateCheckCommand creates the command.
func CreateCheckCommand(lf *flags.Ledger) *cobra.Command {
	var r checkRunner

	c := &cobra.Command{
		Use:   "check",
		Short: "check the accounts",
		Long: `Check that the stored accounts can be read and report accounts holding less
than the minimum balance of their type. Such accounts can only result from
modifications.`,
		Args: cobra.NoArgs,
		RunE: withSession(lf, r.execute),
	}
	r.setupFlags(c)
	return c
}

type checkRunner struct {
	strict bool
}

func (r *checkRunner) setupFlags(c *cobra.Command) {
	c.Flags().BoolVar(&r.strict, "strict", false, "fail if an account is below its minimum balance")
}

func (r *checkRunner) execute(cmd *cobra.Command, s *flags.Session, args []string) error {
	accounts, err := s.Ledger.List()
	if err != nil {
		return err
	}
	var below int
	for _, a := range accounts {
		if err := a.Check(); err != nil {
			below++
			if ferr := s.Banner.Fail(fmt.Sprintf("Account %d (%s) holds %s, below the minimum of %s.",
				a.Number, a.Type.Title(), s.Printer.Amount(a.Deposit), s.Printer.Amount(a.Type.Minimum()))); ferr != nil {
				return ferr
			}
		}
	}
	if below > 0 && r.strict {
		return ReportedError{fmt.Errorf("%d account(s) below minimum balance", below)}
	}
	return s.Banner.Successf("%d account(s) checked.", len(accounts))
}
