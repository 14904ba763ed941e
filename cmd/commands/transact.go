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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sboehler/bank/cmd/flags"
	"github.com/sboehler/bank/lib/ledger"
)

// CreateDepositCommand creates the command.
func CreateDepositCommand(lf *flags.Ledger) *cobra.Command {
	return createTransactCommand(lf, ledger.Deposit, "deposit an amount to an account")
}

// CreateWithdrawCommand creates the command.
func CreateWithdrawCommand(lf *flags.Ledger) *cobra.Command {
	return createTransactCommand(lf, ledger.Withdraw,
		"withdraw an amount from an account, keeping the minimum balance")
}

func createTransactCommand(lf *flags.Ledger, kind ledger.Kind, short string) *cobra.Command {
	r := transactRunner{kind: kind}

	return &cobra.Command{
		Use:   fmt.Sprintf("%s ACNO AMOUNT", kind),
		Short: short,

		Args: cobra.ExactArgs(2),

		RunE: withSession(lf, r.execute),
	}
}

type transactRunner struct {
	kind ledger.Kind
}

func (r *transactRunner) execute(cmd *cobra.Command, s *flags.Session, args []string) error {
	n, err := flags.ParseNumber(args[0])
	if err != nil {
		return err
	}
	amount, err := flags.ParseAmount(args[1])
	if err != nil {
		return err
	}
	balance, err := s.Ledger.Transact(n, amount, r.kind)
	if err != nil {
		return err
	}
	return s.Banner.Success(s.Printer.Balance(balance))
}
