// Copyright 2020 Silvio Böhler
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

// Package cmd is the main command file for Cobra
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sboehler/bank/cmd/commands"
	"github.com/sboehler/bank/cmd/flags"
)

// CreateCmd creates the root command with all subcommands.
func CreateCmd() *cobra.Command {
	var lf flags.Ledger

	c := &cobra.Command{
		Use:   "bank",
		Short: "bank is a file-backed bank account ledger",
		Long: `bank keeps savings and current accounts in a single JSON file and lets you
open, inquire, modify and close accounts, and deposit to and withdraw from them.`,

		SilenceErrors: true,
		SilenceUsage:  true,
	}
	lf.Setup(c)
	c.AddCommand(
		commands.CreateNewCommand(&lf),
		commands.CreateDepositCommand(&lf),
		commands.CreateWithdrawCommand(&lf),
		commands.CreateBalanceCommand(&lf),
		commands.CreateListCommand(&lf),
		commands.CreateCloseCommand(&lf),
		commands.CreateModifyCommand(&lf),
		commands.CreateCheckCommand(&lf),
	)
	return c
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	c := CreateCmd()
	if err := c.Execute(); err != nil {
		var rerr commands.ReportedError
		if !errors.As(err, &rerr) {
			fmt.Fprintln(c.ErrOrStderr(), err)
		}
		os.Exit(1)
	}
}
