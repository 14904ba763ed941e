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
	"bufio"

	"github.com/spf13/cobra"

	"github.com/sboehler/bank/cmd/flags"
	"github.com/sboehler/bank/lib/common/table"
	"github.com/sboehler/bank/lib/format"
)

// CreateListCommand creates the command.
func CreateListCommand(lf *flags.Ledger) *cobra.Command {
	var r listRunner

	cmd := &cobra.Command{
		Use:   "list",
		Short: "list all account holders",

		Args: cobra.NoArgs,

		RunE: withSession(lf, r.execute),
	}
	r.setupFlags(cmd)
	return cmd
}

type listRunner struct {
	csv bool
}

func (r *listRunner) setupFlags(c *cobra.Command) {
	c.Flags().BoolVar(&r.csv, "csv", false, "render the list as CSV")
}

func (r *listRunner) execute(cmd *cobra.Command, s *flags.Session, args []string) (err error) {
	accounts, err := s.Ledger.List()
	if err != nil {
		return err
	}
	if len(accounts) == 0 && !r.csv {
		return s.Banner.Success(format.NoAccounts)
	}
	var (
		tbl = format.AccountsTable(accounts)
		out = bufio.NewWriter(cmd.OutOrStdout())
	)
	defer func() {
		if ferr := out.Flush(); err == nil {
			err = ferr
		}
	}()
	if r.csv {
		var renderer table.CSVRenderer
		return renderer.Render(tbl, out)
	}
	renderer := table.TextRenderer{
		Color:  s.Color,
		Format: s.Printer.Amount,
	}
	return renderer.Render(tbl, out)
}
