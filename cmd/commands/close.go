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
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sboehler/bank/cmd/flags"
	"github.com/sboehler/bank/lib/format"
)

// CreateCloseCommand creates the command.
func CreateCloseCommand(lf *flags.Ledger) *cobra.Command {
	var r closeRunner

	cmd := &cobra.Command{
		Use:     "close ACNO",
		Aliases: []string{"delete"},
		Short:   "close an account",
		Long:    `Close an account and remove it from the ledger. Asks for confirmation unless --yes is given.`,

		Args: cobra.ExactArgs(1),

		RunE: withSession(lf, r.execute),
	}
	r.setupFlags(cmd)
	return cmd
}

type closeRunner struct {
	yes bool
}

func (r *closeRunner) setupFlags(c *cobra.Command) {
	c.Flags().BoolVarP(&r.yes, "yes", "y", false, "do not ask for confirmation")
}

func (r *closeRunner) execute(cmd *cobra.Command, s *flags.Session, args []string) error {
	n, err := flags.ParseNumber(args[0])
	if err != nil {
		return err
	}
	if !r.yes {
		ok, err := confirm(cmd, fmt.Sprintf("Are you sure you want to delete account no. %d?", n))
		if err != nil || !ok {
			return err
		}
	}
	if _, err := s.Ledger.Delete(n); err != nil {
		return err
	}
	return s.Banner.Success(format.Deleted)
}

func confirm(cmd *cobra.Command, question string) (bool, error) {
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", question); err != nil {
		return false, err
	}
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		// no input counts as no
		fmt.Fprintln(cmd.OutOrStdout())
		return false, nil
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
