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

// Package cmdtest runs commands in tests.
package cmdtest

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// Result is the outcome of running a command.
type Result struct {
	Out, Err []byte
	Error    error
}

// Exec runs the command with the given arguments and input.
func Exec(t *testing.T, cmd *cobra.Command, in io.Reader, args ...string) Result {
	t.Helper()
	var out, errOut bytes.Buffer
	if in == nil {
		in = strings.NewReader("")
	}
	cmd.SetIn(in)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return Result{Out: out.Bytes(), Err: errOut.Bytes(), Error: err}
}

// Run runs the command and returns its output. The test fails if the
// command fails.
func Run(t *testing.T, cmd *cobra.Command, args ...string) []byte {
	t.Helper()
	res := Exec(t, cmd, nil, args...)
	if res.Error != nil {
		t.Fatalf("%s %s: unexpected error: %v\n%s", cmd.Name(), strings.Join(args, " "), res.Error, res.Err)
	}
	return res.Out
}
