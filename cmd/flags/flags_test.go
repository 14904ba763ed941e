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

package flags

import (
	"testing"

	"github.com/spf13/pflag"

	"github.com/sboehler/bank/lib/account"
)

func TestTypeFlag(t *testing.T) {
	var (
		tf TypeFlag
		fs = pflag.NewFlagSet("test", pflag.ContinueOnError)
	)
	fs.Var(&tf, "type", "account type")

	if got := tf.ValueOr(account.Current); got != account.Current {
		t.Errorf("ValueOr() = %v, want default %v", got, account.Current)
	}
	if err := fs.Parse([]string{"--type", "s"}); err != nil {
		t.Fatalf("Parse() returned unexpected error: %v", err)
	}
	if got := tf.ValueOr(account.Current); got != account.Savings {
		t.Errorf("ValueOr() = %v, want %v", got, account.Savings)
	}
	if got := tf.String(); got != "S" {
		t.Errorf("String() = %q, want S", got)
	}
	if err := tf.Set("x"); err == nil {
		t.Errorf("Set(x) succeeded, want error")
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  int64
		err   bool
	}{
		{input: "0", want: 0},
		{input: " 600 ", want: 600},
		{input: "-1", err: true},
		{input: "1.5", err: true},
		{input: "", err: true},
	}
	for _, test := range tests {
		got, err := ParseAmount(test.input)
		if test.err {
			if err == nil {
				t.Errorf("ParseAmount(%q) succeeded, want error", test.input)
			}
			continue
		}
		if err != nil || got != test.want {
			t.Errorf("ParseAmount(%q) = %d, %v, want %d, nil", test.input, got, err, test.want)
		}
	}
}

func TestParseNumber(t *testing.T) {
	if got, err := ParseNumber("101"); err != nil || got != 101 {
		t.Errorf("ParseNumber(101) = %d, %v, want 101, nil", got, err)
	}
	if _, err := ParseNumber("abc"); err == nil {
		t.Errorf("ParseNumber(abc) succeeded, want error")
	}
}
