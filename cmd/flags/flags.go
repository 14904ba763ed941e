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

package flags

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/sboehler/bank/lib/account"
)

// TypeFlag manages a flag to parse an account type.
type TypeFlag struct {
	set bool
	val account.Type
}

var _ pflag.Value = (*TypeFlag)(nil)

func (tf TypeFlag) String() string {
	if !tf.set {
		return ""
	}
	return tf.val.String()
}

// Set implements pflag.Value.
func (tf *TypeFlag) Set(v string) error {
	t, err := account.ParseType(v)
	if err != nil {
		return err
	}
	tf.val, tf.set = t, true
	return nil
}

// Type implements pflag.Value.
func (tf TypeFlag) Type() string {
	return "S|C"
}

// ValueOr returns the flag value, or def if the flag has not been set.
func (tf TypeFlag) ValueOr(def account.Type) account.Type {
	if !tf.set {
		return def
	}
	return tf.val
}

// ParseNumber parses an account number.
func ParseNumber(s string) (account.Number, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid account number %q", s)
	}
	return account.Number(n), nil
}

// ParseAmount parses a non-negative amount.
func ParseAmount(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("amount must not be negative, got %d", n)
	}
	return n, nil
}
