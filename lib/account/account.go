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

// Package account defines bank accounts and the rules they obey at rest.
package account

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"golang.org/x/exp/slices"
)

// Number identifies an account. It is supplied by the caller and never
// changes once the account exists.
type Number int

// Type is the type of an account.
type Type int

const (
	// Savings accounts must hold at least 500 units.
	Savings Type = iota + 1
	// Current accounts must hold at least 1000 units.
	Current
)

// ParseType parses a type code. Codes are case-insensitive.
func ParseType(s string) (Type, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "S":
		return Savings, nil
	case "C":
		return Current, nil
	}
	return 0, &ValidationError{Reason: fmt.Sprintf("invalid account type %q, expected S or C", s)}
}

// Minimum returns the minimum balance an account of this type must hold.
func (t Type) Minimum() int64 {
	switch t {
	case Savings:
		return 500
	case Current:
		return 1000
	}
	return 0
}

// String returns the one-letter code.
func (t Type) String() string {
	switch t {
	case Savings:
		return "S"
	case Current:
		return "C"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Title returns the human-readable name.
func (t Type) Title() string {
	switch t {
	case Savings:
		return "Savings"
	case Current:
		return "Current"
	}
	return t.String()
}

// Valid reports whether t is a known type.
func (t Type) Valid() bool {
	return t == Savings || t == Current
}

// MarshalJSON implements json.Marshaler.
func (t Type) MarshalJSON() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("cannot encode invalid account type %d", int(t))
	}
	return json.Marshal(t.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Type) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseType(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Account is a bank account.
type Account struct {
	Number  Number `json:"acno"`
	Name    string `json:"name"`
	Type    Type   `json:"type"`
	Deposit int64  `json:"deposit"`
}

// Check verifies that the account holds at least the minimum balance
// for its type.
func (a Account) Check() error {
	if a.Deposit < a.Type.Minimum() {
		return &ValidationError{
			Type:    a.Type,
			Deposit: a.Deposit,
			Minimum: a.Type.Minimum(),
		}
	}
	return nil
}

// Validate checks the shape of the account: a known type and a name.
func (a Account) Validate() error {
	if !a.Type.Valid() {
		return &ValidationError{Reason: fmt.Sprintf("account %d: invalid type %d", a.Number, int(a.Type))}
	}
	if strings.TrimSpace(a.Name) == "" {
		return &ValidationError{Reason: fmt.Sprintf("account %d: name must not be empty", a.Number)}
	}
	return nil
}

// Collection is the ordered list of all accounts. It is the unit of
// persistence.
type Collection []Account

// Index returns the position of the account with the given number, or -1.
func (c Collection) Index(n Number) int {
	return slices.IndexFunc(c, func(a Account) bool {
		return a.Number == n
	})
}

// Validate reports all duplicate account numbers and malformed accounts.
func (c Collection) Validate() error {
	var (
		errs error
		seen = make(map[Number]bool, len(c))
	)
	for _, a := range c {
		if seen[a.Number] {
			errs = multierr.Append(errs, &DuplicateAccountError{Number: a.Number})
		}
		seen[a.Number] = true
		errs = multierr.Append(errs, a.Validate())
	}
	return errs
}
