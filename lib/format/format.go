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

// Package format renders amounts, accounts and ledger outcomes for humans.
package format

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/sboehler/bank/lib/account"
)

// Printer formats amounts for a locale and currency.
type Printer struct {
	currency string
	p        *message.Printer
}

// NewPrinter creates a printer.
func NewPrinter(tag language.Tag, currency string) *Printer {
	return &Printer{
		currency: currency,
		p:        message.NewPrinter(tag),
	}
}

// Number formats n with the locale's digit grouping.
func (p *Printer) Number(n int64) string {
	return p.p.Sprint(number.Decimal(n))
}

// Amount formats n as money, with the currency glyph in front.
func (p *Printer) Amount(n int64) string {
	if n < 0 {
		return "-" + p.currency + p.Number(-n)
	}
	return p.currency + p.Number(n)
}

// Details writes the details of an account.
func (p *Printer) Details(w io.Writer, a account.Account) error {
	_, err := fmt.Fprintf(w, "Balance Details\nAccount No:   %d\nHolder Name:  %s\nAccount Type: %s\nBalance:      %s\n",
		a.Number, a.Name, a.Type, p.Amount(a.Deposit))
	return err
}

// Success messages.
const (
	Created      = "Account Created Successfully!"
	Updated      = "Record Updated Successfully!"
	Deleted      = "Record Deleted Successfully!"
	NoAccounts   = "No accounts found. Create one!"
	DoesNotExist = "Account number does not exist."
)

// Balance returns the message shown after a transaction.
func (p *Printer) Balance(n int64) string {
	return "Record Updated! New Balance: " + p.Amount(n)
}

// Message returns the message shown to the user for an error.
func Message(err error) string {
	var (
		verr *account.ValidationError
		derr *account.DuplicateAccountError
		nerr *account.NotFoundError
		ierr *account.InsufficientBalanceError
		oerr *account.OverflowError
	)
	switch {
	case errors.As(err, &verr):
		if verr.Reason != "" {
			return verr.Reason
		}
		return fmt.Sprintf("Initial deposit minimum is %d for Savings (S) and %d for Current (C).",
			account.Savings.Minimum(), account.Current.Minimum())
	case errors.As(err, &derr):
		return fmt.Sprintf("Account number %d already exists.", derr.Number)
	case errors.As(err, &nerr):
		return "Record Not Found."
	case errors.As(err, &ierr):
		return "Insufficient Balance for this withdrawal."
	case errors.As(err, &oerr):
		return "Deposit exceeds the maximum balance."
	}
	return err.Error()
}
