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

// Package ledger implements the operations on the bank's accounts. Every
// operation loads the whole collection, applies one change and saves the
// whole collection back. A failed operation saves nothing.
package ledger

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"

	"github.com/sboehler/bank/lib/account"
)

// Store loads and saves the account collection.
type Store interface {
	Load() (account.Collection, error)
	Save(account.Collection) error
}

// Options configures a ledger.
type Options struct {
	// StrictModify makes Modify enforce the minimum balance of the new
	// type. By default Modify accepts any balance.
	StrictModify bool
}

// Ledger owns the collection of accounts.
type Ledger struct {
	store   Store
	options Options
}

// New creates a ledger on the given store.
func New(s Store, opts Options) *Ledger {
	return &Ledger{store: s, options: opts}
}

// Kind is the kind of a transaction.
type Kind int

const (
	// Deposit adds to the balance.
	Deposit Kind = iota
	// Withdraw subtracts from the balance.
	Withdraw
)

func (k Kind) String() string {
	switch k {
	case Deposit:
		return "deposit"
	case Withdraw:
		return "withdraw"
	}
	return "unknown"
}

// update loads the collection, applies f and saves the result if f
// succeeds.
func (l *Ledger) update(f func(account.Collection) (account.Collection, error)) error {
	c, err := l.store.Load()
	if err != nil {
		return err
	}
	if c, err = f(c); err != nil {
		return err
	}
	return l.store.Save(c)
}

// Create opens a new account.
func (l *Ledger) Create(n account.Number, name string, t account.Type, deposit int64) (account.Account, error) {
	a := account.Account{Number: n, Name: name, Type: t, Deposit: deposit}
	if err := a.Validate(); err != nil {
		return account.Account{}, err
	}
	if err := a.Check(); err != nil {
		return account.Account{}, err
	}
	err := l.update(func(c account.Collection) (account.Collection, error) {
		if c.Index(n) >= 0 {
			return nil, &account.DuplicateAccountError{Number: n}
		}
		return append(c, a), nil
	})
	if err != nil {
		return account.Account{}, err
	}
	return a, nil
}

// Transact deposits to or withdraws from an account and returns the new
// balance. A withdrawal must not leave the account below its minimum and
// a deposit must not overflow the balance.
func (l *Ledger) Transact(n account.Number, amount int64, k Kind) (int64, error) {
	var balance int64
	err := l.update(func(c account.Collection) (account.Collection, error) {
		i := c.Index(n)
		if i < 0 {
			return nil, &account.NotFoundError{Number: n}
		}
		a := &c[i]
		switch k {
		case Deposit:
			if a.Deposit > 0 && amount > math.MaxInt64-a.Deposit {
				return nil, &account.OverflowError{
					Number:  n,
					Balance: a.Deposit,
					Amount:  amount,
				}
			}
			a.Deposit += amount
		case Withdraw:
			future := a.Deposit - amount
			if future < a.Type.Minimum() {
				return nil, &account.InsufficientBalanceError{
					Number:  n,
					Balance: a.Deposit,
					Amount:  amount,
					Minimum: a.Type.Minimum(),
				}
			}
			a.Deposit = future
		default:
			return nil, fmt.Errorf("unknown transaction kind %d", k)
		}
		balance = a.Deposit
		return c, nil
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// Deposit adds amount to the account.
func (l *Ledger) Deposit(n account.Number, amount int64) (int64, error) {
	return l.Transact(n, amount, Deposit)
}

// Withdraw subtracts amount from the account.
func (l *Ledger) Withdraw(n account.Number, amount int64) (int64, error) {
	return l.Transact(n, amount, Withdraw)
}

// Inquire returns the account with the given number.
func (l *Ledger) Inquire(n account.Number) (account.Account, error) {
	c, err := l.store.Load()
	if err != nil {
		return account.Account{}, err
	}
	i := c.Index(n)
	if i < 0 {
		return account.Account{}, &account.NotFoundError{Number: n}
	}
	return c[i], nil
}

// Modify replaces name, type and balance of an account. The account
// number is the key and never changes.
func (l *Ledger) Modify(n account.Number, name string, t account.Type, deposit int64) (account.Account, error) {
	a := account.Account{Number: n, Name: name, Type: t, Deposit: deposit}
	if err := a.Validate(); err != nil {
		return account.Account{}, err
	}
	if l.options.StrictModify {
		if err := a.Check(); err != nil {
			return account.Account{}, err
		}
	}
	err := l.update(func(c account.Collection) (account.Collection, error) {
		i := c.Index(n)
		if i < 0 {
			return nil, &account.NotFoundError{Number: n}
		}
		c[i] = a
		return c, nil
	})
	if err != nil {
		return account.Account{}, err
	}
	return a, nil
}

// Delete removes an account and returns it.
func (l *Ledger) Delete(n account.Number) (account.Account, error) {
	var removed account.Account
	err := l.update(func(c account.Collection) (account.Collection, error) {
		i := c.Index(n)
		if i < 0 {
			return nil, &account.NotFoundError{Number: n}
		}
		removed = c[i]
		return slices.Delete(c, i, i+1), nil
	})
	if err != nil {
		return account.Account{}, err
	}
	return removed, nil
}

// List returns all accounts in collection order.
func (l *Ledger) List() ([]account.Account, error) {
	c, err := l.store.Load()
	if err != nil {
		return nil, err
	}
	if c == nil {
		return []account.Account{}, nil
	}
	return c, nil
}
