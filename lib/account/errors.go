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

package account

import "fmt"

// ValidationError is returned when input violates an account rule, most
// notably an opening deposit below the minimum for the account type.
type ValidationError struct {
	Type    Type
	Deposit int64
	Minimum int64
	// Reason is set for errors not related to the minimum balance.
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return fmt.Sprintf("deposit %d is below the minimum of %d for account type %s", e.Deposit, e.Minimum, e.Type)
}

// DuplicateAccountError is returned when an account number is already taken.
type DuplicateAccountError struct {
	Number Number
}

func (e *DuplicateAccountError) Error() string {
	return fmt.Sprintf("account %d already exists", e.Number)
}

// NotFoundError is returned when no account has the given number.
type NotFoundError struct {
	Number Number
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("account %d not found", e.Number)
}

// InsufficientBalanceError is returned when a withdrawal would leave the
// account below its minimum balance.
type InsufficientBalanceError struct {
	Number  Number
	Balance int64
	Amount  int64
	Minimum int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("account %d: withdrawing %d from %d would fall below the minimum of %d", e.Number, e.Amount, e.Balance, e.Minimum)
}

// OverflowError is returned when a deposit would exceed the largest
// representable balance.
type OverflowError struct {
	Number  Number
	Balance int64
	Amount  int64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("account %d: depositing %d to %d exceeds the maximum balance", e.Number, e.Amount, e.Balance)
}
