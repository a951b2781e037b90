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

package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sboehler/atm/lib/common/date"
)

var (
	// ErrInvalidAmount is returned for negative or fractional amounts.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientFunds is returned when a withdrawal exceeds the total balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Overdraft warns that a withdrawal drives the balance negative on some
// date at or after the withdrawal.
type Overdraft struct {
	Date    date.Date
	Amount  decimal.Decimal
	Minimum Minimum
}

// Shortfall returns by how much the balance goes negative.
func (o Overdraft) Shortfall() decimal.Decimal {
	return o.Amount.Sub(o.Minimum.Balance)
}

func (o Overdraft) String() string {
	return fmt.Sprintf("A withdrawal on %v of %s results in an overdraft of %s on %v.",
		o.Date, FormatCents(o.Amount), FormatCents(o.Shortfall()), o.Minimum.Date)
}

// Deposit records a deposit of amount minor units on d.
func Deposit(l Log, d date.Date, amount decimal.Decimal) (Log, error) {
	if err := validate(amount); err != nil {
		return l, err
	}
	return l.Append(NewDeposit(d, amount)), nil
}

// Withdraw records a withdrawal of amount minor units on d. It is declined
// with ErrInsufficientFunds if the total balance over all dates is smaller
// than amount. A withdrawal which leaves the balance negative on some date
// is recorded nonetheless, and the overdraft is returned.
func Withdraw(l Log, d date.Date, amount decimal.Decimal) (Log, *Overdraft, error) {
	if err := validate(amount); err != nil {
		return l, nil, err
	}
	if total := BalanceAsOf(l, date.Max); total.LessThan(amount) {
		return l, nil, fmt.Errorf("%w: withdrawing %s from a total balance of %s", ErrInsufficientFunds, FormatCents(amount), FormatCents(total))
	}
	var overdraft *Overdraft
	if m := MinimaAfter(l, d); m.Balance.LessThan(amount) {
		overdraft = &Overdraft{Date: d, Amount: amount, Minimum: m}
	}
	return l.Append(NewWithdrawal(d, amount)), overdraft, nil
}

// Inquiry records a balance inquiry on d.
func Inquiry(l Log, d date.Date) Log {
	return l.Append(NewInquiry(d))
}
