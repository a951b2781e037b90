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
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sboehler/atm/lib/common/compare"
	"github.com/sboehler/atm/lib/common/date"
)

// Minimum is the lowest balance reached at or after some date.
type Minimum struct {
	// Date is the first settled date with the lowest balance.
	Date    date.Date
	Balance decimal.Decimal
}

func (m Minimum) String() string {
	return fmt.Sprintf("%s on %v", FormatCents(m.Balance), m.Date)
}

// InvariantError describes an impossible state of the minima replay. It
// is raised as a panic, as it means the replay was fed unsorted input.
type InvariantError struct {
	Previous, Transaction, Target date.Date
	Reason                        string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("minima replay: %s (previous=%v transaction=%v target=%v)", e.Reason, e.Previous, e.Transaction, e.Target)
}

// MinimaAfter returns the lowest settled balance at or after target. The
// balance on target itself is always a candidate.
func MinimaAfter(l Log, target date.Date) Minimum {
	var trx []Transaction
	for _, t := range l.Chronological() {
		if _, ok := t.amount.Get(); ok {
			trx = append(trx, t)
		}
	}
	return minimaAfter(trx, target)
}

// step holds the three orderings between the last settled date, the
// current transaction's date and the target date.
type step struct {
	prevTarget, prevTrx, trxTarget compare.Order
}

const (
	lt = compare.Smaller
	eq = compare.Equal
	gt = compare.Greater
)

// minimaAfter expects trx to be sorted by date and to carry amounts.
func minimaAfter(trx []Transaction, target date.Date) Minimum {
	var (
		balance  = decimal.Zero
		previous = date.Min
		best     *Minimum
	)
	for _, t := range trx {
		s := step{
			prevTarget: date.Compare(previous, target),
			prevTrx:    date.Compare(previous, t.date),
			trxTarget:  date.Compare(t.date, target),
		}
		switch s {

		case step{lt, lt, gt}, step{eq, lt, gt}:
			// Passing the target: the balance settled so far is the
			// balance on the target date.
			best = &Minimum{Date: target, Balance: balance}
			previous = t.date

		case step{lt, lt, lt}, step{lt, lt, eq}:
			// A new day, target not yet reached.
			previous = t.date

		case step{gt, lt, gt}:
			// A new day after the target: the previous day is settled.
			if best == nil {
				panic(&InvariantError{previous, t.date, target, "passed the target without recording a balance"})
			}
			if best.Balance.GreaterThan(balance) {
				best = &Minimum{Date: previous, Balance: balance}
			}
			previous = t.date

		case step{lt, eq, lt}, step{eq, eq, eq}, step{gt, eq, gt}:
			// Same day as the previous transaction, the day is not settled yet.

		default:
			panic(&InvariantError{previous, t.date, target, fmt.Sprintf("inconsistent ordering %v", s)})
		}
		a, _ := t.Signed()
		balance = balance.Add(a)
	}
	switch {
	case !previous.After(target):
		best = &Minimum{Date: target, Balance: balance}
	case best == nil:
		panic(&InvariantError{previous, previous, target, "no balance recorded"})
	case best.Balance.GreaterThan(balance):
		best = &Minimum{Date: previous, Balance: balance}
	}
	return *best
}

func (s step) String() string {
	return fmt.Sprintf("previous%vtarget previous%vtransaction transaction%vtarget", s.prevTarget, s.prevTrx, s.trxTarget)
}
