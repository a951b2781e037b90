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

package report

import (
	"github.com/shopspring/decimal"

	"github.com/sboehler/atm/lib/common/date"
	"github.com/sboehler/atm/lib/ledger"
)

// Report is a list of transactions with optional summary lines.
type Report struct {
	Transactions []ledger.Transaction

	// Balance, if set, is shown after the transactions.
	Balance *Balance

	// Minimum, if set, is shown after the balance.
	Minimum *ledger.Minimum
}

// Balance is the balance as of a date.
type Balance struct {
	Date   date.Date
	Amount decimal.Decimal
}

// New creates a report of the transactions in l matching f, with the
// balance as of asOf.
func New(l ledger.Log, f ledger.Filter, asOf date.Date) *Report {
	return &Report{
		Transactions: l.Filter(f),
		Balance: &Balance{
			Date:   asOf,
			Amount: ledger.BalanceAsOf(l, asOf),
		},
	}
}

// AddMinimumAfter adds the lowest balance of l at or after d.
func (rep *Report) AddMinimumAfter(l ledger.Log, d date.Date) {
	m := ledger.MinimaAfter(l, d)
	rep.Minimum = &m
}
