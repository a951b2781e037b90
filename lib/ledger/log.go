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
	"golang.org/x/exp/slices"

	"github.com/sboehler/atm/lib/common/date"
)

// Log is an immutable sequence of transactions in insertion order.
// The zero value is an empty log.
type Log struct {
	trx []Transaction
}

// Append returns a new log with t added at the end. The receiver is not modified.
func (l Log) Append(t Transaction) Log {
	return Log{trx: append(slices.Clip(l.trx), t)}
}

// Len returns the number of transactions in the log.
func (l Log) Len() int {
	return len(l.trx)
}

// Transactions returns the transactions in insertion order.
func (l Log) Transactions() []Transaction {
	return slices.Clone(l.trx)
}

// Chronological returns the transactions sorted by date. Transactions on the
// same date keep their insertion order.
func (l Log) Chronological() []Transaction {
	res := slices.Clone(l.trx)
	slices.SortStableFunc(res, func(t1, t2 Transaction) bool {
		return t1.date.Before(t2.date)
	})
	return res
}

// Filter returns the transactions matching f, in insertion order.
func (l Log) Filter(f Filter) []Transaction {
	var res []Transaction
	for _, t := range l.trx {
		if f(t) {
			res = append(res, t)
		}
	}
	return res
}

// Filter is a predicate on transactions.
type Filter func(Transaction) bool

// All matches every transaction.
func All(_ Transaction) bool {
	return true
}

// And matches transactions matching all filters.
func And(fs ...Filter) Filter {
	return func(t Transaction) bool {
		for _, f := range fs {
			if !f(t) {
				return false
			}
		}
		return true
	}
}

// ByKind matches transactions of any of the given kinds. Without kinds, it
// matches everything.
func ByKind(ks ...Kind) Filter {
	if len(ks) == 0 {
		return All
	}
	return func(t Transaction) bool {
		return slices.Contains(ks, t.kind)
	}
}

// OnDate matches transactions dated d.
func OnDate(d date.Date) Filter {
	return func(t Transaction) bool {
		return t.date == d
	}
}
