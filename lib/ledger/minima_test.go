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
	"math/rand"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/sboehler/atm/lib/common/date"
)

func day(n int) date.Date {
	return date.New(2016, time.January, n)
}

func cents(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func logOf(trx ...Transaction) Log {
	var l Log
	for _, t := range trx {
		l = l.Append(t)
	}
	return l
}

func TestMinimaAfter(t *testing.T) {
	tests := []struct {
		desc   string
		log    Log
		target date.Date
		want   Minimum
	}{
		{
			desc:   "empty log",
			target: day(7),
			want:   Minimum{Date: day(7), Balance: cents(0)},
		},
		{
			desc:   "target on the only transaction",
			log:    logOf(NewDeposit(day(1), cents(500))),
			target: day(1),
			want:   Minimum{Date: day(1), Balance: cents(500)},
		},
		{
			desc:   "target before all transactions",
			log:    logOf(NewDeposit(day(1), cents(500))),
			target: day(0),
			want:   Minimum{Date: day(0), Balance: cents(0)},
		},
		{
			desc:   "target after all transactions",
			log:    logOf(NewDeposit(day(1), cents(500)), NewWithdrawal(day(2), cents(200))),
			target: day(9),
			want:   Minimum{Date: day(9), Balance: cents(300)},
		},
		{
			desc: "target between transactions",
			log: logOf(
				NewDeposit(day(1), cents(1000)),
				NewWithdrawal(day(3), cents(800)),
				NewDeposit(day(5), cents(200)),
			),
			target: day(2),
			want:   Minimum{Date: day(3), Balance: cents(200)},
		},
		{
			desc: "same-day batch settles before comparison",
			log: logOf(
				NewDeposit(day(1), cents(100)),
				NewWithdrawal(day(1), cents(50)),
				NewWithdrawal(day(2), cents(80)),
			),
			target: day(1),
			want:   Minimum{Date: day(2), Balance: cents(-30)},
		},
		{
			desc: "intra-day dip is not a settlement point",
			log: logOf(
				NewDeposit(day(1), cents(100)),
				NewWithdrawal(day(2), cents(500)),
				NewDeposit(day(2), cents(500)),
				NewDeposit(day(3), cents(1)),
			),
			target: day(1),
			want:   Minimum{Date: day(1), Balance: cents(100)},
		},
		{
			desc: "out of order insertion",
			log: logOf(
				NewWithdrawal(day(6), cents(700)),
				NewDeposit(day(1), cents(1000)),
				NewDeposit(day(8), cents(300)),
				NewWithdrawal(day(4), cents(100)),
			),
			target: day(3),
			want:   Minimum{Date: day(6), Balance: cents(200)},
		},
		{
			desc: "first date of a repeated minimum wins",
			log: logOf(
				NewDeposit(day(1), cents(100)),
				NewWithdrawal(day(2), cents(100)),
				NewDeposit(day(3), cents(50)),
				NewWithdrawal(day(4), cents(50)),
			),
			target: day(1),
			want:   Minimum{Date: day(2), Balance: cents(0)},
		},
		{
			desc: "inquiries are ignored",
			log: logOf(
				NewInquiry(day(0)),
				NewDeposit(day(1), cents(100)),
				NewInquiry(day(5)),
			),
			target: day(3),
			want:   Minimum{Date: day(3), Balance: cents(100)},
		},
		{
			desc:   "unbounded target",
			log:    logOf(NewDeposit(day(1), cents(100))),
			target: date.Max,
			want:   Minimum{Date: date.Max, Balance: cents(100)},
		},
		{
			desc:   "target before everything",
			log:    logOf(NewWithdrawal(day(1), cents(100)), NewDeposit(day(2), cents(400))),
			target: date.Min,
			want:   Minimum{Date: day(1), Balance: cents(-100)},
		},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			got := MinimaAfter(test.log, test.target)

			if diff := cmp.Diff(got, test.want); diff != "" {
				t.Fatalf("unexpected diff (+got/-want):\n%s", diff)
			}
		})
	}
}

// bruteForceMinimum evaluates the balance at every settlement point at or
// after target.
func bruteForceMinimum(l Log, target date.Date) Minimum {
	points := []date.Date{target}
	for _, t := range l.Chronological() {
		if t.Date().After(points[len(points)-1]) {
			points = append(points, t.Date())
		}
	}
	var best *Minimum
	for _, p := range points {
		if b := BalanceAsOf(l, p); best == nil || b.LessThan(best.Balance) {
			best = &Minimum{Date: p, Balance: b}
		}
	}
	return *best
}

func randomLog(rnd *rand.Rand, n int) Log {
	var l Log
	for i := 0; i < n; i++ {
		d := day(1 + rnd.Intn(20))
		switch rnd.Intn(5) {
		case 0:
			l = l.Append(NewInquiry(d))
		case 1, 2:
			l = l.Append(NewDeposit(d, cents(rnd.Int63n(10000))))
		default:
			l = l.Append(NewWithdrawal(d, cents(rnd.Int63n(10000))))
		}
	}
	return l
}

func TestMinimaAfterMatchesBruteForce(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		var (
			l      = randomLog(rnd, rnd.Intn(30))
			target = day(rnd.Intn(23))
		)
		got := MinimaAfter(l, target)

		if diff := cmp.Diff(got, bruteForceMinimum(l, target)); diff != "" {
			t.Fatalf("log %v, target %v: unexpected diff (+got/-want):\n%s", l.Transactions(), target, diff)
		}
		if got.Balance.GreaterThan(BalanceAsOf(l, target)) {
			t.Fatalf("log %v: minimum %v exceeds balance on %v", l.Transactions(), got, target)
		}
		if again := MinimaAfter(l, target); !cmp.Equal(got, again) {
			t.Fatalf("MinimaAfter is not deterministic: %v != %v", got, again)
		}
		var reversed Log
		for trx := l.Transactions(); len(trx) > 0; trx = trx[:len(trx)-1] {
			reversed = reversed.Append(trx[len(trx)-1])
		}
		if r := MinimaAfter(reversed, target); !cmp.Equal(got, r) {
			t.Fatalf("insertion order changed the minimum: %v != %v", got, r)
		}
		if withInquiry := MinimaAfter(l.Append(NewInquiry(day(rnd.Intn(23)))), target); !cmp.Equal(got, withInquiry) {
			t.Fatalf("inquiry changed the minimum: %v != %v", got, withInquiry)
		}
	}
}

func TestMinimaAfterPanicsOnUnsortedInput(t *testing.T) {
	trx := []Transaction{
		NewDeposit(day(3), cents(100)),
		NewDeposit(day(1), cents(100)),
	}
	var recovered interface{}
	func() {
		defer func() { recovered = recover() }()
		minimaAfter(trx, day(2))
	}()

	require.IsType(t, &InvariantError{}, recovered)
	err := recovered.(*InvariantError)
	require.Equal(t, day(3), err.Previous)
	require.Equal(t, day(1), err.Transaction)
	require.Equal(t, day(2), err.Target)
	require.Contains(t, err.Error(), "inconsistent ordering")
}

func TestMinimaAfterPanicsGoingBackInTime(t *testing.T) {
	for _, target := range []date.Date{day(0), day(2), day(5), day(9)} {
		trx := []Transaction{
			NewDeposit(day(5), cents(100)),
			NewDeposit(day(4), cents(100)),
		}
		require.Panics(t, func() { minimaAfter(trx, target) }, "target %v", target)
	}
}
