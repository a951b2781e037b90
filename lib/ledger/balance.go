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
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/sboehler/atm/lib/common/date"
)

// BalanceAsOf returns the sum of all signed amounts dated on or before d.
func BalanceAsOf(l Log, d date.Date) decimal.Decimal {
	return sum(l.trx, d)
}

// BalanceAsOfParallel computes BalanceAsOf by summing chunks of the log
// concurrently.
func BalanceAsOfParallel(ctx context.Context, l Log, d date.Date, workers int) (decimal.Decimal, error) {
	if workers < 1 {
		workers = 1
	}
	var (
		n     = len(l.trx)
		size  = (n + workers - 1) / workers
		parts = make([]decimal.Decimal, workers)
	)
	wg, ctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		i := i
		lo, hi := clamp(i*size, n), clamp((i+1)*size, n)
		wg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			parts[i] = sum(l.trx[lo:hi], d)
			return nil
		})
	}
	if err := wg.Wait(); err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, p := range parts {
		total = total.Add(p)
	}
	return total, nil
}

func sum(trx []Transaction, d date.Date) decimal.Decimal {
	total := decimal.Zero
	for _, t := range trx {
		if t.date.After(d) {
			continue
		}
		if a, ok := t.Signed(); ok {
			total = total.Add(a)
		}
	}
	return total
}

func clamp(i, n int) int {
	if i > n {
		return n
	}
	return i
}
