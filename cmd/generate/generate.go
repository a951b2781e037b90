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

package generate

import (
	"bytes"
	"fmt"
	"math/rand"
	"os"

	"github.com/natefinch/atomic"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sboehler/atm/cmd/flags"
	"github.com/sboehler/atm/lib/common/date"
	"github.com/sboehler/atm/lib/ledger"
	"github.com/sboehler/atm/lib/session"
)

// CreateCmd creates the command.
func CreateCmd() *cobra.Command {
	var c config
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random session file",
		Long:  `Generate a random session file, e.g. for benchmarking.`,
		Args:  cobra.ExactValidArgs(1),
		Run:   c.run,
	}
	c.setupFlags(cmd)
	return cmd
}

func (c *config) run(cmd *cobra.Command, args []string) {
	if err := c.execute(cmd, args); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

type config struct {
	entries int
	seed    int64
	period  flags.PeriodFlags
}

func (c *config) setupFlags(cmd *cobra.Command) {
	c.period.Setup(cmd, date.Period{Start: date.New(2016, 1, 1), End: date.New(2016, 12, 31)})
	cmd.Flags().IntVar(&c.entries, "entries", 1000, "number of entries to generate")
	cmd.Flags().Int64Var(&c.seed, "seed", 1, "random seed")
}

func (c *config) execute(cmd *cobra.Command, args []string) error {
	if c.entries < 0 {
		return fmt.Errorf("entries must be nonnegative")
	}
	days := c.period.Value().Days()
	if len(days) == 0 {
		return fmt.Errorf("empty period %v - %v", c.period.Value().Start, c.period.Value().End)
	}
	var buf bytes.Buffer
	if err := session.Encode(&buf, c.generate(days)); err != nil {
		return err
	}
	return atomic.WriteFile(args[0], &buf)
}

func (c *config) generate(days []date.Date) []session.Entry {
	var (
		rnd = rand.New(rand.NewSource(c.seed))
		res = make([]session.Entry, 0, c.entries)
	)
	for i := 0; i < c.entries; i++ {
		var (
			d      = days[rnd.Intn(len(days))]
			kind   ledger.Kind
			amount decimal.Decimal
		)
		switch n := rnd.Intn(10); {
		case n == 0:
			kind = ledger.KindInquiry
		case n < 6:
			kind, amount = ledger.KindDeposit, decimal.NewFromInt(rnd.Int63n(100000))
		default:
			kind, amount = ledger.KindWithdrawal, decimal.NewFromInt(rnd.Int63n(50000))
		}
		e := session.Entry{Date: d.String(), Type: kind.String()}
		if kind != ledger.KindInquiry {
			e.Amount = ledger.FormatCents(amount)
		}
		res = append(res, e)
	}
	return res
}
