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

package balance

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sboehler/atm/cmd/flags"
	"github.com/sboehler/atm/lib/common/date"
	"github.com/sboehler/atm/lib/ledger"
	"github.com/sboehler/atm/lib/session"
)

// CreateCmd creates the command.
func CreateCmd() *cobra.Command {

	var r runner

	c := &cobra.Command{
		Use:   "balance",
		Short: "print the balance of a session",
		Long:  `Replay a session file and print the balance as of a date, or the total balance over all dates.`,
		Args:  cobra.ExactValidArgs(1),
		Run:   r.run,
	}
	r.setupFlags(c)
	return c
}

type runner struct {
	date     flags.DateFlag
	parallel int
}

func (r *runner) run(cmd *cobra.Command, args []string) {
	if err := r.execute(cmd, args); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%+v\n", err)
		os.Exit(1)
	}
}

func (r *runner) setupFlags(c *cobra.Command) {
	c.Flags().Var(&r.date, "date", "balance as of this date (default: all dates)")
	c.Flags().IntVar(&r.parallel, "parallel", 0, "sum the ledger with this many workers")
}

func (r *runner) execute(cmd *cobra.Command, args []string) error {
	ops, err := session.FromPath(args[0])
	if err != nil {
		return err
	}
	l, err := session.Replay(cmd.Context(), ledger.Log{}, ops, nil)
	if err != nil {
		return err
	}
	var (
		d   = r.date.ValueOr(date.Max)
		bal decimal.Decimal
	)
	if r.parallel > 0 {
		if bal, err = ledger.BalanceAsOfParallel(cmd.Context(), l, d, r.parallel); err != nil {
			return err
		}
	} else {
		bal = ledger.BalanceAsOf(l, d)
	}
	if d == date.Max {
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Total balance: %s\n", ledger.FormatCents(bal))
	} else {
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Balance as of %v: %s\n", d, ledger.FormatCents(bal))
	}
	return err
}
