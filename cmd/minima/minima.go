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

package minima

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sboehler/atm/cmd/flags"
	"github.com/sboehler/atm/lib/ledger"
	"github.com/sboehler/atm/lib/session"
)

// CreateCmd creates the command.
func CreateCmd() *cobra.Command {

	var r runner

	c := &cobra.Command{
		Use:   "minima",
		Short: "print the lowest balance at or after a date",
		Long: `Replay a session file and print the lowest balance reached at or after a date.
With --withdraw, check whether withdrawing the amount on that date would
overdraw the account.`,
		Args: cobra.ExactValidArgs(1),
		Run:  r.run,
	}
	r.setupFlags(c)
	return c
}

type runner struct {
	date     flags.DateFlag
	withdraw flags.AmountFlag
}

func (r *runner) run(cmd *cobra.Command, args []string) {
	if err := r.execute(cmd, args); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%+v\n", err)
		os.Exit(1)
	}
}

func (r *runner) setupFlags(c *cobra.Command) {
	c.Flags().Var(&r.date, "date", "date of the query")
	c.Flags().Var(&r.withdraw, "withdraw", "amount of a hypothetical withdrawal on the date")
	c.MarkFlagRequired("date")
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
		d = r.date.Value()
		m = ledger.MinimaAfter(l, d)
		w = cmd.OutOrStdout()
	)
	if _, err := fmt.Fprintf(w, "Lowest balance at or after %v: %v\n", d, m); err != nil {
		return err
	}
	amount, ok := r.withdraw.Value()
	if !ok {
		return nil
	}
	_, overdraft, err := ledger.Withdraw(l, d, amount)
	switch {
	case err != nil:
		_, err = fmt.Fprintf(w, "A withdrawal of %s would be declined: %v\n", ledger.FormatCents(amount), err)
	case overdraft != nil:
		_, err = fmt.Fprintln(w, overdraft)
	default:
		_, err = fmt.Fprintf(w, "A withdrawal of %s on %v leaves no overdraft.\n", ledger.FormatCents(amount), d)
	}
	return err
}
