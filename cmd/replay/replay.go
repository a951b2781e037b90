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

package replay

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/sboehler/atm/cmd/flags"
	"github.com/sboehler/atm/lib/common/date"
	"github.com/sboehler/atm/lib/common/table"
	"github.com/sboehler/atm/lib/ledger"
	"github.com/sboehler/atm/lib/report"
	"github.com/sboehler/atm/lib/session"
)

// CreateCmd creates the command.
func CreateCmd() *cobra.Command {

	var r runner

	c := &cobra.Command{
		Use:   "replay",
		Short: "replay a session and list its transactions",
		Long: `Apply the operations of a session file to an empty ledger, in file order.
Declined withdrawals and projected overdrafts are reported before the list of
recorded transactions.`,
		Args: cobra.ExactValidArgs(1),
		Run:  r.run,
	}
	r.setupFlags(c)
	return c
}

type runner struct {
	// filters
	kinds flags.KindFlag
	on    flags.DateFlag

	// summary
	asOf, lowestAfter flags.DateFlag

	// formatting
	color, csv, signed, progress bool
	output                       string
}

func (r *runner) run(cmd *cobra.Command, args []string) {
	if err := r.execute(cmd, args); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%+v\n", err)
		os.Exit(1)
	}
}

func (r *runner) setupFlags(c *cobra.Command) {
	c.Flags().Var(&r.kinds, "kind", "show only transactions of this kind (repeatable)")
	c.Flags().Var(&r.on, "on", "show only transactions on this date")
	c.Flags().Var(&r.asOf, "date", "show the balance as of this date (default: all dates)")
	c.Flags().Var(&r.lowestAfter, "lowest-after", "show the lowest balance at or after this date")
	c.Flags().BoolVar(&r.signed, "signed", true, "show withdrawals as negative amounts")
	c.Flags().BoolVar(&r.csv, "csv", false, "render the transactions as CSV")
	c.Flags().BoolVar(&r.color, "color", true, "print output in color")
	c.Flags().BoolVar(&r.progress, "progress", false, "show a progress bar while replaying")
	c.Flags().StringVarP(&r.output, "output", "o", "", "write the report to this file instead of stdout")
}

func (r *runner) execute(cmd *cobra.Command, args []string) error {
	color.NoColor = !r.color
	ops, err := session.FromPath(args[0])
	if err != nil {
		return err
	}
	var (
		outcomes []session.Outcome
		bar      *pb.ProgressBar
	)
	if r.progress {
		bar = pb.New(len(ops)).SetWriter(cmd.ErrOrStderr()).Start()
	}
	l, err := session.Replay(cmd.Context(), ledger.Log{}, ops, func(o session.Outcome) {
		if bar != nil {
			bar.Increment()
		}
		if o.Declined != nil || o.Overdraft != nil {
			outcomes = append(outcomes, o)
		}
	})
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}
	if r.output == "" {
		w := bufio.NewWriter(cmd.OutOrStdout())
		if err := r.render(cmd, l, outcomes, w); err != nil {
			return err
		}
		return w.Flush()
	}
	var buf bytes.Buffer
	if err := r.render(cmd, l, outcomes, &buf); err != nil {
		return err
	}
	return atomic.WriteFile(r.output, &buf)
}

var warn = color.New(color.FgYellow)

func (r *runner) render(cmd *cobra.Command, l ledger.Log, outcomes []session.Outcome, w io.Writer) error {
	notes := w
	if r.csv {
		notes = cmd.ErrOrStderr()
	}
	for _, o := range outcomes {
		if _, err := warn.Fprintln(notes, o); err != nil {
			return err
		}
	}
	f := ledger.ByKind(r.kinds.Value()...)
	if on := r.on.Value(); !on.IsZero() {
		f = ledger.And(f, ledger.OnDate(on))
	}
	rep := report.New(l, f, r.asOf.ValueOr(date.Max))
	if d := r.lowestAfter.Value(); !d.IsZero() {
		rep.AddMinimumAfter(l, d)
	}
	rn := report.Renderer{Signed: r.signed}
	tbl := rn.Render(rep)
	if r.csv {
		var cr table.CSVRenderer
		return cr.Render(tbl, w)
	}
	tr := table.TextRenderer{Color: r.color}
	return tr.Render(tbl, w)
}
