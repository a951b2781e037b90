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
	"github.com/sboehler/atm/lib/common/date"
	"github.com/sboehler/atm/lib/common/table"
)

// Renderer renders a report to a table.
type Renderer struct {
	// Signed shows withdrawals as negative amounts.
	Signed bool
}

// Render renders the report.
func (rn *Renderer) Render(rep *Report) *table.Table {
	tbl := table.New(3)
	tbl.AddRow().
		AddText("Date", table.Left).
		AddText("Transaction", table.Left).
		AddText("Amount", table.Right)
	tbl.AddSeparatorRow()
	for _, t := range rep.Transactions {
		row := tbl.AddRow().
			AddText(t.Date().String(), table.Left).
			AddText(t.Kind().Title(), table.Left)
		a, ok := t.Amount().Get()
		if rn.Signed {
			a, ok = t.Signed()
		}
		if ok {
			row.AddAmount(a)
		} else {
			row.AddEmpty()
		}
	}
	if rep.Balance == nil && rep.Minimum == nil {
		return tbl
	}
	tbl.AddSeparatorRow()
	if b := rep.Balance; b != nil {
		tbl.AddRow().
			AddText(dateText(b.Date), table.Left).
			AddText("Balance", table.Left).
			AddAmount(b.Amount)
	}
	if m := rep.Minimum; m != nil {
		tbl.AddRow().
			AddText(dateText(m.Date), table.Left).
			AddText("Lowest balance", table.Left).
			AddAmount(m.Balance)
	}
	return tbl
}

func dateText(d date.Date) string {
	if d == date.Max || d == date.Min {
		return ""
	}
	return d.String()
}
