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

package flags

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sboehler/atm/lib/common/date"
	"github.com/sboehler/atm/lib/ledger"
)

// DateFlag manages a flag to determine a date.
type DateFlag date.Date

var _ pflag.Value = (*DateFlag)(nil)

func (tf DateFlag) String() string {
	if tf.Value().IsZero() {
		return ""
	}
	return tf.Value().String()
}

// Set implements pflag.Value.
func (tf *DateFlag) Set(v string) error {
	d, err := date.Parse(v)
	if err != nil {
		return err
	}
	*tf = DateFlag(d)
	return nil
}

// Type implements pflag.Value.
func (tf DateFlag) Type() string {
	return "YYYY-MM-DD"
}

// Value returns the flag value.
func (tf DateFlag) Value() date.Date {
	return date.Date(tf)
}

// ValueOr returns the flag value, or d if the flag is not set.
func (tf DateFlag) ValueOr(d date.Date) date.Date {
	v := tf.Value()
	if v.IsZero() {
		return d
	}
	return v
}

// KindFlag manages a repeatable flag to select transaction kinds.
type KindFlag struct {
	kinds []ledger.Kind
}

var _ pflag.Value = (*KindFlag)(nil)

func (kf KindFlag) String() string {
	var ss []string
	for _, k := range kf.kinds {
		ss = append(ss, k.String())
	}
	return strings.Join(ss, ",")
}

// Set implements pflag.Value.
func (kf *KindFlag) Set(v string) error {
	k, err := ledger.ParseKind(v)
	if err != nil {
		return err
	}
	kf.kinds = append(kf.kinds, k)
	return nil
}

// Type implements pflag.Value.
func (kf KindFlag) Type() string {
	return "deposit|withdrawal|inquiry"
}

// Value returns the selected kinds.
func (kf KindFlag) Value() []ledger.Kind {
	return kf.kinds
}

// AmountFlag manages a flag holding an amount in dollars and cents.
type AmountFlag struct {
	cents decimal.Decimal
	set   bool
}

var _ pflag.Value = (*AmountFlag)(nil)

func (af AmountFlag) String() string {
	if !af.set {
		return ""
	}
	return ledger.FormatCents(af.cents)
}

// Set implements pflag.Value.
func (af *AmountFlag) Set(v string) error {
	c, err := ledger.ParseDollars(v)
	if err != nil {
		return err
	}
	af.cents, af.set = c, true
	return nil
}

// Type implements pflag.Value.
func (af AmountFlag) Type() string {
	return "0.00"
}

// Value returns the amount in minor units and whether the flag was set.
func (af AmountFlag) Value() (decimal.Decimal, bool) {
	return af.cents, af.set
}

// PeriodFlags manages the --from and --to flags.
type PeriodFlags struct {
	from, to DateFlag
	def      date.Period
}

// Setup configures the flags.
func (pf *PeriodFlags) Setup(cmd *cobra.Command, def date.Period) {
	cmd.Flags().Var(&pf.from, "from", "from date")
	cmd.Flags().Var(&pf.to, "to", "to date")
	pf.def = def
}

// Value returns the period.
func (pf PeriodFlags) Value() date.Period {
	return date.Period{
		Start: pf.from.ValueOr(pf.def.Start),
		End:   pf.to.ValueOr(pf.def.End),
	}
}
