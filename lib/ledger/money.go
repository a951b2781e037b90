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
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	dollars = regexp.MustCompile(`^\d+(\.\d\d?)?$`)
)

// ParseDollars parses an amount like 12.34 into minor units. It accepts
// digits with an optional fraction of one or two digits.
func ParseDollars(s string) (decimal.Decimal, error) {
	if !dollars.MatchString(s) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	cents := d.Mul(hundred)
	if err := validate(cents); err != nil {
		return decimal.Zero, err
	}
	return cents.Truncate(0), nil
}

// FormatCents renders minor units as dollars and cents.
func FormatCents(d decimal.Decimal) string {
	return d.Shift(-2).StringFixed(2)
}

func validate(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s is negative", ErrInvalidAmount, FormatCents(amount))
	}
	if !amount.Equal(amount.Truncate(0)) {
		return fmt.Errorf("%w: %s has fractional cents", ErrInvalidAmount, amount.Shift(-2))
	}
	return nil
}
