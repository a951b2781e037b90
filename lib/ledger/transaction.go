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
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sboehler/atm/lib/common/date"
)

// Kind is the kind of a transaction.
type Kind int

const (
	// KindDeposit adds its amount to the balance.
	KindDeposit Kind = iota
	// KindWithdrawal subtracts its amount from the balance.
	KindWithdrawal
	// KindInquiry records a balance inquiry. It has no amount.
	KindInquiry
)

var kindNames = map[Kind]string{
	KindDeposit:    "deposit",
	KindWithdrawal: "withdrawal",
	KindInquiry:    "inquiry",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Title returns the name of the kind as shown in reports.
func (k Kind) Title() string {
	switch k {
	case KindDeposit:
		return "Deposit"
	case KindWithdrawal:
		return "Withdrawal"
	case KindInquiry:
		return "Balance Inquiry"
	}
	return k.String()
}

// ParseKind parses the name of a kind, ignoring case.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(s, name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("invalid transaction type %q, expected deposit, withdrawal or inquiry", s)
}

// Amount is an optional number of minor currency units.
type Amount struct {
	value   decimal.Decimal
	present bool
}

// Present returns an amount holding v.
func Present(v decimal.Decimal) Amount {
	return Amount{value: v, present: true}
}

// Absent returns the empty amount.
func Absent() Amount {
	return Amount{}
}

// Get returns the value and whether it is present.
func (a Amount) Get() (decimal.Decimal, bool) {
	return a.value, a.present
}

// Transaction is an immutable ledger entry.
type Transaction struct {
	date   date.Date
	kind   Kind
	amount Amount
}

// NewDeposit creates a deposit of amount minor units.
func NewDeposit(d date.Date, amount decimal.Decimal) Transaction {
	return Transaction{date: d, kind: KindDeposit, amount: Present(amount)}
}

// NewWithdrawal creates a withdrawal of amount minor units.
func NewWithdrawal(d date.Date, amount decimal.Decimal) Transaction {
	return Transaction{date: d, kind: KindWithdrawal, amount: Present(amount)}
}

// NewInquiry creates a balance inquiry.
func NewInquiry(d date.Date) Transaction {
	return Transaction{date: d, kind: KindInquiry, amount: Absent()}
}

func (t Transaction) Date() date.Date {
	return t.date
}

func (t Transaction) Kind() Kind {
	return t.kind
}

func (t Transaction) Amount() Amount {
	return t.amount
}

// Signed returns the amount with the sign of its effect on the balance.
func (t Transaction) Signed() (decimal.Decimal, bool) {
	a, ok := t.amount.Get()
	if !ok {
		return decimal.Zero, false
	}
	switch t.kind {
	case KindDeposit:
		return a, true
	case KindWithdrawal:
		return a.Neg(), true
	}
	panic(fmt.Sprintf("%v transaction carries an amount", t.kind))
}

func (t Transaction) String() string {
	if a, ok := t.amount.Get(); ok {
		return fmt.Sprintf("%v %v %s", t.date, t.kind, FormatCents(a))
	}
	return fmt.Sprintf("%v %v", t.date, t.kind)
}
