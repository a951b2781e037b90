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

// Package session reads and replays session files. A session file is a
// YAML list of ledger operations:
//
//	- date: "2016-01-04"
//	  type: deposit
//	  amount: "1000.00"
//	- date: "2016-01-05"
//	  type: inquiry
//
// Amounts are given in dollars and cents.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v2"

	"github.com/sboehler/atm/lib/common/date"
	"github.com/sboehler/atm/lib/ledger"
)

// Entry is an operation as stored in a session file.
type Entry struct {
	Date   string `yaml:"date"`
	Type   string `yaml:"type"`
	Amount string `yaml:"amount,omitempty"`
}

// Operation is a validated entry.
type Operation struct {
	Date date.Date
	Kind ledger.Kind
	// Amount is in minor units. It is zero for inquiries.
	Amount decimal.Decimal
}

func (op Operation) String() string {
	if op.Kind == ledger.KindInquiry {
		return fmt.Sprintf("%v on %v", op.Kind, op.Date)
	}
	return fmt.Sprintf("%v of %s on %v", op.Kind, ledger.FormatCents(op.Amount), op.Date)
}

// Decode reads entries from r.
func Decode(r io.Reader) ([]Entry, error) {
	var entries []Entry
	dec := yaml.NewDecoder(r)
	dec.SetStrict(true)
	if err := dec.Decode(&entries); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}
	return entries, nil
}

// Encode writes entries to w.
func Encode(w io.Writer, entries []Entry) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(entries); err != nil {
		return err
	}
	return enc.Close()
}

// Parse validates an entry.
func (e Entry) Parse() (Operation, error) {
	d, err := date.Parse(e.Date)
	if err != nil {
		return Operation{}, err
	}
	k, err := ledger.ParseKind(e.Type)
	if err != nil {
		return Operation{}, err
	}
	if k == ledger.KindInquiry {
		if e.Amount != "" {
			return Operation{}, fmt.Errorf("%v must not have an amount", k)
		}
		return Operation{Date: d, Kind: k}, nil
	}
	if e.Amount == "" {
		return Operation{}, fmt.Errorf("%v requires an amount", k)
	}
	a, err := ledger.ParseDollars(e.Amount)
	if err != nil {
		return Operation{}, err
	}
	return Operation{Date: d, Kind: k, Amount: a}, nil
}

// Parse validates all entries and reports every invalid one.
func Parse(entries []Entry) ([]Operation, error) {
	var (
		ops  []Operation
		errs error
	)
	for i, e := range entries {
		op, err := e.Parse()
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("entry %d: %w", i+1, err))
			continue
		}
		ops = append(ops, op)
	}
	if errs != nil {
		return nil, errs
	}
	return ops, nil
}

// FromPath reads and validates the session file at path.
func FromPath(path string) (ops []Operation, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()
	entries, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return Parse(entries)
}

// Outcome is the result of applying an operation to the ledger.
type Outcome struct {
	Operation Operation
	// Overdraft is set for withdrawals which leave the balance negative
	// on some date.
	Overdraft *ledger.Overdraft
	// Declined is set if the ledger refused the operation.
	Declined error
}

func (o Outcome) String() string {
	switch {
	case o.Declined != nil:
		return fmt.Sprintf("Declined %v: %v.", o.Operation, o.Declined)
	case o.Overdraft != nil:
		return o.Overdraft.String()
	}
	return fmt.Sprintf("Recorded %v.", o.Operation)
}

// Replay applies the operations to l in order and passes each outcome to
// observe, which may be nil. Declined operations do not stop the replay.
func Replay(ctx context.Context, l ledger.Log, ops []Operation, observe func(Outcome)) (ledger.Log, error) {
	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			return l, err
		}
		var (
			out = Outcome{Operation: op}
			err error
		)
		switch op.Kind {
		case ledger.KindDeposit:
			l, err = ledger.Deposit(l, op.Date, op.Amount)
		case ledger.KindWithdrawal:
			l, out.Overdraft, err = ledger.Withdraw(l, op.Date, op.Amount)
		case ledger.KindInquiry:
			l = ledger.Inquiry(l, op.Date)
		default:
			err = fmt.Errorf("unknown operation %v", op.Kind)
		}
		if errors.Is(err, ledger.ErrInsufficientFunds) {
			out.Declined = err
		} else if err != nil {
			return l, err
		}
		if observe != nil {
			observe(out)
		}
	}
	return l, nil
}
