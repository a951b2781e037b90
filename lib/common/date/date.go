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

package date

import (
	"fmt"
	"math"
	"time"

	"github.com/sboehler/atm/lib/common/compare"
)

// Date is a calendar day without a time of day.
type Date struct {
	Year, Month, Day int
}

var (
	// Min is smaller than any other date.
	Min = Date{math.MinInt, math.MinInt, math.MinInt}
	// Max is greater than any other date.
	Max = Date{math.MaxInt, math.MaxInt, math.MaxInt}
)

const layout = "2006-01-02"

// New creates a new date.
func New(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: int(month), Day: day}
}

// FromTime returns the date of t in t's location.
func FromTime(t time.Time) Date {
	return New(t.Year(), t.Month(), t.Day())
}

// Today returns today's date.
func Today() Date {
	return FromTime(time.Now().Local())
}

// Parse parses a date in the format YYYY-MM-DD.
func Parse(s string) (Date, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return FromTime(t), nil
}

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days later. It must not be called on Min or Max.
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) Before(o Date) bool {
	return Compare(d, o) == compare.Smaller
}

func (d Date) After(o Date) bool {
	return Compare(d, o) == compare.Greater
}

func (d Date) String() string {
	switch d {
	case Min:
		return "min"
	case Max:
		return "max"
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Compare orders dates by year, month and day.
func Compare(d1, d2 Date) compare.Order {
	if o := compare.Ordered(d1.Year, d2.Year); o != compare.Equal {
		return o
	}
	if o := compare.Ordered(d1.Month, d2.Month); o != compare.Equal {
		return o
	}
	return compare.Ordered(d1.Day, d2.Day)
}

// Period is a closed interval of dates.
type Period struct {
	Start, End Date
}

func (p Period) Contains(d Date) bool {
	return !d.Before(p.Start) && !d.After(p.End)
}

// Days returns all dates in the period, in order.
func (p Period) Days() []Date {
	var res []Date
	for d := p.Start; !d.After(p.End); d = d.AddDays(1) {
		res = append(res, d)
	}
	return res
}
