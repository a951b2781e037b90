package compare

import (
	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

// Order is the result of a three-way comparison.
type Order int

const (
	Smaller Order = -1
	Equal   Order = 0
	Greater Order = 1
)

func (o Order) String() string {
	switch o {
	case Smaller:
		return "<"
	case Equal:
		return "="
	case Greater:
		return ">"
	}
	return "?"
}

type Compare[T any] func(t1, t2 T) Order

func Ordered[T constraints.Ordered](t1, t2 T) Order {
	if t1 < t2 {
		return Smaller
	}
	if t1 == t2 {
		return Equal
	}
	return Greater
}

func Decimal(t1, t2 decimal.Decimal) Order {
	return Order(t1.Cmp(t2))
}

func Desc[T any](cmp Compare[T]) Compare[T] {
	return func(t1, t2 T) Order {
		return cmp(t2, t1)
	}
}

func Combine[T any](cmp ...Compare[T]) Compare[T] {
	return func(t1, t2 T) Order {
		for _, c := range cmp {
			if o := c(t1, t2); o != Equal {
				return o
			}
		}
		return Equal
	}
}
