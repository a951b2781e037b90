package compare

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestOrdered(t *testing.T) {
	tests := []struct {
		a, b int
		want Order
	}{
		{1, 2, Smaller},
		{2, 2, Equal},
		{3, 2, Greater},
	}
	for _, test := range tests {
		if got := Ordered(test.a, test.b); got != test.want {
			t.Errorf("Ordered(%d, %d) = %v, want %v", test.a, test.b, got, test.want)
		}
	}
}

func TestDecimal(t *testing.T) {
	if got := Decimal(decimal.NewFromInt(-5), decimal.NewFromInt(3)); got != Smaller {
		t.Errorf("Decimal(-5, 3) = %v, want %v", got, Smaller)
	}
	if got := Decimal(decimal.RequireFromString("1.50"), decimal.RequireFromString("1.5")); got != Equal {
		t.Errorf("Decimal(1.50, 1.5) = %v, want %v", got, Equal)
	}
}

func TestCombineAndDesc(t *testing.T) {
	type pair struct{ a, b int }
	cmp := Combine(
		func(p1, p2 pair) Order { return Ordered(p1.a, p2.a) },
		Desc(func(p1, p2 pair) Order { return Ordered(p1.b, p2.b) }),
	)
	if got := cmp(pair{1, 1}, pair{1, 2}); got != Greater {
		t.Errorf("got %v, want %v", got, Greater)
	}
	if got := cmp(pair{0, 1}, pair{1, 2}); got != Smaller {
		t.Errorf("got %v, want %v", got, Smaller)
	}
	if got := cmp(pair{1, 2}, pair{1, 2}); got != Equal {
		t.Errorf("got %v, want %v", got, Equal)
	}
}
