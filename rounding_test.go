package money

import (
	"math/big"
	"testing"
)

func TestRoundDiv(t *testing.T) {
	tests := []struct {
		dividend, divisor int64
		mode              Mode
		want              int64
	}{
		// exact division: mode is irrelevant.
		{10, 5, HalfUp, 2},
		{-10, 5, HalfUp, -2},

		// above half, either sign: HalfUp rounds away from zero.
		{7, 10, HalfUp, 1},
		{-7, 10, HalfUp, -1},

		// exactly half.
		{5, 10, HalfUp, 1},
		{-5, 10, HalfUp, -1},
		{5, 10, HalfDown, 0},
		{-5, 10, HalfDown, 0},
		{15, 10, HalfEven, 2}, // 1.5 -> 2 (even)
		{5, 10, HalfEven, 0},  // 0.5 -> 0 (even)
		{25, 10, HalfEven, 2}, // 2.5 -> 2 (even)

		// above half.
		{8, 10, HalfUp, 1},
		{8, 10, HalfDown, 1},
		{8, 10, HalfEven, 1},

		// floor / ceil.
		{7, 10, Floor, 0},
		{-7, 10, Floor, -1},
		{7, 10, Ceil, 1},
		{-7, 10, Ceil, 0},
	}
	for _, tt := range tests {
		dividend := big.NewInt(tt.dividend)
		divisor := big.NewInt(tt.divisor)
		got := roundDiv(dividend, divisor, tt.mode)
		want := big.NewInt(tt.want)
		if got.Cmp(want) != 0 {
			t.Errorf("roundDiv(%d, %d, %v) = %v, want %v", tt.dividend, tt.divisor, tt.mode, got, want)
		}
	}
}

func TestRoundDiv_PanicsOnNonPositiveDivisor(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("roundDiv did not panic on a non-positive divisor")
		}
	}()
	roundDiv(big.NewInt(1), big.NewInt(0), HalfUp)
}

func TestMode_String(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{HalfUp, "HalfUp"},
		{HalfDown, "HalfDown"},
		{HalfEven, "HalfEven"},
		{Floor, "Floor"},
		{Ceil, "Ceil"},
		{Mode(99), "Mode(?)"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}
