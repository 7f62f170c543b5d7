package money

import (
	"math/big"
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	a := MustNewPrice(USD, Centi, big.NewInt(5000))   // USD 50.00
	b := MustNewPrice(USD, Micro, big.NewInt(5))      // USD 0.000005
	out, err := Normalize(a, b)
	if err != nil {
		t.Fatalf("Normalize() failed: %v", err)
	}
	if out[0].Scale() != Micro || out[1].Scale() != Micro {
		t.Fatalf("Normalize() scales = %v, %v, want Micro, Micro", out[0].Scale(), out[1].Scale())
	}
	if out[0].Amount().Cmp(big.NewInt(50_000_000)) != 0 {
		t.Errorf("Normalize()[0].Amount() = %v, want 50000000", out[0].Amount())
	}
	if out[1].Amount().Cmp(big.NewInt(5)) != 0 {
		t.Errorf("Normalize()[1].Amount() = %v, want 5", out[1].Amount())
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	a := MustNewPrice(USD, Milli, big.NewInt(1234))
	b := MustNewPrice(USD, Milli, big.NewInt(5678))
	out, err := Normalize(a, b)
	if err != nil {
		t.Fatalf("Normalize() failed: %v", err)
	}
	if !reflect.DeepEqual(out[0], a) || !reflect.DeepEqual(out[1], b) {
		t.Errorf("Normalize() at the finest scale already mutated its inputs")
	}
}

func TestNormalize_CurrencyMismatch(t *testing.T) {
	a := MustNewPrice(USD, Centi, big.NewInt(100))
	b := MustNewPrice(EUR, Centi, big.NewInt(100))
	if _, err := Normalize(a, b); err == nil {
		t.Errorf("Normalize() across currencies succeeded, want CurrencyMismatch")
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	if _, err := Normalize(); err == nil {
		t.Errorf("Normalize() with no operands succeeded, want EmptyInput")
	}
}

func TestPow10(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "1"},
		{1, "10"},
		{12, "1000000000000"},
	}
	for _, tt := range tests {
		if got := pow10(tt.n).String(); got != tt.want {
			t.Errorf("pow10(%d) = %s, want %s", tt.n, got, tt.want)
		}
	}
}

func TestPow10_ReturnsAFreshCopy(t *testing.T) {
	v := pow10(3)
	v.Add(v, big.NewInt(1))
	if pow10(3).Cmp(big.NewInt(1000)) != 0 {
		t.Errorf("mutating pow10()'s result affected the cache")
	}
}
