package money

import (
	"math/big"
	"reflect"
	"testing"
)

func TestResolve(t *testing.T) {
	want := MustParsePrice("USD 5.00")
	tests := []any{
		want,
		"USD 5.00",
		"$5.00",
		Shape{Amount: big.NewInt(500), Currency: USD},
	}
	for _, x := range tests {
		got, err := Resolve(x)
		if err != nil {
			t.Errorf("Resolve(%v) failed: %v", x, err)
			continue
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Resolve(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestResolve_InvalidInput(t *testing.T) {
	if _, err := Resolve(42); err == nil {
		t.Errorf("Resolve(42) succeeded, want InvalidFormat")
	}
	if _, err := Resolve((*Shape)(nil)); err == nil {
		t.Errorf("Resolve(nil *Shape) succeeded, want InvalidFormat")
	}
}

func TestAsWords_AsHuman_AsShape(t *testing.T) {
	p := MustParsePrice("USD 1_234.56")
	if got := AsWords(p); got != "USD 1_234.56" {
		t.Errorf("AsWords() = %q, want %q", got, "USD 1_234.56")
	}
	if got := AsHuman(p); got != "$1,234.56" {
		t.Errorf("AsHuman() = %q, want %q", got, "$1,234.56")
	}
	sh := AsShape(p)
	if sh.Currency != USD || *sh.Scale != Centi || sh.Amount.Cmp(big.NewInt(123456)) != 0 {
		t.Errorf("AsShape() = %+v, unexpected", sh)
	}
}

func TestToWords(t *testing.T) {
	got, err := ToWords("$5.00")
	if err != nil {
		t.Fatalf("ToWords() failed: %v", err)
	}
	if got != "USD 5.00" {
		t.Errorf("ToWords() = %q, want %q", got, "USD 5.00")
	}
}

func TestSumAny_WithFormat(t *testing.T) {
	out, err := SumAny([]any{"USD 0.10", "USD 0.20"}, WithFormat(ShapeFormat))
	if err != nil {
		t.Fatalf("SumAny() failed: %v", err)
	}
	sh, ok := out.(Shape)
	if !ok {
		t.Fatalf("SumAny() returned %T, want Shape", out)
	}
	if sh.Amount.Cmp(big.NewInt(30)) != 0 {
		t.Errorf("SumAny() amount = %v, want 30", sh.Amount)
	}
}

func TestMultiplyAny_ScalarTypes(t *testing.T) {
	tests := []any{"1.08", 1, int64(1)}
	for _, by := range tests {
		if _, err := MultiplyAny("USD 100.00", by); err != nil {
			t.Errorf("MultiplyAny(by=%v (%T)) failed: %v", by, by, err)
		}
	}
}

func TestDivideAny(t *testing.T) {
	out, err := DivideAny("USD 0.25", 1_000_000)
	if err != nil {
		t.Fatalf("DivideAny() failed: %v", err)
	}
	if out != "USD 0.000_000_250" {
		t.Errorf("DivideAny() = %v, want USD 0.000_000_250", out)
	}
}

func TestAllocateAny(t *testing.T) {
	out, err := AllocateAny("USD 10.00", Partition{Equal: 3}, First)
	if err != nil {
		t.Fatalf("AllocateAny() failed: %v", err)
	}
	if len(out) != 3 || out[0] != "USD 3.34" {
		t.Errorf("AllocateAny() = %v, unexpected", out)
	}
}

func TestSetPrecisionAny_RoundAny(t *testing.T) {
	out, err := SetPrecisionAny("USD 5.555", Centi, WithRound(HalfEven))
	if err != nil {
		t.Fatalf("SetPrecisionAny() failed: %v", err)
	}
	if out != "USD 5.56" {
		t.Errorf("SetPrecisionAny() = %v, want USD 5.56", out)
	}
	out2, err := RoundAny("USD 5.555", Centi, WithRound(HalfEven))
	if err != nil {
		t.Fatalf("RoundAny() failed: %v", err)
	}
	if out2 != out {
		t.Errorf("RoundAny() = %v, want %v", out2, out)
	}
}

func TestAverageAny_StddevAny(t *testing.T) {
	prices := []any{"USD 10.00", "USD 20.00", "USD 30.00"}
	avg, err := AverageAny(prices)
	if err != nil {
		t.Fatalf("AverageAny() failed: %v", err)
	}
	if avg != "USD 20.00" {
		t.Errorf("AverageAny() = %v, want USD 20.00", avg)
	}
	if _, err := StddevAny(prices); err != nil {
		t.Errorf("StddevAny() failed: %v", err)
	}
}

func TestEqualGreaterLesserAny(t *testing.T) {
	eq, err := EqualAny("USD 5.00", "$5.00")
	if err != nil || !eq {
		t.Errorf("EqualAny() = (%v, %v), want (true, nil)", eq, err)
	}
	gt, err := GreaterAny("USD 10.00", "USD 5.00")
	if err != nil || !gt {
		t.Errorf("GreaterAny() = (%v, %v), want (true, nil)", gt, err)
	}
	lt, err := LesserAny("USD 5.00", "USD 10.00")
	if err != nil || !lt {
		t.Errorf("LesserAny() = (%v, %v), want (true, nil)", lt, err)
	}
}

func TestSortedAny(t *testing.T) {
	out, err := SortedAny([]any{"USD 100.00", "USD 9.00", "USD 50.00"}, nil)
	if err != nil {
		t.Fatalf("SortedAny() failed: %v", err)
	}
	want := []any{"USD 9.00", "USD 50.00", "USD 100.00"}
	for i, w := range want {
		if out[i] != w {
			t.Errorf("SortedAny()[%d] = %v, want %v", i, out[i], w)
		}
	}
}

func TestToRat(t *testing.T) {
	if _, err := toRat("not a number"); err == nil {
		t.Errorf("toRat(garbage) succeeded, want InvalidFormat")
	}
	if _, err := toRat(true); err == nil {
		t.Errorf("toRat(bool) succeeded, want InvalidFormat")
	}
	r, err := toRat(1.5)
	if err != nil {
		t.Fatalf("toRat(1.5) failed: %v", err)
	}
	if r.Cmp(big.NewRat(3, 2)) != 0 {
		t.Errorf("toRat(1.5) = %v, want 3/2", r)
	}
}
