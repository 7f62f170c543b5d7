package money

import (
	"math/big"
	"reflect"
	"testing"
)

// allocate({of: "USD 10.00", into: {equal: 3}, remainder: First}) ==
// ["USD 3.34","USD 3.33","USD 3.33"] and its elements sum to "USD 10.00"
// (spec concrete scenario 5).
func TestAllocate_EqualFirst(t *testing.T) {
	p := MustParsePrice("USD 10.00")
	parts, err := Allocate(p, Partition{Equal: 3}, First)
	if err != nil {
		t.Fatalf("Allocate() failed: %v", err)
	}
	want := []string{"USD 3.34", "USD 3.33", "USD 3.33"}
	for i, w := range want {
		if got := FormatCodeForm(parts[i]); got != w {
			t.Errorf("Allocate()[%d] = %q, want %q", i, got, w)
		}
	}
	assertSumsBack(t, p, parts)
}

func TestAllocate_EqualLast(t *testing.T) {
	p := MustParsePrice("USD 10.00")
	parts, err := Allocate(p, Partition{Equal: 3}, Last)
	if err != nil {
		t.Fatalf("Allocate() failed: %v", err)
	}
	want := []string{"USD 3.33", "USD 3.33", "USD 3.34"}
	for i, w := range want {
		if got := FormatCodeForm(parts[i]); got != w {
			t.Errorf("Allocate()[%d] = %q, want %q", i, got, w)
		}
	}
	assertSumsBack(t, p, parts)
}

func TestAllocate_Ratios(t *testing.T) {
	p := MustParsePrice("USD 10.00")
	parts, err := Allocate(p, Partition{Ratios: []int64{1, 1, 1}}, Largest)
	if err != nil {
		t.Fatalf("Allocate() failed: %v", err)
	}
	if len(parts) != 3 {
		t.Fatalf("Allocate() returned %d parts, want 3", len(parts))
	}
	assertSumsBack(t, p, parts)
}

func TestAllocate_RatiosWeighted(t *testing.T) {
	p := MustParsePrice("USD 100.00")
	parts, err := Allocate(p, Partition{Ratios: []int64{1, 2, 3}}, First)
	if err != nil {
		t.Fatalf("Allocate() failed: %v", err)
	}
	// base shares: 1666, 3333, 5000 (cents); remainder = 10000-9999 = 1.
	want := []string{"USD 16.67", "USD 33.33", "USD 50.00"}
	for i, w := range want {
		if got := FormatCodeForm(parts[i]); got != w {
			t.Errorf("Allocate()[%d] = %q, want %q", i, got, w)
		}
	}
	assertSumsBack(t, p, parts)
}

func TestAllocate_Random_Deterministic(t *testing.T) {
	p := MustParsePrice("USD 10.00")
	a, err := Allocate(p, Partition{Equal: 7}, Random)
	if err != nil {
		t.Fatalf("Allocate() failed: %v", err)
	}
	b, err := Allocate(p, Partition{Equal: 7}, Random)
	if err != nil {
		t.Fatalf("Allocate() failed: %v", err)
	}
	for i := range a {
		if !reflect.DeepEqual(a[i], b[i]) {
			t.Errorf("Allocate(Random) is not deterministic: [%d] = %v vs %v", i, a[i], b[i])
		}
	}
	assertSumsBack(t, p, a)
}

func TestAllocate_NegativeAmount(t *testing.T) {
	p := MustParsePrice("USD -10.00")
	parts, err := Allocate(p, Partition{Equal: 3}, First)
	if err != nil {
		t.Fatalf("Allocate() failed: %v", err)
	}
	assertSumsBack(t, p, parts)
}

func TestAllocate_InvalidPartition(t *testing.T) {
	p := MustParsePrice("USD 10.00")
	tests := []Partition{
		{Equal: 0},
		{Ratios: nil},
		{Ratios: []int64{-1, 2}},
		{Ratios: []int64{0, 0}},
	}
	for _, partition := range tests {
		if _, err := Allocate(p, partition, First); err == nil {
			t.Errorf("Allocate(%+v) succeeded, want InvalidPartition", partition)
		}
	}
}

func assertSumsBack(t *testing.T, p Price, parts []Price) {
	t.Helper()
	total := new(big.Int)
	for _, part := range parts {
		total.Add(total, part.Amount())
	}
	if total.Cmp(p.Amount()) != 0 {
		t.Errorf("sum(allocate(p)) = %v, want %v", total, p.Amount())
	}
}
