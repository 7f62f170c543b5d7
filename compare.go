package money

import (
	"math/big"
	"sort"
)

// Order selects ascending or descending sort direction.
type Order int

const (
	Asc Order = iota
	Desc
)

// Equal reports whether a and b are numerically equal: after normalizing
// to their finer scale, their amounts and currencies match (spec §3, §4.8).
// Equal fails with CurrencyMismatch if the currencies differ.
func Equal(a, b Price) (bool, error) {
	c, err := compare(a, b)
	if err != nil {
		return false, err
	}
	return c == 0, nil
}

// Greater reports whether a > b numerically. It fails with
// CurrencyMismatch if the currencies differ.
func Greater(a, b Price) (bool, error) {
	c, err := compare(a, b)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// Lesser reports whether a < b numerically. It fails with
// CurrencyMismatch if the currencies differ.
func Lesser(a, b Price) (bool, error) {
	c, err := compare(a, b)
	if err != nil {
		return false, err
	}
	return c < 0, nil
}

// compare normalizes a and b to a common scale and returns -1, 0, or +1.
func compare(a, b Price) (int, error) {
	if err := requireSameCurrency("compare", a, b); err != nil {
		return 0, err
	}
	aligned, err := Normalize(a, b)
	if err != nil {
		return 0, err
	}
	return aligned[0].amount.Cmp(&aligned[1].amount), nil
}

// Sorted returns a stable, freshly allocated ordering of prices by
// numeric value (spec §4.8). Equal elements preserve their original
// relative position. Empty and single-element inputs are returned
// unchanged, as a fresh slice. order defaults to Asc. Sorted fails with
// CurrencyMismatch if prices are not all denominated in the same currency.
func Sorted(prices []Price, order ...Order) ([]Price, error) {
	ord := Asc
	if len(order) > 0 {
		ord = order[0]
	}

	out := make([]Price, len(prices))
	copy(out, prices)
	if len(out) < 2 {
		return out, nil
	}

	aligned, err := Normalize(out...)
	if err != nil {
		return nil, err
	}
	keys := make([]*big.Int, len(aligned))
	indices := make([]int, len(aligned))
	for i := range aligned {
		keys[i] = &aligned[i].amount
		indices[i] = i
	}

	sort.SliceStable(indices, func(i, j int) bool {
		c := keys[indices[i]].Cmp(keys[indices[j]])
		if ord == Desc {
			return c > 0
		}
		return c < 0
	})

	sortedOut := make([]Price, len(out))
	for i, idx := range indices {
		sortedOut[i] = out[idx]
	}
	return sortedOut, nil
}
