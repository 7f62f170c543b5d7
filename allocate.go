package money

import (
	"math/big"
	"math/rand"
	"sort"
)

// RemainderPolicy selects how an allocation's indivisible remainder is
// distributed across the parts (spec §4.7).
type RemainderPolicy int

const (
	// First adds the remainder to the earliest indices.
	First RemainderPolicy = iota
	// Last adds the remainder to the latest indices.
	Last
	// Largest adds the remainder to the indices with the largest
	// fractional share, breaking ties in First order.
	Largest
	// Random distributes the remainder via a deterministic pseudo-shuffle
	// seeded from the absolute amount being allocated.
	Random
)

// Partition describes how to split a Price: either into n equal parts,
// or into parts proportional to a list of non-negative ratios whose sum
// is positive (spec §4.7). Exactly one of Equal or Ratios must be set.
type Partition struct {
	Equal  int
	Ratios []int64
}

// Allocate splits p into the parts described by partition, distributing
// the indivisible remainder per policy. The returned prices always sum
// bit-exactly to p (spec §4.7, "Sum conservation under allocation").
//
// Allocate fails with InvalidPartition given n < 1, an empty ratio list,
// a negative ratio, or an all-zero ratio list.
func Allocate(p Price, partition Partition, policy RemainderPolicy) ([]Price, error) {
	switch {
	case partition.Equal > 0:
		return allocateEqual(p, partition.Equal, policy)
	case len(partition.Ratios) > 0:
		return allocateRatios(p, partition.Ratios, policy)
	default:
		return nil, newError(InvalidPartition, "Allocate", partition)
	}
}

func allocateEqual(p Price, n int, policy RemainderPolicy) ([]Price, error) {
	if n < 1 {
		return nil, newError(InvalidPartition, "Allocate", n)
	}
	big_n := big.NewInt(int64(n))
	base := new(big.Int).Quo(&p.amount, big_n)
	remainder := new(big.Int).Sub(&p.amount, new(big.Int).Mul(base, big_n))

	shares := make([]*big.Int, n)
	for i := range shares {
		shares[i] = new(big.Int).Set(base)
	}

	// Every index ties (equal division), so Largest degrades to First
	// order, per spec §4.7.
	order := firstOrder(n)
	if policy == Last {
		order = lastOrder(n)
	} else if policy == Random {
		order = randomOrder(n, &p.amount)
	}
	applyRemainder(shares, remainder, order)

	return toPrices(p, shares), nil
}

func allocateRatios(p Price, ratios []int64, policy RemainderPolicy) ([]Price, error) {
	sum := int64(0)
	for _, r := range ratios {
		if r < 0 {
			return nil, newError(InvalidPartition, "Allocate", ratios)
		}
		sum += r
	}
	if sum == 0 {
		return nil, newError(InvalidPartition, "Allocate", ratios)
	}
	sumR := big.NewInt(sum)

	n := len(ratios)
	shares := make([]*big.Int, n)
	remainders := make([]*big.Int, n) // exact per-index remainder numerator
	total := new(big.Int)
	for i, r := range ratios {
		num := new(big.Int).Mul(&p.amount, big.NewInt(r))
		q := new(big.Int)
		rem := new(big.Int)
		q.QuoRem(num, sumR, rem)
		shares[i] = q
		remainders[i] = rem
		total.Add(total, q)
	}
	remainder := new(big.Int).Sub(&p.amount, total)

	var order []int
	switch policy {
	case Last:
		order = lastOrder(n)
	case Largest:
		order = largestOrder(remainders)
	case Random:
		order = randomOrder(n, &p.amount)
	default:
		order = firstOrder(n)
	}
	applyRemainder(shares, remainder, order)

	return toPrices(p, shares), nil
}

// applyRemainder increments shares at the first |remainder| positions of
// order by sign(remainder), one unit each — the remainder is always
// bounded by the number of parts (spec §4.7, step 3).
func applyRemainder(shares []*big.Int, remainder *big.Int, order []int) {
	count := new(big.Int).Abs(remainder).Int64()
	if count == 0 {
		return
	}
	step := big.NewInt(1)
	if remainder.Sign() < 0 {
		step = big.NewInt(-1)
	}
	for i := int64(0); i < count; i++ {
		idx := order[i]
		shares[idx].Add(shares[idx], step)
	}
}

func firstOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}

func lastOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = n - 1 - i
	}
	return order
}

// largestOrder sorts indices by descending |remainder numerator|,
// breaking ties in First order (spec §4.7, "Largest").
func largestOrder(remainders []*big.Int) []int {
	order := firstOrder(len(remainders))
	abs := make([]*big.Int, len(remainders))
	for i, r := range remainders {
		abs[i] = new(big.Int).Abs(r)
	}
	sort.SliceStable(order, func(i, j int) bool {
		return abs[order[i]].Cmp(abs[order[j]]) > 0
	})
	return order
}

// randomOrder produces a deterministic pseudo-shuffle of [0,n) seeded
// from the absolute value of amount, so that identical inputs always
// produce an identical distribution (spec §5, §4.7 "Random").
func randomOrder(n int, amount *big.Int) []int {
	order := firstOrder(n)
	seed := new(big.Int).Abs(amount)
	seed.Mod(seed, big.NewInt(1<<62))
	rnd := rand.New(rand.NewSource(seed.Int64()))
	rnd.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })
	return order
}

func toPrices(p Price, shares []*big.Int) []Price {
	out := make([]Price, len(shares))
	for i, s := range shares {
		out[i] = p.withAmount(s)
	}
	return out
}
