package money

import "math/big"

// pow10Table holds 10^0..10^12 precomputed once at package init. 12 is the
// largest exponent diff this package ever needs: the widest gap between any
// two of the six built-in scales is Whole (0) to Pico (-12), and Multiply's
// fixed-point capture uses 10^12 directly. The table is read-only after
// init, so it needs no locking even though every operation in this package
// may be called concurrently (spec §5).
var pow10Table = func() [13]*big.Int {
	var t [13]*big.Int
	v := big.NewInt(1)
	ten := big.NewInt(10)
	for i := range t {
		t[i] = new(big.Int).Set(v)
		v.Mul(v, ten)
	}
	return t
}()

// pow10 returns 10^n as a fresh big.Int.
func pow10(n int) *big.Int {
	if n < 0 {
		panic("money: pow10 requires a non-negative exponent")
	}
	if n < len(pow10Table) {
		return new(big.Int).Set(pow10Table[n])
	}
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// Normalize aligns prices — which must already share a currency — to
// their common finest scale (the minimum magnitude among them), without
// loss (spec §4.6). It returns the rescaled prices and that scale.
// Mixed currencies fail with CurrencyMismatch before any rescaling
// occurs. Normalizing a sequence already at its finest scale is a no-op:
// each returned Price is numerically and representationally identical
// to its input.
func Normalize(prices ...Price) ([]Price, error) {
	if len(prices) == 0 {
		return nil, newError(EmptyInput, "Normalize")
	}
	curr := prices[0].currency
	for _, p := range prices[1:] {
		if p.currency != curr {
			return nil, newError(CurrencyMismatch, "Normalize", prices[0], p)
		}
	}
	scales := make([]Scale, len(prices))
	for i, p := range prices {
		scales[i] = p.scale
	}
	target := finestScale(scales...)

	out := make([]Price, len(prices))
	for i, p := range prices {
		diff := p.scale.Magnitude() - target.Magnitude() // always >= 0
		if diff == 0 {
			out[i] = p
			continue
		}
		scaled := new(big.Int).Mul(&p.amount, pow10(diff))
		out[i] = p.rescale(scaled, target)
	}
	return out, nil
}
