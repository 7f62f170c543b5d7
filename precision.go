package money

import "math/big"

// SetPrecision rescales p to scale to. Increasing scale (a finer target)
// is always lossless, zero-padding the amount. Decreasing scale (a
// coarser target) rounds via the kernel using mode (default HalfUp)
// (spec §6, "Precision").
func SetPrecision(p Price, to Scale, mode ...Mode) (Price, error) {
	if !to.Valid() {
		return Price{}, newError(InvalidScale, "SetPrecision", to)
	}
	if to.Magnitude() <= p.scale.Magnitude() {
		diff := p.scale.Magnitude() - to.Magnitude()
		amt := new(big.Int).Mul(&p.amount, pow10(diff))
		return p.rescale(amt, to), nil
	}
	diff := to.Magnitude() - p.scale.Magnitude()
	m := resolveMode(mode)
	q := roundDiv(&p.amount, pow10(diff), m)
	return p.rescale(q, to), nil
}

// Round is an alias of [SetPrecision]'s decrease-precision path (spec §6).
func Round(p Price, to Scale, mode ...Mode) (Price, error) {
	return SetPrecision(p, to, mode...)
}
