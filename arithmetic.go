package money

import "math/big"

// Sum adds one or more prices (spec §4.7). All operands must share a
// currency. Sum fails with EmptyInput given no prices, and with
// CurrencyMismatch given mixed currencies. The result is normalized to
// the finest scale among the operands.
func Sum(prices ...Price) (Price, error) {
	if len(prices) == 0 {
		return Price{}, newError(EmptyInput, "Sum")
	}
	aligned, err := Normalize(prices...)
	if err != nil {
		return Price{}, requalify("Sum", err)
	}
	total := new(big.Int)
	for _, p := range aligned {
		total.Add(total, &p.amount)
	}
	return aligned[0].withAmount(total), nil
}

// Subtract returns a - b (spec §4.7). Subtract behaves as Sum over
// {a, -b}: the result's scale is the finer of the two inputs. Subtract
// fails with CurrencyMismatch if a and b use different currencies.
func Subtract(a, b Price) (Price, error) {
	if err := requireSameCurrency("Subtract", a, b); err != nil {
		return Price{}, err
	}
	neg := b.withAmount(new(big.Int).Neg(&b.amount))
	return Sum(a, neg)
}

// Multiply returns p scaled by the real factor k (spec §4.7). k is
// captured at 12-digit precision (s = round(k * 10^12)), multiplied
// through as an exact big integer, then rounded back by mode (default
// HalfUp). The output scale equals p's input scale.
func Multiply(p Price, k *big.Rat, mode ...Mode) (Price, error) {
	m := resolveMode(mode)
	s := ratToFixed12(k)
	product := new(big.Int).Mul(&p.amount, s)
	divisor := pow10(12)
	rounded := roundDiv(product, divisor, m)
	return p.withAmount(rounded), nil
}

// ratToFixed12 returns round(k * 10^12) as a big.Int, using half-to-even
// on the fixed-point capture itself so the captured scalar is unbiased
// before it ever reaches the caller-selected rounding mode.
func ratToFixed12(k *big.Rat) *big.Int {
	scaled := new(big.Rat).Mul(k, new(big.Rat).SetInt(pow10(12)))
	num := scaled.Num()
	den := scaled.Denom()
	if den.Cmp(big.NewInt(1)) == 0 {
		return new(big.Int).Set(num)
	}
	return roundDiv(num, den, HalfEven)
}

// Divide returns p divided by the non-zero integer divisor v (spec
// §4.7). v = 0 fails with DivideByZero. The output scale is chosen from
// |v| to preserve meaningful precision:
//
//	|v| < 100:                     input scale
//	100 <= |v| < 1_000_000:        milli
//	1_000_000 <= |v| < 1e9:        nano
//	|v| >= 1e9:                    pico
func Divide(p Price, v int64, mode ...Mode) (Price, error) {
	if v == 0 {
		return Price{}, newError(DivideByZero, "Divide", p)
	}
	m := resolveMode(mode)
	outScale := divideOutputScale(v, p.scale)

	// outScale is always at least as fine as p.scale, so this difference
	// is never negative.
	diff := p.scale.Magnitude() - outScale.Magnitude()
	amount := new(big.Int).Set(&p.amount)
	if diff > 0 {
		amount.Mul(amount, pow10(diff))
	}

	negative := v < 0
	divisor := new(big.Int).Abs(big.NewInt(v))

	quotient := roundDiv(amount, divisor, m)
	if negative {
		quotient.Neg(quotient)
	}
	return p.rescale(quotient, outScale), nil
}

func divideOutputScale(v int64, input Scale) Scale {
	// v may be math.MinInt64, whose negation overflows back to itself as an
	// int64; go through big.Int so the magnitude comparison below is exact.
	abs := new(big.Int).Abs(big.NewInt(v))
	switch {
	case abs.Cmp(big.NewInt(100)) < 0:
		return input
	case abs.Cmp(big.NewInt(1_000_000)) < 0:
		return finer(input, Milli)
	case abs.Cmp(big.NewInt(1_000_000_000)) < 0:
		return finer(input, Nano)
	default:
		return finer(input, Pico)
	}
}

func resolveMode(mode []Mode) Mode {
	if len(mode) > 0 {
		return mode[0]
	}
	return HalfUp
}

// requalify rewrites the Op field of internal errors raised by a helper
// (e.g. Normalize) so the caller sees the public operation that failed.
func requalify(op string, err error) error {
	if e, ok := err.(*Error); ok {
		e.Op = op
		return e
	}
	return err
}

// Average returns the arithmetic mean of prices (spec §4.7). Average
// fails with EmptyInput given no prices. The sum of amounts is divided
// by count using truncating integer division (toward zero), at the
// finest scale among the operands.
func Average(prices ...Price) (Price, error) {
	if len(prices) == 0 {
		return Price{}, newError(EmptyInput, "Average")
	}
	aligned, err := Normalize(prices...)
	if err != nil {
		return Price{}, requalify("Average", err)
	}
	total := new(big.Int)
	for _, p := range aligned {
		total.Add(total, &p.amount)
	}
	mean := new(big.Int).Quo(total, big.NewInt(int64(len(aligned))))
	return aligned[0].withAmount(mean), nil
}

// Stddev returns the population standard deviation of prices (spec
// §4.7). Stddev fails with EmptyInput given no prices; a single price
// yields zero at its own scale. Mean and variance use truncating integer
// division; the result is the integer square root of the variance,
// computed by a monotone-decreasing Newton's method iteration. The
// output scale is the finest scale among the operands.
func Stddev(prices ...Price) (Price, error) {
	if len(prices) == 0 {
		return Price{}, newError(EmptyInput, "Stddev")
	}
	if len(prices) == 1 {
		return prices[0].withAmount(new(big.Int)), nil
	}
	aligned, err := Normalize(prices...)
	if err != nil {
		return Price{}, requalify("Stddev", err)
	}
	n := big.NewInt(int64(len(aligned)))
	total := new(big.Int)
	for _, p := range aligned {
		total.Add(total, &p.amount)
	}
	mean := new(big.Int).Quo(total, n)

	sumSq := new(big.Int)
	diff := new(big.Int)
	for _, p := range aligned {
		diff.Sub(&p.amount, mean)
		diff.Mul(diff, diff)
		sumSq.Add(sumSq, diff)
	}
	variance := new(big.Int).Quo(sumSq, n)
	return aligned[0].withAmount(integerSqrt(variance)), nil
}

// integerSqrt computes floor(sqrt(n)) via Newton's method, starting from
// n itself and iterating while the estimate strictly decreases (spec
// §4.7).
func integerSqrt(n *big.Int) *big.Int {
	if n.Sign() <= 0 {
		return new(big.Int)
	}
	x := new(big.Int).Set(n)
	two := big.NewInt(2)
	for {
		next := new(big.Int).Quo(n, x)
		next.Add(next, x)
		next.Quo(next, two)
		if next.Cmp(x) >= 0 {
			return x
		}
		x = next
	}
}
