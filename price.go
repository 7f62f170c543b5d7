package money

import (
	"math/big"
)

// Price is the structured representation of a monetary value: an exact
// signed integer amount of minor units, denominated in a currency, at a
// given scale (spec §3). Its zero value has an empty currency and [Whole]
// scale; prefer [NewPrice], [ParsePrice], or [Resolve] over relying on it.
//
// Price is conceptually immutable. Every method and every package-level
// operation returns a fresh Price; the amount field is never mutated in
// place once constructed. Price is safe for concurrent use by multiple
// goroutines, as it carries no mutable shared state (spec §5).
type Price struct {
	currency Currency
	scale    Scale
	amount   big.Int
}

// NewPrice returns a Price with the given currency, scale, and amount in
// minor units. The scale is preserved exactly as given — NewPrice never
// normalizes to the currency default; that only happens in the parser
// (spec §3, "Scale is always preserved as-is when a structured input is
// passed through unchanged").
func NewPrice(currency Currency, scale Scale, amount *big.Int) (Price, error) {
	if !isValidCurrencyCode(string(currency)) {
		return Price{}, newError(InvalidFormat, "NewPrice", currency)
	}
	if !scale.Valid() {
		return Price{}, newError(InvalidScale, "NewPrice", scale)
	}
	p := Price{currency: normalizeCode(currency), scale: scale}
	if amount != nil {
		p.amount.Set(amount)
	}
	return p, nil
}

// MustNewPrice is like [NewPrice] but panics on error. It simplifies safe
// initialization of global variables holding prices, mirroring the
// teacher's MustParseAmount / MustParseCurr convention.
func MustNewPrice(currency Currency, scale Scale, amount *big.Int) Price {
	p, err := NewPrice(currency, scale, amount)
	if err != nil {
		panic(err)
	}
	return p
}

// Currency returns the price's currency.
func (p Price) Currency() Currency { return p.currency }

// Scale returns the price's scale.
func (p Price) Scale() Scale { return p.scale }

// Amount returns a copy of the price's amount in minor units. Mutating
// the returned *big.Int does not affect p.
func (p Price) Amount() *big.Int {
	return new(big.Int).Set(&p.amount)
}

// Sign returns -1, 0, or +1 according to whether the amount is negative,
// zero, or positive.
func (p Price) Sign() int { return p.amount.Sign() }

// IsZero reports whether the amount is zero.
func (p Price) IsZero() bool { return p.amount.Sign() == 0 }

// String implements [fmt.Stringer], returning p's code-form string.
func (p Price) String() string { return FormatCodeForm(p) }

// SameCurrency reports whether p and other are denominated in the same currency.
func (p Price) SameCurrency(other Price) bool {
	return p.currency == other.currency
}

// withAmount returns a fresh Price sharing p's currency and scale, with
// the given amount.
func (p Price) withAmount(amount *big.Int) Price {
	out := Price{currency: p.currency, scale: p.scale}
	out.amount.Set(amount)
	return out
}

// rescale returns a fresh Price with the given amount and scale.
func (p Price) rescale(amount *big.Int, scale Scale) Price {
	out := Price{currency: p.currency, scale: scale}
	out.amount.Set(amount)
	return out
}

// requireSameCurrency returns a *Error if p and other use different
// currencies. Every binary operation in this package calls this first.
func requireSameCurrency(op string, p, other Price) error {
	if !p.SameCurrency(other) {
		return newError(CurrencyMismatch, op, p, other)
	}
	return nil
}
