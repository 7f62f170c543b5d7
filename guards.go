package money

import "math/big"

// Shape is the structured numeric input form (spec §3, "Shape"): a plain
// triple of amount, currency, and an optional scale. Scale is a pointer
// so that "absent" is distinguishable from "Whole": per spec §9's
// resolved open question, an absent Scale always canonicalizes to the
// currency's default scale rather than being left unset.
type Shape struct {
	Amount   *big.Int
	Currency Currency
	Scale    *Scale
}

// IsShape reports whether x is a [Shape] (or *Shape) carrying an exact
// big-integer amount and a syntactically valid currency, with a scale
// that — if present — names one of the six known scales (spec §4.9).
func IsShape(x any) bool {
	_, ok := asShape(x)
	return ok
}

// asShape normalizes x to a Shape value if x is a Shape or *Shape
// satisfying IsShape's contract.
func asShape(x any) (Shape, bool) {
	var sh Shape
	switch v := x.(type) {
	case Shape:
		sh = v
	case *Shape:
		if v == nil {
			return Shape{}, false
		}
		sh = *v
	default:
		return Shape{}, false
	}
	if sh.Amount == nil {
		return Shape{}, false
	}
	if !isValidCurrencyCode(string(sh.Currency)) {
		return Shape{}, false
	}
	if sh.Scale != nil && !sh.Scale.Valid() {
		return Shape{}, false
	}
	return sh, true
}

// IsCodeForm and IsSymbolForm are defined in parse.go.

// IsPrice reports whether x is a [Price], a code-form or symbol-form
// string, or a valid [Shape] — i.e. any of the three formats this
// package accepts as input (spec §4.9).
func IsPrice(x any) bool {
	switch v := x.(type) {
	case Price:
		return true
	case string:
		return IsCodeForm(v) || IsSymbolForm(v)
	default:
		return IsShape(x)
	}
}

// AssureCodeForm fails with InvalidFormat unless s is code-form.
func AssureCodeForm(s string) error {
	if !IsCodeForm(s) {
		return newError(InvalidFormat, "AssureCodeForm", s)
	}
	return nil
}

// AssureSymbolForm fails with InvalidFormat unless s is symbol-form.
func AssureSymbolForm(s string) error {
	if !IsSymbolForm(s) {
		return newError(InvalidFormat, "AssureSymbolForm", s)
	}
	return nil
}

// AssureShape fails with InvalidFormat unless x is a valid [Shape].
func AssureShape(x any) error {
	if !IsShape(x) {
		return newError(InvalidFormat, "AssureShape", x)
	}
	return nil
}

// AssurePrice fails with InvalidFormat unless x is a [Price] or one of
// the two other accepted input formats.
func AssurePrice(x any) error {
	if !IsPrice(x) {
		return newError(InvalidFormat, "AssurePrice", x)
	}
	return nil
}

// fromShape lowers a valid Shape to a Price, resolving an absent Scale to
// the currency's default (spec §9, shape-input exponent retention).
func fromShape(sh Shape) (Price, error) {
	scale := DefaultScaleFor(sh.Currency)
	if sh.Scale != nil {
		scale = *sh.Scale
	}
	return NewPrice(sh.Currency, scale, sh.Amount)
}
