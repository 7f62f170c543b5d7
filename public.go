package money

import "math/big"

// Format selects the shape of a value returned by the orchestrated
// entry points in this file (spec §6).
type Format int

const (
	// Words is the code-form string, e.g. "USD 50.37". It is the default.
	Words Format = iota
	// ShapeFormat returns a [Shape] triple.
	ShapeFormat
)

// options carries the two cross-cutting knobs every orchestrated
// operation accepts: the output [Format] and the rounding [Mode] used by
// any implicit precision change (spec §6).
type options struct {
	format Format
	round  Mode
}

// Option configures an orchestrated operation.
type Option func(*options)

// WithFormat selects the output format (default [Words]).
func WithFormat(f Format) Option {
	return func(o *options) { o.format = f }
}

// WithRound selects the rounding mode used for any implicit precision
// change (default [HalfUp]).
func WithRound(m Mode) Option {
	return func(o *options) { o.round = m }
}

func resolveOptions(opts []Option) options {
	o := options{format: Words, round: HalfUp}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Resolve lifts x — a [Price], a code-form or symbol-form string, or a
// [Shape] — to a structured Price (spec §4.10, the "parse" state
// machine's Start state). currency, if given, disambiguates a
// symbol-form string or cross-checks a Shape's currency field.
func Resolve(x any, currency ...Currency) (Price, error) {
	switch v := x.(type) {
	case Price:
		return v, nil
	case string:
		return ParsePrice(v, currency...)
	case Shape:
		return resolveShape(v, currency...)
	case *Shape:
		if v == nil {
			return Price{}, newError(InvalidFormat, "Resolve", x)
		}
		return resolveShape(*v, currency...)
	default:
		return Price{}, newError(InvalidFormat, "Resolve", x)
	}
}

func resolveShape(sh Shape, currency ...Currency) (Price, error) {
	if !IsShape(sh) {
		return Price{}, newError(InvalidFormat, "Resolve", sh)
	}
	if len(currency) > 0 && currency[0] != "" && normalizeCode(currency[0]) != normalizeCode(sh.Currency) {
		return Price{}, newError(CurrencyMismatch, "Resolve", sh, currency[0])
	}
	return fromShape(sh)
}

// output renders p per format: [Words] as a code-form string, or
// [ShapeFormat] as a [Shape].
func output(p Price, format Format) any {
	if format == ShapeFormat {
		return AsShape(p)
	}
	return AsWords(p)
}

// AsWords returns p's lossless code-form string (spec §6, "Cast").
func AsWords(p Price) string { return FormatCodeForm(p) }

// AsHuman returns p's display-oriented symbol-form string.
func AsHuman(p Price) string { return FormatSymbolForm(p) }

// AsShape returns p as a structured [Shape].
func AsShape(p Price) Shape {
	s := p.scale
	return Shape{Amount: p.Amount(), Currency: p.currency, Scale: &s}
}

// ToWords normalizes any accepted input format to its code-form string,
// accepting an optional currency override for symbol-form disambiguation
// (spec §6, "a normalize-to-words helper that also accepts a currency
// override").
func ToWords(x any, currency ...Currency) (string, error) {
	p, err := Resolve(x, currency...)
	if err != nil {
		return "", err
	}
	return AsWords(p), nil
}

// SumAny sums prices, accepting any of the three input formats, and
// renders the result per opts (spec §6, "Arithmetic").
func SumAny(prices []any, opts ...Option) (any, error) {
	o := resolveOptions(opts)
	parsed, err := resolveAll("Sum", prices)
	if err != nil {
		return nil, err
	}
	p, err := Sum(parsed...)
	if err != nil {
		return nil, err
	}
	return output(p, o.format), nil
}

// SubtractAny returns a - b, accepting any of the three input formats.
func SubtractAny(a, b any, opts ...Option) (any, error) {
	o := resolveOptions(opts)
	pa, err := Resolve(a)
	if err != nil {
		return nil, err
	}
	pb, err := Resolve(b)
	if err != nil {
		return nil, err
	}
	p, err := Subtract(pa, pb)
	if err != nil {
		return nil, err
	}
	return output(p, o.format), nil
}

// MultiplyAny multiplies of by the scalar by, which may be a string,
// float64, int, int64, or *big.Rat.
func MultiplyAny(of any, by any, opts ...Option) (any, error) {
	o := resolveOptions(opts)
	p, err := Resolve(of)
	if err != nil {
		return nil, err
	}
	k, err := toRat(by)
	if err != nil {
		return nil, err
	}
	result, err := Multiply(p, k, o.round)
	if err != nil {
		return nil, err
	}
	return output(result, o.format), nil
}

// DivideAny divides of by the non-zero integer divisor by.
func DivideAny(of any, by int64, opts ...Option) (any, error) {
	o := resolveOptions(opts)
	p, err := Resolve(of)
	if err != nil {
		return nil, err
	}
	result, err := Divide(p, by, o.round)
	if err != nil {
		return nil, err
	}
	return output(result, o.format), nil
}

// AllocateAny splits of per partition and policy, accepting any input
// format, and renders each part per opts.
func AllocateAny(of any, partition Partition, policy RemainderPolicy, opts ...Option) ([]any, error) {
	o := resolveOptions(opts)
	p, err := Resolve(of)
	if err != nil {
		return nil, err
	}
	parts, err := Allocate(p, partition, policy)
	if err != nil {
		return nil, err
	}
	out := make([]any, len(parts))
	for i, part := range parts {
		out[i] = output(part, o.format)
	}
	return out, nil
}

// SetPrecisionAny changes of's scale, accepting any input format.
func SetPrecisionAny(of any, to Scale, opts ...Option) (any, error) {
	o := resolveOptions(opts)
	p, err := Resolve(of)
	if err != nil {
		return nil, err
	}
	result, err := SetPrecision(p, to, o.round)
	if err != nil {
		return nil, err
	}
	return output(result, o.format), nil
}

// RoundAny is an alias of [SetPrecisionAny]'s decrease-precision path.
func RoundAny(of any, to Scale, opts ...Option) (any, error) {
	return SetPrecisionAny(of, to, opts...)
}

// AverageAny returns the arithmetic mean of prices, accepting any input format.
func AverageAny(prices []any, opts ...Option) (any, error) {
	o := resolveOptions(opts)
	parsed, err := resolveAll("Average", prices)
	if err != nil {
		return nil, err
	}
	p, err := Average(parsed...)
	if err != nil {
		return nil, err
	}
	return output(p, o.format), nil
}

// StddevAny returns the population standard deviation of prices,
// accepting any input format.
func StddevAny(prices []any, opts ...Option) (any, error) {
	o := resolveOptions(opts)
	parsed, err := resolveAll("Stddev", prices)
	if err != nil {
		return nil, err
	}
	p, err := Stddev(parsed...)
	if err != nil {
		return nil, err
	}
	return output(p, o.format), nil
}

// EqualAny, GreaterAny, and LesserAny compare two inputs in any of the
// three accepted formats.
func EqualAny(a, b any) (bool, error) {
	pa, pb, err := resolvePair(a, b)
	if err != nil {
		return false, err
	}
	return Equal(pa, pb)
}

func GreaterAny(a, b any) (bool, error) {
	pa, pb, err := resolvePair(a, b)
	if err != nil {
		return false, err
	}
	return Greater(pa, pb)
}

func LesserAny(a, b any) (bool, error) {
	pa, pb, err := resolvePair(a, b)
	if err != nil {
		return false, err
	}
	return Lesser(pa, pb)
}

// SortedAny sorts prices, accepting any of the three input formats, and
// renders each result per opts.
func SortedAny(prices []any, order []Order, opts ...Option) ([]any, error) {
	o := resolveOptions(opts)
	parsed, err := resolveAll("Sorted", prices)
	if err != nil {
		return nil, err
	}
	sorted, err := Sorted(parsed, order...)
	if err != nil {
		return nil, err
	}
	out := make([]any, len(sorted))
	for i, p := range sorted {
		out[i] = output(p, o.format)
	}
	return out, nil
}

func resolveAll(op string, inputs []any) ([]Price, error) {
	out := make([]Price, len(inputs))
	for i, x := range inputs {
		p, err := Resolve(x)
		if err != nil {
			return nil, requalify(op, err)
		}
		out[i] = p
	}
	return out, nil
}

func resolvePair(a, b any) (Price, Price, error) {
	pa, err := Resolve(a)
	if err != nil {
		return Price{}, Price{}, err
	}
	pb, err := Resolve(b)
	if err != nil {
		return Price{}, Price{}, err
	}
	return pa, pb, nil
}

// toRat converts a scalar factor to an exact *big.Rat. String inputs are
// parsed exactly (e.g. "1.08"); float64 inputs are captured via
// [big.Rat.SetFloat64], which is exact for the underlying binary value
// but may not equal the intended decimal literal — callers who need
// exact decimal fidelity should pass a string.
func toRat(by any) (*big.Rat, error) {
	switch v := by.(type) {
	case *big.Rat:
		return v, nil
	case string:
		r, ok := new(big.Rat).SetString(v)
		if !ok {
			return nil, newError(InvalidFormat, "Multiply", v)
		}
		return r, nil
	case float64:
		r := new(big.Rat).SetFloat64(v)
		if r == nil {
			return nil, newError(InvalidFormat, "Multiply", v)
		}
		return r, nil
	case int:
		return new(big.Rat).SetInt64(int64(v)), nil
	case int64:
		return new(big.Rat).SetInt64(v), nil
	default:
		return nil, newError(InvalidFormat, "Multiply", by)
	}
}
