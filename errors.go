package money

import "fmt"

// Kind identifies the category of a failure raised by this package.
// The taxonomy is a single flat set, per spec §7.
type Kind int

const (
	// InvalidFormat indicates a string matched none of the recognized
	// formats, or a [Shape] carried a non-integer amount or a missing field.
	InvalidFormat Kind = iota
	// CurrencyMismatch indicates a binary or n-ary operation was given
	// operands denominated in different currencies, or a symbol-form
	// input conflicted with an explicitly supplied currency.
	CurrencyMismatch
	// EmptyInput indicates an operation that forbids it (sum, average,
	// stddev, normalize) was given an empty sequence. Sorting an empty
	// sequence is not an error.
	EmptyInput
	// DivideByZero indicates a divide-by-scalar operation was given a
	// zero divisor.
	DivideByZero
	// InvalidPartition indicates an allocation was given a non-positive
	// part count, an empty ratio list, a negative ratio, or all-zero ratios.
	InvalidPartition
	// InvalidScale indicates a [Shape] carried a scale token outside the
	// closed set of six built-in scales.
	InvalidScale
)

func (k Kind) String() string {
	switch k {
	case InvalidFormat:
		return "InvalidFormat"
	case CurrencyMismatch:
		return "CurrencyMismatch"
	case EmptyInput:
		return "EmptyInput"
	case DivideByZero:
		return "DivideByZero"
	case InvalidPartition:
		return "InvalidPartition"
	case InvalidScale:
		return "InvalidScale"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the single error type raised by this package. Every failure is
// immediate and structural: no operation retries or returns a partial
// result, and every Error carries the offending input(s) as a diagnostic
// payload (spec §4.11, §7).
type Error struct {
	Kind   Kind
	Op     string // the operation that failed, e.g. "ParsePrice", "Sum"
	Inputs []any  // the offending input(s), for diagnostics
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("money: %s: %s", e.Op, e.Kind)
	if len(e.Inputs) > 0 {
		msg += fmt.Sprintf(" %v", e.Inputs)
	}
	return msg
}

// Is reports whether target is an *Error of the same [Kind]. This lets
// callers write errors.Is(err, money.InvalidFormat) style checks against
// the sentinel-less Kind values via [KindError].
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// KindError returns a bare *Error carrying only a [Kind], suitable for use
// with errors.Is(err, money.KindError(money.CurrencyMismatch)).
func KindError(k Kind) *Error {
	return &Error{Kind: k}
}

func newError(kind Kind, op string, inputs ...any) *Error {
	return &Error{Kind: kind, Op: op, Inputs: inputs}
}
