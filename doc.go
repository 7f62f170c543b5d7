/*
Package money implements a currency-aware monetary value, its arithmetic,
and its three interchangeable textual representations.

# Representation

[Price] is a struct with three fields. Its zero value has an empty
currency code and [Whole] scale; use [NewPrice], [ParsePrice], or
[Resolve] to build a validated value instead of relying on the zero value.

  - Currency: an uppercase three-letter [Currency] code. Unlike a closed,
    generated enumeration, unknown codes (custom tokens, crypto tickers)
    are accepted throughout the package.
  - Scale: one of six built-in [Scale] values — [Whole], [Centi], [Milli],
    [Micro], [Nano], [Pico] — with magnitudes 0, -2, -3, -6, -9, -12.
  - Amount: an arbitrary-precision [math/big.Int] expressing the value in
    minor units at the given scale. The displayed value always equals
    amount × 10^(scale magnitude).

Floating point is never used to hold a monetary value; see "Design notes"
below for why this package uses [math/big.Int] rather than a
fixed-precision decimal type.

A Price may be supplied to, or produced by, any operation in one of three
interchangeable formats:

  - Code-form ("words"), e.g. "USD 1_000_000.00" — lossless, with
    underscore-grouped digits and an explicit three-letter currency.
  - Symbol-form ("human"), e.g. "$1,000,000.00" — display-oriented, with
    comma-grouped digits and a currency symbol resolved from a small
    built-in table.
  - [Shape] — a structured (amount, currency, scale) triple.

[ParsePrice] lifts a code-form or symbol-form string to a Price.
[FormatCodeForm] and [FormatSymbolForm] lower a Price back to a string.
[Resolve] accepts any of the three formats uniformly, which is what every
orchestrated entry point in this package (SumAny, DivideAny, and so on) uses
internally.

# Arithmetic

Binary operations — [Sum], [Subtract], [Equal], [Greater], [Lesser] —
require operand currencies to match; a mismatch returns an [Error] of
[Kind] CurrencyMismatch. Operations on multiple operands first
[Normalize] them to their common finest scale, which is always a
lossless rescale (spec: the exponent difference between an operand's
scale and the finest scale is never negative).

[Multiply] and [Divide] change an amount's magnitude and therefore may
require rounding; both accept a [Mode], defaulting to [HalfUp]. [Divide]
additionally auto-selects an output scale from the magnitude of its
divisor, so that dividing by a very large number does not collapse the
result to zero. [Allocate] splits a Price into parts that always sum
back to the original, distributing the indivisible remainder according
to a [RemainderPolicy].

[Average] and [Stddev] (population form) operate over a non-empty
sequence of same-currency Prices.

# Rounding

The rounding kernel ([Mode]) implements five IEEE-754-style disciplines:
[Floor], [Ceil], [HalfUp], [HalfDown], and [HalfEven]. All five are
derived from a single truncating big-integer division plus a doubled
remainder comparison (2×|r| vs divisor) chosen specifically to avoid
introducing truncation error of its own into the tie comparison.
[SetPrecision] applies the kernel explicitly; [Round] is an alias of its
decrease-precision path.

# Errors

Every operation is pure and immediate: no operation retries and no
operation produces a partial result. Failures are reported as an [*Error]
carrying a [Kind] and the offending input(s) for diagnostics. The core
never logs — logging, if wanted, is the caller's concern.

# Design notes

[Price] implements [fmt.Stringer] via its code-form string; there is no
custom [fmt.Formatter] verb dispatch — [AsWords] and [AsHuman] cover the
two textual representations this package defines, and a hand-rolled
verb table would only duplicate them.

This package's only numeric dependency is [math/big]. An earlier
iteration of this domain (see DESIGN.md for the full account) used a
fixed-precision decimal type bounded to 19 total digits, which cannot
satisfy the requirement that an amount represent values "beyond 64-bit
range" with no upper bound — a sufficiently long chain of [Sum] or a
wide [Allocate] ratio list can legitimately exceed 19 digits. [math/big.Int]
is used directly instead, which is also what a bounded decimal type falls
back to internally once its own bound is exceeded.

Concurrency: Price and every exported type in this package are immutable
value types with no shared mutable state; operations may be invoked
concurrently across unrelated inputs without external synchronization.
*/
package money
