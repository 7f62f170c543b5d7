package money

import "fmt"

// Scale represents one of the six decimal scales a [Price] can be
// denominated in. Scale is a closed enumeration rather than an open
// exponent so that the normalizer's "finest" operation is total and
// malformed external input is caught at the type boundary.
type Scale int8

// The six supported scales, named by SI prefix plus their magnitude.
const (
	Whole Scale = iota // 10^0
	Centi              // 10^-2
	Milli              // 10^-3
	Micro              // 10^-6
	Nano               // 10^-9
	Pico               // 10^-12
)

var scaleMagnitudes = [...]int{
	Whole: 0,
	Centi: -2,
	Milli: -3,
	Micro: -6,
	Nano:  -9,
	Pico:  -12,
}

var scaleNames = [...]string{
	Whole: "whole",
	Centi: "centi",
	Milli: "milli",
	Micro: "micro",
	Nano:  "nano",
	Pico:  "pico",
}

// scalesByDigits lists every scale in ascending order of fractional digits,
// the order the parser walks when it needs to pick the smallest scale that
// can hold k fractional digits.
var scalesByDigits = []Scale{Whole, Centi, Milli, Micro, Nano, Pico}

// Valid reports whether s is one of the six built-in scales.
func (s Scale) Valid() bool {
	return s >= Whole && s <= Pico
}

// Magnitude returns the power-of-ten exponent of the scale, e.g. -2 for Centi.
func (s Scale) Magnitude() int {
	if !s.Valid() {
		panic(fmt.Sprintf("money: invalid scale %d", int8(s)))
	}
	return scaleMagnitudes[s]
}

// Digits returns the number of fractional digits the scale represents,
// i.e. the absolute value of its magnitude.
func (s Scale) Digits() int {
	m := s.Magnitude()
	if m < 0 {
		return -m
	}
	return m
}

// String implements [fmt.Stringer], returning the SI-prefix name of the scale.
func (s Scale) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Scale(%d)", int8(s))
	}
	return scaleNames[s]
}

// scaleForDigits returns the smallest built-in scale with at least k
// fractional digits, and false if k exceeds the finest scale (Pico).
func scaleForDigits(k int) (Scale, bool) {
	for _, s := range scalesByDigits {
		if s.Digits() >= k {
			return s, true
		}
	}
	return Pico, false
}

// finer returns the scale with the more-negative magnitude (i.e. the one
// that can represent more fractional digits). Ties return a.
func finer(a, b Scale) Scale {
	if b.Magnitude() < a.Magnitude() {
		return b
	}
	return a
}

// finestScale returns the finest (minimum-magnitude) scale among scales.
// finestScale is associative and well-defined for any non-empty multiset;
// it panics if given none.
func finestScale(scales ...Scale) Scale {
	if len(scales) == 0 {
		panic("money: finestScale requires at least one scale")
	}
	f := scales[0]
	for _, s := range scales[1:] {
		f = finer(f, s)
	}
	return f
}
