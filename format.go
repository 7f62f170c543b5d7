package money

import (
	"math/big"
	"strings"
)

// splitDigits renders p's absolute amount as a zero-padded decimal
// string and splits it into sign, integer part, and fractional part,
// applying the per-scale fractional-digit rules of spec §4.5 (Whole
// carries no fractional part; every other scale shows all of its digits;
// Centi always shows exactly its two digits, which is both the floor and
// the ceiling the "trim but show at least two" rule leaves it at).
func splitDigits(p Price) (sign, intPart, fracPart string) {
	d := p.scale.Digits()
	abs := new(big.Int).Abs(p.Amount())
	if p.Sign() < 0 {
		sign = "-"
	}
	digits := abs.String()
	if len(digits) < d+1 {
		digits = strings.Repeat("0", d+1-len(digits)) + digits
	}
	if d == 0 {
		return sign, digits, ""
	}
	return sign, digits[:len(digits)-d], digits[len(digits)-d:]
}

// groupRightToLeft inserts sep every three characters from the right,
// the convention used for integer parts (spec §4.5).
func groupRightToLeft(s, sep string) string {
	if len(s) <= 3 {
		return s
	}
	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)
	return strings.Join(groups, sep)
}

// groupLeftToRight inserts sep every three characters from the left, the
// convention used for fractional parts of sub-centi scales (spec §4.5,
// e.g. "0.000_000_250").
func groupLeftToRight(s, sep string) string {
	if len(s) <= 3 {
		return s
	}
	var groups []string
	for i := 0; i < len(s); i += 3 {
		end := i + 3
		if end > len(s) {
			end = len(s)
		}
		groups = append(groups, s[i:end])
	}
	return strings.Join(groups, sep)
}

// FormatCodeForm renders p in the lossless code-form grammar, e.g.
// "USD 1_000_000.00" or "OMR 0.000_000_250"-style grouping for
// sub-centi scales (spec §4.5).
func FormatCodeForm(p Price) string {
	sign, intPart, fracPart := splitDigits(p)
	intPart = groupRightToLeft(intPart, "_")
	switch p.scale {
	case Whole, Centi:
		// at most two fractional digits: no grouping needed.
	default:
		fracPart = groupLeftToRight(fracPart, "_")
	}
	body := sign + intPart
	if fracPart != "" {
		body += "." + fracPart
	}
	return string(p.currency) + " " + body
}

// FormatSymbolForm renders p in the display-oriented symbol-form
// grammar: comma-grouped integer part, ungrouped fractional part, and a
// currency symbol prefix (spec §4.5). Currencies without a known symbol
// fall back to using their code as the prefix.
func FormatSymbolForm(p Price) string {
	sign, intPart, fracPart := splitDigits(p)
	intPart = groupRightToLeft(intPart, ",")
	prefix, ok := currencySymbol(p.currency)
	if !ok {
		prefix = string(p.currency)
	}
	body := prefix + sign + intPart
	if fracPart != "" {
		body += "." + fracPart
	}
	return body
}
