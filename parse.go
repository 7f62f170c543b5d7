package money

import (
	"math/big"
	"regexp"
	"strings"
)

// codeFormStrict matches the code-form grammar with underscore-only
// digit grouping, per spec §4.9 ("isCodeForm: strict regex, underscores
// only, no commas").
var codeFormStrict = regexp.MustCompile(`^[A-Z]{3} -?[0-9](?:[0-9_]*[0-9])?(\.[0-9](?:[0-9_]*[0-9])?)?$`)

// codeFormLenient additionally accepts commas as a grouping convenience
// on input (spec §3, "Commas are accepted on input for convenience").
var codeFormLenient = regexp.MustCompile(`^[A-Z]{3} -?[0-9](?:[0-9_,]*[0-9])?(\.[0-9](?:[0-9_,]*[0-9])?)?$`)

// IsCodeForm reports whether s matches the strict code-form grammar
// "CCC -?digits(.digits)?" with underscore-only grouping (spec §4.9).
func IsCodeForm(s string) bool {
	return codeFormStrict.MatchString(s)
}

// IsSymbolForm reports whether s begins or ends with a known currency
// glyph and is not itself code-form (spec §4.9).
func IsSymbolForm(s string) bool {
	if IsCodeForm(s) {
		return false
	}
	_, _, ok := splitSymbol(s)
	return ok
}

// splitSymbol finds the first recognized glyph that prefixes or
// suffixes s (suffix form carries a separating space) and returns the
// glyph, the remaining amount text, and whether a match was found.
func splitSymbol(s string) (sym string, amountText string, ok bool) {
	for _, sym := range symbolOrder {
		if strings.HasPrefix(s, sym) {
			return sym, s[len(sym):], true
		}
		if strings.HasSuffix(s, " "+sym) {
			return sym, strings.TrimSuffix(s, " "+sym), true
		}
	}
	return "", "", false
}

// ParsePrice converts a code-form or symbol-form string into a Price.
// An optional currency may be supplied to disambiguate a symbol-form
// input; supplying one for a code-form input is not an error as long as
// it agrees with the code embedded in the string. See spec §4.4, §4.10.
func ParsePrice(s string, currency ...Currency) (Price, error) {
	s = strings.TrimSpace(s)

	if codeFormLenient.MatchString(s) {
		return parseCodeForm(s, currency...)
	}
	if sym, amountText, ok := splitSymbol(s); ok {
		return parseSymbolForm(sym, amountText, currency...)
	}
	return Price{}, newError(InvalidFormat, "ParsePrice", s)
}

// MustParsePrice is like [ParsePrice] but panics if s cannot be parsed.
func MustParsePrice(s string, currency ...Currency) Price {
	p, err := ParsePrice(s, currency...)
	if err != nil {
		panic(err)
	}
	return p
}

func parseCodeForm(s string, explicit ...Currency) (Price, error) {
	code := s[:3]
	rest := s[4:] // s[3] is the mandatory space
	curr := Currency(code)

	if len(explicit) > 0 && explicit[0] != "" && normalizeCode(explicit[0]) != curr {
		return Price{}, newError(CurrencyMismatch, "ParsePrice", s, explicit[0])
	}

	return assemblePrice("ParsePrice", curr, rest)
}

func parseSymbolForm(sym, amountText string, explicit ...Currency) (Price, error) {
	var override Currency
	if len(explicit) > 0 {
		override = explicit[0]
	}
	curr, err := resolveSymbolCurrency(sym, override)
	if err != nil {
		return Price{}, err
	}
	return assemblePrice("ParsePrice", curr, amountText)
}

func resolveSymbolCurrency(sym string, explicit Currency) (Currency, error) {
	info := symbolTable[sym]
	if explicit == "" {
		return info.currency, nil
	}
	ec := normalizeCode(explicit)
	if info.unique && ec != info.currency {
		return "", newError(CurrencyMismatch, "ParsePrice", sym, explicit)
	}
	if uniqueSym, ok := currencyUniqueSymbol[ec]; ok && uniqueSym != sym {
		return "", newError(CurrencyMismatch, "ParsePrice", sym, explicit)
	}
	return ec, nil
}

// assemblePrice implements "Amount assembly" and "Scale inference" from
// spec §4.4 for already-identified (currency, amount-text) pairs.
func assemblePrice(op string, curr Currency, amountText string) (Price, error) {
	sign := ""
	rest := amountText
	if strings.HasPrefix(rest, "-") {
		sign = "-"
		rest = rest[1:]
	}

	intPart, fracPart, _ := strings.Cut(rest, ".")
	intDigits := stripGrouping(intPart)
	fracDigits := stripGrouping(fracPart)
	if intDigits == "" {
		intDigits = "0"
	}

	def := DefaultScaleFor(curr)
	scale, ok := inferScale(len(fracDigits), def)
	if !ok {
		return Price{}, newError(InvalidFormat, op, amountText)
	}
	fracDigits = padRight(fracDigits, scale.Digits())

	digits := sign + intDigits + fracDigits
	amount, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return Price{}, newError(InvalidFormat, op, amountText)
	}
	return NewPrice(curr, scale, amount)
}

// inferScale picks the scale to store k fractional digits at, given the
// currency's default scale def (spec §4.4 "Scale inference").
func inferScale(k int, def Scale) (Scale, bool) {
	if k <= def.Digits() {
		return def, true
	}
	return scaleForDigits(k)
}

// stripGrouping removes thousands-grouping separators (both underscore
// and comma are accepted on input).
func stripGrouping(s string) string {
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, ",", "")
	return s
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat("0", n-len(s))
}
