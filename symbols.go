package money

// symbolInfo describes a currency glyph recognized by the symbol-form
// parser and formatter (spec §3, "Symbol-form string").
type symbolInfo struct {
	currency Currency
	// unique marks a symbol that identifies exactly one currency. An
	// explicit currency override that disagrees with a unique symbol's
	// currency is a CurrencyMismatch (spec §4.4).
	unique bool
}

// symbolTable maps a glyph to its default currency. The table is
// data, not code, per spec §9 ("the single unique-symbol case today
// (€→EUR) should be data, not code") — extended here to the handful of
// other glyphs that uniquely identify a currency in common usage.
var symbolTable = map[string]symbolInfo{
	"$":  {currency: USD, unique: false}, // shared by USD, CAD, AUD, NZD, SGD, HKD, MXN
	"¥":  {currency: JPY, unique: false}, // shared by JPY, CNY
	"€":  {currency: EUR, unique: true},
	"£":  {currency: GBP, unique: true},
	"₹":  {currency: INR, unique: true},
	"₩":  {currency: KRW, unique: true},
	"₽":  {currency: "RUB", unique: true},
	"R$": {currency: BRL, unique: true},
}

// currencyUniqueSymbol is the reverse of symbolTable's unique entries: the
// symbol a currency must be paired with if one is supplied explicitly.
var currencyUniqueSymbol = map[Currency]string{
	EUR:   "€",
	GBP:   "£",
	INR:   "₹",
	KRW:   "₩",
	"RUB": "₽",
	BRL:   "R$",
}

// symbolOrder lists recognized symbols longest-first, so that a
// multi-byte symbol like "R$" is matched before its "$" suffix would be.
var symbolOrder = []string{"R$", "$", "¥", "€", "£", "₹", "₩", "₽"}

// currencySymbol returns the display symbol for curr, and whether one is
// known. Used by the symbol-form formatter.
func currencySymbol(curr Currency) (string, bool) {
	if sym, ok := currencyUniqueSymbol[curr]; ok {
		return sym, true
	}
	for _, sym := range symbolOrder {
		if info := symbolTable[sym]; info.currency == curr {
			return sym, true
		}
	}
	return "", false
}
