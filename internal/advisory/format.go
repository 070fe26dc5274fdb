package advisory

import (
	"math"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencySymbol prefixes every rendered amount
const CurrencySymbol = "₹"

// DefaultLocale groups digits in lakhs and crores (1,00,000)
var DefaultLocale = language.MustParse("en-IN")

// maxFractionDigits matches the three fraction digits a browser shows for plain number formatting
const maxFractionDigits = 3

var half = decimal.NewFromFloat(0.5)

// Formatter renders amounts with a locale's digit grouping
type Formatter struct {
	locale  language.Tag
	printer *message.Printer
}

// NewFormatter creates a formatter for the given locale
func NewFormatter(locale language.Tag) *Formatter {
	return &Formatter{
		locale:  locale,
		printer: message.NewPrinter(locale),
	}
}

// Locale returns the formatter's locale
func (f *Formatter) Locale() language.Tag {
	return f.locale
}

// Amount groups digits and keeps at most three fraction digits, rounding the exact
// binary value half away from zero. Non-finite values render as NaN or ∞ instead of failing.
func (f *Formatter) Amount(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}
	rounded := exactDecimal(v).Round(maxFractionDigits).InexactFloat64()
	return f.printer.Sprint(number.Decimal(rounded, number.MaxFractionDigits(maxFractionDigits)))
}

// exactDecimal returns the exact decimal expansion of a finite float64.
// decimal.NewFromFloat yields the shortest round-tripping form instead, which can sit on the other side of a tie.
func exactDecimal(v float64) decimal.Decimal {
	if v == 0 {
		return decimal.Zero
	}
	frac, exp := math.Frexp(v)
	mant := big.NewInt(int64(frac * (1 << 53)))
	exp -= 53
	if exp >= 0 {
		return decimal.NewFromBigInt(mant.Lsh(mant, uint(exp)), 0)
	}
	five := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-exp)), nil)
	return decimal.NewFromBigInt(mant.Mul(mant, five), int32(exp))
}

// Currency renders an amount with the currency glyph
func (f *Formatter) Currency(v float64) string {
	return CurrencySymbol + f.Amount(v)
}

// round rounds half up (toward +Inf), the way Math.round does
func round(v float64) float64 {
	if !isFinite(v) {
		return v
	}
	return decimal.NewFromFloat(v).Add(half).Floor().InexactFloat64()
}

// fixed renders v with exactly places fraction digits, ties rounding away from zero
func fixed(v float64, places int32) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}

// percentOf renders a fraction as a percentage without binary noise (0.15 -> "15")
func percentOf(fraction float64) string {
	if !isFinite(fraction) {
		return fixed(fraction*100, 0)
	}
	return decimal.NewFromFloat(fraction).Shift(2).String()
}

// plain renders a number without grouping
func plain(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func toDecimal(v float64) decimal.Decimal {
	if !isFinite(v) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
