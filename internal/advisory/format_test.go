package advisory

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFormatter_Amount(t *testing.T) {
	testCases := []struct {
		name     string
		locale   language.Tag
		value    float64
		expected string
	}{
		{"small", DefaultLocale, 500, "500"},
		{"thousands", DefaultLocale, 25000, "25,000"},
		{"lakh grouping", DefaultLocale, 100000, "1,00,000"},
		{"crore grouping", DefaultLocale, 29206381, "2,92,06,381"},
		{"western grouping", language.AmericanEnglish, 29206381, "29,206,381"},
		{"fraction kept", language.AmericanEnglish, 1234.5, "1,234.5"},
		{"fraction truncated to three digits", language.AmericanEnglish, 0.12345, "0.123"},
		{"negative", language.AmericanEnglish, -1500, "-1,500"},
		{"binary value above the tie rounds up", language.AmericanEnglish, 2.0005, "2.001"},
		{"binary value below the tie rounds down", language.AmericanEnglish, 57416.5805, "57,416.58"},
		{"exact tie rounds away from zero", DefaultLocale, 100000.0625, "1,00,000.063"},
		{"negative tie rounds away from zero", language.AmericanEnglish, -2.0005, "-2.001"},
		{"not a number", DefaultLocale, math.NaN(), "NaN"},
		{"infinite", DefaultLocale, math.Inf(1), "∞"},
		{"negative infinite", DefaultLocale, math.Inf(-1), "-∞"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NewFormatter(tc.locale).Amount(tc.value))
		})
	}
}

func TestExactDecimal(t *testing.T) {
	assert.Equal(t, "0.0625", exactDecimal(0.0625).String())
	assert.Equal(t, "2.000500000000000166977542903623543679714202880859375", exactDecimal(2.0005).String())
	assert.Equal(t, "-1.0004999999999999449329379785922355949878692626953125", exactDecimal(-1.0005).String())
	assert.Equal(t, "29206381", exactDecimal(29206381).String())
	assert.True(t, exactDecimal(0).IsZero())
}

func TestFormatter_Currency(t *testing.T) {
	f := NewFormatter(DefaultLocale)
	assert.Equal(t, "₹11,000", f.Currency(11000))
	assert.Equal(t, "₹∞", f.Currency(math.Inf(1)))
	assert.Equal(t, language.MustParse("en-IN"), f.Locale())
}

func TestRound(t *testing.T) {
	assert.Equal(t, 3.0, round(2.5))
	assert.Equal(t, -2.0, round(-2.5))
	assert.Equal(t, 229740.0, round(229739.64691653033))
	assert.True(t, math.IsNaN(round(math.NaN())))
	assert.True(t, math.IsInf(round(math.Inf(1)), 1))
}

func TestFixed(t *testing.T) {
	assert.Equal(t, "80.0", fixed(80, 1))
	assert.Equal(t, "33.3", fixed(100.0/3, 1))
	assert.Equal(t, "5", fixed(0.05*100, 0))
	assert.Equal(t, "Infinity", fixed(math.Inf(1), 1))
	assert.Equal(t, "NaN", fixed(math.NaN(), 1))
}

func TestPercentOf(t *testing.T) {
	assert.Equal(t, "15", percentOf(0.15))
	assert.Equal(t, "8", percentOf(0.08))
	assert.Equal(t, "80", percentOf(0.8))
	assert.Equal(t, "12.5", percentOf(0.125))
}

func TestPlain(t *testing.T) {
	assert.Equal(t, "6000", plain(6000))
	assert.Equal(t, "1234.5", plain(1234.5))
	assert.Equal(t, "Infinity", plain(math.Inf(1)))
}
