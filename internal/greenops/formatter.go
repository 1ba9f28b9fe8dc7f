package greenops

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/rshade/carbonroute/internal/calculator"
)

//nolint:gochecknoglobals // Fixed set of locales with translations.
var supportedLocales = []language.Tag{
	language.BrazilianPortuguese,
	language.English,
}

//nolint:gochecknoglobals // Matcher is immutable and safe for concurrent use.
var localeMatcher = language.NewMatcher(supportedLocales)

// Formatter renders numbers and messages for one locale.
// It is immutable and safe for concurrent use.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
}

// NewFormatter returns a Formatter for locale. An empty locale selects
// DefaultLocale. Locales are matched loosely, so "pt" and "pt_BR" select
// Brazilian Portuguese and "en-US" selects English.
func NewFormatter(locale string) (*Formatter, error) {
	if strings.TrimSpace(locale) == "" {
		locale = DefaultLocale
	}

	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrUnsupportedLocale, locale, err)
	}

	_, idx, confidence := localeMatcher.Match(tag)
	if confidence == language.No {
		return nil, fmt.Errorf("%w: %q (supported: %s, %s)",
			ErrUnsupportedLocale, locale, LocalePortugueseBR, LocaleEnglish)
	}

	matched := supportedLocales[idx]
	return &Formatter{
		tag:     matched,
		printer: message.NewPrinter(matched, message.Catalog(messageCatalog())),
	}, nil
}

// Locale returns the BCP 47 tag of the matched locale.
func (f *Formatter) Locale() string {
	return f.tag.String()
}

// T translates key and formats args into it.
func (f *Formatter) T(key string, args ...any) string {
	return f.printer.Sprintf(key, args...)
}

// FormatNumber formats an integer with the locale's thousand separators.
// Example: FormatNumber(18248) is "18.248" in pt-BR and "18,248" in en.
func (f *Formatter) FormatNumber(n int64) string {
	return f.printer.Sprintf("%d", n)
}

// FormatFloat formats v with exactly precision decimals and the locale's
// separators. Rounding is half away from zero on the decimal value.
// Example: FormatFloat(1234.567, 2) is "1.234,57" in pt-BR.
func (f *Formatter) FormatFloat(v float64, precision int) string {
	rounded := calculator.Round(v, precision)
	if rounded == 0 {
		// Avoid "-0,00".
		rounded = 0
	}
	return f.printer.Sprint(number.Decimal(rounded,
		number.MinFractionDigits(precision),
		number.MaxFractionDigits(precision),
	))
}

// FormatKg formats a mass in kilograms with two decimals, e.g. "51,60 kg".
func (f *Formatter) FormatKg(kg float64) string {
	return f.FormatFloat(kg, calculator.DisplayPrecision) + " kg"
}

// FormatPercent formats a percentage with one decimal, e.g. "25,8%".
func (f *Formatter) FormatPercent(pct float64) string {
	return f.FormatFloat(pct, 1) + "%"
}

// FormatCurrency formats an amount with the currency's symbol for the locale
// and two decimals, e.g. "R$ 5,16". Unknown codes are printed verbatim.
func (f *Formatter) FormatCurrency(amount float64, code string) string {
	return f.CurrencySymbol(code) + " " + f.FormatFloat(amount, calculator.DisplayPrecision)
}

// CurrencySymbol returns the locale's symbol for an ISO 4217 code, or the
// upper-cased code when it is not a known currency.
func (f *Formatter) CurrencySymbol(code string) string {
	unit, err := ParseCurrency(code)
	if err != nil {
		return strings.ToUpper(strings.TrimSpace(code))
	}
	return f.printer.Sprint(currency.Symbol(unit))
}

// ParseCurrency validates an ISO 4217 currency code.
func ParseCurrency(code string) (currency.Unit, error) {
	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil {
		return currency.Unit{}, fmt.Errorf("%w: %q", ErrInvalidCurrency, code)
	}
	return unit, nil
}

// FormatLarge formats n as a rounded integer below LargeNumberThreshold and
// in abbreviated "~X.X million" or "~X.X billion" form above it.
func (f *Formatter) FormatLarge(n float64) string {
	if n >= BillionThreshold {
		return f.T("~%s billion", f.FormatFloat(n/BillionThreshold, 1))
	}
	if n >= LargeNumberThreshold {
		return f.T("~%s million", f.FormatFloat(n/LargeNumberThreshold, 1))
	}
	return f.FormatNumber(int64(calculator.Round(n, 0)))
}
