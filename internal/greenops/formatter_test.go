package greenops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFormatter(t *testing.T, locale string) *Formatter {
	t.Helper()
	f, err := NewFormatter(locale)
	require.NoError(t, err)
	return f
}

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{"", LocalePortugueseBR},
		{"pt-BR", LocalePortugueseBR},
		{"pt_BR", LocalePortugueseBR},
		{"pt", LocalePortugueseBR},
		{"en", LocaleEnglish},
		{"en-US", LocaleEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, mustFormatter(t, tt.locale).Locale())
		})
	}

	t.Run("unsupported", func(t *testing.T) {
		_, err := NewFormatter("!!")
		require.ErrorIs(t, err, ErrUnsupportedLocale)
	})
}

func TestFormatNumber(t *testing.T) {
	pt := mustFormatter(t, "pt-BR")
	en := mustFormatter(t, "en")

	tests := []struct {
		name   string
		n      int64
		wantPT string
		wantEN string
	}{
		{"small number no separators", 123, "123", "123"},
		{"four digits with separator", 1234, "1.234", "1,234"},
		{"thousands", 18248, "18.248", "18,248"},
		{"millions", 1234567, "1.234.567", "1,234,567"},
		{"zero", 0, "0", "0"},
		{"negative number", -1234, "-1.234", "-1,234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantPT, pt.FormatNumber(tt.n))
			assert.Equal(t, tt.wantEN, en.FormatNumber(tt.n))
		})
	}
}

func TestFormatFloat(t *testing.T) {
	pt := mustFormatter(t, "pt-BR")
	en := mustFormatter(t, "en")

	tests := []struct {
		name      string
		v         float64
		precision int
		wantPT    string
		wantEN    string
	}{
		{"two decimals", 51.6, 2, "51,60", "51.60"},
		{"rounds half up", 1234.565, 2, "1.234,57", "1,234.57"},
		{"one decimal", 25.83, 1, "25,8", "25.8"},
		{"four decimals", 0.0516, 4, "0,0516", "0.0516"},
		{"zero", 0, 2, "0,00", "0.00"},
		{"negative rounds to zero", -0.001, 2, "0,00", "0.00"},
		{"negative", -361.2, 2, "-361,20", "-361.20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantPT, pt.FormatFloat(tt.v, tt.precision))
			assert.Equal(t, tt.wantEN, en.FormatFloat(tt.v, tt.precision))
		})
	}
}

func TestFormatKgAndPercent(t *testing.T) {
	pt := mustFormatter(t, "pt-BR")

	assert.Equal(t, "51,60 kg", pt.FormatKg(51.6))
	assert.Equal(t, "38,27 kg", pt.FormatKg(38.27))
	assert.Equal(t, "25,8%", pt.FormatPercent(25.83))
	assert.Equal(t, "800,0%", pt.FormatPercent(800))
}

func TestFormatCurrency(t *testing.T) {
	pt := mustFormatter(t, "pt-BR")
	en := mustFormatter(t, "en")

	assert.Equal(t, "R$ 5,16", pt.FormatCurrency(5.16, "BRL"))
	assert.Equal(t, "R$ 2,58", pt.FormatCurrency(2.58, "brl"))
	assert.Equal(t, "$ 1,234.50", en.FormatCurrency(1234.5, "USD"))

	t.Run("unknown code printed verbatim", func(t *testing.T) {
		assert.Equal(t, "XYZ1 7,74", pt.FormatCurrency(7.74, "xyz1"))
	})
}

func TestParseCurrency(t *testing.T) {
	unit, err := ParseCurrency("BRL")
	require.NoError(t, err)
	assert.Equal(t, "BRL", unit.String())

	_, err = ParseCurrency("reais")
	require.ErrorIs(t, err, ErrInvalidCurrency)
}

func TestFormatLarge(t *testing.T) {
	pt := mustFormatter(t, "pt-BR")
	en := mustFormatter(t, "en")

	tests := []struct {
		name   string
		n      float64
		wantPT string
		wantEN string
	}{
		{"below million", 999999, "999.999", "999,999"},
		{"exactly million", 1_000_000, "~1,0 milhões", "~1.0 million"},
		{"million and half", 1_500_000, "~1,5 milhões", "~1.5 million"},
		{"billion", 1_500_000_000, "~1,5 bilhões", "~1.5 billion"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantPT, pt.FormatLarge(tt.n))
			assert.Equal(t, tt.wantEN, en.FormatLarge(tt.n))
		})
	}
}

func TestTranslate(t *testing.T) {
	pt := mustFormatter(t, "pt-BR")
	en := mustFormatter(t, "en")

	assert.Equal(t, "Ônibus", pt.T("Bus"))
	assert.Equal(t, "Bus", en.T("Bus"))
	assert.Equal(t, "13,33 kg economizados", pt.T("%s kg saved", pt.FormatFloat(13.33, 2)))
	assert.Equal(t, "untranslated key", pt.T("untranslated key"))
}
