package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonroute/internal/config"
	"github.com/rshade/carbonroute/internal/emission"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, config.CurrentSchemaVersion, cfg.SchemaVersion)
	assert.Equal(t, config.FormatTable, cfg.Output.DefaultFormat)
	assert.Equal(t, "pt-BR", cfg.Output.Locale)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Routes.IncludeDefaults)
	assert.Equal(t, "car", cfg.Emission.Baseline)
	assert.InDelta(t, 1000.0, cfg.Credits.KgPerCredit, 1e-9)
	assert.InDelta(t, 50.0, cfg.Credits.PriceMin, 1e-9)
	assert.InDelta(t, 150.0, cfg.Credits.PriceMax, 1e-9)
	assert.Equal(t, "BRL", cfg.Credits.Currency)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr error
	}{
		{"defaults", func(*config.Config) {}, nil},
		{"json output", func(c *config.Config) { c.Output.DefaultFormat = "json" }, nil},
		{"bad output format", func(c *config.Config) { c.Output.DefaultFormat = "xml" }, config.ErrInvalidConfig},
		{"empty locale", func(c *config.Config) { c.Output.Locale = "" }, config.ErrInvalidConfig},
		{"bad log level", func(c *config.Config) { c.Logging.Level = "loud" }, config.ErrInvalidConfig},
		{"bad log format", func(c *config.Config) { c.Logging.Format = "text" }, config.ErrInvalidConfig},
		{"zero kg per credit", func(c *config.Config) { c.Credits.KgPerCredit = 0 }, config.ErrInvalidConfig},
		{"negative price", func(c *config.Config) { c.Credits.PriceMin = -1 }, config.ErrInvalidConfig},
		{"inverted band", func(c *config.Config) { c.Credits.PriceMax = 10 }, config.ErrInvalidConfig},
		{"bad currency", func(c *config.Config) { c.Credits.Currency = "REAIS" }, config.ErrInvalidConfig},
		{"blank route file", func(c *config.Config) { c.Routes.Files = []string{""} }, config.ErrInvalidConfig},
		{"unknown baseline", func(c *config.Config) { c.Emission.Baseline = "plane" }, config.ErrInvalidConfig},
		{
			"negative factor",
			func(c *config.Config) {
				c.Emission.Factors = []config.FactorConfig{{Mode: "car", KgPerKm: -1}}
			},
			config.ErrInvalidConfig,
		},
		{
			"bicycle with emissions",
			func(c *config.Config) {
				c.Emission.Factors = []config.FactorConfig{
					{Mode: "bicycle", KgPerKm: 0.5},
					{Mode: "car", KgPerKm: 0.12},
				}
			},
			emission.ErrInvalidModel,
		},
		{"missing schema", func(c *config.Config) { c.SchemaVersion = "" }, config.ErrInvalidConfig},
		{"garbage schema", func(c *config.Config) { c.SchemaVersion = "one" }, config.ErrUnsupportedSchema},
		{"future major schema", func(c *config.Config) { c.SchemaVersion = "2.0.0" }, config.ErrUnsupportedSchema},
		{"minor bump schema", func(c *config.Config) { c.SchemaVersion = "1.3.0" }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNew_LoadsFileAndEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFormat, "")
	t.Setenv(config.EnvLocale, "")
	t.Setenv(config.EnvOutputFormat, "")

	content := `schema_version: "1.0.0"
output:
  default_format: json
  locale: en
credits:
  kg_per_credit: 1000
  price_min: 40
  price_max: 120
  currency: BRL
`
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(content), 0o600))

	cfg := config.New()
	assert.Equal(t, filepath.Join(home, "config.yaml"), cfg.ConfigPath())
	assert.Equal(t, "json", cfg.Output.DefaultFormat)
	assert.Equal(t, "en", cfg.Output.Locale)
	assert.InDelta(t, 40.0, cfg.Credits.PriceMin, 1e-9)
	// Sections missing from the file keep defaults.
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Routes.IncludeDefaults)

	t.Setenv(config.EnvLogLevel, "DEBUG")
	t.Setenv(config.EnvOutputFormat, "ndjson")
	cfg = config.New()
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "ndjson", cfg.Output.DefaultFormat)
}

func TestNew_MissingOrBrokenFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)

	cfg := config.New()
	assert.Equal(t, config.FormatTable, cfg.Output.DefaultFormat)

	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("output: [unclosed"), 0o600))
	cfg = config.New()
	assert.Equal(t, config.FormatTable, cfg.Output.DefaultFormat)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := config.Default()
	cfg.SetConfigPath(path)
	cfg.Output.Locale = "en"
	cfg.Routes.Files = []string{"/etc/carbonroute/routes.yaml"}
	require.NoError(t, cfg.Save())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded := config.Default()
	loaded.SetConfigPath(path)
	require.NoError(t, loaded.Load())
	assert.Equal(t, "en", loaded.Output.Locale)
	assert.Equal(t, []string{"/etc/carbonroute/routes.yaml"}, loaded.Routes.Files)
}

func TestLoad_Errors(t *testing.T) {
	cfg := config.Default()
	cfg.SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, cfg.Load(), os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: [unclosed"), 0o600))
	cfg.SetConfigPath(path)
	require.ErrorIs(t, cfg.Load(), config.ErrInvalidConfig)
}

func TestSave_NoPath(t *testing.T) {
	require.ErrorIs(t, config.Default().Save(), config.ErrInvalidConfig)
}

func TestEmissionModel(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		model, err := config.Default().EmissionModel()
		require.NoError(t, err)
		assert.Equal(t, emission.Default().Modes(), model.Modes())
		assert.Equal(t, emission.ModeCar, model.BaselineMode())
	})

	t.Run("custom factors and credits", func(t *testing.T) {
		cfg := config.Default()
		cfg.Emission.Factors = []config.FactorConfig{
			{Mode: "car", KgPerKm: 0.12},
			{Mode: "Train", KgPerKm: 0.041},
		}
		cfg.Credits.Currency = "usd"

		model, err := cfg.EmissionModel()
		require.NoError(t, err)
		assert.Equal(t, []emission.Mode{"car", "train"}, model.Modes())
		assert.Equal(t, "USD", model.PriceBand().Currency)
	})
}

func TestApplyEnvOverrides(t *testing.T) {
	env := map[string]string{
		config.EnvLogFormat: "JSON",
		config.EnvLocale:    "en",
	}
	cfg := config.Default()
	cfg.ApplyEnvOverrides(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})

	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "en", cfg.Output.Locale)
	assert.Equal(t, "info", cfg.Logging.Level)
}
