// Package config loads, validates and persists carbonroute's YAML settings.
//
// Precedence, lowest first: compiled-in defaults, the config file, any
// --config overlay, then CARBONROUTE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/rshade/carbonroute/internal/emission"
)

// Schema versions this build reads and writes.
const (
	CurrentSchemaVersion      = "1.0.0"
	SupportedSchemaConstraint = ">= 1.0.0, < 2.0.0"
)

// Environment variables read by the config layer.
const (
	EnvHome         = "CARBONROUTE_HOME"
	EnvLogLevel     = "CARBONROUTE_LOG_LEVEL"
	EnvLogFormat    = "CARBONROUTE_LOG_FORMAT"
	EnvLocale       = "CARBONROUTE_LOCALE"
	EnvOutputFormat = "CARBONROUTE_OUTPUT_FORMAT"
)

// Output formats.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
)

const (
	configDirName  = ".carbonroute"
	configFileName = "config.yaml"
	outputTypeFile = "file"
	outputStderr   = "stderr"
)

// Config is the full carbonroute configuration.
type Config struct {
	SchemaVersion string         `yaml:"schema_version" validate:"required"`
	Output        OutputConfig   `yaml:"output"`
	Logging       LoggingConfig  `yaml:"logging"`
	Routes        RoutesConfig   `yaml:"routes"`
	Emission      EmissionConfig `yaml:"emission"`
	Credits       CreditsConfig  `yaml:"credits"`

	configPath string
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" validate:"oneof=table json ndjson"`
	Locale        string `yaml:"locale"         validate:"required"`
	NoColor       bool   `yaml:"no_color"`
}

// LoggingConfig controls structured logging.
type LoggingConfig struct {
	Level  string `yaml:"level"  validate:"oneof=trace debug info warn error fatal panic disabled"`
	Format string `yaml:"format" validate:"oneof=console json"`
	File   string `yaml:"file,omitempty"`
	Caller bool   `yaml:"caller"`
}

// RoutesConfig selects the route tables merged into the index.
type RoutesConfig struct {
	Files           []string `yaml:"files,omitempty"  validate:"dive,required"`
	IncludeDefaults bool     `yaml:"include_defaults"`
}

// EmissionConfig overrides the compiled-in emission factors. An empty
// Factors list keeps the defaults.
type EmissionConfig struct {
	Baseline string         `yaml:"baseline"          validate:"required"`
	Factors  []FactorConfig `yaml:"factors,omitempty" validate:"dive"`
}

// FactorConfig is one mode's factor in kg CO2 per km.
type FactorConfig struct {
	Mode    string  `yaml:"mode"      validate:"required"`
	KgPerKm float64 `yaml:"kg_per_km" validate:"gte=0"`
}

// CreditsConfig holds the carbon-credit economics.
type CreditsConfig struct {
	KgPerCredit float64 `yaml:"kg_per_credit" validate:"gt=0"`
	PriceMin    float64 `yaml:"price_min"     validate:"gte=0"`
	PriceMax    float64 `yaml:"price_max"     validate:"gtefield=PriceMin"`
	Currency    string  `yaml:"currency"      validate:"len=3,alpha"`
}

//nolint:gochecknoglobals // validator caches struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the compiled-in configuration without touching the
// filesystem or environment.
func Default() *Config {
	credit := emission.DefaultCreditConfig()
	return &Config{
		SchemaVersion: CurrentSchemaVersion,
		Output: OutputConfig{
			DefaultFormat: FormatTable,
			Locale:        "pt-BR",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Routes: RoutesConfig{
			IncludeDefaults: true,
		},
		Emission: EmissionConfig{
			Baseline: emission.ModeCar.String(),
		},
		Credits: CreditsConfig{
			KgPerCredit: credit.KgPerCredit,
			PriceMin:    credit.PriceMin,
			PriceMax:    credit.PriceMax,
			Currency:    credit.Currency,
		},
	}
}

// New returns the defaults overlaid with the config file, when one exists,
// and environment overrides. A file that cannot be read or parsed is logged
// and ignored so that a broken file never blocks `config init`.
func New() *Config {
	cfg := Default()

	path, err := defaultConfigPath()
	if err != nil {
		log.Warn().Err(err).Msg("cannot resolve config path, using defaults")
	}
	cfg.configPath = path

	if path != "" {
		if loadErr := cfg.Load(); loadErr != nil && !errors.Is(loadErr, os.ErrNotExist) {
			log.Warn().Err(loadErr).Str("path", path).Msg("ignoring unreadable config file")
		}
	}

	cfg.ApplyEnvOverrides(os.LookupEnv)
	return cfg
}

// Load reads the file at ConfigPath onto c. Keys absent from the file keep
// their current values.
func (c *Config) Load() error {
	data, err := os.ReadFile(c.configPath)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", c.configPath, err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("%w: parsing %s: %w", ErrInvalidConfig, c.configPath, err)
	}
	return nil
}

// Save writes c to ConfigPath, creating the directory if needed.
func (c *Config) Save() error {
	if c.configPath == "" {
		return fmt.Errorf("%w: no config path set", ErrInvalidConfig)
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", c.configPath, err)
	}
	return nil
}

// ConfigPath returns the file Load and Save use.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath points Load and Save at path.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// ApplyEnvOverrides applies CARBONROUTE_* variables found by lookupEnv.
func (c *Config) ApplyEnvOverrides(lookupEnv func(string) (string, bool)) {
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		c.Logging.Format = strings.ToLower(v)
	}
	if v, ok := lookupEnv(EnvLocale); ok && v != "" {
		c.Output.Locale = v
	}
	if v, ok := lookupEnv(EnvOutputFormat); ok && v != "" {
		c.Output.DefaultFormat = strings.ToLower(v)
	}
}

// Validate checks field constraints, the schema version and that the
// emission section builds a usable model.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := checkSchemaVersion(c.SchemaVersion); err != nil {
		return err
	}

	if _, err := c.EmissionModel(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// EmissionModel builds the emission model described by the emission and
// credits sections.
func (c *Config) EmissionModel() (*emission.Model, error) {
	factors := emission.DefaultFactors()
	if len(c.Emission.Factors) > 0 {
		factors = make([]emission.Factor, 0, len(c.Emission.Factors))
		for _, f := range c.Emission.Factors {
			factors = append(factors, emission.Factor{Mode: emission.Mode(f.Mode), KgPerKm: f.KgPerKm})
		}
	}

	return emission.NewModel(emission.Config{
		Factors:  factors,
		Baseline: emission.Mode(c.Emission.Baseline),
		Credit: emission.CreditConfig{
			KgPerCredit: c.Credits.KgPerCredit,
			PriceMin:    c.Credits.PriceMin,
			PriceMax:    c.Credits.PriceMax,
			Currency:    strings.ToUpper(c.Credits.Currency),
		},
	})
}

func checkSchemaVersion(raw string) error {
	version, err := semver.NewVersion(raw)
	if err != nil {
		return fmt.Errorf("%w: schema_version %q: %w", ErrUnsupportedSchema, raw, err)
	}
	constraint, err := semver.NewConstraint(SupportedSchemaConstraint)
	if err != nil {
		return fmt.Errorf("parsing schema constraint: %w", err)
	}
	if !constraint.Check(version) {
		return fmt.Errorf("%w: schema_version %s does not satisfy %s",
			ErrUnsupportedSchema, version, SupportedSchemaConstraint)
	}
	return nil
}

func defaultConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}
