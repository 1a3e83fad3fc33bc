// Package config loads costsheet settings from defaults, an optional .env
// file, COSTSHEET_* environment variables and command-line overrides, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "COSTSHEET_"

// Config is the complete runtime configuration.
type Config struct {
	API      APIConfig      `koanf:"api"`
	Workbook WorkbookConfig `koanf:"workbook"`
	Log      LogConfig      `koanf:"log"`
}

// APIConfig locates the administrative store.
type APIConfig struct {
	BaseURL     string        `koanf:"base_url"      validate:"required,url"`
	PingTimeout time.Duration `koanf:"ping_timeout" validate:"gt=0"`
	// Debug dumps every request and response.
	Debug bool `koanf:"debug"`
}

// WorkbookConfig locates the cost comparison workbook.
type WorkbookConfig struct {
	Path         string `koanf:"path"`
	SummarySheet string `koanf:"summary_sheet" validate:"required"`
}

// LogConfig controls logger output.
type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `koanf:"json"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:     "http://localhost:5001",
			PingTimeout: 5 * time.Second,
		},
		Workbook: WorkbookConfig{
			Path:         "docs/Comparativa combustibles1.xlsb.xlsx",
			SummarySheet: "CALCULADORA COSTES",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Options tells Load where to look besides the defaults.
type Options struct {
	// EnvFile is a dotenv file loaded into the process environment.
	EnvFile string
	// RequireEnvFile makes a missing EnvFile an error.
	RequireEnvFile bool
	// Overrides maps koanf paths (e.g. "api.base_url") to values that win
	// over every other source.
	Overrides map[string]any
}

// Load builds and validates the configuration.
func Load(opts Options) (*Config, error) {
	if err := loadEnvFile(opts.EnvFile, opts.RequireEnvFile); err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: transformEnvKey,
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	for key, value := range opts.Overrides {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to apply override %s: %w", key, err)
		}
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &cfg,
			TagName:          "koanf",
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks struct constraints.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

func loadEnvFile(path string, required bool) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// transformEnvKey maps COSTSHEET_API_BASE_URL to api.base_url: the first
// segment after the prefix is the section, the rest the field name.
func transformEnvKey(key, value string) (string, any) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	parts := strings.FieldsFunc(key, func(r rune) bool { return r == '_' })
	if len(parts) < 2 {
		return "", nil
	}
	return parts[0] + "." + strings.Join(parts[1:], "_"), value
}
