// Package config loads the adapter's user settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

const (
	configName = "outlook-a11y"
	configType = "toml"
	envPrefix  = "OUTLOOK_A11Y"
	configDir  = "outlook-a11y"
)

// Config holds the settings consumed by the adapter. Overlays read it and
// never change it.
type Config struct {
	DocumentFormatting DocumentFormatting `mapstructure:"documentFormatting" toml:"documentFormatting"`
	Locale             string             `mapstructure:"locale"             toml:"locale"`
	Log                LogConfig          `mapstructure:"log"                toml:"log"`
	Arbiter            ArbiterConfig      `mapstructure:"arbiter"            toml:"arbiter"`

	// Source is the file the configuration was read from, or "defaults".
	Source string `mapstructure:"-" toml:"-"`
}

// DocumentFormatting mirrors the host's document formatting settings.
type DocumentFormatting struct {
	ReportTableHeaders  bool `mapstructure:"reportTableHeaders"  toml:"reportTableHeaders"`
	IncludeLayoutTables bool `mapstructure:"includeLayoutTables" toml:"includeLayoutTables"`
}

// LogConfig defines log verbosity and encoding.
type LogConfig struct {
	Level  string `mapstructure:"level"  toml:"level"`
	Format string `mapstructure:"format" toml:"format"`
}

// ArbiterConfig bounds synthetic event re-dispatch.
type ArbiterConfig struct {
	MaxRedispatchDepth int `mapstructure:"maxRedispatchDepth" toml:"maxRedispatchDepth"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		DocumentFormatting: DocumentFormatting{
			ReportTableHeaders:  true,
			IncludeLayoutTables: false,
		},
		Locale: "en-GB",
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Arbiter: ArbiterConfig{
			MaxRedispatchDepth: 4,
		},
		Source: "defaults",
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("documentFormatting.reportTableHeaders", d.DocumentFormatting.ReportTableHeaders)
	v.SetDefault("documentFormatting.includeLayoutTables", d.DocumentFormatting.IncludeLayoutTables)
	v.SetDefault("locale", d.Locale)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("arbiter.maxRedispatchDepth", d.Arbiter.MaxRedispatchDepth)
}

// Load reads the configuration. An explicit path must exist; otherwise the
// user config directory and the working directory are searched and a
// missing file means defaults. Environment variables prefixed OUTLOOK_A11Y_
// override file values.
func Load(v *viper.Viper, path string) (Config, error) {
	if v == nil {
		v = viper.New()
	}
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, configDir))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Source = v.ConfigFileUsed()
	if cfg.Source == "" {
		cfg.Source = "defaults"
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values viper cannot type-check.
func (c Config) Validate() error {
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("invalid locale %q: %w", c.Locale, err)
	}
	if _, err := NormalizeLogLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("unsupported log format %q (use json or console)", c.Log.Format)
	}
	if c.Arbiter.MaxRedispatchDepth < 1 {
		return fmt.Errorf("arbiter.maxRedispatchDepth must be at least 1, got %d", c.Arbiter.MaxRedispatchDepth)
	}
	return nil
}

// Language returns the configured locale as a language tag.
func (c Config) Language() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.BritishEnglish
	}
	return tag
}

// NormalizeLogLevel lower-cases and validates a log level name.
func NormalizeLogLevel(level string) (string, error) {
	l := strings.ToLower(strings.TrimSpace(level))
	switch l {
	case "debug", "info", "warn", "error":
		return l, nil
	}
	return "", fmt.Errorf("unsupported log level %q (use debug, info, warn or error)", level)
}

// Marshal encodes cfg as TOML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}

// Write stores cfg as TOML at path, creating parent directories.
func Write(path string, cfg Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// DefaultPath is where `config init` writes when no path is given.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(dir, configDir, configName+"."+configType), nil
}
