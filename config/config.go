// Package config loads pdfsummarizer settings from defaults, an optional
// YAML file, a .env file and PDFSUM_* environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the complete pdfsummarizer configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Summary SummaryConfig `mapstructure:"summary"`
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
	Backend BackendConfig `mapstructure:"backend"`
}

// ServerConfig points the client at a summarization backend
type ServerConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// SummaryConfig holds the default form options
type SummaryConfig struct {
	Length         string `mapstructure:"length"`
	TargetLanguage string `mapstructure:"target_language"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// OutputConfig contains output formatting settings
type OutputConfig struct {
	Colors bool `mapstructure:"colors"`
}

// BackendConfig configures the development backend served by `serve`
type BackendConfig struct {
	Addr           string `mapstructure:"addr"`
	DB             string `mapstructure:"db"`
	MaxUploadBytes int64  `mapstructure:"max_upload_bytes"`

	// TranslateURL is a LibreTranslate /translate endpoint. Empty disables
	// translation.
	TranslateURL string `mapstructure:"translate_url"`
}

// Load reads configuration from file and environment variables.
// A missing config file or .env file is not an error.
func Load(cfgFile string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".pdfsummarizer")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/pdfsummarizer")
	}

	v.SetEnvPrefix("PDFSUM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	return &Config{
		Server:  ServerConfig{URL: DefaultServerURL, Timeout: DefaultTimeout},
		Summary: SummaryConfig{Length: DefaultLength},
		Logging: LoggingConfig{Level: "info"},
		Output:  OutputConfig{Colors: true},
		Backend: BackendConfig{
			Addr:           DefaultBackendAddr,
			DB:             DefaultDBPath,
			MaxUploadBytes: DefaultMaxUploadBytes,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("server.url", d.Server.URL)
	v.SetDefault("server.timeout", d.Server.Timeout)

	v.SetDefault("summary.length", d.Summary.Length)
	v.SetDefault("summary.target_language", d.Summary.TargetLanguage)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.file", d.Logging.File)

	v.SetDefault("output.colors", d.Output.Colors)

	v.SetDefault("backend.addr", d.Backend.Addr)
	v.SetDefault("backend.db", d.Backend.DB)
	v.SetDefault("backend.max_upload_bytes", d.Backend.MaxUploadBytes)
	v.SetDefault("backend.translate_url", d.Backend.TranslateURL)
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.URL) == "" {
		return errors.New("server url must not be empty")
	}
	u, err := url.Parse(c.Server.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid server url: %q", c.Server.URL)
	}

	if c.Server.Timeout <= 0 {
		return fmt.Errorf("invalid server timeout: %s", c.Server.Timeout)
	}

	if !IsValidLength(c.Summary.Length) {
		return fmt.Errorf("invalid summary length: %s (must be short, medium, or long)", c.Summary.Length)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (must be debug, info, warn, or error)", c.Logging.Level)
	}

	if c.Backend.MaxUploadBytes <= 0 {
		return fmt.Errorf("invalid backend max_upload_bytes: %d", c.Backend.MaxUploadBytes)
	}

	if c.Backend.TranslateURL != "" {
		u, err := url.Parse(c.Backend.TranslateURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid backend translate_url: %q", c.Backend.TranslateURL)
		}
	}

	return nil
}
