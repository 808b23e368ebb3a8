// Package config loads application configuration from environment
// variables layered over an optional YAML file. Environment values win.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"autoscatter/internal/dataset"
	apperrors "autoscatter/internal/errors"
)

// Config is the complete application configuration.
type Config struct {
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
	Data    DataConfig    `yaml:"data" envconfig:"DATA"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Server  ServerConfig  `yaml:"server" envconfig:"SERVER"`
}

// PathsConfig names the input and output locations.
type PathsConfig struct {
	InputDir    string `yaml:"input_dir" envconfig:"INPUT_DIR" default:"data"`
	OutputDir   string `yaml:"output_dir" envconfig:"OUTPUT_DIR" default:"out"`
	CategoryDir string `yaml:"category_dir" envconfig:"CATEGORY_DIR"`
}

// DataConfig controls source decoding and default column selection.
type DataConfig struct {
	Encodings      []string `yaml:"encodings" envconfig:"ENCODINGS" default:"utf-8,cp932,shift_jis"`
	Delimiter      string   `yaml:"delimiter" envconfig:"DELIMITER" default:","`
	XColumn        string   `yaml:"x_column" envconfig:"X_COLUMN" default:"x"`
	YColumn        string   `yaml:"y_column" envconfig:"Y_COLUMN" default:"y"`
	LabelColumn    string   `yaml:"label_column" envconfig:"LABEL_COLUMN" default:"label"`
	CategoryColumn string   `yaml:"category_column" envconfig:"CATEGORY_COLUMN"`
}

// DelimiterRune returns the configured field delimiter as a rune.
func (d DataConfig) DelimiterRune() rune {
	for _, r := range d.Delimiter {
		return r
	}
	return ','
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
}

// ServerConfig contains HTTP server configuration for cmd/web.
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	RateLimitRPS    float64       `yaml:"rate_limit_rps" envconfig:"RATE_LIMIT_RPS" default:"20"`
	RateLimitBurst  int           `yaml:"rate_limit_burst" envconfig:"RATE_LIMIT_BURST" default:"10"`
}

// Load builds the configuration: struct defaults and SCATTER-prefixed
// environment variables first, then any field the YAML file sets (when
// path is non-empty and the file exists), then validation.
func Load(path string) (*Config, error) {
	const op = "config.Load"

	var cfg Config
	if err := envconfig.Process("SCATTER", &cfg); err != nil {
		return nil, apperrors.Wrap(apperrors.KindConfig, op, err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			fileCfg, err := loadFromFile(path)
			if err != nil {
				return nil, apperrors.Wrap(apperrors.KindConfig, op, err)
			}
			cfg = merge(*fileCfg, cfg)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return &cfg, nil
}

// merge applies file values over the defaults/env baseline. Fields the
// file leaves unset keep the baseline value.
func merge(file, env Config) Config {
	if len(file.Data.Encodings) > 0 {
		env.Data.Encodings = file.Data.Encodings
	}
	if file.Data.Delimiter != "" {
		env.Data.Delimiter = file.Data.Delimiter
	}
	if file.Data.XColumn != "" {
		env.Data.XColumn = file.Data.XColumn
	}
	if file.Data.YColumn != "" {
		env.Data.YColumn = file.Data.YColumn
	}
	if file.Data.LabelColumn != "" {
		env.Data.LabelColumn = file.Data.LabelColumn
	}
	if file.Data.CategoryColumn != "" {
		env.Data.CategoryColumn = file.Data.CategoryColumn
	}
	if file.Paths.InputDir != "" {
		env.Paths.InputDir = file.Paths.InputDir
	}
	if file.Paths.OutputDir != "" {
		env.Paths.OutputDir = file.Paths.OutputDir
	}
	if file.Paths.CategoryDir != "" {
		env.Paths.CategoryDir = file.Paths.CategoryDir
	}
	if file.Logging.Level != "" {
		env.Logging.Level = file.Logging.Level
	}
	if file.Logging.Format != "" {
		env.Logging.Format = file.Logging.Format
	}
	if file.Server.Port != 0 {
		env.Server.Port = file.Server.Port
	}
	if file.Server.RateLimitRPS != 0 {
		env.Server.RateLimitRPS = file.Server.RateLimitRPS
	}
	if file.Server.RateLimitBurst != 0 {
		env.Server.RateLimitBurst = file.Server.RateLimitBurst
	}
	return env
}

func (c *Config) validate() error {
	const op = "config.validate"

	if err := validator.New().Struct(c); err != nil {
		return apperrors.Wrap(apperrors.KindConfig, op, err)
	}

	if len(c.Data.Encodings) == 0 {
		return apperrors.Configf(op, "at least one encoding must be configured")
	}
	for _, name := range c.Data.Encodings {
		if !dataset.SupportedEncoding(name) {
			return apperrors.Configf(op, "unsupported encoding %q", name)
		}
	}
	if c.Data.XColumn == "" || c.Data.YColumn == "" {
		return apperrors.Configf(op, "x and y column names must not be empty")
	}
	return nil
}
