package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultHost           = "127.0.0.1"
	DefaultPort           = 8080
	DefaultMaxUploadSize  = 32 << 20 // 32 MB multipart memory
	DefaultExtractTimeout = 30 * time.Second
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
)

// Config holds all configuration for the challan extractor service.
type Config struct {
	Host           string
	Port           int
	MaxUploadSize  int64
	ExtractTimeout time.Duration // per-document PDF extraction guard
	LogLevel       string
	LogFormat      string // json or text
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Host:           DefaultHost,
		Port:           DefaultPort,
		MaxUploadSize:  DefaultMaxUploadSize,
		ExtractTimeout: DefaultExtractTimeout,
		LogLevel:       DefaultLogLevel,
		LogFormat:      DefaultLogFormat,
	}
}

// LoadFromFlags parses command line flags and environment variables
// (CHALLAN_ prefix) and returns a validated configuration.
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetEnvPrefix("CHALLAN")
	viper.AutomaticEnv()

	viper.SetDefault("host", cfg.Host)
	viper.SetDefault("port", cfg.Port)
	viper.SetDefault("maxuploadsize", cfg.MaxUploadSize)
	viper.SetDefault("extracttimeout", cfg.ExtractTimeout)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("logformat", cfg.LogFormat)

	pflag.String("host", cfg.Host, "Server host address")
	pflag.Int("port", cfg.Port, "Server port")
	pflag.Int64("maxuploadsize", cfg.MaxUploadSize, "Maximum multipart upload memory in bytes")
	pflag.Duration("extracttimeout", cfg.ExtractTimeout, "Per-document PDF text extraction timeout")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.String("logformat", cfg.LogFormat, "Log format (json, text)")

	_ = viper.BindPFlag("host", pflag.Lookup("host"))
	_ = viper.BindPFlag("port", pflag.Lookup("port"))
	_ = viper.BindPFlag("maxuploadsize", pflag.Lookup("maxuploadsize"))
	_ = viper.BindPFlag("extracttimeout", pflag.Lookup("extracttimeout"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("logformat", pflag.Lookup("logformat"))

	pflag.Parse()

	cfg.Host = viper.GetString("host")
	cfg.Port = viper.GetInt("port")
	cfg.MaxUploadSize = viper.GetInt64("maxuploadsize")
	cfg.ExtractTimeout = viper.GetDuration("extracttimeout")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.LogFormat = viper.GetString("logformat")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.MaxUploadSize <= 0 {
		return fmt.Errorf("maxuploadsize must be positive, got %d", c.MaxUploadSize)
	}
	if c.ExtractTimeout < 0 {
		return fmt.Errorf("extracttimeout must not be negative, got %s", c.ExtractTimeout)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}
