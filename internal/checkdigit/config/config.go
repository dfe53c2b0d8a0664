package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config contains application configuration
type Config struct {
	RunAddress      string        `env:"RUN_ADDRESS"`
	MaxCount        int           `env:"MAX_COUNT"`
	LogLevel        string        `env:"LOG_LEVEL"`
	LogPretty       bool          `env:"LOG_PRETTY"`
	DefaultLang     string        `env:"DEFAULT_LANG"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Defaults
const (
	DefaultRunAddress      = ":8080"
	DefaultMaxCount        = 1000
	DefaultLogLevel        = "info"
	DefaultLang            = "en"
	DefaultShutdownTimeout = 10 * time.Second
)

// ErrInvalidMaxCount is returned when the generation bound is not positive
var ErrInvalidMaxCount = errors.New("max count must be at least 1")

// NewConfig creates a new configuration from command line flags,
// a .env file and environment variables
func NewConfig() (*Config, error) {
	// Ignore errors - the .env file might not exist and that's ok
	_ = godotenv.Load()

	return Parse(os.Args[0], os.Args[1:])
}

// Parse builds a configuration from args. Environment variables override
// flags, and flags override the defaults.
func Parse(name string, args []string) (*Config, error) {
	cfg := Config{}

	// Parse flags
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cfg.RunAddress, "a", DefaultRunAddress, "Server run address")
	fs.IntVar(&cfg.MaxCount, "n", DefaultMaxCount, "Largest count accepted by the generator form")
	fs.StringVar(&cfg.LogLevel, "l", DefaultLogLevel, "Log level (trace, debug, info, warn, error)")
	fs.BoolVar(&cfg.LogPretty, "pretty", false, "Human readable console logs")
	fs.StringVar(&cfg.DefaultLang, "lang", DefaultLang, "Language used when the client sends no preference")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", DefaultShutdownTimeout, "Graceful shutdown timeout")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Override with env vars if present
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that flags and env cannot express
func (c *Config) Validate() error {
	if c.MaxCount < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxCount, c.MaxCount)
	}
	if c.RunAddress == "" {
		c.RunAddress = DefaultRunAddress
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = DefaultShutdownTimeout
	}
	return nil
}
