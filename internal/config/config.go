package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/person-profile/internal/logger"
)

// Config holds settings shared by the person-profile binaries.
type Config struct {
	// ServerAddress is the gRPC address of the person service.
	ServerAddress string `yaml:"server_addr,omitempty"`
	// Timeout is the duration for network operations and RPC calls.
	Timeout time.Duration `yaml:"timeout,omitempty"`
	// CurrentYear is used as the birth year when none is given.
	// Zero means the year of the wall clock at startup.
	CurrentYear int `yaml:"current_year,omitempty"`
	// RosterFile is an optional YAML file listing people for the demo.
	RosterFile string `yaml:"roster_file,omitempty"`
	// LogLevel is the minimum level of log messages.
	LogLevel string `yaml:"log_level,omitempty"`
	// RequestLogLevel is the minimum level of per-request server messages.
	// Empty means "warn" so request details stay out of info-level logs.
	RequestLogLevel string `yaml:"request_log_level,omitempty"`
}

const (
	// DefaultConfigFilename is the default filename for settings.
	DefaultConfigFilename = "person-profile-settings.yaml"

	// DefaultServerAddress is used by the server when no address is configured.
	DefaultServerAddress = "127.0.0.1:50051"

	// DefaultTimeout is the default duration for network operations.
	DefaultTimeout = 5 * time.Second

	// DefaultRequestLogLevel is the level of per-request server messages.
	DefaultRequestLogLevel = "warn"

	// DefaultFilePermissions is the default file permission for written files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errNegativeYear is returned when the configured current year is negative.
	errNegativeYear = errors.New("current year must not be negative")
)

// Default returns settings with every default applied.
func Default() *Config {
	return &Config{
		Timeout:         DefaultTimeout,
		RequestLogLevel: DefaultRequestLogLevel,
	}
}

// Load reads configuration from the provided path and validates it.
// A missing file at the default location yields the default settings.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && path == DefaultConfigFilename {
			return Default(), nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the settings and fills in defaults.
func Validate(settings *Config) error {
	if settings == nil {
		return errConfigIsNotSet
	}

	if settings.ServerAddress != "" {
		if _, err := net.ResolveTCPAddr("tcp", settings.ServerAddress); err != nil {
			return fmt.Errorf("invalid server address: %w", err)
		}
	}

	if settings.CurrentYear < 0 {
		return fmt.Errorf("%w: %d", errNegativeYear, settings.CurrentYear)
	}

	if _, ok := logger.ParseLogLevel(settings.LogLevel); !ok {
		return fmt.Errorf("%w: %q", logger.ErrUnknownLevel, settings.LogLevel)
	}

	if settings.RequestLogLevel == "" {
		settings.RequestLogLevel = DefaultRequestLogLevel
	}

	if _, ok := logger.ParseLogLevel(settings.RequestLogLevel); !ok {
		return fmt.Errorf("request %w: %q", logger.ErrUnknownLevel, settings.RequestLogLevel)
	}

	if settings.Timeout <= 0 {
		settings.Timeout = DefaultTimeout
	}

	return nil
}

// Year returns the configured current year, or the year of now when unset.
func (c *Config) Year(now time.Time) int {
	if c.CurrentYear > 0 {
		return c.CurrentYear
	}

	return now.Year()
}

// Address returns the configured server address or the default one.
func (c *Config) Address() string {
	if c.ServerAddress != "" {
		return c.ServerAddress
	}

	return DefaultServerAddress
}
