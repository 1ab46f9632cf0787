package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for a test run
type Config struct {
	// Output settings
	NoColor bool   `yaml:"no_color"`
	Quiet   bool   `yaml:"quiet"`
	Inspect bool   `yaml:"inspect"`
	Filter  string `yaml:"filter"`

	// Diagnostic logging level (logrus level name)
	LogLevel string `yaml:"log_level"`

	// Command flags
	Flags Flags `yaml:"-"`
}

// Flags holds command-line flags. Zero values mean "not set".
type Flags struct {
	NoColor    bool
	Quiet      bool
	Inspect    bool
	NameFilter string
	LogLevel   string
	ConfigFile string
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
	}
}

// Load creates a config and applies flags
func Load(flags Flags) *Config {
	cfg := New()
	cfg.ApplyFlags(flags)
	return cfg
}

// ApplyFlags stores flags and lets every set flag override the current value
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags

	if flags.NoColor {
		c.NoColor = true
	}
	if flags.Quiet {
		c.Quiet = true
	}
	if flags.Inspect {
		c.Inspect = true
	}
	if flags.NameFilter != "" {
		c.Filter = flags.NameFilter
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
}

// LoadFile merges the YAML file at path into the config.
// Keys missing from the file keep their current value.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// LoadEnv reads envFile if it exists, then applies the RASTY_* environment
// variables. Variables already set in the environment win over the file.
func (c *Config) LoadEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	for name, target := range map[string]*bool{
		"NO_COLOR": &c.NoColor,
		"QUIET":    &c.Quiet,
		"INSPECT":  &c.Inspect,
	} {
		value, ok := os.LookupEnv(EnvPrefix + name)
		if !ok || value == "" {
			continue
		}
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("parse %s%s: %w", EnvPrefix, name, err)
		}
		*target = parsed
	}

	if value := os.Getenv(EnvPrefix + "FILTER"); value != "" {
		c.Filter = value
	}
	if value := os.Getenv(EnvPrefix + "LOG_LEVEL"); value != "" {
		c.LogLevel = value
	}
	return nil
}

// GetLogLevel returns the parsed log level
func (c *Config) GetLogLevel() (logrus.Level, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// NewLogger creates the diagnostic logger. It writes to stderr so the
// test report on stdout stays untouched.
func (c *Config) NewLogger() (*logrus.Logger, error) {
	level, err := c.GetLogLevel()
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		DisableColors: c.NoColor,
	})
	return log, nil
}
