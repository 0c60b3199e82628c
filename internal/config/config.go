package config

import (
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for a test run
type Config struct {
	// Report settings
	Verbosity int    `yaml:"verbosity"`
	Color     string `yaml:"color"`
	Progress  bool   `yaml:"progress"`

	// Selection
	Filter string `yaml:"filter"`

	// Engine log level, empty for none
	LogLevel string `yaml:"log_level"`
}

// Flags holds command-line flags. A nil field was not set on the command
// line and leaves the configured value alone.
type Flags struct {
	ConfigFile string
	EnvFile    string

	Verbosity *int
	Color     *string
	Filter    *string
	Progress  *bool
	LogLevel  *string
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		Verbosity: DefaultVerbosity,
		Color:     DefaultColor,
		LogLevel:  DefaultLogLevel,
	}
}

// Load builds the configuration from, lowest first: the defaults, the YAML
// file named by flags.ConfigFile, the dotenv file, the verbosity
// environment variable and the flags set on the command line.
func Load(flags Flags) (*Config, error) {
	cfg := New()

	if flags.ConfigFile != "" {
		if err := cfg.readFile(flags.ConfigFile); err != nil {
			return nil, err
		}
	}

	if err := loadEnv(flags.EnvFile); err != nil {
		return nil, err
	}

	if raw, ok := os.LookupEnv(DefaultVerbosityEnv); ok {
		v, err := ParseVerbosity(raw)
		if err != nil {
			return nil, errors.Wrap(err, DefaultVerbosityEnv)
		}
		cfg.Verbosity = v
	}

	cfg.apply(flags)
	return cfg, cfg.Validate()
}

// readFile overlays the YAML file at path onto c
func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "failed to read config")
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "invalid YAML in %s", path)
	}
	return nil
}

// loadEnv loads a dotenv file into the environment without overriding
// variables that are already set. A missing default file is fine, a
// missing explicit one is not.
func loadEnv(path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return errors.Wrapf(err, "failed to load env file %s", path)
	}
	return nil
}

func (c *Config) apply(flags Flags) {
	if flags.Verbosity != nil {
		c.Verbosity = *flags.Verbosity
	}
	if flags.Color != nil {
		c.Color = *flags.Color
	}
	if flags.Filter != nil {
		c.Filter = *flags.Filter
	}
	if flags.Progress != nil {
		c.Progress = *flags.Progress
	}
	if flags.LogLevel != nil {
		c.LogLevel = *flags.LogLevel
	}
}

// Validate checks the values that have a restricted range
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return errors.Errorf("verbosity must not be negative, got %d", c.Verbosity)
	}
	if !slices.Contains(ColorModes, c.Color) {
		return errors.Errorf("unknown color mode %q, want one of %s", c.Color, strings.Join(ColorModes, ", "))
	}
	return nil
}

// ParseVerbosity parses a verbosity level. Anything that is not a
// non-negative integer is an error, including an empty value.
func ParseVerbosity(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errors.New("verbosity is empty")
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "verbosity %q is not a number", raw)
	}
	if v < 0 {
		return 0, errors.Errorf("verbosity %d is negative", v)
	}
	return v, nil
}

// UseColor reports whether output written to the file descriptor fd
// should be colored.
func (c *Config) UseColor(fd uintptr) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
