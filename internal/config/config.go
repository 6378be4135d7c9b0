// Package config loads eventdesk settings from YAML with .env and
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ridaofranco/eventdesk/internal/automation"
	"github.com/ridaofranco/eventdesk/internal/dates"
	"github.com/ridaofranco/eventdesk/internal/reminders"
	"github.com/ridaofranco/eventdesk/internal/venue"
)

// Config holds all eventdesk configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Automation AutomationConfig `yaml:"automation"`
	Reminders  RemindersConfig  `yaml:"reminders"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ServerConfig configures the dashboard daemon.
type ServerConfig struct {
	Listen string `yaml:"listen"`
}

// DatabaseConfig configures the SQLite store.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// AutomationConfig configures task derivation.
type AutomationConfig struct {
	Timezone      string `yaml:"timezone"`
	HomeCountry   string `yaml:"home_country"`
	ProgramStart  string `yaml:"program_start"` // YYYY-MM-DD
	LookaheadDays int    `yaml:"lookahead_days"`
}

// RemindersConfig configures the reminder scan.
type RemindersConfig struct {
	StaleAfterHours int `yaml:"stale_after_hours"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Listen: "127.0.0.1:7466",
		},
		Database: DatabaseConfig{
			Path: defaultDBPath(),
		},
		Automation: AutomationConfig{
			Timezone:      dates.DefaultZone,
			HomeCountry:   venue.HomeCountry,
			ProgramStart:  automation.DefaultProgramStart.String(),
			LookaheadDays: automation.DefaultLookaheadDays,
		},
		Reminders: RemindersConfig{
			StaleAfterHours: int(reminders.DefaultStaleAfter / time.Hour),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Dir returns the eventdesk home directory (~/.eventdesk).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".eventdesk"
	}
	return filepath.Join(home, ".eventdesk")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

func defaultDBPath() string {
	return filepath.Join(Dir(), "eventdesk.db")
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. A .env file in the working directory, when present, is loaded
// before environment overrides are applied.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}
	cfg.applyEnvOverrides()

	return cfg, nil
}

// LoadDefault loads the config from DefaultPath.
func LoadDefault() (*Config, error) {
	return Load(DefaultPath())
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	// godotenv.Load never overrides variables already set in the process.
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("EVENTDESK_LISTEN"); v != "" {
		c.Server.Listen = v
	}
	if v := os.Getenv("EVENTDESK_DB"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("EVENTDESK_TIMEZONE"); v != "" {
		c.Automation.Timezone = v
	}
	if v := os.Getenv("EVENTDESK_PROGRAM_START"); v != "" {
		c.Automation.ProgramStart = v
	}
	if v := os.Getenv("EVENTDESK_LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
}

// ValidLogLevels lists the accepted logging levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Listen == "" {
		return fmt.Errorf("server listen address not configured")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database path not configured")
	}
	if _, err := time.LoadLocation(c.Automation.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Automation.Timezone, err)
	}
	if c.Automation.ProgramStart != "" {
		if _, err := dates.Parse(c.Automation.ProgramStart); err != nil {
			return fmt.Errorf("invalid program start: %w", err)
		}
	}
	if c.Automation.LookaheadDays <= 0 {
		return fmt.Errorf("lookahead days must be positive, got %d", c.Automation.LookaheadDays)
	}
	if c.Reminders.StaleAfterHours < 0 {
		return fmt.Errorf("stale after hours must not be negative, got %d", c.Reminders.StaleAfterHours)
	}

	valid := false
	for _, l := range ValidLogLevels {
		if c.Logging.Level == l {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}
	return nil
}

// AutomationOptions converts the automation section into engine options.
// Call Validate first; an unparsable program start falls back to the default.
func (c *Config) AutomationOptions() automation.Options {
	opts := automation.DefaultOptions()
	if d, err := dates.Parse(c.Automation.ProgramStart); err == nil {
		opts.ProgramStart = d
	}
	if c.Automation.LookaheadDays > 0 {
		opts.LookaheadDays = c.Automation.LookaheadDays
	}
	return opts
}

// StaleAfter returns the reminder threshold as a duration.
func (c *Config) StaleAfter() time.Duration {
	if c.Reminders.StaleAfterHours <= 0 {
		return reminders.DefaultStaleAfter
	}
	return time.Duration(c.Reminders.StaleAfterHours) * time.Hour
}

// Classifier returns the venue classifier for the configured home country.
func (c *Config) Classifier() *venue.Classifier {
	return venue.ForHome(c.Automation.HomeCountry)
}
