package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridaofranco/eventdesk/internal/automation"
	"github.com/ridaofranco/eventdesk/internal/dates"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"EVENTDESK_LISTEN", "EVENTDESK_DB", "EVENTDESK_TIMEZONE", "EVENTDESK_PROGRAM_START", "EVENTDESK_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, dates.DefaultZone, cfg.Automation.Timezone)
	assert.Equal(t, "2025-08-01", cfg.Automation.ProgramStart)
	assert.Equal(t, 60, cfg.Automation.LookaheadDays)
	assert.Equal(t, 48*time.Hour, cfg.StaleAfter())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveAndLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Server.Listen = "0.0.0.0:9000"
	cfg.Automation.LookaheadDays = 30
	cfg.Logging.Level = "debug"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("automation:\n  lookahead_days: 45\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 45, cfg.Automation.LookaheadDays)
	assert.Equal(t, dates.DefaultZone, cfg.Automation.Timezone)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("EVENTDESK_LISTEN", ":8080")
	t.Setenv("EVENTDESK_DB", "/tmp/x.db")
	t.Setenv("EVENTDESK_TIMEZONE", "UTC")
	t.Setenv("EVENTDESK_PROGRAM_START", "2026-01-01")
	t.Setenv("EVENTDESK_LOG_LEVEL", "DEBUG")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, "/tmp/x.db", cfg.Database.Path)
	assert.Equal(t, "UTC", cfg.Automation.Timezone)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, dates.MustParse("2026-01-01"), cfg.AutomationOptions().ProgramStart)
}

func TestEmptyEnvDoesNotOverride(t *testing.T) {
	clearEnv(t)
	cfg := DefaultConfig()
	cfg.applyEnvOverrides()
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("EVENTDESK_TEST_DOTENV=from-file\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("EVENTDESK_TEST_DOTENV") })

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv("EVENTDESK_TEST_DOTENV"))

	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"empty listen", func(c *Config) { c.Server.Listen = "" }, "listen"},
		{"empty db", func(c *Config) { c.Database.Path = "" }, "database path"},
		{"bad zone", func(c *Config) { c.Automation.Timezone = "Mars/Olympus" }, "invalid timezone"},
		{"bad start", func(c *Config) { c.Automation.ProgramStart = "01/08/2025" }, "program start"},
		{"zero lookahead", func(c *Config) { c.Automation.LookaheadDays = 0 }, "lookahead"},
		{"negative stale", func(c *Config) { c.Reminders.StaleAfterHours = -1 }, "stale after"},
		{"bad level", func(c *Config) { c.Logging.Level = "trace" }, "invalid log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.errMsg)
		})
	}
}

func TestAutomationOptionsFallback(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Automation.ProgramStart = "garbage"
	cfg.Automation.LookaheadDays = 0
	assert.Equal(t, automation.DefaultOptions(), cfg.AutomationOptions())
}

func TestClassifierUsesHomeCountry(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Automation.HomeCountry = "AR"
	assert.Equal(t, "AR", cfg.Classifier().Home())
}
