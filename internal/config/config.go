// Package config is responsible for setting the program config from
// the config file and command-line arguments
package config

import (
	"fmt"
	"io"
	"os"
)

type (
	// Config holds all configuration settings.
	Config struct {
		// Settings seeds the persisted settings document on first run.
		Settings Settings
		Display  DisplayConfig
		System   SystemConfig
		CLI      CLIConfig
		// prompted is set when the first-run prompt populated Settings.
		prompted bool
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme      bool
		TwentyFourHour bool
	}

	// SystemConfig holds system-related settings.
	SystemConfig struct {
		ConfigPath string
		DBPath     string
		StatusPath string
		LogPath    string
		SessionCmd string
		LogLevel   string
	}

	// CLIConfig holds options that only apply to the current invocation.
	CLIConfig struct {
		Overrides SettingsOverride
		Seed      uint64
		Headless  bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v1.0.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config with default values and applies options.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{
		Settings: DefaultSettings(),
		Display: DisplayConfig{
			DarkTheme: true,
		},
		System: SystemConfig{
			LogLevel: "info",
		},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return cfg, nil
}

// WithPaths returns an Option that records where hvila keeps its files.
func WithPaths(configPath, dbPath, statusPath, logPath string) Option {
	return func(c *Config) error {
		c.System.ConfigPath = configPath
		c.System.DBPath = dbPath
		c.System.StatusPath = statusPath
		c.System.LogPath = logPath

		return nil
	}
}

// EffectiveSettings applies the command-line overrides to the persisted
// settings, or to the configured defaults when nothing was persisted yet.
func (c *Config) EffectiveSettings(stored Settings, found bool) Settings {
	s := c.Settings
	if found {
		s = stored
	}

	return c.CLI.Overrides.Apply(s)
}
