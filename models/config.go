// Package models holds the application configuration shared by the
// entry point and the terminal UI.
package models

import "time"

// Config is the top-level configuration, corresponding to
// northlight.yml plus NORTHLIGHT_* environment overrides.
type Config struct {
	// ContentFile points at an external page definition. Empty means
	// the embedded default page.
	ContentFile string `yaml:"content_file" koanf:"content_file"`

	// SubmitEndpoint is the URL contact submissions are posted to.
	// Empty selects the simulated transport.
	SubmitEndpoint string `yaml:"submit_endpoint" koanf:"submit_endpoint"`

	// SubmitDelay and FailureRate shape the simulated transport.
	SubmitDelay time.Duration `yaml:"submit_delay" koanf:"submit_delay"`
	FailureRate float64       `yaml:"failure_rate" koanf:"failure_rate"`

	LogFile string `yaml:"log_file" koanf:"log_file"`

	// BannerTTL is how long the status banner stays visible.
	BannerTTL time.Duration `yaml:"banner_ttl" koanf:"banner_ttl"`

	// ResizeDebounce is how long the UI waits after the last window
	// size change before relaying out the page.
	ResizeDebounce time.Duration `yaml:"resize_debounce" koanf:"resize_debounce"`
}

var DefaultConfig = Config{
	SubmitDelay:    1500 * time.Millisecond,
	FailureRate:    0.1,
	LogFile:        "northlight.log",
	BannerTTL:      5 * time.Second,
	ResizeDebounce: 150 * time.Millisecond,
}

// Validate rejects impossible values and backfills zero values with
// defaults.
func (c *Config) Validate() error {
	if c.FailureRate < 0 || c.FailureRate > 1 {
		return &ConfigError{Field: "failure_rate", Message: "must be between 0 and 1"}
	}

	if c.SubmitDelay <= 0 {
		c.SubmitDelay = DefaultConfig.SubmitDelay
	}
	if c.BannerTTL <= 0 {
		c.BannerTTL = DefaultConfig.BannerTTL
	}
	if c.ResizeDebounce <= 0 {
		c.ResizeDebounce = DefaultConfig.ResizeDebounce
	}
	if c.LogFile == "" {
		c.LogFile = DefaultConfig.LogFile
	}

	return nil
}

type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
