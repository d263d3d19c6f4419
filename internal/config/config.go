package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full service configuration. Values come from the embedded
// defaults, optionally overridden by a YAML file and environment expansion.
type Config struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`

	Automation struct {
		// TypeDelayMs is the per-keystroke delay passed to the input backend.
		TypeDelayMs int `yaml:"typeDelayMs"`
		// SettleSeconds is how long to wait after launching a browser before
		// typing into it.
		SettleSeconds float64 `yaml:"settleSeconds"`
		// PollIntervalMs bounds cancellation latency: the inter-search delay
		// is slept in increments of this size.
		PollIntervalMs int `yaml:"pollIntervalMs"`
	} `yaml:"automation"`

	Failsafe struct {
		Enabled bool `yaml:"enabled"`
		// Corner of the primary display reserved for the emergency abort:
		// top-left, top-right, bottom-left or bottom-right.
		Corner string `yaml:"corner"`
		// SizePx is the edge length of the reserved square region.
		SizePx int `yaml:"sizePx"`
	} `yaml:"failsafe"`

	Browser struct {
		// ChromeUserDataDir overrides the per-OS Chrome user data directory
		// used for profile enumeration. Empty means auto-detect.
		ChromeUserDataDir string `yaml:"chromeUserDataDir"`
	} `yaml:"browser"`

	Schedule struct {
		// Spec is an optional cron expression; when set, the stored term list
		// is run on that schedule.
		Spec string `yaml:"spec"`
		// DelaySeconds is the inter-search delay for scheduled runs.
		DelaySeconds float64 `yaml:"delaySeconds"`
		// Browser used for scheduled runs.
		Browser string `yaml:"browser"`
	} `yaml:"schedule"`
}

// Default returns the built-in configuration.
func Default() Config {
	var c Config
	c.Host = "0.0.0.0"
	c.Port = 5000
	c.Automation.TypeDelayMs = 12
	c.Automation.SettleSeconds = 3
	c.Automation.PollIntervalMs = 100
	c.Failsafe.Enabled = true
	c.Failsafe.Corner = "top-left"
	c.Failsafe.SizePx = 10
	c.Schedule.DelaySeconds = 3
	c.Schedule.Browser = "chrome"
	return c
}

// LoadFromBytes loads configuration from YAML bytes with environment variable
// expansion, on top of the built-in defaults.
func LoadFromBytes(data []byte) (Config, error) {
	c := Default()
	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), &c); err != nil {
		return c, fmt.Errorf("parse config: %w", err)
	}
	return c, nil
}

// LoadFile loads configuration from a YAML file on top of the defaults.
// A missing file is not an error; the defaults are returned.
func LoadFile(path string) (Config, error) {
	return LoadFileOver(Default(), path)
}

// LoadFileOver loads a YAML file on top of an existing configuration, so an
// on-disk override file only needs the keys it changes. A missing file is
// not an error; base is returned unchanged.
func LoadFileOver(base Config, path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return base, nil
		}
		return base, err
	}
	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), &base); err != nil {
		return base, fmt.Errorf("parse config: %w", err)
	}
	return base, nil
}
