// Package config loads the uenvpull configuration file.
package config

import "time"

// Config is the decoded config file. Zero values fall back to defaults,
// and command-line flags override everything here.
type Config struct {
	Registry Registry `toml:"registry"`
	Oras     Oras     `toml:"oras"`
	Pull     Pull     `toml:"pull"`
}

// Registry holds registry addressing defaults.
type Registry struct {
	// Prefix is prepended to bare image names that carry no registry path.
	Prefix string `toml:"prefix"`
}

// Oras holds settings for the external oras client.
type Oras struct {
	// Path overrides executable lookup when set.
	Path string `toml:"path"`
}

// Pull holds transfer supervision settings.
type Pull struct {
	// PollIntervalMS is the progress poll interval in milliseconds.
	PollIntervalMS int `toml:"poll_interval_ms"`
}

// DefaultPollInterval is used when the config file sets no interval.
const DefaultPollInterval = 250 * time.Millisecond

// PollInterval returns the configured poll interval or the default.
func (c *Config) PollInterval() time.Duration {
	if c.Pull.PollIntervalMS == 0 {
		return DefaultPollInterval
	}
	return time.Duration(c.Pull.PollIntervalMS) * time.Millisecond
}
