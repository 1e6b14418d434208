// Package config handles configuration for the Reflecta client: defaults,
// JSON overlay, and command-line flags. The result is a fixed-shape struct;
// there are no loosely-typed preference blobs.
package config

import "time"

// Config holds runtime settings for the Reflecta client.
//
// Fields:
//   - ServerBaseURL: scheme://host:port of the backend HTTP API.
//   - DatabasePath: path of the local SQLite database file.
//   - ProbeTimeout: upper bound for a single reachability check.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - StalenessThreshold: maximum cache age before a refresh is preferred.
//   - RequestTimeout: upper bound for a single API request.
type Config struct {
	ServerBaseURL       string
	DatabasePath        string
	ProbeTimeout        time.Duration
	OnlineCheckInterval time.Duration
	StalenessThreshold  time.Duration
	RequestTimeout      time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.DatabasePath = "reflecta.db"
	c.ProbeTimeout = 3 * time.Second
	c.OnlineCheckInterval = 15 * time.Second
	c.StalenessThreshold = 5 * time.Minute
	c.RequestTimeout = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
