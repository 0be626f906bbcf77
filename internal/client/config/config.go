// Package config assembles runtime settings for the SpicesLink CLI from,
// in order of increasing precedence: defaults, environment (.env aware),
// a JSON file (-c/-config), and command-line flags.
package config

import "time"

// Config holds runtime settings for the SpicesLink CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API, including the /api prefix.
//   - DatabaseDSN: path of the local sqlite session database.
//   - RequestTimeout: client-side timeout per HTTP request; zero disables it.
//   - ReconcileDelay: wait before the post-delete reconciling refetch.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - CloudinaryURL: cloudinary:// credentials for image uploads; empty
//     disables uploading and local image paths are sent as-is.
type Config struct {
	APIBaseURL          string
	DatabaseDSN         string
	RequestTimeout      time.Duration
	ReconcileDelay      time.Duration
	OnlineCheckInterval time.Duration
	CloudinaryURL       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.DatabaseDSN = "spiceslink.db"
	c.RequestTimeout = 10 * time.Second
	c.ReconcileDelay = 500 * time.Millisecond
	c.OnlineCheckInterval = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if present) and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
