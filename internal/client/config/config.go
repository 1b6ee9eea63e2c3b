// Package config assembles the client's runtime settings from three
// layers: built-in defaults, an optional JSON file, then command-line
// flags. Later layers win.
package config

import "time"

// Config holds runtime settings for the Event Hub client.
//
// Fields:
//   - APIBaseURL: base URL of the Event Hub API, including any path
//     prefix (e.g. http://localhost:5000/api).
//   - RequestTimeout: fixed per-request deadline applied by the gateway.
//   - StateDBPath: location of the local SQLite state database.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	StateDBPath    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.RequestTimeout = 10 * time.Second
	c.StateDBPath = "eventhub.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was named) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
