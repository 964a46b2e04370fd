// Package config loads the storefront client configuration.
package config

import (
	"time"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config is the full client configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	UI      UIConfig      `yaml:"ui"`
}

// APIConfig describes the gateway.
type APIConfig struct {
	BaseURL string        `yaml:"base_url" validate:"required,url"`
	Timeout time.Duration `yaml:"timeout" validate:"min=1ms"`
}

// StorageConfig selects where the session is persisted.
type StorageConfig struct {
	Backend string `yaml:"backend" validate:"oneof=file sqlite"`
	Dir     string `yaml:"dir" validate:"required"`
}

// LogConfig controls log verbosity.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=trace debug info warn error"`
}

// UIConfig tunes the terminal interface.
type UIConfig struct {
	ToastDuration   time.Duration `yaml:"toast_duration" validate:"min=1ms"`
	ErrorDismiss    time.Duration `yaml:"error_dismiss" validate:"min=1ms"`
	SearchDebounce  time.Duration `yaml:"search_debounce" validate:"min=0"`
	HomePageSize    int           `yaml:"home_page_size" validate:"min=1,max=100"`
	ListingPageSize int           `yaml:"listing_page_size" validate:"min=1,max=100"`
}

// Overrides are values supplied on the command line. Empty fields leave the
// loaded value alone.
type Overrides struct {
	BaseURL    string
	StorageDir string
	Backend    string
	LogLevel   string
}

// Default returns the built-in configuration rooted at stateDir.
func Default(stateDir string) Config {
	return Config{
		API: APIConfig{
			BaseURL: "https://dummyjson.com",
			Timeout: 10 * time.Second,
		},
		Storage: StorageConfig{
			Backend: BackendFile,
			Dir:     stateDir,
		},
		Log: LogConfig{Level: "info"},
		UI: UIConfig{
			ToastDuration:   3 * time.Second,
			ErrorDismiss:    3 * time.Second,
			SearchDebounce:  500 * time.Millisecond,
			HomePageSize:    10,
			ListingPageSize: 30,
		},
	}
}

// Apply overlays non-empty overrides.
func (c *Config) Apply(o Overrides) {
	if o.BaseURL != "" {
		c.API.BaseURL = o.BaseURL
	}
	if o.StorageDir != "" {
		c.Storage.Dir = o.StorageDir
	}
	if o.Backend != "" {
		c.Storage.Backend = o.Backend
	}
	if o.LogLevel != "" {
		c.Log.Level = o.LogLevel
	}
}
