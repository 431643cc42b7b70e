// Package config handles multisend daemon configuration.
//
// Settings are resolved in layers, each overriding the previous one:
// built-in defaults, the data directory's .conf file, environment variables
// (optionally seeded from a .env file) and command-line flags.
package config

import (
	"net"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

// HistoryBackend selects the storage engine behind transaction history.
type HistoryBackend string

const (
	BackendBadger HistoryBackend = "badger" // Persistent, under <datadir>/history
	BackendMemory HistoryBackend = "memory" // Lost on restart
)

// Config holds the daemon's runtime configuration.
type Config struct {
	DataDir string `conf:"datadir"`

	// HTTP API server
	HTTP HTTPConfig

	// Transaction history storage
	History HistoryConfig

	// Fee settings
	Fees FeesConfig

	// Logging
	Log LogConfig
}

// HTTPConfig holds API server settings.
type HTTPConfig struct {
	Addr        string   `conf:"http.addr"`
	Port        int      `conf:"http.port"`
	AllowedIPs  []string `conf:"http.allowed"` // Empty = allow all.
	CORSOrigins []string `conf:"http.cors"`    // "*" = all, empty = no CORS headers.
	MaxBody     int64    `conf:"http.max_body"`
}

// HistoryConfig holds transaction history settings.
type HistoryConfig struct {
	Backend   HistoryBackend `conf:"history.backend"`
	CacheSize int            `conf:"history.cache"` // Senders kept in the list cache; 0 disables it.
	MaxLimit  int            `conf:"history.max_limit"`
}

// FeesConfig holds fee settings.
type FeesConfig struct {
	DeveloperWallet string `conf:"fees.developer_wallet"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}

// ListenAddr returns the host:port the API server binds to.
func (h HTTPConfig) ListenAddr() string {
	return net.JoinHostPort(h.Addr, strconv.Itoa(h.Port))
}

// DefaultDataDir returns the platform-specific default data directory.
//
//	Linux:   ~/.multisend
//	macOS:   ~/Library/Application Support/Multisend
//	Windows: %APPDATA%\Multisend
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".multisend"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Multisend")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "Multisend")
		}
		return filepath.Join(home, "AppData", "Roaming", "Multisend")
	default:
		return filepath.Join(home, ".multisend")
	}
}

// HistoryDir returns the Badger directory for transaction history.
func (c *Config) HistoryDir() string {
	return filepath.Join(c.DataDir, "history")
}

// LogsDir returns the logs directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.DataDir, "logs")
}

// ConfigFile returns the config file path.
func (c *Config) ConfigFile() string {
	return filepath.Join(c.DataDir, "multisend.conf")
}
