package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// envKeys maps environment variables to .conf keys. Later entries win, so
// the prefixed MULTISEND_CORS_ORIGINS overrides the bare CORS_ORIGINS.
var envKeys = []struct {
	env string
	key string
}{
	{"MULTISEND_DATADIR", "datadir"},
	{"MULTISEND_HTTP_ADDR", "http.addr"},
	{"MULTISEND_HTTP_PORT", "http.port"},
	{"MULTISEND_HTTP_ALLOWED", "http.allowed"},
	{"CORS_ORIGINS", "http.cors"},
	{"MULTISEND_CORS_ORIGINS", "http.cors"},
	{"MULTISEND_HTTP_MAX_BODY", "http.max_body"},
	{"MULTISEND_HISTORY_BACKEND", "history.backend"},
	{"MULTISEND_HISTORY_CACHE", "history.cache"},
	{"MULTISEND_HISTORY_MAX_LIMIT", "history.max_limit"},
	{"MULTISEND_DEVELOPER_WALLET", "fees.developer_wallet"},
	{"MULTISEND_LOG_LEVEL", "log.level"},
	{"MULTISEND_LOG_FILE", "log.file"},
	{"MULTISEND_LOG_JSON", "log.json"},
}

// LoadDotEnv loads variables from a .env file into the process
// environment. Variables that are already set are left untouched and a
// missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ApplyEnvConfig applies configuration from environment variables. lookup
// is normally os.LookupEnv. Set-but-empty variables are ignored.
func ApplyEnvConfig(cfg *Config, lookup func(string) (string, bool)) error {
	for _, e := range envKeys {
		value, ok := lookup(e.env)
		if !ok || value == "" {
			continue
		}
		if err := setConfigValue(cfg, e.key, value); err != nil {
			return fmt.Errorf("env %s: %w", e.env, err)
		}
	}
	return nil
}

// envDataDir returns the data directory named by the environment, if any.
func envDataDir(lookup func(string) (string, bool)) string {
	v, _ := lookup("MULTISEND_DATADIR")
	return v
}
