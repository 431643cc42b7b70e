package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadFile loads configuration values from a .conf file.
// Format: key = value (one per line, # for comments).
// A missing file yields no values.
func LoadFile(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, err
	}
	defer file.Close()

	values := make(map[string]string)
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("line %d: invalid format (expected key = value)", lineNum)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Remove quotes if present
		if len(value) >= 2 {
			if (value[0] == '"' && value[len(value)-1] == '"') ||
				(value[0] == '\'' && value[len(value)-1] == '\'') {
				value = value[1 : len(value)-1]
			}
		}

		values[key] = value
	}

	return values, scanner.Err()
}

// ApplyFileConfig applies file configuration to a Config struct.
func ApplyFileConfig(cfg *Config, values map[string]string) error {
	for key, value := range values {
		if err := setConfigValue(cfg, key, value); err != nil {
			return fmt.Errorf("config key %q: %w", key, err)
		}
	}
	return nil
}

// setConfigValue sets a config value by its .conf key.
func setConfigValue(cfg *Config, key, value string) error {
	switch key {
	case "datadir":
		cfg.DataDir = value

	// HTTP
	case "http.addr":
		cfg.HTTP.Addr = value
	case "http.port":
		port, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		cfg.HTTP.Port = port
	case "http.allowed":
		cfg.HTTP.AllowedIPs = parseStringList(value)
	case "http.cors":
		cfg.HTTP.CORSOrigins = parseStringList(value)
	case "http.max_body":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		cfg.HTTP.MaxBody = n

	// History
	case "history.backend":
		cfg.History.Backend = HistoryBackend(strings.ToLower(value))
	case "history.cache":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		cfg.History.CacheSize = n
	case "history.max_limit":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		cfg.History.MaxLimit = n

	// Fees
	case "fees.developer_wallet":
		cfg.Fees.DeveloperWallet = value

	// Logging
	case "log.level":
		cfg.Log.Level = value
	case "log.file":
		cfg.Log.File = value
	case "log.json":
		cfg.Log.JSON = parseBool(value)

	default:
		// Unknown keys are ignored
	}
	return nil
}

// parseBool parses a boolean value.
func parseBool(s string) bool {
	s = strings.ToLower(s)
	return s == "true" || s == "1" || s == "yes" || s == "on"
}

// parseStringList parses a comma-separated list.
func parseStringList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// WriteDefaultConfig writes a default configuration file.
func WriteDefaultConfig(path string) error {
	content := `# Solana Multi-Send API configuration
#
# Every key can also be set with a MULTISEND_* environment variable
# (e.g. MULTISEND_HTTP_PORT) or a command-line flag; flags win.

# Data directory (default: ~/.multisend)
# datadir = ~/.multisend

# ============================================================================
# HTTP API
# ============================================================================

http.addr = 127.0.0.1
http.port = ` + strconv.Itoa(DefaultPort) + `
# Allowed client IPs or CIDRs (comma-separated, empty = all)
# http.allowed = 127.0.0.1, 10.0.0.0/8
# CORS allowed origins ("*" for all)
http.cors = *
# Maximum request body in bytes
http.max_body = ` + strconv.Itoa(DefaultMaxBody) + `

# ============================================================================
# Transaction history
# ============================================================================

# Storage backend: badger or memory
history.backend = badger
# Number of sender wallets kept in the history cache (0 = no cache)
history.cache = ` + strconv.Itoa(DefaultCacheSize) + `
# Largest page the history endpoint returns
history.max_limit = ` + strconv.Itoa(DefaultMaxLimit) + `

# ============================================================================
# Fees
# ============================================================================

# Wallet that receives the 0.1% developer fee
# fees.developer_wallet = 3ALfiR1TK2JqC18nfCE8vhGqBD86obX8AcV4YgjzmRij

# ============================================================================
# Logging
# ============================================================================

log.level = info
# log.file =
log.json = false
`
	return os.WriteFile(path, []byte(content), 0644)
}
