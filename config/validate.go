package config

import (
	"fmt"
	"net"

	klog "github.com/Klingon-tech/multisend/internal/log"
	"github.com/Klingon-tech/multisend/pkg/types"
)

// Validate checks the configuration for obvious operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if cfg.DataDir == "" {
		return fmt.Errorf("datadir must not be empty")
	}
	if cfg.HTTP.Port < 0 || cfg.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be in range [0, 65535]")
	}
	if cfg.HTTP.MaxBody <= 0 {
		return fmt.Errorf("http.max_body must be positive")
	}
	for i, entry := range cfg.HTTP.AllowedIPs {
		if net.ParseIP(entry) == nil {
			if _, _, err := net.ParseCIDR(entry); err != nil {
				return fmt.Errorf("http.allowed[%d] %q is not an IP or CIDR", i, entry)
			}
		}
	}

	switch cfg.History.Backend {
	case BackendBadger, BackendMemory:
	default:
		return fmt.Errorf("history.backend must be %q or %q", BackendBadger, BackendMemory)
	}
	if cfg.History.CacheSize < 0 {
		return fmt.Errorf("history.cache must not be negative")
	}
	if cfg.History.MaxLimit < 1 {
		return fmt.Errorf("history.max_limit must be at least 1")
	}

	if ok, issues := types.ValidateAddress(cfg.Fees.DeveloperWallet); !ok {
		return fmt.Errorf("fees.developer_wallet: %s", issues[0])
	}

	if !klog.ValidLevel(cfg.Log.Level) {
		return fmt.Errorf("log.level must be debug, info, warn or error")
	}

	return nil
}
