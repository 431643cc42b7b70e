package config

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"defaults", func(*Config) {}, ""},
		{"port zero", func(c *Config) { c.HTTP.Port = 0 }, ""},
		{"port range", func(c *Config) { c.HTTP.Port = 70000 }, "http.port"},
		{"empty datadir", func(c *Config) { c.DataDir = "" }, "datadir"},
		{"max body", func(c *Config) { c.HTTP.MaxBody = 0 }, "http.max_body"},
		{"allowed cidr", func(c *Config) { c.HTTP.AllowedIPs = []string{"10.0.0.0/8", "::1"} }, ""},
		{"allowed garbage", func(c *Config) { c.HTTP.AllowedIPs = []string{"localhost"} }, "http.allowed[0]"},
		{"backend", func(c *Config) { c.History.Backend = "mongo" }, "history.backend"},
		{"cache", func(c *Config) { c.History.CacheSize = -1 }, "history.cache"},
		{"max limit", func(c *Config) { c.History.MaxLimit = 0 }, "history.max_limit"},
		{"developer wallet", func(c *Config) { c.Fees.DeveloperWallet = "not-a-wallet" }, "fees.developer_wallet: invalid address length"},
		{"log level", func(c *Config) { c.Log.Level = "trace" }, "log.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.want == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Validate() = %v, want error containing %q", err, tt.want)
			}
		})
	}

	if err := Validate(nil); err == nil {
		t.Error("Validate(nil) = nil")
	}
}
