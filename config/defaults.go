package config

import "github.com/Klingon-tech/multisend/pkg/fee"

// Default limits.
const (
	DefaultPort      = 8001
	DefaultMaxBody   = 5 << 20
	DefaultCacheSize = 1024
	DefaultMaxLimit  = 500
)

// Default returns the default daemon configuration.
func Default() *Config {
	return &Config{
		DataDir: DefaultDataDir(),
		HTTP: HTTPConfig{
			Addr:        "127.0.0.1",
			Port:        DefaultPort,
			CORSOrigins: []string{"*"},
			MaxBody:     DefaultMaxBody,
		},
		History: HistoryConfig{
			Backend:   BackendBadger,
			CacheSize: DefaultCacheSize,
			MaxLimit:  DefaultMaxLimit,
		},
		Fees: FeesConfig{
			DeveloperWallet: fee.DeveloperWallet,
		},
		Log: LogConfig{
			Level: "info",
			JSON:  false,
		},
	}
}
