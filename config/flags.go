package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// Version is the daemon version reported by --version.
const Version = "1.0.0"

// Flags holds parsed command-line flags.
type Flags struct {
	// Commands
	Help    bool
	Version bool

	// Core
	DataDir string
	Config  string
	EnvFile string

	// HTTP
	HTTPAddr    string
	HTTPPort    int
	HTTPAllowed string
	HTTPCORS    string
	MaxBody     int64

	// History
	HistoryBackend  string
	HistoryCache    int
	HistoryMaxLimit int

	// Fees
	DeveloperWallet string

	// Logging
	LogLevel string
	LogFile  string
	LogJSON  bool

	// Remaining args
	Args []string

	// Explicitly-set flags whose zero value is meaningful.
	SetHistoryCache bool
	SetLogJSON      bool
}

// ParseFlags parses command-line arguments (without the program name).
func ParseFlags(args []string) (*Flags, error) {
	f := &Flags{}
	fs := flag.NewFlagSet("multisendd", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	// Commands
	fs.BoolVar(&f.Help, "help", false, "Show help message")
	fs.BoolVar(&f.Help, "h", false, "Show help message (shorthand)")
	fs.BoolVar(&f.Version, "version", false, "Show version information")
	fs.BoolVar(&f.Version, "v", false, "Show version (shorthand)")

	// Core
	fs.StringVar(&f.DataDir, "datadir", "", "Data directory path")
	fs.StringVar(&f.Config, "config", "", "Config file path")
	fs.StringVar(&f.Config, "c", "", "Config file path (shorthand)")
	fs.StringVar(&f.EnvFile, "env-file", "", "Environment file to load")

	// HTTP
	fs.StringVar(&f.HTTPAddr, "http-addr", "", "API listen address")
	fs.IntVar(&f.HTTPPort, "http-port", 0, "API listen port")
	fs.StringVar(&f.HTTPAllowed, "http-allowed", "", "Allowed client IPs/CIDRs (comma-separated)")
	fs.StringVar(&f.HTTPCORS, "http-cors", "", "Allowed CORS origins (comma-separated)")
	fs.Int64Var(&f.MaxBody, "max-body", 0, "Maximum request body in bytes")

	// History
	fs.StringVar(&f.HistoryBackend, "history-backend", "", "History storage: badger or memory")
	fs.IntVar(&f.HistoryCache, "history-cache", 0, "Sender wallets kept in the history cache (0 disables)")
	fs.IntVar(&f.HistoryMaxLimit, "history-max-limit", 0, "Largest history page returned")

	// Fees
	fs.StringVar(&f.DeveloperWallet, "developer-wallet", "", "Wallet receiving the developer fee")

	// Logging
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFile, "log-file", "", "Log file path")
	fs.BoolVar(&f.LogJSON, "log-json", false, "Output logs as JSON")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	f.SetHistoryCache = isFlagSet(fs, "history-cache")
	f.SetLogJSON = isFlagSet(fs, "log-json")
	f.Args = fs.Args()

	// Detect unparsed flags caused by positional arguments stopping the parser.
	for _, arg := range f.Args {
		if strings.HasPrefix(arg, "-") {
			return nil, fmt.Errorf("flag %q was not parsed (positional argument stopped parsing)", arg)
		}
	}

	return f, nil
}

// ApplyFlags applies command-line flags to a Config struct.
func ApplyFlags(cfg *Config, f *Flags) {
	if f.DataDir != "" {
		cfg.DataDir = f.DataDir
	}

	// HTTP
	if f.HTTPAddr != "" {
		cfg.HTTP.Addr = f.HTTPAddr
	}
	if f.HTTPPort != 0 {
		cfg.HTTP.Port = f.HTTPPort
	}
	if f.HTTPAllowed != "" {
		cfg.HTTP.AllowedIPs = parseStringList(f.HTTPAllowed)
	}
	if f.HTTPCORS != "" {
		cfg.HTTP.CORSOrigins = parseStringList(f.HTTPCORS)
	}
	if f.MaxBody != 0 {
		cfg.HTTP.MaxBody = f.MaxBody
	}

	// History
	if f.HistoryBackend != "" {
		cfg.History.Backend = HistoryBackend(strings.ToLower(f.HistoryBackend))
	}
	if f.SetHistoryCache {
		cfg.History.CacheSize = f.HistoryCache
	}
	if f.HistoryMaxLimit != 0 {
		cfg.History.MaxLimit = f.HistoryMaxLimit
	}

	// Fees
	if f.DeveloperWallet != "" {
		cfg.Fees.DeveloperWallet = f.DeveloperWallet
	}

	// Logging
	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	if f.LogFile != "" {
		cfg.Log.File = f.LogFile
	}
	if f.SetLogJSON {
		cfg.Log.JSON = f.LogJSON
	}
}

// isFlagSet checks if a flag was explicitly set.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// PrintUsage writes the daemon's help text to w.
func PrintUsage(w io.Writer) {
	usage := `Solana Multi-Send API - validation, fee estimation and history for batch transfers

Usage:
  multisendd [options]
  multisendd --help

Commands:
  --help, -h      Show this help message
  --version, -v   Show version information

Core Options:
  --datadir       Data directory (default: ~/.multisend)
  --config, -c    Config file path (default: <datadir>/multisend.conf)
  --env-file      Environment file loaded before reading MULTISEND_* variables
                  (default: ./.env)

HTTP Options:
  --http-addr     API listen address (default: 127.0.0.1)
  --http-port     API listen port (default: 8001)
  --http-allowed  Allowed client IPs/CIDRs (comma-separated, default: all)
  --http-cors     Allowed CORS origins (comma-separated, default: *)
  --max-body      Maximum request body in bytes (default: 5242880)

History Options:
  --history-backend    Storage backend: badger (default) or memory
  --history-cache      Sender wallets kept in the history cache (default: 1024, 0 disables)
  --history-max-limit  Largest history page returned (default: 500)

Fee Options:
  --developer-wallet   Wallet receiving the 0.1% developer fee

Logging Options:
  --log-level     Log level: debug, info, warn, error (default: info)
  --log-file      Log file path (default: stdout)
  --log-json      Output logs as JSON

Environment:
  Every option has a MULTISEND_* variable (MULTISEND_HTTP_PORT,
  MULTISEND_HISTORY_BACKEND, ...). CORS_ORIGINS is also honoured.
  Precedence: defaults < config file < environment < flags.

Examples:
  # Start with defaults
  multisendd

  # Public API with in-memory history
  multisendd --http-addr=0.0.0.0 --history-backend=memory

  # Restrict browser origins
  multisendd --http-cors=https://app.example.com
`
	fmt.Fprint(w, usage)
}

// Load loads configuration from the process arguments and environment. It
// exits the process for --help, --version and malformed flags.
func Load() (*Config, *Flags, error) {
	flags, err := ParseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			PrintUsage(os.Stdout)
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'multisendd --help' for usage.")
		os.Exit(1)
	}

	if flags.Help {
		PrintUsage(os.Stdout)
		os.Exit(0)
	}
	if flags.Version {
		fmt.Println("multisendd version " + Version)
		os.Exit(0)
	}

	cfg, err := Resolve(flags, os.LookupEnv)
	if err != nil {
		return nil, nil, err
	}
	return cfg, flags, nil
}

// Resolve builds the configuration with the following precedence:
// 1. Default values
// 2. .env file (never overrides variables already set)
// 3. Auto-create data dirs + default config (idempotent)
// 4. Config file
// 5. Environment variables
// 6. Command-line flags
func Resolve(flags *Flags, lookup func(string) (string, bool)) (*Config, error) {
	envFile := flags.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := LoadDotEnv(envFile); err != nil {
		return nil, fmt.Errorf("loading env file: %w", err)
	}

	cfg := Default()

	// The data directory decides where the config file lives.
	if dir := envDataDir(lookup); dir != "" {
		cfg.DataDir = dir
	}
	if flags.DataDir != "" {
		cfg.DataDir = flags.DataDir
	}

	if err := EnsureDataDirs(cfg); err != nil {
		return nil, fmt.Errorf("ensuring data dirs: %w", err)
	}

	configPath := flags.Config
	if configPath == "" {
		configPath = cfg.ConfigFile()
	}

	fileValues, err := LoadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config file: %w", err)
	}
	if err := ApplyFileConfig(cfg, fileValues); err != nil {
		return nil, fmt.Errorf("applying config file: %w", err)
	}

	if err := ApplyEnvConfig(cfg, lookup); err != nil {
		return nil, fmt.Errorf("applying environment: %w", err)
	}

	// Apply flags (highest precedence)
	ApplyFlags(cfg, flags)
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// EnsureDataDirs creates the data directory structure and a default config
// file if they don't already exist. It is safe to call on every startup.
func EnsureDataDirs(cfg *Config) error {
	dirs := []string{
		cfg.DataDir,
		cfg.HistoryDir(),
		cfg.LogsDir(),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	configPath := cfg.ConfigFile()
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := WriteDefaultConfig(configPath); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}
	}

	return nil
}
