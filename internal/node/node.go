// Package node wires configuration, storage, history and the API server
// into a runnable multisend service.
package node

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Klingon-tech/multisend/config"
	"github.com/Klingon-tech/multisend/internal/api"
	"github.com/Klingon-tech/multisend/internal/history"
	klog "github.com/Klingon-tech/multisend/internal/log"
	"github.com/Klingon-tech/multisend/internal/storage"
	"github.com/Klingon-tech/multisend/pkg/fee"
)

// Node is a fully-initialized multisend service.
type Node struct {
	cfg    *config.Config
	logger zerolog.Logger

	db      storage.DB
	history history.Store
	fees    *fee.Calculator

	apiServer *api.Server
}

// New creates and initializes a new Node. It sets up logging, storage,
// the history store and the API server but does not start listening.
// Call Start() for that.
func New(cfg *config.Config) (*Node, error) {
	// ── 1. Init logger ──────────────────────────────────────────────
	logFile, err := resolveLogFile(cfg)
	if err != nil {
		return nil, err
	}
	if err := klog.Init(cfg.Log.Level, cfg.Log.JSON, logFile); err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}
	logger := klog.Node

	logger.Info().
		Str("version", config.Version).
		Str("datadir", cfg.DataDir).
		Str("history", string(cfg.History.Backend)).
		Msg("Starting Solana Multi-Send API")

	// ── 2. Open storage ─────────────────────────────────────────────
	db, err := openDB(cfg)
	if err != nil {
		return nil, err
	}

	// ── 3. History store ────────────────────────────────────────────
	var store history.Store = history.NewIndexStore(db)
	if cfg.History.CacheSize > 0 {
		cached, err := history.NewCachedStore(store, cfg.History.CacheSize)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("create history cache: %w", err)
		}
		store = cached
	}

	// ── 4. Fees ─────────────────────────────────────────────────────
	fees := fee.NewCalculator(cfg.Fees.DeveloperWallet)
	if fees.DeveloperWallet() != fee.DeveloperWallet {
		logger.Info().Str("wallet", fees.DeveloperWallet()).Msg("Using custom developer fee wallet")
	}

	// ── 5. API server ───────────────────────────────────────────────
	srv := api.New(cfg.HTTP.ListenAddr(), fees, store, api.Config{
		AllowedIPs:      cfg.HTTP.AllowedIPs,
		CORSOrigins:     cfg.HTTP.CORSOrigins,
		MaxBodySize:     cfg.HTTP.MaxBody,
		MaxHistoryLimit: cfg.History.MaxLimit,
	})

	return &Node{
		cfg:       cfg,
		logger:    logger,
		db:        db,
		history:   store,
		fees:      fees,
		apiServer: srv,
	}, nil
}

// openDB opens the configured history backend.
func openDB(cfg *config.Config) (storage.DB, error) {
	switch cfg.History.Backend {
	case config.BackendMemory:
		klog.Storage.Warn().Msg("Using in-memory history; records are lost on restart")
		return storage.NewMemory(), nil
	default:
		dir := expandHome(cfg.HistoryDir())
		db, err := storage.NewBadger(dir)
		if err != nil {
			return nil, err
		}
		return db, nil
	}
}

// Start begins serving the API.
func (n *Node) Start() error {
	if err := n.apiServer.Start(); err != nil {
		return fmt.Errorf("start api server: %w", err)
	}
	n.logger.Info().
		Str("addr", n.apiServer.Addr()).
		Strs("cors", n.cfg.HTTP.CORSOrigins).
		Msg("API server listening")
	return nil
}

// Stop shuts down the API server and closes storage.
func (n *Node) Stop() {
	if n.apiServer != nil {
		if err := n.apiServer.Stop(); err != nil {
			n.logger.Warn().Err(err).Msg("API server shutdown")
		}
	}
	if n.db != nil {
		if err := n.db.Close(); err != nil {
			n.logger.Warn().Err(err).Msg("Database close")
		}
	}

	n.logger.Info().Msg("Goodbye!")
}

// APIAddr returns the address the API server is listening on.
func (n *Node) APIAddr() string {
	if n.apiServer == nil {
		return ""
	}
	return n.apiServer.Addr()
}

// History returns the node's history store.
func (n *Node) History() history.Store {
	return n.history
}
