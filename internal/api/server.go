// Package api implements the multi-send REST API server.
package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/Klingon-tech/multisend/internal/history"
	klog "github.com/Klingon-tech/multisend/internal/log"
	"github.com/Klingon-tech/multisend/internal/validation"
	"github.com/Klingon-tech/multisend/pkg/fee"
)

// Defaults applied when Config leaves a limit unset.
const (
	DefaultMaxBodySize     = 5 << 20
	DefaultMaxHistoryLimit = 500
)

// Config controls the server's cross-cutting behaviour. A zero-value Config
// allows all IPs, disables CORS and uses the default limits.
type Config struct {
	AllowedIPs      []string
	CORSOrigins     []string
	MaxBodySize     int64
	MaxHistoryLimit int
}

// Server is the REST API HTTP server.
type Server struct {
	addr        string
	validator   *validation.Service
	fees        *fee.Calculator
	history     history.Store
	server      *http.Server
	handler     http.Handler
	logger      zerolog.Logger
	ln          net.Listener
	allowedNets []*net.IPNet // Empty = allow all.
	corsOrigins []string     // Empty = no CORS headers.
	maxBody     int64
	maxLimit    int
}

// New creates a new API server listening on addr once started.
func New(addr string, fees *fee.Calculator, store history.Store, cfg Config) *Server {
	s := &Server{
		addr:        addr,
		validator:   validation.NewService(),
		fees:        fees,
		history:     store,
		logger:      klog.API,
		allowedNets: parseAllowedIPs(cfg.AllowedIPs),
		corsOrigins: cfg.CORSOrigins,
		maxBody:     cfg.MaxBodySize,
		maxLimit:    cfg.MaxHistoryLimit,
	}
	if s.maxBody <= 0 {
		s.maxBody = DefaultMaxBodySize
	}
	if s.maxLimit <= 0 {
		s.maxLimit = DefaultMaxHistoryLimit
	}

	s.handler = s.wrap(s.routes())
	s.server = &http.Server{
		Handler:      s.handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return s
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/{$}", s.handleRoot)
	mux.HandleFunc("POST /api/validate-recipients", s.handleValidateRecipients)
	mux.HandleFunc("POST /api/estimate-fees", s.handleEstimateFees)
	mux.HandleFunc("POST /api/parse-csv", s.handleParseCSV)
	mux.HandleFunc("GET /api/token-list", s.handleTokenList)
	mux.HandleFunc("POST /api/save-transaction", s.handleSaveTransaction)
	mux.HandleFunc("GET /api/transaction-history/{wallet}", s.handleTransactionHistory)
	mux.HandleFunc("GET /api/transaction/{id}", s.handleGetTransaction)
	return mux
}

// parseAllowedIPs converts string IP/CIDR entries into net.IPNet.
func parseAllowedIPs(entries []string) []*net.IPNet {
	var nets []*net.IPNet
	for _, entry := range entries {
		_, ipNet, err := net.ParseCIDR(entry)
		if err == nil {
			nets = append(nets, ipNet)
			continue
		}
		// Try as a single IP (add /32 or /128).
		ip := net.ParseIP(entry)
		if ip == nil {
			continue
		}
		bits := 32
		if ip.To4() == nil {
			bits = 128
		}
		nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
	}
	return nets
}

// Handler returns the server's full HTTP handler, middleware included.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start begins listening and serving in a background goroutine.
// It returns immediately after the listener is bound.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	s.ln = ln

	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger.Error().Err(err).Msg("API server error")
		}
	}()

	return nil
}

// Addr returns the listener address (useful when bound to :0).
func (s *Server) Addr() string {
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.addr
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// wrap applies IP filtering, CORS, the body limit and request logging.
func (s *Server) wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// IP filtering.
		if len(s.allowedNets) > 0 {
			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			ip := net.ParseIP(host)
			if ip == nil || !s.isIPAllowed(ip) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
		}

		s.setCORSHeaders(w, r)

		// Handle CORS preflight.
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, s.maxBody)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		s.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("Request served")
	})
}

// isIPAllowed checks if the IP is in the allowed networks list.
func (s *Server) isIPAllowed(ip net.IP) bool {
	for _, n := range s.allowedNets {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

// setCORSHeaders adds CORS headers based on the configured origins.
func (s *Server) setCORSHeaders(w http.ResponseWriter, r *http.Request) {
	if len(s.corsOrigins) == 0 {
		return
	}

	origin := r.Header.Get("Origin")
	if origin == "" {
		return
	}

	allowed := false
	for _, o := range s.corsOrigins {
		if o == "*" {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			allowed = true
			break
		}
		if o == origin {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			allowed = true
			break
		}
	}

	if allowed {
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	}
}
