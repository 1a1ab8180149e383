package server

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"atscheck/internal/ai"
	"atscheck/internal/config"
	"atscheck/internal/errors"
	"atscheck/internal/observability"
)

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ServerConfig holds everything needed to construct a Server.
type ServerConfig struct {
	Host           string
	Port           string
	Version        string
	TLSConfig      config.TLSConfig
	APIKeys        []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxRequestSize int64
	RateLimit      *config.RateLimitConfig
}

// Server is the HTTP API server for the scoring pipeline.
type Server struct {
	Host    string
	Port    string
	Version string

	AppConfig *config.Config
	TLSConfig config.TLSConfig

	// API keys as a set for O(1) lookup
	APIKeys map[string]bool

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	MaxRequestSize int64

	RateLimit   *config.RateLimitConfig
	RateLimiter *RateLimiter

	Logger *errors.Logger

	// AI services are created once and shared by the match handler and the
	// health endpoint, so circuit breaker state accumulates across requests.
	matchAI             *ai.Service
	matchAIErr          error
	qualificationsAI    *ai.Service
	qualificationsAIErr error

	certReloader *certReloader
}

// NewServer builds a Server from its configuration. When AI is enabled the
// per-operation services are constructed here; a construction failure is
// recorded and surfaced through the health endpoint instead of failing
// startup, since the scoring pipeline still works without AI.
func NewServer(appCfg *config.Config, cfg ServerConfig, logger *errors.Logger) *Server {
	keys := make(map[string]bool, len(cfg.APIKeys))
	for _, key := range cfg.APIKeys {
		if key != "" {
			keys[key] = true
		}
	}

	var limiter *RateLimiter
	if cfg.RateLimit != nil && cfg.RateLimit.Enabled {
		limiter = NewRateLimiter(cfg.RateLimit, logger)
	}

	s := &Server{
		Host:           cfg.Host,
		Port:           cfg.Port,
		Version:        cfg.Version,
		AppConfig:      appCfg,
		TLSConfig:      cfg.TLSConfig,
		APIKeys:        keys,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxRequestSize: cfg.MaxRequestSize,
		RateLimit:      cfg.RateLimit,
		RateLimiter:    limiter,
		Logger:         logger,
	}

	if appCfg.AI.Enabled {
		matchCfg := appCfg.GetMatchConfig()
		s.matchAI, s.matchAIErr = ai.NewService(&matchCfg, "match", logger)
		if s.matchAIErr != nil {
			logger.LogError(s.matchAIErr, "Failed to initialize match AI service")
		}

		qualCfg := appCfg.GetQualificationsConfig()
		s.qualificationsAI, s.qualificationsAIErr = ai.NewService(&qualCfg, "qualifications", logger)
		if s.qualificationsAIErr != nil {
			logger.LogError(s.qualificationsAIErr, "Failed to initialize qualifications AI service")
		}
	}

	return s
}

// Start runs the HTTP server until a SIGINT/SIGTERM arrives or the listener
// fails, then shuts down gracefully.
func (s *Server) Start() error {
	om, err := observability.NewObservabilityManager(
		observability.NewConfig(s.AppConfig, s.Version), s.AppConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := om.Shutdown(ctx); err != nil {
			s.Logger.LogError(err, "Failed to shutdown observability")
		}
	}()

	mux := s.setupRoutes(om)
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", s.Host, s.Port),
		Handler:      om.HTTPMiddleware()(mux),
		ReadTimeout:  s.ReadTimeout,
		WriteTimeout: s.WriteTimeout,
		IdleTimeout:  s.IdleTimeout,
	}

	useTLS := s.TLSConfig.Mode == "server" || s.TLSConfig.Mode == "mutual"
	if useTLS {
		tlsCfg, err := s.setupTLS(om)
		if err != nil {
			return err
		}
		httpServer.TLSConfig = tlsCfg
		fmt.Printf("Starting server on https://%s (TLS mode: %s)\n", httpServer.Addr, s.TLSConfig.Mode)
	} else {
		fmt.Printf("Starting server on http://%s (TLS disabled)\n", httpServer.Addr)
	}

	s.displayServerInfo()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	listenErr := make(chan error, 1)
	go func() {
		s.Logger.Info("Starting HTTP server",
			"address", httpServer.Addr,
			"tls_mode", s.TLSConfig.Mode)

		var err error
		if useTLS {
			// Certificates are already loaded into the TLS config.
			err = httpServer.ListenAndServeTLS("", "")
		} else {
			err = httpServer.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	select {
	case err := <-listenErr:
		s.closeBackground()
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		stop()
		s.Logger.Info("Shutdown signal received, stopping server")
	}

	return s.shutdown(httpServer)
}

// setupTLS builds the server TLS configuration and, when reload is enabled
// for file-based certificates, starts the certificate watcher.
func (s *Server) setupTLS(om *observability.ObservabilityManager) (*tls.Config, error) {
	tlsCfg, err := buildTLSConfig(s.TLSConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to build TLS configuration: %w", err)
	}

	if s.TLSConfig.Reload.Enabled && s.TLSConfig.CertFile != "" && s.TLSConfig.KeyFile != "" {
		reloader, err := newCertReloader(s.TLSConfig, om, s.Logger)
		if err != nil {
			return nil, fmt.Errorf("failed to start certificate reloader: %w", err)
		}
		s.certReloader = reloader

		// Hand certificate selection to the reloader so rotated files are
		// picked up without a restart.
		tlsCfg.Certificates = nil
		tlsCfg.GetCertificate = reloader.GetCertificate
		fmt.Println("Certificate reload: ENABLED (watching certificate files)")
	}

	return tlsCfg, nil
}

// shutdown drains in-flight requests and releases background resources.
func (s *Server) shutdown(httpServer *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s.closeBackground()

	s.Logger.Info("Shutting down HTTP server")
	if err := httpServer.Shutdown(ctx); err != nil {
		s.Logger.LogError(err, "Graceful shutdown failed, closing server")
		return httpServer.Close()
	}

	s.Logger.Info("Server shutdown completed")
	return nil
}

func (s *Server) closeBackground() {
	if s.certReloader != nil {
		s.certReloader.Close()
	}
	if s.RateLimiter != nil {
		s.RateLimiter.Close()
	}
}
