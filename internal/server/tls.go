package server

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"atscheck/internal/config"
	"atscheck/internal/errors"
	"atscheck/internal/observability"

	"github.com/fsnotify/fsnotify"
)

var cipherSuiteIDs = map[string]uint16{
	"TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256":         tls.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
	"TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384":         tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
	"TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305":          tls.TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305,
	"TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256":       tls.TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256,
	"TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384":       tls.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
	"TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305":        tls.TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305,
	"TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256":   tls.TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256,
	"TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305_SHA256": tls.TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305_SHA256,
	"TLS_AES_128_GCM_SHA256":                        tls.TLS_AES_128_GCM_SHA256,
	"TLS_AES_256_GCM_SHA384":                        tls.TLS_AES_256_GCM_SHA384,
	"TLS_CHACHA20_POLY1305_SHA256":                  tls.TLS_CHACHA20_POLY1305_SHA256,
}

// buildTLSConfig translates the application TLS settings into a crypto/tls
// configuration. The certificate and key may come from files or from inline
// PEM content (the latter is populated from Vault at startup).
func buildTLSConfig(cfg config.TLSConfig) (*tls.Config, error) {
	tlsCfg := &tls.Config{MinVersion: tls.VersionTLS12}
	if cfg.MinVersion == "1.3" {
		tlsCfg.MinVersion = tls.VersionTLS13
	}

	cert, err := loadServerCertificate(cfg)
	if err != nil {
		return nil, err
	}
	tlsCfg.Certificates = []tls.Certificate{cert}

	for _, name := range cfg.CipherSuites {
		id, ok := cipherSuiteIDs[name]
		if !ok {
			return nil, fmt.Errorf("unknown cipher suite: %s", name)
		}
		tlsCfg.CipherSuites = append(tlsCfg.CipherSuites, id)
	}

	if cfg.Mode == "mutual" {
		pool, err := loadClientCAPool(cfg)
		if err != nil {
			return nil, err
		}
		tlsCfg.ClientCAs = pool
		tlsCfg.ClientAuth = clientAuthType(cfg.ClientAuthPolicy)
	}

	return tlsCfg, nil
}

func loadServerCertificate(cfg config.TLSConfig) (tls.Certificate, error) {
	if cfg.CertContent != "" || cfg.KeyContent != "" {
		cert, err := tls.X509KeyPair([]byte(cfg.CertContent), []byte(cfg.KeyContent))
		if err != nil {
			return tls.Certificate{}, fmt.Errorf("failed to parse certificate content: %w", err)
		}
		return cert, nil
	}

	cert, err := tls.LoadX509KeyPair(cfg.CertFile, cfg.KeyFile)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("failed to load certificate files: %w", err)
	}
	return cert, nil
}

func loadClientCAPool(cfg config.TLSConfig) (*x509.CertPool, error) {
	caPEM := []byte(cfg.CAContent)
	if len(caPEM) == 0 {
		data, err := os.ReadFile(cfg.CAFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA certificate: %w", err)
		}
		caPEM = data
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(caPEM) {
		return nil, fmt.Errorf("no valid CA certificates found")
	}
	return pool, nil
}

func clientAuthType(policy string) tls.ClientAuthType {
	switch policy {
	case "request":
		return tls.RequestClientCert
	case "verify":
		return tls.VerifyClientCertIfGiven
	default:
		return tls.RequireAndVerifyClientCert
	}
}

// certReloader watches file-based certificates and swaps them in atomically
// when they change on disk, so rotated certificates take effect without a
// restart.
type certReloader struct {
	certFile string
	keyFile  string
	debounce time.Duration

	mu   sync.RWMutex
	cert *tls.Certificate

	reloads  int64
	failures int64
	lastErr  string

	watcher *fsnotify.Watcher
	done    chan struct{}
	om      *observability.ObservabilityManager
	logger  *errors.Logger
}

func newCertReloader(cfg config.TLSConfig, om *observability.ObservabilityManager, logger *errors.Logger) (*certReloader, error) {
	cert, err := tls.LoadX509KeyPair(cfg.CertFile, cfg.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load certificate files: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Watch the parent directories rather than the files themselves, so
	// atomic renames (how Kubernetes rotates mounted secrets) are seen.
	dirs := map[string]bool{
		filepath.Dir(cfg.CertFile): true,
		filepath.Dir(cfg.KeyFile):  true,
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			_ = watcher.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	debounce := cfg.Reload.Debounce
	if debounce <= 0 {
		debounce = time.Second
	}

	r := &certReloader{
		certFile: cfg.CertFile,
		keyFile:  cfg.KeyFile,
		debounce: debounce,
		cert:     &cert,
		watcher:  watcher,
		done:     make(chan struct{}),
		om:       om,
		logger:   logger,
	}
	go r.watch()
	return r, nil
}

// GetCertificate serves the most recently loaded certificate. Wired into
// tls.Config.GetCertificate.
func (r *certReloader) GetCertificate(_ *tls.ClientHelloInfo) (*tls.Certificate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cert, nil
}

func (r *certReloader) watch() {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case event, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if !r.relevant(event) {
				continue
			}
			// Certificate and key are usually rewritten together; wait for
			// the quiet period so we never load a mismatched pair.
			if timer == nil {
				timer = time.NewTimer(r.debounce)
				timerC = timer.C
			} else {
				timer.Reset(r.debounce)
			}
		case <-timerC:
			timer = nil
			timerC = nil
			r.reload()
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			r.logger.LogError(err, "Certificate watcher error")
		case <-r.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

func (r *certReloader) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	name := filepath.Clean(event.Name)
	return name == filepath.Clean(r.certFile) || name == filepath.Clean(r.keyFile)
}

func (r *certReloader) reload() {
	cert, err := tls.LoadX509KeyPair(r.certFile, r.keyFile)

	r.mu.Lock()
	if err != nil {
		r.failures++
		r.lastErr = err.Error()
		r.mu.Unlock()
		r.logger.LogError(err, "Failed to reload TLS certificates",
			"cert_file", r.certFile)
		return
	}
	r.cert = &cert
	r.reloads++
	r.lastErr = ""
	r.mu.Unlock()

	r.logger.Info("TLS certificates reloaded", "cert_file", r.certFile)
	if r.om != nil {
		metrics := r.om.GetMetrics()
		if metrics.CertReloadCount != nil {
			metrics.CertReloadCount.Add(context.Background(), 1)
		}
		if metrics.CertExpiryTime != nil {
			if ttl, err := r.CheckExpiry(); err == nil {
				metrics.CertExpiryTime.Record(context.Background(), ttl.Seconds())
			}
		}
	}
}

// CheckExpiry returns the time remaining until the current certificate
// expires.
func (r *certReloader) CheckExpiry() (time.Duration, error) {
	r.mu.RLock()
	cert := r.cert
	r.mu.RUnlock()

	if cert == nil || len(cert.Certificate) == 0 {
		return 0, fmt.Errorf("no certificate loaded")
	}

	leaf := cert.Leaf
	if leaf == nil {
		parsed, err := x509.ParseCertificate(cert.Certificate[0])
		if err != nil {
			return 0, fmt.Errorf("failed to parse certificate: %w", err)
		}
		leaf = parsed
	}

	return time.Until(leaf.NotAfter), nil
}

// Stats reports reload counters for the health endpoint.
func (r *certReloader) Stats() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := map[string]any{
		"enabled":       true,
		"reload_count":  r.reloads,
		"failure_count": r.failures,
		"watched_files": []string{r.certFile, r.keyFile},
		"debounce":      r.debounce.String(),
	}
	if r.lastErr != "" {
		stats["last_error"] = r.lastErr
	}
	return stats
}

// Close stops the watcher goroutine.
func (r *certReloader) Close() {
	close(r.done)
	_ = r.watcher.Close()
}
