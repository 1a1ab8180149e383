package server

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"log/slog"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"atscheck/internal/config"
	"atscheck/internal/errors"
)

// selfSignedCert generates a short-lived self-signed certificate and returns
// the PEM-encoded certificate and key.
func selfSignedCert(t *testing.T, notAfter time.Time) (certPEM, keyPEM []byte) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}

	template := x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "localhost"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     notAfter,
		KeyUsage:     x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		DNSNames:     []string{"localhost"},
		IsCA:         true,
		BasicConstraintsValid: true,
	}

	der, err := x509.CreateCertificate(rand.Reader, &template, &template, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("failed to create certificate: %v", err)
	}

	keyDER, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		t.Fatalf("failed to marshal key: %v", err)
	}

	certPEM = pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	keyPEM = pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER})
	return certPEM, keyPEM
}

func writeCertFiles(t *testing.T, dir string, certPEM, keyPEM []byte) (certFile, keyFile string) {
	t.Helper()

	certFile = filepath.Join(dir, "server.crt")
	keyFile = filepath.Join(dir, "server.key")
	if err := os.WriteFile(certFile, certPEM, 0600); err != nil {
		t.Fatalf("failed to write certificate: %v", err)
	}
	if err := os.WriteFile(keyFile, keyPEM, 0600); err != nil {
		t.Fatalf("failed to write key: %v", err)
	}
	return certFile, keyFile
}

func TestBuildTLSConfigFromFiles(t *testing.T) {
	certPEM, keyPEM := selfSignedCert(t, time.Now().Add(365*24*time.Hour))
	certFile, keyFile := writeCertFiles(t, t.TempDir(), certPEM, keyPEM)

	tlsCfg, err := buildTLSConfig(config.TLSConfig{
		Mode:     "server",
		CertFile: certFile,
		KeyFile:  keyFile,
	})
	if err != nil {
		t.Fatalf("expected config to build, got: %v", err)
	}

	if len(tlsCfg.Certificates) != 1 {
		t.Errorf("expected one certificate, got %d", len(tlsCfg.Certificates))
	}
	if tlsCfg.MinVersion != tls.VersionTLS12 {
		t.Errorf("expected default minimum TLS 1.2, got %x", tlsCfg.MinVersion)
	}
	if tlsCfg.ClientAuth != tls.NoClientCert {
		t.Errorf("expected no client auth in server mode, got %v", tlsCfg.ClientAuth)
	}
}

func TestBuildTLSConfigFromContent(t *testing.T) {
	certPEM, keyPEM := selfSignedCert(t, time.Now().Add(24*time.Hour))

	tlsCfg, err := buildTLSConfig(config.TLSConfig{
		Mode:        "server",
		CertContent: string(certPEM),
		KeyContent:  string(keyPEM),
		MinVersion:  "1.3",
	})
	if err != nil {
		t.Fatalf("expected config to build from content, got: %v", err)
	}
	if tlsCfg.MinVersion != tls.VersionTLS13 {
		t.Errorf("expected minimum TLS 1.3, got %x", tlsCfg.MinVersion)
	}
}

func TestBuildTLSConfigMutual(t *testing.T) {
	certPEM, keyPEM := selfSignedCert(t, time.Now().Add(24*time.Hour))

	tests := []struct {
		name   string
		policy string
		want   tls.ClientAuthType
	}{
		{"default requires client certs", "", tls.RequireAndVerifyClientCert},
		{"require", "require", tls.RequireAndVerifyClientCert},
		{"request", "request", tls.RequestClientCert},
		{"verify", "verify", tls.VerifyClientCertIfGiven},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tlsCfg, err := buildTLSConfig(config.TLSConfig{
				Mode:             "mutual",
				CertContent:      string(certPEM),
				KeyContent:       string(keyPEM),
				CAContent:        string(certPEM),
				ClientAuthPolicy: tt.policy,
			})
			if err != nil {
				t.Fatalf("expected mutual config to build, got: %v", err)
			}
			if tlsCfg.ClientAuth != tt.want {
				t.Errorf("expected client auth %v, got %v", tt.want, tlsCfg.ClientAuth)
			}
			if tlsCfg.ClientCAs == nil {
				t.Error("expected client CA pool to be set")
			}
		})
	}
}

func TestBuildTLSConfigRejectsUnknownCipher(t *testing.T) {
	certPEM, keyPEM := selfSignedCert(t, time.Now().Add(24*time.Hour))

	_, err := buildTLSConfig(config.TLSConfig{
		Mode:         "server",
		CertContent:  string(certPEM),
		KeyContent:   string(keyPEM),
		CipherSuites: []string{"TLS_TOTALLY_MADE_UP"},
	})
	if err == nil {
		t.Fatal("expected an error for unknown cipher suite")
	}
}

func TestCertReloaderSwapsCertificates(t *testing.T) {
	dir := t.TempDir()
	certPEM, keyPEM := selfSignedCert(t, time.Now().Add(48*time.Hour))
	certFile, keyFile := writeCertFiles(t, dir, certPEM, keyPEM)

	logger := errors.NewLogger(slog.LevelError)
	reloader, err := newCertReloader(config.TLSConfig{
		Mode:     "server",
		CertFile: certFile,
		KeyFile:  keyFile,
		Reload:   config.CertReloadConfig{Enabled: true, Debounce: 10 * time.Millisecond},
	}, nil, logger)
	if err != nil {
		t.Fatalf("failed to create reloader: %v", err)
	}
	defer reloader.Close()

	first, err := reloader.GetCertificate(nil)
	if err != nil || first == nil {
		t.Fatalf("expected initial certificate, got cert=%v err=%v", first, err)
	}

	ttl, err := reloader.CheckExpiry()
	if err != nil {
		t.Fatalf("failed to check expiry: %v", err)
	}
	if ttl <= 0 || ttl > 48*time.Hour {
		t.Errorf("unexpected time to expiry: %v", ttl)
	}

	// Rotate the files and trigger a reload directly.
	newCertPEM, newKeyPEM := selfSignedCert(t, time.Now().Add(96*time.Hour))
	writeCertFiles(t, dir, newCertPEM, newKeyPEM)
	reloader.reload()

	second, err := reloader.GetCertificate(nil)
	if err != nil || second == nil {
		t.Fatalf("expected certificate after reload, got cert=%v err=%v", second, err)
	}
	if string(second.Certificate[0]) == string(first.Certificate[0]) {
		t.Error("expected the reloaded certificate to differ from the original")
	}

	stats := reloader.Stats()
	if count, ok := stats["reload_count"].(int64); !ok || count != 1 {
		t.Errorf("expected reload_count 1, got %v", stats["reload_count"])
	}
}

func TestCertReloaderKeepsServingOnBadReload(t *testing.T) {
	dir := t.TempDir()
	certPEM, keyPEM := selfSignedCert(t, time.Now().Add(24*time.Hour))
	certFile, keyFile := writeCertFiles(t, dir, certPEM, keyPEM)

	logger := errors.NewLogger(slog.LevelError)
	reloader, err := newCertReloader(config.TLSConfig{
		Mode:     "server",
		CertFile: certFile,
		KeyFile:  keyFile,
		Reload:   config.CertReloadConfig{Enabled: true},
	}, nil, logger)
	if err != nil {
		t.Fatalf("failed to create reloader: %v", err)
	}
	defer reloader.Close()

	if err := os.WriteFile(certFile, []byte("not a certificate"), 0600); err != nil {
		t.Fatalf("failed to corrupt certificate file: %v", err)
	}
	reloader.reload()

	// The previous certificate must stay in service.
	cert, err := reloader.GetCertificate(nil)
	if err != nil || cert == nil {
		t.Fatalf("expected previous certificate to survive a bad reload, got cert=%v err=%v", cert, err)
	}

	stats := reloader.Stats()
	if count, ok := stats["failure_count"].(int64); !ok || count != 1 {
		t.Errorf("expected failure_count 1, got %v", stats["failure_count"])
	}
	if _, ok := stats["last_error"]; !ok {
		t.Error("expected last_error to be reported after a failed reload")
	}
}
