package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tlsTestConfig(tls TLSConfig) *Config {
	return &Config{Server: ServerConfig{TLS: tls}}
}

func TestValidateTLSConfig(t *testing.T) {
	tests := []struct {
		name    string
		tls     TLSConfig
		wantErr string
	}{
		{
			name: "disabled mode needs nothing",
			tls:  TLSConfig{Mode: "disabled"},
		},
		{
			name:    "unknown mode",
			tls:     TLSConfig{Mode: "tls13-only"},
			wantErr: "invalid TLS mode",
		},
		{
			name: "server mode with files",
			tls:  TLSConfig{Mode: "server", CertFile: "server.crt", KeyFile: "server.key"},
		},
		{
			name: "server mode with inline content",
			tls:  TLSConfig{Mode: "server", CertContent: "PEM", KeyContent: "PEM"},
		},
		{
			name:    "server mode missing key",
			tls:     TLSConfig{Mode: "server", CertFile: "server.crt"},
			wantErr: "requires a certificate and key",
		},
		{
			name:    "cert file and content together",
			tls:     TLSConfig{Mode: "server", CertFile: "server.crt", CertContent: "PEM", KeyFile: "server.key"},
			wantErr: "mutually exclusive",
		},
		{
			name:    "key file and content together",
			tls:     TLSConfig{Mode: "server", CertFile: "server.crt", KeyFile: "server.key", KeyContent: "PEM"},
			wantErr: "mutually exclusive",
		},
		{
			name: "mutual mode with ca file",
			tls: TLSConfig{
				Mode: "mutual", CertFile: "server.crt", KeyFile: "server.key", CAFile: "ca.crt",
			},
		},
		{
			name: "mutual mode missing ca",
			tls: TLSConfig{
				Mode: "mutual", CertFile: "server.crt", KeyFile: "server.key",
			},
			wantErr: "requires a CA certificate",
		},
		{
			name: "mutual mode ca from two sources",
			tls: TLSConfig{
				Mode: "mutual", CertFile: "server.crt", KeyFile: "server.key",
				CAFile: "ca.crt", CAContent: "PEM",
			},
			wantErr: "mutually exclusive",
		},
		{
			name: "bad client auth policy",
			tls: TLSConfig{
				Mode: "mutual", CertFile: "server.crt", KeyFile: "server.key",
				CAFile: "ca.crt", ClientAuthPolicy: "optional",
			},
			wantErr: "invalid clientAuthPolicy",
		},
		{
			name: "valid min version",
			tls: TLSConfig{
				Mode: "server", CertFile: "server.crt", KeyFile: "server.key", MinVersion: "1.3",
			},
		},
		{
			name: "bad min version",
			tls: TLSConfig{
				Mode: "server", CertFile: "server.crt", KeyFile: "server.key", MinVersion: "1.1",
			},
			wantErr: "invalid TLS minVersion",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tlsTestConfig(tt.tls).ValidateTLSConfig()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
