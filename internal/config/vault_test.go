package config

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeVault serves the minimal KVv2 surface the client touches: the health
// endpoint and logical reads of pre-seeded secrets.
func fakeVault(t *testing.T, secrets map[string]map[string]any) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/sys/health", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"initialized": true,
			"sealed":      false,
			"version":     "1.15.0",
		})
	})
	mux.HandleFunc("/v1/", func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path[len("/v1/"):]
		data, ok := secrets[path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]any{"errors": []string{}})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"data":     data,
				"metadata": map[string]any{"version": 2},
			},
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestNewVaultClientDisabled(t *testing.T) {
	client, err := NewVaultClient(VaultConfig{Enabled: false}, nil)
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestNewVaultClientRequiresToken(t *testing.T) {
	server := fakeVault(t, nil)

	_, err := NewVaultClient(VaultConfig{Enabled: true, Address: server.URL}, nil)
	assert.ErrorContains(t, err, "vault token is required")
}

func TestReadSecret(t *testing.T) {
	server := fakeVault(t, map[string]map[string]any{
		"secret/data/atscheck/keys": {"keys": "alpha, beta,gamma"},
	})

	client, err := NewVaultClient(VaultConfig{
		Enabled: true,
		Address: server.URL,
		Token:   "test-token",
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, client)

	secret, err := client.ReadSecret("secret/data/atscheck/keys")
	require.NoError(t, err)
	assert.Equal(t, int64(2), secret.Version)
	assert.Equal(t, "alpha, beta,gamma", secret.Data["keys"])

	_, err = client.ReadSecret("secret/data/missing")
	assert.ErrorContains(t, err, "secret not found")

	list, err := client.ReadStringList("secret/data/atscheck/keys", "keys")
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, list)

	_, err = client.ReadString("secret/data/atscheck/keys", "absent")
	assert.ErrorContains(t, err, "not found in secret")
}

func TestSecretVersionParsing(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    int64
		wantErr bool
	}{
		{name: "float from json decode", raw: float64(7), want: 7},
		{name: "int64", raw: int64(3), want: 3},
		{name: "numeric string", raw: "12", want: 12},
		{name: "missing", raw: nil, wantErr: true},
		{name: "bogus type", raw: []int{1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := secretVersion(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyVaultSecrets(t *testing.T) {
	server := fakeVault(t, map[string]map[string]any{
		"secret/data/atscheck/api-keys": {"keys": "key-one,key-two"},
		"secret/data/atscheck/gemini":   {"api_key": "gemini-secret"},
		"secret/data/atscheck/tls": {
			"cert": "CERT PEM",
			"key":  "KEY PEM",
			"ca":   "CA PEM",
		},
	})

	cfg := &Config{
		AI: AIConfig{
			Match: OperationAIConfig{APIKey: "already-set"},
		},
		Vault: VaultConfig{
			Enabled: true,
			Address: server.URL,
			Token:   "test-token",
			Secrets: VaultSecrets{
				APIKeys:   "secret/data/atscheck/api-keys",
				GeminiKey: "secret/data/atscheck/gemini",
				TLSCerts:  "secret/data/atscheck/tls",
			},
		},
	}

	require.NoError(t, ApplyVaultSecrets(cfg, nil))

	assert.Equal(t, []string{"key-one", "key-two"}, cfg.Server.APIKeys)
	assert.Equal(t, "gemini-secret", cfg.AI.APIKey)
	// An operation override set elsewhere is not clobbered.
	assert.Equal(t, "already-set", cfg.AI.Match.APIKey)
	assert.Equal(t, "gemini-secret", cfg.AI.Qualifications.APIKey)
	assert.Equal(t, "CERT PEM", cfg.Server.TLS.CertContent)
	assert.Equal(t, "KEY PEM", cfg.Server.TLS.KeyContent)
	assert.Equal(t, "CA PEM", cfg.Server.TLS.CAContent)
}

func TestApplyVaultSecretsDisabled(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ApplyVaultSecrets(cfg, nil))
	assert.Empty(t, cfg.Server.APIKeys)
}
