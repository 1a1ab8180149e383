package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"atscheck/internal/errors"

	"github.com/hashicorp/vault/api"
)

// VaultConfig holds Vault connection configuration
type VaultConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Address   string `mapstructure:"address"`
	Token     string `mapstructure:"token"`
	TokenFile string `mapstructure:"tokenFile"`
	Namespace string `mapstructure:"namespace"`

	Secrets VaultSecrets `mapstructure:"secrets"`
}

// VaultSecrets names the KVv2 paths the application reads at startup.
type VaultSecrets struct {
	// APIKeys expects a "keys" field with comma-separated values.
	APIKeys string `mapstructure:"apiKeys"`
	// GeminiKey expects an "api_key" field.
	GeminiKey string `mapstructure:"geminiKey"`
	// TLSCerts expects "cert", "key", and optionally "ca" fields with PEM content.
	TLSCerts string `mapstructure:"tlsCerts"`
}

// VaultClient wraps the Vault API client for KVv2 reads.
type VaultClient struct {
	client *api.Client
	logger *errors.Logger
}

// NewVaultClient connects to Vault and verifies the connection. Returns
// (nil, nil) when Vault integration is disabled.
func NewVaultClient(cfg VaultConfig, logger *errors.Logger) (*VaultClient, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	apiConfig := api.DefaultConfig()
	if cfg.Address != "" {
		apiConfig.Address = cfg.Address
	}
	client, err := api.NewClient(apiConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create vault client: %w", err)
	}
	if cfg.Namespace != "" {
		client.SetNamespace(cfg.Namespace)
	}

	token := cfg.Token
	if token == "" && cfg.TokenFile != "" {
		raw, err := os.ReadFile(cfg.TokenFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read vault token file: %w", err)
		}
		token = strings.TrimSpace(string(raw))
	}
	if token == "" {
		return nil, fmt.Errorf("vault token is required when vault is enabled")
	}
	client.SetToken(token)

	health, err := client.Sys().Health()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to vault at %s: %w", apiConfig.Address, err)
	}
	if logger != nil {
		logger.Info("Connected to Vault",
			"address", apiConfig.Address,
			"version", health.Version,
			"sealed", health.Sealed)
	}

	return &VaultClient{client: client, logger: logger}, nil
}

// VaultSecret is a secret read from Vault's KVv2 engine.
type VaultSecret struct {
	Data    map[string]any
	Version int64
}

// ReadSecret reads a KVv2 secret, unwrapping the data/metadata envelope.
func (vc *VaultClient) ReadSecret(path string) (*VaultSecret, error) {
	if vc == nil {
		return nil, fmt.Errorf("vault client not initialized")
	}

	raw, err := vc.client.Logical().Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read secret from %s: %w", path, err)
	}
	if raw == nil || raw.Data == nil {
		return nil, fmt.Errorf("secret not found at path: %s", path)
	}

	data, ok := raw.Data["data"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("secret at %s is not in KVv2 format", path)
	}
	metadata, ok := raw.Data["metadata"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("secret at %s is missing KVv2 metadata", path)
	}

	version, err := secretVersion(metadata["version"])
	if err != nil {
		return nil, fmt.Errorf("bad secret version at %s: %w", path, err)
	}

	return &VaultSecret{Data: data, Version: version}, nil
}

// secretVersion parses the version field, which the API may deliver as a
// number or a string depending on the decoder.
func secretVersion(raw any) (int64, error) {
	switch v := raw.(type) {
	case int64:
		return v, nil
	case float64:
		return int64(v), nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	case nil:
		return 0, fmt.Errorf("version field missing")
	default:
		return 0, fmt.Errorf("unexpected version type %T", raw)
	}
}

// ReadString returns a single string field from a secret.
func (vc *VaultClient) ReadString(path, key string) (string, error) {
	secret, err := vc.ReadSecret(path)
	if err != nil {
		return "", err
	}
	value, ok := secret.Data[key].(string)
	if !ok {
		return "", fmt.Errorf("key %q not found in secret %s or not a string", key, path)
	}
	return value, nil
}

// ReadStringList returns a comma-separated string field as a trimmed slice.
func (vc *VaultClient) ReadStringList(path, key string) ([]string, error) {
	value, err := vc.ReadString(path, key)
	if err != nil {
		return nil, err
	}
	if value == "" {
		return []string{}, nil
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}

// ApplyVaultSecrets overlays Vault-sourced secrets onto the configuration:
// server API keys, the Gemini API key, and TLS certificate content. A nil
// return with Vault disabled is not an error.
func ApplyVaultSecrets(cfg *Config, logger *errors.Logger) error {
	client, err := NewVaultClient(cfg.Vault, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize vault client: %w", err)
	}
	if client == nil {
		return nil
	}

	paths := cfg.Vault.Secrets

	if paths.APIKeys != "" {
		keys, err := client.ReadStringList(paths.APIKeys, "keys")
		if err != nil {
			return fmt.Errorf("failed to load API keys from vault: %w", err)
		}
		if len(keys) > 0 {
			cfg.Server.APIKeys = keys
			if logger != nil {
				logger.Info("API keys loaded from Vault", "count", len(keys))
			}
		}
	}

	if paths.GeminiKey != "" {
		geminiKey, err := client.ReadString(paths.GeminiKey, "api_key")
		if err != nil {
			return fmt.Errorf("failed to load Gemini API key from vault: %w", err)
		}
		if geminiKey != "" {
			cfg.AI.APIKey = geminiKey
			if cfg.AI.Match.APIKey == "" {
				cfg.AI.Match.APIKey = geminiKey
			}
			if cfg.AI.Qualifications.APIKey == "" {
				cfg.AI.Qualifications.APIKey = geminiKey
			}
		}
	}

	if paths.TLSCerts != "" {
		secret, err := client.ReadSecret(paths.TLSCerts)
		if err != nil {
			return fmt.Errorf("failed to load TLS certificates from vault: %w", err)
		}
		applyTLSContent(&cfg.Server.TLS, secret.Data)
		if logger != nil {
			logger.Info("TLS certificate content loaded from Vault", "version", secret.Version)
		}
	}

	return nil
}

// applyTLSContent copies PEM content fields from a Vault secret into the
// TLS configuration. Missing or empty fields leave the config untouched.
func applyTLSContent(tls *TLSConfig, data map[string]any) {
	if cert, ok := data["cert"].(string); ok && cert != "" {
		tls.CertContent = cert
	}
	if key, ok := data["key"].(string); ok && key != "" {
		tls.KeyContent = key
	}
	if ca, ok := data["ca"].(string); ok && ca != "" {
		tls.CAContent = ca
	}
}
