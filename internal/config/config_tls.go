package config

import "fmt"

// ValidateTLSConfig checks the TLS section of the server configuration.
func (c *Config) ValidateTLSConfig() error {
	t := c.Server.TLS

	switch t.Mode {
	case "disabled":
		return nil
	case "server", "mutual":
	default:
		return fmt.Errorf("invalid TLS mode %q: must be disabled, server, or mutual", t.Mode)
	}

	// Certificates come from exactly one source per item: a file path or
	// inline PEM content (the latter is what Vault secrets populate).
	if t.CertFile != "" && t.CertContent != "" {
		return fmt.Errorf("certFile and certContent are mutually exclusive")
	}
	if t.KeyFile != "" && t.KeyContent != "" {
		return fmt.Errorf("keyFile and keyContent are mutually exclusive")
	}
	if (t.CertFile == "" && t.CertContent == "") || (t.KeyFile == "" && t.KeyContent == "") {
		return fmt.Errorf("TLS mode %q requires a certificate and key (file or content)", t.Mode)
	}

	if t.Mode == "mutual" {
		if t.CAFile != "" && t.CAContent != "" {
			return fmt.Errorf("caFile and caContent are mutually exclusive")
		}
		if t.CAFile == "" && t.CAContent == "" {
			return fmt.Errorf("mutual TLS requires a CA certificate (file or content)")
		}
		switch t.ClientAuthPolicy {
		case "", "require", "request", "verify":
		default:
			return fmt.Errorf("invalid clientAuthPolicy %q: must be require, request, or verify", t.ClientAuthPolicy)
		}
	}

	switch t.MinVersion {
	case "", "1.2", "1.3":
	default:
		return fmt.Errorf("invalid TLS minVersion %q: must be 1.2 or 1.3", t.MinVersion)
	}

	return nil
}
