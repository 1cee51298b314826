package config

import "fmt"

// AuthConfig holds bearer-token verification configuration.
type AuthConfig struct {
	// Secret is the HMAC key used to verify identity-provider tokens.
	Secret string
}

// LoadAuthConfigFromEnv loads auth configuration from environment variables.
func LoadAuthConfigFromEnv() AuthConfig {
	return AuthConfig{
		Secret: GetEnv("JWT_SECRET", ""),
	}
}

// Validate validates auth configuration.
func (c AuthConfig) Validate() error {
	if c.Secret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}
	return nil
}
