package config

import "fmt"

// AuthConfig holds settings for verifying identity provider tokens.
type AuthConfig struct {
	// JWTSecret is the HS256 secret shared with the identity provider.
	JWTSecret string
	// JWTAudience is the expected "aud" claim. Empty disables the check.
	JWTAudience string
}

// LoadAuthConfigFromEnv loads auth configuration from environment variables.
func LoadAuthConfigFromEnv() AuthConfig {
	return AuthConfig{
		JWTSecret:   GetEnv("AUTH_JWT_SECRET", ""),
		JWTAudience: GetEnv("AUTH_JWT_AUDIENCE", "authenticated"),
	}
}

// Validate validates auth configuration.
func (c AuthConfig) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("AUTH_JWT_SECRET is required")
	}
	return nil
}
