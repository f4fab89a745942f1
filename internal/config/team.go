package config

import "fmt"

// TeamConfig holds team module configuration.
type TeamConfig struct {
	// InviteCodeMaxAttempts bounds invite code generation when codes collide.
	InviteCodeMaxAttempts int
}

// LoadTeamConfigFromEnv loads team configuration from environment variables.
func LoadTeamConfigFromEnv() TeamConfig {
	return TeamConfig{
		InviteCodeMaxAttempts: GetEnvInt("INVITE_CODE_MAX_ATTEMPTS", 10),
	}
}

// Validate validates team configuration.
func (c TeamConfig) Validate() error {
	if c.InviteCodeMaxAttempts <= 0 {
		return fmt.Errorf("INVITE_CODE_MAX_ATTEMPTS must be greater than 0")
	}
	return nil
}
