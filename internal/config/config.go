package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/arclight-ops/entra-revoker/internal/domain/model"
)

// Config holds all configuration for the revoker action. Values come
// from ENTRA_-prefixed process environment variables.
type Config struct {
	Action  ActionConfig
	Harness HarnessConfig
}

// ActionConfig is the configuration surface the action itself
// recognizes; it is handed to each invocation as the execution context.
type ActionConfig struct {
	Address      string `env:"ADDRESS" envDefault:"https://graph.microsoft.com"`
	TokenURL     string `env:"TOKEN_URL"`
	ClientID     string `env:"CLIENT_ID"`
	Scope        string `env:"SCOPE"`
	Audience     string `env:"AUDIENCE"`
	AuthStyle    string `env:"AUTH_STYLE"`
	AccessToken  string `env:"ACCESS_TOKEN"`
	ClientSecret string `env:"CLIENT_SECRET"`
}

// HarnessConfig holds knobs for the invoking harness, not the action.
type HarnessConfig struct {
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
	MaxAttempts uint          `env:"MAX_ATTEMPTS" envDefault:"4"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "ENTRA_"}); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ExecutionContext materializes the per-invocation environment and
// secret bags from the loaded configuration. Secret values live only
// in the secret bag.
func (c *ActionConfig) ExecutionContext() model.ExecutionContext {
	environment := map[string]string{
		model.EnvAddress:   c.Address,
		model.EnvTokenURL:  c.TokenURL,
		model.EnvClientID:  c.ClientID,
		model.EnvScope:     c.Scope,
		model.EnvAudience:  c.Audience,
		model.EnvAuthStyle: c.AuthStyle,
	}
	secrets := map[string]string{
		model.SecretAccessToken:  c.AccessToken,
		model.SecretClientSecret: c.ClientSecret,
	}
	return model.NewExecutionContext(environment, secrets)
}
