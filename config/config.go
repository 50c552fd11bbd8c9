package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the process configuration, loaded from environment variables.
// SecretKey is loaded for parity with deployments that set it but is not used
// by any endpoint logic.
type Config struct {
	Port           string `env:"PORT" envDefault:"5000"`
	DatabasePath   string `env:"DATABASE_PATH" envDefault:"boiler_inspection.db"`
	UploadDir      string `env:"UPLOAD_DIR" envDefault:"uploads"`
	SecretKey      string `env:"SECRET_KEY" envDefault:"dev-secret-key"`
	CORSOrigins    string `env:"CORS_ORIGINS" envDefault:"*"`
	MaxUploadBytes int    `env:"MAX_UPLOAD_BYTES" envDefault:"16777216"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
