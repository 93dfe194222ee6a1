package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration for the service, populated from
// environment variables.
type Config struct {
	ServerAddress   string        `env:"SERVER_ADDRESS"   envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	MongoURI      string `env:"MONGO_URI"      envDefault:"mongodb://localhost:27017"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"movies_app"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:8080"`

	Token TokenConfig `envPrefix:"TOKEN_"`
}

// TokenConfig configures bearer token issuance and verification.
type TokenConfig struct {
	Secret    string        `env:"SECRET,notEmpty"`
	Issuer    string        `env:"ISSUER"     envDefault:"movie-catalog-api"`
	ExpiresIn time.Duration `env:"EXPIRES_IN" envDefault:"24h"`
}

// Load parses configuration from the environment.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
