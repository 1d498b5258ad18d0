// Package mockapi is a self-contained development backend for the client.
// It serves the full REST contract from seeded in-memory data so the client
// can be exercised without a real deployment.
package mockapi

import (
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds the mock server settings, read from the environment.
type Config struct {
	Addr      string        `env:"STREETBITE_API_ADDR" envDefault:":8080"`
	JWTSecret string        `env:"STREETBITE_JWT_SECRET" envDefault:"dev-secret-do-not-ship"`
	AccessTTL time.Duration `env:"STREETBITE_ACCESS_TTL" envDefault:"24h"`
}

// LoadConfig reads the configuration from the environment, after loading a
// .env file when one is present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
