package config

import (
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// envConfig is a DTO for the environment overlay. A .env file in the
// working directory is honored when present; real environment variables
// win over it.
type envConfig struct {
	ServerEndpointAddr string        `env:"STREETBITE_SERVER_ADDR"`
	StoragePath        string        `env:"STREETBITE_STORAGE_PATH"`
	RequestTimeout     time.Duration `env:"STREETBITE_REQUEST_TIMEOUT"`
}

// parseEnv overlays cfg with environment-provided values. Unset variables
// leave the current value in place.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = ec.ServerEndpointAddr
	}
	if ec.StoragePath != "" {
		cfg.StoragePath = ec.StoragePath
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
}
