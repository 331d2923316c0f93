// Package config loads process configuration from environment
// variables, with an optional .env file for local development.
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port      string `env:"PORT" envDefault:"8080"`
	UploadDir string `env:"UPLOAD_DIR" envDefault:"uploads"`
	GinMode   string `env:"GIN_MODE" envDefault:"release"`
}

// Load parses the environment into a Config. A missing .env file is
// not an error.
func Load() (Config, error) {
	_ = godotenv.Load()
	return env.ParseAs[Config]()
}
