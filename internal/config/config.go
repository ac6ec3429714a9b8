package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const dotEnvFile = ".env"

// Config contains server configuration parameters.
type Config struct {
	LogLevel int    `env:"LOG_LEVEL" envDefault:"0"`
	Root     string `env:"SERVE_ROOT" envDefault:"."`
	HTTP     HTTP   `envPrefix:"HTTP_"`
	HTTPS    HTTPS  `envPrefix:"HTTPS_"`
	Cert     Cert   `envPrefix:"CERT_"`
}

// HTTP contains plain server parameters. An empty host binds all interfaces.
type HTTP struct {
	Host string `env:"HOST"`
	Port string `env:"PORT" envDefault:"8080"`
}

// Addr returns the listen address of the plain server.
func (h HTTP) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// HTTPS contains TLS server parameters.
type HTTPS struct {
	Host string `env:"HOST" envDefault:"localhost"`
	Port string `env:"PORT" envDefault:"8443"`
}

// Addr returns the listen address of the TLS server.
func (h HTTPS) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// Cert contains certificate provisioning parameters.
type Cert struct {
	Dir string `env:"DIR" envDefault:"."`
}

// NewConfig loads configuration from environment variables.
// Variables from a .env file in the working directory are applied first,
// without overriding ones already set.
func NewConfig() (*Config, error) {
	if err := loadDotEnv(dotEnvFile); err != nil {
		return nil, err
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", path, err)
}
