// Package config loads the serving binary's configuration from the
// environment, with an optional .env file for local development.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Addr is the listen address of the bundle server.
	Addr string
	// APIURL is the backend base URL handed to the browser app.
	APIURL string
	// Locale selects the UI language catalog.
	Locale string
}

// Load reads the configuration from environment variables and validates it.
func Load() (*Config, error) {
	// .env is optional; real deployments provide the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Addr:   getEnv("EVENTOS_ADDR", ":8080"),
		APIURL: getEnv("EVENTOS_API_URL", "http://127.0.0.1:5000"),
		Locale: getEnv("EVENTOS_LOCALE", "es"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("config: EVENTOS_ADDR cannot be blank")
	}

	parsed, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("config: EVENTOS_API_URL invalid (%q): %w", c.APIURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: EVENTOS_API_URL invalid (%q): scheme or host missing", c.APIURL)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
