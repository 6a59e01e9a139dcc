// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. In development an
optional '.env' file is loaded first with 'joho/godotenv'; variables already
present in the process environment always win.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// # Configuration Schema

// Config holds all runtime configuration for the Inkwell API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// Key-Value store (Redis) backing the write guards
	RedisURL string `env:"REDIS_URL,required"`

	// External identity provider. Tokens are verified, never issued, here.
	JWTPubKeyPath string `env:"JWT_PUBLIC_KEY_PATH,required"`
	AuthIssuer    string `env:"AUTH_ISSUER,required"`
	AuthAudience  string `env:"AUTH_AUDIENCE"`

	// Cross-Origin Resource Sharing (comma separated list of origins)
	AllowedOrigins string `env:"ALLOWED_ORIGINS"`

	// Write guards
	VisitWindow      time.Duration `env:"VISIT_WINDOW"      envDefault:"30m"`
	CommentCooldown  time.Duration `env:"COMMENT_COOLDOWN"  envDefault:"10s"`
	FeedbackCooldown time.Duration `env:"FEEDBACK_COOLDOWN" envDefault:"1m"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// A missing .env is the normal case outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to read .env file: %w", err)
	}

	return Parse(os.Environ())
}

// Parse maps a KEY=VALUE environment list into a [Config].
func Parse(environ []string) (*Config, error) {
	cfg := &Config{}

	opts := env.Options{Environment: env.ToMap(environ)}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Origins returns the trimmed, non-empty entries of AllowedOrigins.
func (c *Config) Origins() []string {
	var origins []string
	for _, origin := range strings.Split(c.AllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
