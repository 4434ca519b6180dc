// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/taibuivan/uibutton/internal/platform/constants"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// # Configuration Schema

// Config holds all runtime configuration for the uibutton API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// StorageDriver selects the contract repository: memory or postgres.
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"memory"`

	// Relational Database (PostgreSQL), required by the postgres driver
	DatabaseURL string `env:"DATABASE_URL"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Domain event stream (Redis). Events are only logged when unset.
	RedisURL    string `env:"REDIS_URL"`
	EventStream string `env:"EVENT_STREAM" envDefault:"uibutton:events"`

	// Public key of the identity provider. Write routes are open when unset.
	JWTPubKeyPath string `env:"JWT_PUBLIC_KEY_PATH"`

	// SeedContractsPath is an optional YAML file of contracts loaded at startup.
	SeedContractsPath string `env:"SEED_CONTRACTS_PATH"`

	// Cross-Origin Resource Sharing, comma separated origin suffixes
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct and validates it.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate enforces the rules that span more than one variable.
func (c *Config) Validate() error {
	var errs []error

	switch c.StorageDriver {
	case StorageMemory:
	case StoragePostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("config: DATABASE_URL is required when STORAGE_DRIVER=postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("config: unknown STORAGE_DRIVER %q (want memory or postgres)", c.StorageDriver))
	}

	if c.RedisURL != "" && strings.TrimSpace(c.EventStream) == "" {
		errs = append(errs, errors.New("config: EVENT_STREAM must not be empty when REDIS_URL is set"))
	}

	return errors.Join(errs...)
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// UsesPostgres reports whether contracts are persisted in PostgreSQL.
func (c *Config) UsesPostgres() bool {
	return c.StorageDriver == StoragePostgres
}

// AuthEnabled reports whether write routes require an editor token.
func (c *Config) AuthEnabled() bool {
	return c.JWTPubKeyPath != ""
}

// AllowedOrigins returns the CORS origin suffixes: the app domain plus EXTRA_ORIGINS.
func (c *Config) AllowedOrigins() []string {
	origins := []string{constants.AuthIssuer}
	for _, origin := range strings.Split(c.ExtraOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
