// Copyright (c) 2026 Moviq. All rights reserved.
// Author: dev.kabir01@gmail.com

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
  - DI-Friendly: Passed to core components (DB, Redis, search) via constructors.
  - Zero Hidden State: No global variables are used to store config.

The admin allow-list and the search tuning knobs (result count, fuzzy
threshold) live here so no component reads them from ambient global state.
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the Moviq API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL,required"`

	// AdminIDs is the static allow-list of privileged sender identities.
	AdminIDs []int64 `env:"ADMIN_IDS" envSeparator:","`

	// Search tuning
	ResultsCount    int `env:"RESULTS_COUNT"     envDefault:"10"`
	MinQueryLength  int `env:"MIN_QUERY_LENGTH"  envDefault:"3"`
	FuzzyThreshold  int `env:"FUZZY_THRESHOLD"   envDefault:"70"`
	FuzzyCandidates int `env:"FUZZY_CANDIDATES"  envDefault:"5"`

	// DefaultLanguage is the fallback user language preference.
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"bn"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// IsAdmin reports whether the sender ID is in the static admin allow-list.
func (c *Config) IsAdmin(senderID int64) bool {
	for _, id := range c.AdminIDs {
		if id == senderID {
			return true
		}
	}
	return false
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
