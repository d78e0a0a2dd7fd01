// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// server and client binaries. It is populated by merging values from
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters and other application-level settings.
	App App `envPrefix:"APP_"`

	// Server holds the inbound HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the server database connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Presence holds the optional Redis presence tracker settings.
	Presence Presence `envPrefix:"PRESENCE_"`

	// Adapter holds outbound transport settings used by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Client holds client-local storage and polling settings.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file that is
	// merged on top of environment and flag values.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings controlling token lifecycle.
type App struct {
	// TokenSignKey is the secret used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an issued token stays valid (e.g. "24h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Server holds network settings for the inbound HTTP listener.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request (e.g. "30s").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds database settings for the server.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the database connection string. A "postgres://" DSN selects the
// pgx driver; anything else is treated as an SQLite file path.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Presence configures the online-status tracker. When RedisAddress is empty
// the server falls back to an in-process tracker.
type Presence struct {
	// Env: PRESENCE_REDIS_ADDRESS
	RedisAddress string `env:"REDIS_ADDRESS"`

	// Env: PRESENCE_REDIS_PASSWORD
	RedisPassword string `env:"REDIS_PASSWORD"`

	// TTL is how long a user stays "online" after their last request.
	// Env: PRESENCE_TTL
	TTL time.Duration `env:"TTL"`
}

// Adapter holds outbound transport settings used by the client.
type Adapter struct {
	// HTTPAddress is the base URL (or host:port) of the messenger server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the default timeout for outbound requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Client holds client-local settings.
type Client struct {
	// DBPath is the SQLite file storing the persisted session.
	// Env: CLIENT_DB_PATH
	DBPath string `env:"DB_PATH"`

	// PollInterval is the fixed interval between sync cycles of an open
	// conversation view.
	// Env: CLIENT_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`
}

// GetStructuredConfig loads and merges configuration from all sources.
// Precedence: environment variables, then flags, then the JSON file; defaults
// fill whatever remains unset.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *StructuredConfig) applyDefaults() {
	if c.App.TokenIssuer == "" {
		c.App.TokenIssuer = "go-chat-messenger"
	}
	if c.App.TokenDuration <= 0 {
		c.App.TokenDuration = 24 * time.Hour
	}
	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = "localhost:8080"
	}
	if c.Server.RequestTimeout <= 0 {
		c.Server.RequestTimeout = 30 * time.Second
	}
	if c.Storage.DB.DSN == "" {
		c.Storage.DB.DSN = "chat.db"
	}
	if c.Presence.TTL <= 0 {
		c.Presence.TTL = 10 * time.Minute
	}
	if c.Adapter.HTTPAddress == "" {
		c.Adapter.HTTPAddress = "http://localhost:8080"
	}
	if c.Adapter.RequestTimeout <= 0 {
		c.Adapter.RequestTimeout = 15 * time.Second
	}
	if c.Client.DBPath == "" {
		c.Client.DBPath = "chat-client.db"
	}
	if c.Client.PollInterval <= 0 {
		c.Client.PollInterval = 2 * time.Second
	}
}
