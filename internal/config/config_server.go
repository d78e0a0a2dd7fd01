package config

import (
	"fmt"
	"time"
)

// ServerApp holds token lifecycle settings used by the auth service.
type ServerApp struct {
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
}

// ServerHTTP holds the inbound listener settings.
type ServerHTTP struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ServerStorage holds database settings.
type ServerStorage struct {
	DB DB
}

// ServerPresence holds presence tracker settings.
type ServerPresence struct {
	RedisAddress  string
	RedisPassword string
	TTL           time.Duration
}

// ServerConfig is the server view of the merged structured configuration.
type ServerConfig struct {
	App      ServerApp
	HTTP     ServerHTTP
	Storage  ServerStorage
	Presence ServerPresence
}

// GetServerConfig builds and validates a server-specific config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App: ServerApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
		},
		HTTP: ServerHTTP{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Storage: ServerStorage{
			DB: cfg.Storage.DB,
		},
		Presence: ServerPresence{
			RedisAddress:  cfg.Presence.RedisAddress,
			RedisPassword: cfg.Presence.RedisPassword,
			TTL:           cfg.Presence.TTL,
		},
	}

	return serverCfg, serverCfg.validate()
}

func (c *ServerConfig) validate() error {
	if c.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}
	if c.HTTP.HTTPAddress == "" || c.HTTP.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	if c.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
