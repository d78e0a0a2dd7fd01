package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the messenger server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage holds client-local persistence settings.
type ClientStorage struct {
	// DBPath is the SQLite file storing the persisted session.
	DBPath string
}

// ClientSync holds chat view polling settings.
type ClientSync struct {
	// PollInterval is the fixed interval between sync cycles of an open
	// conversation view.
	PollInterval time.Duration
}

// ClientConfig is the client view of the merged structured configuration.
type ClientConfig struct {
	Adapter ClientAdapter
	Storage ClientStorage
	Sync    ClientSync
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DBPath: cfg.Client.DBPath,
		},
		Sync: ClientSync{
			PollInterval: cfg.Client.PollInterval,
		},
	}

	return clientCfg, clientCfg.validate()
}

func (c *ClientConfig) validate() error {
	if c.Adapter.HTTPAddress == "" || c.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if c.Storage.DBPath == "" {
		return ErrInvalidStorageConfigs
	}
	if c.Sync.PollInterval <= 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}
