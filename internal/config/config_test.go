package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_Precedence(t *testing.T) {
	t.Run("earlier sources win", func(t *testing.T) {
		b := newConfigBuilder()
		b.configs = append(b.configs,
			&StructuredConfig{Server: Server{HTTPAddress: "first:8080"}},
			&StructuredConfig{
				Server:  Server{HTTPAddress: "second:9090", RequestTimeout: 10 * time.Second},
				Storage: Storage{DB: DB{DSN: "chat.db"}},
			},
		)

		cfg, err := b.build()
		require.NoError(t, err)

		assert.Equal(t, "first:8080", cfg.Server.HTTPAddress)
		// Fields unset in the first source fall through to the second.
		assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, "chat.db", cfg.Storage.DB.DSN)
	})
}

func TestParseJSON(t *testing.T) {
	t.Run("full file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		content := `{
			"app": {"token_sign_key": "key", "token_issuer": "issuer", "token_duration": "24h"},
			"server": {"http_address": "localhost:9090", "request_timeout": "30s"},
			"storage": {"db": {"dsn": "postgres://localhost/chat"}},
			"presence": {"redis_address": "localhost:6379", "ttl": "10m"},
			"adapter": {"http_address": "http://localhost:9090", "request_timeout": "15s"},
			"client": {"db_path": "client.db", "poll_interval": "2s"}
		}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))

		cfg, err := parseJSON(path)
		require.NoError(t, err)

		assert.Equal(t, "key", cfg.App.TokenSignKey)
		assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
		assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
		assert.Equal(t, "postgres://localhost/chat", cfg.Storage.DB.DSN)
		assert.Equal(t, 10*time.Minute, cfg.Presence.TTL)
		assert.Equal(t, 2*time.Second, cfg.Client.PollInterval)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := parseJSON("/does/not/exist.json")
		assert.Error(t, err)
	})
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{`"2s"`, 2 * time.Second},
		{`"1h30m"`, 90 * time.Minute},
		{`5000000000`, 5 * time.Second},
	}

	for _, tc := range cases {
		var d Duration
		require.NoError(t, json.Unmarshal([]byte(tc.in), &d), tc.in)
		assert.Equal(t, tc.want, time.Duration(d), tc.in)
	}

	var d Duration
	assert.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &d))
}

func TestClientConfigValidate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			Adapter: ClientAdapter{HTTPAddress: "http://localhost:8080", RequestTimeout: 15 * time.Second},
			Storage: ClientStorage{DBPath: "client.db"},
			Sync:    ClientSync{PollInterval: 2 * time.Second},
		}
	}

	require.NoError(t, valid().validate())

	broken := valid()
	broken.Adapter.HTTPAddress = ""
	assert.ErrorIs(t, broken.validate(), ErrInvalidAdapterConfigs)

	broken = valid()
	broken.Storage.DBPath = ""
	assert.ErrorIs(t, broken.validate(), ErrInvalidStorageConfigs)

	broken = valid()
	broken.Sync.PollInterval = 0
	assert.ErrorIs(t, broken.validate(), ErrInvalidSyncConfigs)
}

func TestServerConfigValidate(t *testing.T) {
	valid := func() *ServerConfig {
		return &ServerConfig{
			App:     ServerApp{TokenSignKey: "key", TokenIssuer: "issuer", TokenDuration: time.Hour},
			HTTP:    ServerHTTP{HTTPAddress: "localhost:8080", RequestTimeout: 30 * time.Second},
			Storage: ServerStorage{DB: DB{DSN: "chat.db"}},
		}
	}

	require.NoError(t, valid().validate())

	broken := valid()
	broken.App.TokenSignKey = ""
	assert.ErrorIs(t, broken.validate(), ErrInvalidAppConfigs)

	broken = valid()
	broken.HTTP.HTTPAddress = ""
	assert.ErrorIs(t, broken.validate(), ErrInvalidServerConfigs)

	broken = valid()
	broken.Storage.DB.DSN = ""
	assert.ErrorIs(t, broken.validate(), ErrInvalidStorageConfigs)
}
