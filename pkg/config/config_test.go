package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalConfig = `
verifier:
  rpc_url: http://localhost:8545
its:
  admin_address: axelar1admin
auth:
  jwt_secret: secret
`

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte(minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, StoreBackendMemory, cfg.Store.Backend)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 10*time.Second, cfg.Verifier.Timeout)
	assert.Equal(t, "interchain-gateway", cfg.Auth.Issuer)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.True(t, cfg.Monitoring.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 30*time.Second, cfg.Shutdown.Timeout)
}

func TestParse_FileValuesOverrideDefaults(t *testing.T) {
	cfg, err := Parse([]byte(minimalConfig + `
server:
  port: 9000
  read_timeout: 5s
store:
  backend: redis
redis:
  addr: redis:6379
  key_prefix: test
monitoring:
  enabled: false
`))
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, StoreBackendRedis, cfg.Store.Backend)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, "test", cfg.Redis.KeyPrefix)
	assert.False(t, cfg.Monitoring.Enabled)
}

func TestParse_EnvOverridesSecrets(t *testing.T) {
	t.Setenv(EnvJWTSecret, "from-env")
	t.Setenv(EnvDatabasePassword, "db-pass")

	cfg, err := Parse([]byte(minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, "db-pass", cfg.Database.Password)
}

func TestParse_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "missing verifier url",
			yaml: "its:\n  admin_address: a\nauth:\n  jwt_secret: s\n",
			want: "RPCURL",
		},
		{
			name: "unknown backend",
			yaml: minimalConfig + "store:\n  backend: sqlite\n",
			want: "Backend",
		},
		{
			name: "missing jwt secret",
			yaml: "verifier:\n  rpc_url: http://localhost\nits:\n  admin_address: a\n",
			want: "auth.jwt_secret is required",
		},
		{
			name: "half configured gateway",
			yaml: minimalConfig + "gateway:\n  router_address: router\n",
			want: "must be set together",
		},
		{
			name: "postgres without host",
			yaml: minimalConfig + "store:\n  backend: postgres\ndatabase:\n  host: \"\"\n",
			want: "database.host is required",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			require.Error(t, err)
			assert.True(t, strings.HasPrefix(err.Error(), "config validation failed"), err.Error())
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalConfig), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8545", cfg.Verifier.RPCURL)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(LoggingConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	require.NotNil(t, logger)

	_, err = NewLogger(LoggingConfig{Level: "loud", Format: "json"})
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "gateway.log")
	logger, err = NewLogger(LoggingConfig{Level: "info", Format: "json", OutputPath: path})
	require.NoError(t, err)
	logger.Debug("dropped")
	logger.Info("kept")
	_ = logger.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"msg":"kept"`)
	assert.Contains(t, string(raw), `"logger":"interchain-gateway"`)
	assert.NotContains(t, string(raw), "dropped")
}
