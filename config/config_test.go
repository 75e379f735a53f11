package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, ":5000", cfg.ServerAddr())
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "task_manager", cfg.Mongo.DBName)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("MONGO_DB_NAME", "tasks_test")
	t.Setenv("JWT_TTL", "2h")

	cfg, err := load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "tasks_test", cfg.Mongo.DBName)
	assert.Equal(t, 2*time.Hour, cfg.JWT.TTL)
}

func TestLoadDotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("JWT_SECRET=from-file\nMONGO_URI=mongodb://mongo:27017\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("JWT_SECRET")
		_ = os.Unsetenv("MONGO_URI")
	})

	cfg, err := load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.JWT.Secret)
	assert.Equal(t, "mongodb://mongo:27017", cfg.Mongo.URI)
}

func TestLoadDotEnvKeepsExistingEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("JWT_SECRET=from-file\nSERVER_PORT=9000\n"), 0o600))
	t.Setenv("JWT_SECRET", "from-env")
	t.Cleanup(func() { _ = os.Unsetenv("SERVER_PORT") })

	cfg, err := load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, 9000, cfg.Server.Port)
}

func TestLoadMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := load(filepath.Join(t.TempDir(), "missing.env"))
	require.EqualError(t, err, "jwt.secret is required")
}

func TestValidate(t *testing.T) {
	valid := Config{
		Server: ServerConfig{Port: 5000},
		Mongo:  MongoConfig{URI: "mongodb://localhost:27017", DBName: "db"},
		JWT:    JWTConfig{Secret: "s", TTL: time.Hour},
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing port", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: "server.port is required"},
		{name: "missing db", mutate: func(c *Config) { c.Mongo.DBName = "" }, wantErr: "mongo.uri and mongo.db_name are required"},
		{name: "missing secret", mutate: func(c *Config) { c.JWT.Secret = "" }, wantErr: "jwt.secret is required"},
		{name: "zero ttl", mutate: func(c *Config) { c.JWT.TTL = 0 }, wantErr: "jwt.ttl must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tt.wantErr)
		})
	}
}
