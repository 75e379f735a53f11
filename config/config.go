// Package config loads application configuration.
package config

import (
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const envFile = ".env"

// settings lists every key the server reads with its fallback value.
// Each key is read from the environment as upper case with "." -> "_",
// e.g. mongo.db_name from MONGO_DB_NAME.
var settings = map[string]any{
	"server.port":             5000,
	"server.read_timeout":     10 * time.Second,
	"server.write_timeout":    10 * time.Second,
	"server.shutdown_timeout": 5 * time.Second,
	"server.cors_origin":      "*",

	"mongo.uri":             "mongodb://localhost:27017",
	"mongo.db_name":         "task_manager",
	"mongo.connect_timeout": 10 * time.Second,

	"jwt.secret": "",
	"jwt.ttl":    24 * time.Hour,

	"logging.level":       "info",
	"logging.file":        "",
	"logging.max_size":    10,
	"logging.max_backups": 3,
	"logging.max_age":     28,
	"logging.compress":    true,
}

func NewConfig() (*Config, error) {
	return load(envFile)
}

// load reads the .env file at path into the process environment, without
// overriding variables that are already set, then resolves settings.
func load(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(err, "load %s", path)
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for key, def := range settings {
		v.SetDefault(key, def)
		if err := v.BindEnv(key); err != nil {
			return nil, errors.Wrapf(err, "bind %s", key)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
