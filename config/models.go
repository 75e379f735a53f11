package config

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// Config holds application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Mongo   MongoConfig   `mapstructure:"mongo"`
	JWT     JWTConfig     `mapstructure:"jwt"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Server.Port == 0 {
		return errors.New("server.port is required")
	}
	if c.Mongo.URI == "" || c.Mongo.DBName == "" {
		return errors.New("mongo.uri and mongo.db_name are required")
	}
	if c.JWT.Secret == "" {
		return errors.New("jwt.secret is required")
	}
	if c.JWT.TTL <= 0 {
		return errors.New("jwt.ttl must be positive")
	}
	return nil
}

// ServerAddr returns the listen address for the HTTP server.
func (c Config) ServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	CORSOrigin      string        `mapstructure:"cors_origin"`
}

type MongoConfig struct {
	URI            string        `mapstructure:"uri"`
	DBName         string        `mapstructure:"db_name"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	TTL    time.Duration `mapstructure:"ttl"`
}

// LoggingConfig contains logger preferences. An empty File means stdout.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}
