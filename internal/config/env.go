package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces the environment overrides, e.g. STOREFRONT_HTTP_PORT.
const EnvPrefix = "STOREFRONT"

// envOverrides are applied on top of the YAML file. Unset variables leave the file value.
type envOverrides struct {
	HTTPPort      *int     `envconfig:"HTTP_PORT"`
	RedisAddrs    []string `envconfig:"REDIS_ADDRS"`
	RedisUsername *string  `envconfig:"REDIS_USERNAME"`
	RedisPassword *string  `envconfig:"REDIS_PASSWORD"`
	RedisDB       *int     `envconfig:"REDIS_DB"`
	KeyPrefix     *string  `envconfig:"KEY_PREFIX"`
	EnsureIndexes *bool    `envconfig:"ENSURE_INDEXES"`
	APIKeys       []string `envconfig:"API_KEYS"`
	CORSOrigins   []string `envconfig:"CORS_ORIGINS"`
	LogLevel      *string  `envconfig:"LOG_LEVEL"`
}

// applyEnv overlays STOREFRONT_* variables onto c.
func (c *Config) applyEnv() error {
	var e envOverrides
	if err := envconfig.Process(EnvPrefix, &e); err != nil {
		return fmt.Errorf("read %s_* environment: %w", EnvPrefix, err)
	}

	if e.HTTPPort != nil {
		c.HTTP.Port = *e.HTTPPort
	}
	if len(e.RedisAddrs) > 0 {
		c.Database.Addrs = e.RedisAddrs
	}
	if e.RedisUsername != nil {
		c.Database.Username = *e.RedisUsername
	}
	if e.RedisPassword != nil {
		c.Database.Password = *e.RedisPassword
	}
	if e.RedisDB != nil {
		c.Database.DB = *e.RedisDB
	}
	if e.KeyPrefix != nil {
		c.Storage.KeyPrefix = *e.KeyPrefix
	}
	if e.EnsureIndexes != nil {
		c.Index.EnsureOnStart = *e.EnsureIndexes
	}
	if len(e.APIKeys) > 0 {
		c.Auth.APIKeys = e.APIKeys
	}
	if len(e.CORSOrigins) > 0 {
		c.HTTP.CORSOrigins = e.CORSOrigins
	}
	if e.LogLevel != nil {
		c.Logging.Level = *e.LogLevel
	}
	return nil
}
