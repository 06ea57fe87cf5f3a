package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Store    StoreConfig    `mapstructure:"store"`
	Gemini   GeminiConfig   `mapstructure:"gemini"`
	QR       QRConfig       `mapstructure:"qr"`
	Transfer TransferConfig `mapstructure:"transfer"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// StoreConfig selects and configures the snapshot persistence backend.
type StoreConfig struct {
	Backend string      `mapstructure:"backend"` // file, redis
	Dir     string      `mapstructure:"dir"`     // file backend: data directory
	Redis   RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// GeminiConfig configures the generative-AI completion endpoint.
// APIKey is the single secret credential the application carries.
type GeminiConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// QRConfig configures the external QR image rendering service.
type QRConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// TransferConfig holds the simulated transfer phase durations.
type TransferConfig struct {
	VerifyDelay   time.Duration `mapstructure:"verify_delay"`
	TransferDelay time.Duration `mapstructure:"transfer_delay"`
	SuccessHold   time.Duration `mapstructure:"success_hold"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: NOVAPAY.
// Nested keys use underscore: NOVAPAY_STORE_BACKEND, NOVAPAY_GEMINI_API_KEY, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("store.backend", "file")
	v.SetDefault("store.dir", ".novapay")
	v.SetDefault("store.redis.host", "localhost")
	v.SetDefault("store.redis.port", 6379)
	v.SetDefault("store.redis.password", "")
	v.SetDefault("store.redis.db", 0)
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-3-flash-preview")
	v.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com")
	v.SetDefault("qr.base_url", "https://api.qrserver.com/v1/create-qr-code/")
	v.SetDefault("transfer.verify_delay", "1500ms")
	v.SetDefault("transfer.transfer_delay", "2s")
	v.SetDefault("transfer.success_hold", "2s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: NOVAPAY_STORE_BACKEND -> store.backend
	v.SetEnvPrefix("NOVAPAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
