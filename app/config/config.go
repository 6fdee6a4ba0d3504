// Package config loads service settings from defaults, an optional YAML
// file, a .env file and BLOGHUB_* environment variables, in rising priority.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const EnvPrefix = "BLOGHUB"

// Config is the resolved service configuration.
type Config struct {
	HTTP      HTTPConfig
	Store     StoreConfig
	Auth      AuthConfig
	Log       LogConfig
	RateLimit RateLimitConfig
}

type HTTPConfig struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// StoreConfig points at the database directory. An empty path keeps data in
// memory.
type StoreConfig struct {
	Path string
}

// AuthConfig holds the basic auth credentials. PasswordHash, a bcrypt hash,
// takes precedence over Password when set.
type AuthConfig struct {
	Username      string
	Password      string
	PasswordHash  string
	ProtectVideos bool
}

type LogConfig struct {
	Level  string
	Pretty bool
}

// RateLimitConfig configures the global token bucket. RPS of zero disables it.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":3999")
	v.SetDefault("http.read_timeout", 10*time.Second)
	v.SetDefault("http.write_timeout", 10*time.Second)
	v.SetDefault("http.idle_timeout", 60*time.Second)
	v.SetDefault("store.path", "")
	v.SetDefault("auth.username", "admin")
	v.SetDefault("auth.password", "qwerty")
	v.SetDefault("auth.password_hash", "")
	v.SetDefault("auth.protect_videos", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("ratelimit.rps", 0)
	v.SetDefault("ratelimit.burst", 1)
}

// Load resolves the configuration. configFile falls back to the CONFIG
// environment variable; envFiles default to ".env". Missing env files are
// skipped, a missing config file is an error.
func Load(configFile string, envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, name := range envFiles {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", name, err)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile == "" {
		configFile = os.Getenv("CONFIG")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
	}

	cfg := &Config{
		HTTP: HTTPConfig{
			Addr:         v.GetString("http.addr"),
			ReadTimeout:  v.GetDuration("http.read_timeout"),
			WriteTimeout: v.GetDuration("http.write_timeout"),
			IdleTimeout:  v.GetDuration("http.idle_timeout"),
		},
		Store: StoreConfig{
			Path: v.GetString("store.path"),
		},
		Auth: AuthConfig{
			Username:      v.GetString("auth.username"),
			Password:      v.GetString("auth.password"),
			PasswordHash:  v.GetString("auth.password_hash"),
			ProtectVideos: v.GetBool("auth.protect_videos"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Pretty: v.GetBool("log.pretty"),
		},
		RateLimit: RateLimitConfig{
			RPS:   v.GetFloat64("ratelimit.rps"),
			Burst: v.GetInt("ratelimit.burst"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	if c.HTTP.Addr == "" {
		return errors.New("http.addr is required")
	}
	if c.Auth.Username == "" {
		return errors.New("auth.username is required")
	}
	if c.Auth.Password == "" && c.Auth.PasswordHash == "" {
		return errors.New("auth.password or auth.password_hash is required")
	}
	if c.RateLimit.RPS < 0 {
		return fmt.Errorf("ratelimit.rps must not be negative, got %v", c.RateLimit.RPS)
	}
	if c.RateLimit.RPS > 0 && c.RateLimit.Burst < 1 {
		return fmt.Errorf("ratelimit.burst must be at least 1, got %d", c.RateLimit.Burst)
	}
	return nil
}
