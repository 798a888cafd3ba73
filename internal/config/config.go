package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Security SecurityConfig
	Logging  LoggingConfig
	Refresh  RefreshConfig
}

type ServerConfig struct {
	Port string
}

// UpstreamConfig locates the booking service API that owns all booking,
// employee and overview resources.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SecurityConfig struct {
	JWTSecret string
}

type LoggingConfig struct {
	Level     string
	Format    string
	Directory string
}

// RefreshConfig tunes the post-mutation re-fetch behaviour. The upstream
// system is eventually consistent for reschedule writes, so refreshes after
// those mutations wait for SettleDelay before re-fetching.
type RefreshConfig struct {
	SettleDelay time.Duration
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("UPSTREAM_BASE_URL", "http://localhost:8000/api")
	viper.SetDefault("UPSTREAM_TIMEOUT", "15s")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")
	viper.SetDefault("LOG_DIRECTORY", "./logs")
	viper.SetDefault("REFRESH_SETTLE_DELAY", "1500ms")

	timeout, err := time.ParseDuration(viper.GetString("UPSTREAM_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("parse UPSTREAM_TIMEOUT: %w", err)
	}
	settleDelay, err := time.ParseDuration(viper.GetString("REFRESH_SETTLE_DELAY"))
	if err != nil {
		return nil, fmt.Errorf("parse REFRESH_SETTLE_DELAY: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Upstream: UpstreamConfig{
			BaseURL: strings.TrimRight(viper.GetString("UPSTREAM_BASE_URL"), "/"),
			Timeout: timeout,
		},
		Security: SecurityConfig{
			JWTSecret: viper.GetString("JWT_SECRET"),
		},
		Logging: LoggingConfig{
			Level:     viper.GetString("LOG_LEVEL"),
			Format:    viper.GetString("LOG_FORMAT"),
			Directory: viper.GetString("LOG_DIRECTORY"),
		},
		Refresh: RefreshConfig{
			SettleDelay: settleDelay,
		},
	}

	if strings.TrimSpace(cfg.Upstream.BaseURL) == "" {
		return nil, fmt.Errorf("UPSTREAM_BASE_URL must not be empty")
	}

	return cfg, nil
}
