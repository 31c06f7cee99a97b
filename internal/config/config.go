// Package config содержит логику чтения конфигурации сервера заказов,
// витрины и консоли заказов.
package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	defaultAddress      = "localhost:8080"
	defaultPollInterval = 5 * time.Second
	defaultLogLevel     = "info"
)

// Config содержит параметры конфигурации бинарников магазина.
type Config struct {
	RunAddress    string        `env:"RUN_ADDRESS"`
	DatabaseURI   string        `env:"DATABASE_URI"`
	ServerAddress string        `env:"STORE_SERVER_ADDRESS"`
	PollInterval  time.Duration `env:"POLL_INTERVAL"`
	DemoFallback  bool          `env:"DEMO_FALLBACK"`
	LogLevel      string        `env:"LOG_LEVEL"`
	LogFile       string        `env:"LOG_FILE"`
}

// Parse считывает конфигурацию из флагов командной строки и переменных
// окружения. Переменные окружения, в том числе из файла .env, имеют
// приоритет над флагами.
func Parse() (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	cfg := &Config{}

	flag.StringVar(&cfg.RunAddress, "a", defaultAddress, "address and port for HTTP server")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "database URI, in-memory storage when empty")
	flag.StringVar(&cfg.ServerAddress, "s", defaultAddress, "order server address for storefront and console")
	flag.DurationVar(&cfg.PollInterval, "i", defaultPollInterval, "console refresh interval")
	flag.BoolVar(&cfg.DemoFallback, "demo", false, "simulate order placement when the server is unreachable")
	flag.StringVar(&cfg.LogLevel, "l", defaultLogLevel, "log level")
	flag.StringVar(&cfg.LogFile, "log-file", "", "log file for storefront and console, warnings to stderr when empty")

	flag.Parse()

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.RunAddress == "" {
		cfg.RunAddress = defaultAddress
	}
	if cfg.ServerAddress == "" {
		cfg.ServerAddress = defaultAddress
	}
	if cfg.PollInterval <= 0 {
		return nil, fmt.Errorf("poll interval must be positive, got %s", cfg.PollInterval)
	}

	return cfg, nil
}
