// Package config loads process settings from the environment, after an
// optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	AppEnv  string
	LogMode string

	HTTPPort string
	GRPCPort string

	SpannerDB       string
	ShutdownTimeout time.Duration

	CORSAllowOrigins []string

	ProductListDefaultLimit int64
	LowStockThreshold       int64
	CriticalStockThreshold  int64
}

const defaultSpannerDB = "projects/test-project/instances/dev-instance/databases/inventory-db"

// Load reads .env files (missing files are fine) and then the environment.
// Variables already set in the environment win over .env entries.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables with defaults.
func FromEnv() (Config, error) {
	cfg := Config{
		AppEnv:           str("APP_ENV", "development"),
		LogMode:          str("LOG_MODE", "development"),
		HTTPPort:         str("HTTP_PORT", "8080"),
		GRPCPort:         str("GRPC_PORT", "9090"),
		SpannerDB:        str("SPANNER_DATABASE", defaultSpannerDB),
		CORSAllowOrigins: list("CORS_ALLOW_ORIGINS", []string{"*"}),
	}

	var err error
	var seconds int64
	if seconds, err = positiveInt("SHUTDOWN_TIMEOUT_SECONDS", 15); err != nil {
		return Config{}, err
	}
	cfg.ShutdownTimeout = time.Duration(seconds) * time.Second

	if cfg.ProductListDefaultLimit, err = positiveInt("PRODUCT_LIST_DEFAULT_LIMIT", 1000); err != nil {
		return Config{}, err
	}
	if cfg.LowStockThreshold, err = nonNegativeInt("LOW_STOCK_THRESHOLD", 10); err != nil {
		return Config{}, err
	}
	if cfg.CriticalStockThreshold, err = nonNegativeInt("CRITICAL_STOCK_THRESHOLD", 5); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// IsProduction reports whether the process runs with production settings.
func (c Config) IsProduction() bool {
	switch strings.ToLower(c.AppEnv) {
	case "prod", "production":
		return true
	}
	return false
}

func str(name, def string) string {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	return v
}

func list(name string, def []string) []string {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func integer(name string, def int64) (int64, error) {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def, nil
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, v)
	}
	return i, nil
}

func positiveInt(name string, def int64) (int64, error) {
	i, err := integer(name, def)
	if err != nil {
		return 0, err
	}
	if i <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", name, i)
	}
	return i, nil
}

func nonNegativeInt(name string, def int64) (int64, error) {
	i, err := integer(name, def)
	if err != nil {
		return 0, err
	}
	if i < 0 {
		return 0, fmt.Errorf("%s must not be negative, got %d", name, i)
	}
	return i, nil
}
