package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress         string
	DatabaseURI        string
	JWTSecret          string
	TokenTTL           time.Duration
	BcryptCost         int
	ShutdownTimeout    time.Duration
	LogLevel           string
	CORSAllowedOrigins []string
}

const (
	defaultRunAddress      = ":8000"
	defaultTokenTTL        = 24 * time.Hour
	defaultShutdownTimeout = 10 * time.Second
	defaultLogLevel        = "info"
	defaultCORSOrigins     = "*"
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		JWTSecret:       getString(lookup, "JWT_SECRET", ""),
		LogLevel:        getString(lookup, "LOG_LEVEL", defaultLogLevel),
	}

	fs := flag.NewFlagSet("gopherauth", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		tokenTTLStr        = getString(lookup, "JWT_EXPIRES_IN", defaultTokenTTL.String())
		shutdownTimeoutStr = getString(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout.String())
		bcryptCostStr      = getString(lookup, "BCRYPT_COST", "0")
		corsOrigins        = getString(lookup, "CORS_ALLOWED_ORIGINS", defaultCORSOrigins)
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&tokenTTLStr, "jwt-ttl", tokenTTLStr, "Lifetime of issued auth tokens")
	fs.StringVar(&bcryptCostStr, "bcrypt-cost", bcryptCostStr, "bcrypt cost factor, 0 selects the library default")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	fs.StringVar(&corsOrigins, "cors-origins", corsOrigins, "Comma separated list of allowed CORS origins")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.TokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.BcryptCost, err = strconv.Atoi(strings.TrimSpace(bcryptCostStr)); err != nil {
		return nil, fmt.Errorf("invalid bcrypt cost: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = strings.TrimSpace(string(content))
	}

	cfg.CORSAllowedOrigins = splitList(corsOrigins)

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.BcryptCost < 0 {
		cfg.BcryptCost = 0
	}

	if cfg.BcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("invalid bcrypt cost: %d exceeds maximum %d", cfg.BcryptCost, bcrypt.MaxCost)
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
