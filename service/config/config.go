// Package config loads inspector defaults from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/brojonat/solinspect/service/solana"
)

// DefaultEndpoints are the public RPC nodes used when no endpoint is
// configured, tried in order.
var DefaultEndpoints = []string{
	"https://api.mainnet-beta.solana.com",
	"https://solana.drpc.org",
}

// Config holds all application configuration. Values come from
// environment variables (with an optional .env file) and may be
// overridden per invocation by CLI flags.
type Config struct {
	Endpoints  []string
	Timeout    time.Duration
	Limit      int
	Commitment solana.Commitment
	LogLevel   string
}

// Load reads configuration from environment variables, applying
// defaults for anything unset. A .env file in the working directory is
// honored when present.
func Load() (*Config, error) {
	// Missing .env is the common case, not an error.
	_ = godotenv.Load()

	cfg := &Config{
		Timeout:    10 * time.Second,
		Limit:      10,
		Commitment: solana.CommitmentConfirmed,
		LogLevel:   getEnvOrDefault("SOLINSPECT_LOG_LEVEL", "error"),
	}

	if raw := os.Getenv("SOLINSPECT_RPC_ENDPOINTS"); raw != "" {
		for _, endpoint := range strings.Split(raw, ",") {
			if endpoint = strings.TrimSpace(endpoint); endpoint != "" {
				cfg.Endpoints = append(cfg.Endpoints, endpoint)
			}
		}
	}
	if len(cfg.Endpoints) == 0 {
		cfg.Endpoints = DefaultEndpoints
	}

	if raw := os.Getenv("SOLINSPECT_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("SOLINSPECT_TIMEOUT must be a duration (e.g. 10s): %w", err)
		}
		cfg.Timeout = timeout
	}

	if raw := os.Getenv("SOLINSPECT_TX_LIMIT"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return nil, fmt.Errorf("SOLINSPECT_TX_LIMIT must be a positive integer, got %q", raw)
		}
		cfg.Limit = limit
	}

	if raw := os.Getenv("SOLINSPECT_COMMITMENT"); raw != "" {
		commitment := solana.Commitment(raw)
		if !commitment.Valid() {
			return nil, fmt.Errorf("SOLINSPECT_COMMITMENT must be processed, confirmed, or finalized, got %q", raw)
		}
		cfg.Commitment = commitment
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
