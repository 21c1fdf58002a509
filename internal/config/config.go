package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const PROD_STRING = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction      bool
	ProdOrigins       string
	HTTPAddr          string
	DBDSN             string
	JWTSecret         string
	JWTAccessTokenTTL time.Duration

	// Pricing policy knobs. All amounts are minor currency units (cents).
	FlightSeatPrice      int64 // default per-seat round-trip price when a block has none
	TransferSedanMax     int   // largest party a sedan takes
	TransferVanMax       int   // largest party a van takes
	TransferSedanPrice   int64 // one-way sedan rate
	TransferVanPrice     int64 // one-way van rate
	TransferMinibusPrice int64 // one-way minibus rate
	InfantMaxAge         int   // oldest age that stays free
	ChildMaxAge          int   // oldest age that pays the child rate
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	// Production origin (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	// Application environment (default: dev)
	appEnvStr := getEnv("APP_ENV", "dev")
	cfg.IsProduction = appEnvStr == PROD_STRING

	// HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	// Database DSN is required
	cfg.DBDSN = os.Getenv("DB_DSN")
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required")
	}

	// JWT secret is required for validating tokens from the session system
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	// JWT access token TTL, parse as time.Duration (e.g. "15m", "1h").
	ttlStr := getEnv("JWT_ACCESS_TOKEN_TTL", "15m")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TOKEN_TTL: %w", err)
	}
	cfg.JWTAccessTokenTTL = ttl

	// Pricing policy. Defaults mirror the agency's standing rates:
	// flights EUR 120 per seat, transfer tiers split at 3 and 7 people,
	// infants (0-1) free, children (2-11) at the child rate.
	if cfg.FlightSeatPrice, err = getEnvAsInt64("FLIGHT_SEAT_PRICE", 12000); err != nil {
		return nil, err
	}
	if cfg.TransferSedanMax, err = getEnvAsInt("TRANSFER_SEDAN_MAX", 3); err != nil {
		return nil, err
	}
	if cfg.TransferVanMax, err = getEnvAsInt("TRANSFER_VAN_MAX", 7); err != nil {
		return nil, err
	}
	if cfg.TransferSedanPrice, err = getEnvAsInt64("TRANSFER_SEDAN_PRICE", 4000); err != nil {
		return nil, err
	}
	if cfg.TransferVanPrice, err = getEnvAsInt64("TRANSFER_VAN_PRICE", 7000); err != nil {
		return nil, err
	}
	if cfg.TransferMinibusPrice, err = getEnvAsInt64("TRANSFER_MINIBUS_PRICE", 12000); err != nil {
		return nil, err
	}
	if cfg.InfantMaxAge, err = getEnvAsInt("INFANT_MAX_AGE", 1); err != nil {
		return nil, err
	}
	if cfg.ChildMaxAge, err = getEnvAsInt("CHILD_MAX_AGE", 11); err != nil {
		return nil, err
	}
	if cfg.InfantMaxAge >= cfg.ChildMaxAge {
		return nil, fmt.Errorf("INFANT_MAX_AGE (%d) must be below CHILD_MAX_AGE (%d)", cfg.InfantMaxAge, cfg.ChildMaxAge)
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer.
// It returns the default value if the variable is not set.
// It returns an error if the variable is set but is not a valid integer.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		// Return 0 and a wrapped error to provide context
		return 0, fmt.Errorf("env %s value %q is not a valid integer: %w", key, valStr, err)
	}

	return val, nil
}

// getEnvAsInt64 is getEnvAsInt for minor-unit money amounts.
func getEnvAsInt64(key string, defaultValue int64) (int64, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseInt(valStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid integer: %w", key, valStr, err)
	}

	return val, nil
}
