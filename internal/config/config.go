// Package config loads the auction's limits and thresholds from environment
// variables, with defaults matching the reference runtime.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"huddle-auction/internal/models"
)

// Limits holds the externally supplied auction constants.
type Limits struct {
	MaxSocialAccountLen int            // max social account length in bytes
	MaxSocialProofLen   int            // max social proof length in bytes
	MaxHuddlesPerHost   int            // per-host huddle capacity
	MaxBidsPerGuest     int            // per-guest bid capacity
	MinScheduleLead     models.Moment  // minimum lead time when scheduling
	MinBidIncrement     models.Balance // a new bid must exceed current value by more than this
}

// Config holds all runtime configuration values.
type Config struct {
	Port   string
	Limits Limits
}

// Load reads configuration from the environment. A .env file in the working
// directory is honored when present; every value has a default, so an empty
// environment yields a runnable configuration.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port: getenv("PORT", "8080"),
		Limits: Limits{
			MaxSocialAccountLen: getenvInt("MAX_SOCIAL_ACCOUNT_LEN", 64),
			MaxSocialProofLen:   getenvInt("MAX_SOCIAL_PROOF_LEN", 128),
			MaxHuddlesPerHost:   getenvInt("MAX_HUDDLES_PER_HOST", 64),
			MaxBidsPerGuest:     getenvInt("MAX_BIDS_PER_GUEST", 64),
			MinScheduleLead:     models.Moment(getenvInt64("MIN_SCHEDULE_LEAD_MS", 1)),
			MinBidIncrement:     models.Balance(getenvInt64("MIN_BID_INCREMENT", 1)),
		},
	}
}

// DefaultLimits returns the limits used when no environment is configured.
func DefaultLimits() Limits {
	return Limits{
		MaxSocialAccountLen: 64,
		MaxSocialProofLen:   128,
		MaxHuddlesPerHost:   64,
		MaxBidsPerGuest:     64,
		MinScheduleLead:     1,
		MinBidIncrement:     1,
	}
}

// getenv returns the env value or a default if unset or empty.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getenvInt returns the env value parsed as int, or a default.
func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// getenvInt64 returns the env value parsed as int64, or a default.
func getenvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}
