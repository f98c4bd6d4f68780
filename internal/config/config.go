package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	dnderr "github.com/KirkDiggler/duel-sim/internal/errors"
)

// Config holds all configuration for the batch simulator
type Config struct {
	Simulation SimulationConfig
}

// SimulationConfig controls a batch of independent battles
type SimulationConfig struct {
	Runs      int   `validate:"min=1,max=1000000"`
	Workers   int   `validate:"min=1,max=256"`
	Seed      int64 // zero means seed from the clock
	MaxRounds int   `validate:"min=1"`

	// ReportPath is optional; when set the summary is written there as JSON
	ReportPath string
}

const (
	DefaultRuns      = 1000
	DefaultWorkers   = 4
	DefaultMaxRounds = 10000
)

var validate = validator.New()

// Load loads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := LoadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromEnv reads environment variables without validating them, for callers that
// apply further overrides and call Validate themselves
func LoadFromEnv() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Runs:       getEnvAsIntOrDefault("SIMULATE_RUNS", DefaultRuns),
			Workers:    getEnvAsIntOrDefault("SIMULATE_WORKERS", DefaultWorkers),
			Seed:       getEnvAsInt64OrDefault("SIMULATE_SEED", 0),
			MaxRounds:  getEnvAsIntOrDefault("SIMULATE_MAX_ROUNDS", DefaultMaxRounds),
			ReportPath: os.Getenv("SIMULATE_REPORT"),
		},
	}
}

// Validate checks the config against its struct tags
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return dnderr.WrapWithCode(err, dnderr.CodeValidation, "invalid config")
		}

		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s failed %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
		}
		return dnderr.Validation("invalid config: " + strings.Join(fields, ", "))
	}

	return nil
}

// EffectiveSeed returns the configured seed, or a clock based one when unset
func (s SimulationConfig) EffectiveSeed() int64 {
	if s.Seed != 0 {
		return s.Seed
	}
	return time.Now().UnixNano()
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
