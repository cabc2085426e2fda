package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the service settings read from the environment.
type Config struct {
	Port        string
	DatabaseURL string
	RedisURL    string
	SeedPath    string
	PlanTTL     time.Duration

	RateLimitRPS   float64
	RateLimitBurst int

	DefaultCapacity float64
	DefaultRange    float64
	DepotX          float64
	DepotY          float64
}

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load reads .env when present, then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:        Get("PORT", "8080"),
		DatabaseURL: Get("DATABASE_URL", ""),
		RedisURL:    Get("REDIS_URL", ""),
		SeedPath:    Get("SEED_PATH", "data/seeds/clients.json"),
	}

	var err error
	if cfg.PlanTTL, err = time.ParseDuration(Get("PLAN_TTL", "24h")); err != nil {
		return Config{}, fmt.Errorf("config: PLAN_TTL: %w", err)
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(Get("RATE_LIMIT_BURST", "20")); err != nil {
		return Config{}, fmt.Errorf("config: RATE_LIMIT_BURST: %w", err)
	}

	floats := []struct {
		key      string
		fallback string
		dst      *float64
	}{
		{"RATE_LIMIT_RPS", "10", &cfg.RateLimitRPS},
		{"DEFAULT_CAPACITY", "100", &cfg.DefaultCapacity},
		{"DEFAULT_RANGE", "200", &cfg.DefaultRange},
		{"DEPOT_X", "0", &cfg.DepotX},
		{"DEPOT_Y", "0", &cfg.DepotY},
	}
	for _, f := range floats {
		v, err := strconv.ParseFloat(Get(f.key, f.fallback), 64)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", f.key, err)
		}
		*f.dst = v
	}

	return cfg, nil
}
