package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DATABASE_URL", "REDIS_URL", "PLAN_TTL", "DEFAULT_CAPACITY", "DEPOT_X"} {
		t.Setenv(k, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Empty(t, cfg.DatabaseURL)
	require.Equal(t, 24*time.Hour, cfg.PlanTTL)
	require.Equal(t, 100.0, cfg.DefaultCapacity)
	require.Equal(t, 0.0, cfg.DepotX)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PLAN_TTL", "90s")
	t.Setenv("DEFAULT_RANGE", "350.5")
	t.Setenv("RATE_LIMIT_BURST", "3")

	cfg, err := FromEnv()
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, 90*time.Second, cfg.PlanTTL)
	require.Equal(t, 350.5, cfg.DefaultRange)
	require.Equal(t, 3, cfg.RateLimitBurst)
}

func TestFromEnvInvalid(t *testing.T) {
	t.Setenv("DEPOT_Y", "north")
	_, err := FromEnv()
	require.ErrorContains(t, err, "DEPOT_Y")
}
