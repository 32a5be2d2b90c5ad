package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vaultpass/passgen/internal/crypto"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PASSGEN_ENV", "PASSGEN_LENGTH", "PASSGEN_COUNT", "PASSGEN_LOG_LEVEL",
		"PASSGEN_NO_COLOR", "NO_COLOR",
		"PASSGEN_ARGON2_MEMORY_KIB", "PASSGEN_ARGON2_ITERATIONS", "PASSGEN_ARGON2_PARALLELISM",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 12, cfg.Length)
	assert.Equal(t, 1, cfg.Count)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.False(t, cfg.NoColor)
	assert.Equal(t, crypto.DefaultHashParams().Memory, cfg.Hash.Memory)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PASSGEN_LENGTH", "24")
	t.Setenv("PASSGEN_COUNT", "5")
	t.Setenv("PASSGEN_LOG_LEVEL", "info")
	t.Setenv("PASSGEN_NO_COLOR", "true")
	t.Setenv("PASSGEN_ARGON2_ITERATIONS", "4")

	cfg := Load()
	assert.Equal(t, 24, cfg.Length)
	assert.Equal(t, 5, cfg.Count)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.True(t, cfg.NoColor)
	assert.EqualValues(t, 4, cfg.Hash.Iterations)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("PASSGEN_LENGTH", "-3")
	t.Setenv("PASSGEN_COUNT", "many")
	t.Setenv("PASSGEN_LOG_LEVEL", "loud")
	t.Setenv("PASSGEN_NO_COLOR", "maybe")

	cfg := Load()
	assert.Equal(t, 12, cfg.Length)
	assert.Equal(t, 1, cfg.Count)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.False(t, cfg.NoColor)
}

func TestLoadArgon2ParamsOutOfRange(t *testing.T) {
	def := crypto.DefaultHashParams()
	tests := []struct {
		name, memory, iterations, parallelism string
	}{
		{"negative", "-1", "-1", "-1"},
		{"zero", "0", "0", "0"},
		{"too large", "99999999999", "99999999999", "300"},
		{"not a number", "lots", "few", "many"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("PASSGEN_ARGON2_MEMORY_KIB", tt.memory)
			t.Setenv("PASSGEN_ARGON2_ITERATIONS", tt.iterations)
			t.Setenv("PASSGEN_ARGON2_PARALLELISM", tt.parallelism)

			cfg := Load()
			assert.Equal(t, def.Memory, cfg.Hash.Memory)
			assert.Equal(t, def.Iterations, cfg.Hash.Iterations)
			assert.Equal(t, def.Parallelism, cfg.Hash.Parallelism)
		})
	}
}

func TestLoadArgon2ParamsInRange(t *testing.T) {
	clearEnv(t)
	t.Setenv("PASSGEN_ARGON2_MEMORY_KIB", "16384")
	t.Setenv("PASSGEN_ARGON2_PARALLELISM", "255")

	cfg := Load()
	assert.EqualValues(t, 16384, cfg.Hash.Memory)
	assert.EqualValues(t, 255, cfg.Hash.Parallelism)
}

func TestLoadNoColorConvention(t *testing.T) {
	clearEnv(t)
	t.Setenv("NO_COLOR", "1")
	assert.True(t, Load().NoColor)
}

func TestLoadDevelopmentLogsDebug(t *testing.T) {
	clearEnv(t)
	t.Setenv("PASSGEN_ENV", "development")
	assert.Equal(t, slog.LevelDebug, Load().LogLevel)
}
