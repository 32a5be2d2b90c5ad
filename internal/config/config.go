package config

import (
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/vaultpass/passgen/internal/crypto"
)

// Upper bounds for argon2 costs read from the environment.
const (
	maxArgon2MemoryKiB  = 4 * 1024 * 1024
	maxArgon2Iterations = 1024
)

type Config struct {
	Env      string
	Length   int
	Count    int
	LogLevel slog.Level
	NoColor  bool
	Hash     crypto.HashParams
}

func Load() Config {
	def := crypto.DefaultHashParams()

	cfg := Config{
		Env:      getEnv("PASSGEN_ENV", "production"),
		Length:   getEnvInt("PASSGEN_LENGTH", 12),
		Count:    getEnvInt("PASSGEN_COUNT", 1),
		LogLevel: parseLevel(getEnv("PASSGEN_LOG_LEVEL", "warn")),
		NoColor:  getEnvBool("PASSGEN_NO_COLOR", false) || os.Getenv("NO_COLOR") != "",
		Hash: crypto.HashParams{
			Memory:      uint32(getEnvRange("PASSGEN_ARGON2_MEMORY_KIB", int(def.Memory), maxArgon2MemoryKiB)),
			Iterations:  uint32(getEnvRange("PASSGEN_ARGON2_ITERATIONS", int(def.Iterations), maxArgon2Iterations)),
			Parallelism: uint8(getEnvRange("PASSGEN_ARGON2_PARALLELISM", int(def.Parallelism), math.MaxUint8)),
		},
	}

	if cfg.Length < 1 {
		slog.Warn("PASSGEN_LENGTH must be positive, using 12", "value", cfg.Length)
		cfg.Length = 12
	}
	if cfg.Count < 1 {
		slog.Warn("PASSGEN_COUNT must be positive, using 1", "value", cfg.Count)
		cfg.Count = 1
	}
	if cfg.Env == "development" && cfg.LogLevel > slog.LevelDebug {
		cfg.LogLevel = slog.LevelDebug
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		slog.Warn("ignoring invalid integer in environment", "key", key, "value", v)
		return fallback
	}
	return n
}

// getEnvRange reads an integer in [1, max], falling back outside that range.
func getEnvRange(key string, fallback, max int) int {
	n := getEnvInt(key, fallback)
	if n < 1 || n > max {
		slog.Warn("ignoring out of range integer in environment", "key", key, "value", n, "max", max)
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		slog.Warn("ignoring invalid boolean in environment", "key", key, "value", v)
		return fallback
	}
	return b
}

func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn
	}
	return l
}
