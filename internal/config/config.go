package config

import (
	"log"
	"os"
	"time"
)

type Config struct {
	Port string

	StorageBackend string // "memory" or "sqlite"
	DBPath         string

	JWTSecret string

	AIAPIKey   string
	ModelName  string
	AITimeout  time.Duration
	UseMockLLM bool
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if v == "1" || v == "true" || v == "TRUE" {
		return true
	}
	return false
}

func getDurationEnv(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %s", key, v, def)
		return def
	}
	return d
}

// Load reads all env vars and builds the config
func Load() *Config {
	cfg := &Config{
		Port: getEnv("MOODTRACK_PORT", "3000"),

		StorageBackend: getEnv("MOODTRACK_STORAGE_BACKEND", "sqlite"),
		DBPath:         getEnv("MOODTRACK_DB_PATH", "database.sqlite"),

		JWTSecret: getEnv("MOODTRACK_JWT_SECRET", ""),

		AIAPIKey:   getEnv("MOODTRACK_AI_API_KEY", ""),
		ModelName:  getEnv("MOODTRACK_MODEL_NAME", "gemini-2.5-flash-lite"),
		AITimeout:  getDurationEnv("MOODTRACK_AI_TIMEOUT", 15*time.Second),
		UseMockLLM: getBoolEnv("MOODTRACK_USE_MOCK_LLM", false),
	}

	// Fail fast on a missing or weak token secret.
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("MOODTRACK_JWT_SECRET must be set and be at least 32 characters long")
	}

	// A missing AI key is expected: reflections degrade to fallbacks.
	if cfg.AIAPIKey == "" && !cfg.UseMockLLM {
		log.Println("WARNING: MOODTRACK_AI_API_KEY is not set. AI reflections will use fallback text.")
	}

	return cfg
}
