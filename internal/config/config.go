// Package config provides environment-driven application configuration.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all non-AI application configuration
type Config struct {
	Port string

	// CORSOrigins is the list of allowed browser origins
	CORSOrigins []string

	// AccessPassword is the shared secret gating the API. Empty disables
	// the access check (sandbox mode).
	AccessPassword string
	JWTSecret      string

	// StaticDir serves the avatar frontend when set and present on disk
	StaticDir string

	// Frontend speech settings, exposed verbatim on /v1/config
	SpeechKey    string
	SpeechRegion string
	BackendURL   string

	// Persistence sinks, each enabled by its setting being non-empty
	SQLitePath    string
	MongoURI      string
	MongoDatabase string
	RedisURI      string
}

// Load reads all env vars and builds the config
func Load() *Config {
	cfg := &Config{
		Port: getEnvOrDefault("PORT", "8080"),

		AccessPassword: os.Getenv("APP_ACCESS_PASSWORD"),
		JWTSecret:      getEnvOrDefault("JWT_SECRET", "change-me-in-production"),

		StaticDir: getEnvOrDefault("STATIC_DIR", "./static"),

		SpeechKey:    os.Getenv("AZURE_SPEECH_KEY"),
		SpeechRegion: os.Getenv("AZURE_SPEECH_REGION"),
		BackendURL:   getEnvOrDefault("PUBLIC_BACKEND_URL", "http://localhost:8080"),

		SQLitePath:    os.Getenv("SQLITE_PATH"),
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDatabase: getEnvOrDefault("MONGO_DATABASE", "ailiteracy"),
		RedisURI:      os.Getenv("REDIS_URI"),
	}

	for _, o := range strings.Split(os.Getenv("CORS_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	return v == "1" || strings.EqualFold(v, "true")
}
