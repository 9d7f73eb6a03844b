package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration, read from the environment.
type Config struct {
	// Port the HTTP server listens on.
	Port int

	// BaseURL is the public origin used when building share links.
	BaseURL string

	FirebaseProjectID            string
	GoogleApplicationCredentials string

	// FirebaseWebAPIKey authenticates password sign-in calls against the
	// Identity Toolkit REST API.
	FirebaseWebAPIKey string

	RedisAddr string
}

// Load reads configuration from the environment. A local .env file is
// applied first when present; real environment variables win.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:                         envInt("PORT", 8080),
		BaseURL:                      envString("BASE_URL", "http://localhost:3000"),
		FirebaseProjectID:            os.Getenv("FIREBASE_PROJECT_ID"),
		GoogleApplicationCredentials: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		FirebaseWebAPIKey:            os.Getenv("FIREBASE_WEB_API_KEY"),
		RedisAddr:                    envString("REDIS_ADDR", "127.0.0.1:6379"),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
