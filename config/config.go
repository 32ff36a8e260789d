package config

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the process reads from the environment. It is
// loaded once in main and handed to the pieces that need it, so nothing
// below this package reaches for os.Getenv.
type Config struct {
	MongoURI string
	MongoDB  string

	JWTSecret string
	TokenTTL  time.Duration

	Port          string
	AllowedOrigin string

	CookieSameSite http.SameSite
	CookieSecure   bool
}

// Load reads the environment (and a .env file when present) into a Config.
// The signing secret and the Mongo connection string are mandatory; the
// process refuses to start without them.
func Load() *Config {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDB:       getEnv("MONGO_DB", "notesapp"),
		JWTSecret:     os.Getenv("JWT_SECRET_KEY"),
		TokenTTL:      time.Duration(getEnvAsInt("JWT_EXPIRATION_TIME", 86400)) * time.Second,
		Port:          getEnv("PORT", "4000"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
		CookieSecure:  getEnv("COOKIE_SECURE", "true") == "true",
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}
	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI is not set")
	}

	switch getEnv("COOKIE_SAME_SITE", "strict") {
	case "lax":
		cfg.CookieSameSite = http.SameSiteLaxMode
	case "none":
		cfg.CookieSameSite = http.SameSiteNoneMode
	default:
		cfg.CookieSameSite = http.SameSiteStrictMode
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return fallback
}
