package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	ASSET_BASE_URL string

	GOOGLE_CLIENT_ID         string
	GOOGLE_CLIENT_SECRET     string
	GOOGLE_REDIRECT_URL      string
	GOOGLE_FRONTEND_REDIRECT string

	// Promotional free-trial window. The "*" wildcard entitlement can only be
	// activated before this moment (local time).
	FREE_TRIAL_CUTOFF time.Time
)

const defaultFreeTrialCutoff = "2025-12-31T23:59:59"

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	ASSET_BASE_URL = getEnv("ASSET_BASE_URL", "https://assets.rhapsodylanguages.app")

	GOOGLE_CLIENT_ID = mustEnv("GOOGLE_CLIENT_ID")
	GOOGLE_CLIENT_SECRET = mustEnv("GOOGLE_CLIENT_SECRET")
	GOOGLE_REDIRECT_URL = mustEnv("GOOGLE_REDIRECT_URL")
	GOOGLE_FRONTEND_REDIRECT = getEnv("GOOGLE_FRONTEND_REDIRECT", "")

	cutoff := getEnv("FREE_TRIAL_CUTOFF", defaultFreeTrialCutoff)
	FREE_TRIAL_CUTOFF, err = time.ParseInLocation("2006-01-02T15:04:05", cutoff, time.Local)
	if err != nil {
		log.Fatalf("Invalid FREE_TRIAL_CUTOFF %q: %v", cutoff, err)
	}
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
