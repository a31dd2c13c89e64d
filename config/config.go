package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/yeremiapane/orders-admin/utils"
)

type Config struct {
	Port    string
	GinMode string

	AdminEmail    string
	AdminPassword string
	SessionSecret string

	// StoreDriver is one of sqlite, mysql or sanity.
	StoreDriver string
	DatabaseDSN string
	SeedDemo    bool

	SanityProjectID  string
	SanityDataset    string
	SanityToken      string
	SanityAPIVersion string
	SanityBaseURL    string

	UploadsBaseURL string
	AllowedOrigin  string
	RateLimit      int
}

// Load reads .env when present, then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Println("Warning: .env file not found")
	}

	cfg := &Config{
		Port:    getenv("PORT", "8080"),
		GinMode: os.Getenv("GIN_MODE"),

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		SessionSecret: os.Getenv("SESSION_SECRET"),

		StoreDriver: getenv("STORE_DRIVER", "sqlite"),
		DatabaseDSN: getenv("DATABASE_DSN", "orders.db"),
		SeedDemo:    os.Getenv("SEED_DEMO") == "true",

		SanityProjectID:  os.Getenv("SANITY_PROJECT_ID"),
		SanityDataset:    getenv("SANITY_DATASET", "production"),
		SanityToken:      os.Getenv("SANITY_TOKEN"),
		SanityAPIVersion: os.Getenv("SANITY_API_VERSION"),
		SanityBaseURL:    os.Getenv("SANITY_BASE_URL"),

		UploadsBaseURL: getenv("UPLOADS_BASE_URL", "/uploads"),
		AllowedOrigin:  os.Getenv("ALLOWED_ORIGIN"),
		RateLimit:      getenvInt("RATE_LIMIT", 50),
	}

	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		utils.InfoLogger.Println("Warning: ADMIN_EMAIL or ADMIN_PASSWORD is not set, login will always fail")
	}
	if cfg.SessionSecret == "" {
		utils.InfoLogger.Println("Warning: SESSION_SECRET not set, using development secret")
		cfg.SessionSecret = "dev-session-secret"
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		utils.ErrorLogger.Printf("Invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
