package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string
	AppEnv  string

	// Storefront API the remote cart, order and config clients talk to.
	APIBaseURL string

	// HMAC secret for access-token verification.
	JWTSecret string

	// Guest store backend: "file" (default) or "postgres".
	StoreDriver string
	StorePath   string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:     getEnv("APP_PORT", "8080"),
		AppEnv:      getEnv("APP_ENV", "development"),
		APIBaseURL:  os.Getenv("API_BASE_URL"),
		JWTSecret:   os.Getenv("SECRET_KEY"),
		StoreDriver: getEnv("STORE_DRIVER", "file"),
		StorePath:   getEnv("STORE_PATH", "./data/guest"),
		DBHost:      os.Getenv("DB_HOST"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),
		DBPort:      os.Getenv("DB_PORT"),
	}

	if cfg.APIBaseURL == "" {
		log.Fatal("API_BASE_URL must be set")
	}
	if cfg.StoreDriver == "postgres" && cfg.DBHost == "" {
		log.Fatal("STORE_DRIVER=postgres requires DB_* environment variables")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
