package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

const PROD_STRING = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	HTTPAddr     string

	// Basic credential gate for all API routes.
	Username     string
	PasswordHash string

	// Spreadsheet mirror; only active when both CredentialsJSON and SheetID
	// are set.
	SheetsCredentialsJSON string
	SheetID               string
	SheetWorksheet        string
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	// Production origins (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	// Application environment (default: dev)
	appEnvStr := getEnv("APP_ENV", "dev")
	cfg.IsProduction = appEnvStr == PROD_STRING

	// HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	// API credentials are required: every data route sits behind the gate.
	cfg.Username = os.Getenv("API_USERNAME")
	if cfg.Username == "" {
		return nil, fmt.Errorf("API_USERNAME is required")
	}
	cfg.PasswordHash = os.Getenv("API_PASSWORD_HASH")
	if cfg.PasswordHash == "" {
		return nil, fmt.Errorf("API_PASSWORD_HASH is required (generate one with cmd/hashpw)")
	}

	// Spreadsheet mirror settings, all optional. The credentials variable
	// keeps the name the deployment platform already provides.
	cfg.SheetsCredentialsJSON = os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_JSON")
	cfg.SheetID = getEnv("SHEET_ID", "")
	cfg.SheetWorksheet = getEnv("SHEET_WORKSHEET", "Log")

	return cfg, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}
