package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	// CatalogSource selects the backing store for the live catalog branch:
	// "store" (default) or "fixture" for demo installs without a database.
	CatalogSource string

	StorageURL    string // Base URL of the object storage API
	StorageKey    string // Service key for object storage
	StorageBucket string // Bucket holding course images

	SendgridKey string
	EmailSender string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		CatalogSource: getEnv("CATALOG_SOURCE", "store"),

		StorageURL:    getEnv("STORAGE_URL", "http://localhost:54321"),
		StorageKey:    getEnv("STORAGE_SERVICE_KEY", ""),
		StorageBucket: getEnv("STORAGE_BUCKET", "course-images"),

		SendgridKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender: getEnv("EMAIL_SENDER", "noreply@topclass.local"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.StorageKey == "" {
		log.Println("Warning: STORAGE_SERVICE_KEY is empty. Image uploads will be rejected by the object store.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
