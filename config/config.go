package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// MountID is the reserved identifier of the host document element the page attaches to
	MountID = "root"
)

type Config struct {
	ServerPort  string
	Environment string
	AppURL      string
	// StaticDir serves assets from disk (and watches them) instead of the embedded copy
	StaticDir string
	// StrictRender double-renders each page and warns when the two outputs differ
	StrictRender bool
	// Export
	ExportDir string
	// Snapshot (headless Chrome)
	ChromePath   string
	SnapshotPath string
	// Cloudflare R2 Storage
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicURL       string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	environment := getEnv("ENVIRONMENT", "development")

	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		Environment:       environment,
		StrictRender:      getEnvBool("STRICT_RENDER", environment == "development"),
		AppURL:            strings.TrimSuffix(getEnv("APP_URL", "http://localhost:8080"), "/"),
		StaticDir:         getEnv("STATIC_DIR", ""),
		ExportDir:         getEnv("EXPORT_DIR", "dist"),
		ChromePath:        getEnv("CHROME_PATH", ""),
		SnapshotPath:      getEnv("SNAPSHOT_PATH", "hopebridge.pdf"),
		R2AccountID:       getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
		R2SecretAccessKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2BucketName:      getEnv("R2_BUCKET_NAME", ""),
		R2PublicURL:       getEnv("R2_PUBLIC_URL", ""),
	}
}

// IsDevelopment reports whether asset watching is enabled
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// HasR2 returns true when every R2 credential needed to publish is present
func (c *Config) HasR2() bool {
	return c.R2AccountID != "" && c.R2AccessKeyID != "" && c.R2SecretAccessKey != "" && c.R2BucketName != ""
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}
