package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends accepted by STORAGE_BACKEND.
const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
	StorageGCS      = "gcs"
	StorageDynamoDB = "dynamodb"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	StorageBackend string
	FileStoreDir   string
	DatabaseURL    string
	SQLitePath     string

	GCSBucket          string
	GCSPrefix          string
	GCSCredentialsFile string

	DynamoDBTable    string
	AWSRegion        string
	DynamoDBEndpoint string

	GeminiAPIKey    string
	ExtractionModel string
	AdviceModel     string

	DefaultLanguage   string
	UndatedGroupLabel string
	Currency          string

	RateLimit          string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("STORAGE_BACKEND", StorageFile)
	viper.SetDefault("FILE_STORE_DIR", "data")
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("SQLITE_PATH", "fince.db")
	viper.SetDefault("GCS_BUCKET", "")
	viper.SetDefault("GCS_PREFIX", "ledgers/")
	viper.SetDefault("GCS_CREDENTIALS_FILE", "")
	viper.SetDefault("DYNAMODB_TABLE", "fince-ledgers")
	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("DYNAMODB_ENDPOINT", "")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("EXTRACTION_MODEL", "gemini-2.5-flash")
	viper.SetDefault("ADVICE_MODEL", "gemini-2.5-flash")
	viper.SetDefault("DEFAULT_LANGUAGE", "es")
	viper.SetDefault("UNDATED_GROUP_LABEL", "Older")
	viper.SetDefault("CURRENCY", "USD")
	viper.SetDefault("RATE_LIMIT", "60-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:               viper.GetString("PORT"),
		IsProduction:       viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:      viper.GetBool("ENABLE_DB_CHECK"),
		StorageBackend:     strings.ToLower(strings.TrimSpace(viper.GetString("STORAGE_BACKEND"))),
		FileStoreDir:       viper.GetString("FILE_STORE_DIR"),
		DatabaseURL:        viper.GetString("PGSQL_URL"),
		SQLitePath:         viper.GetString("SQLITE_PATH"),
		GCSBucket:          viper.GetString("GCS_BUCKET"),
		GCSPrefix:          viper.GetString("GCS_PREFIX"),
		GCSCredentialsFile: viper.GetString("GCS_CREDENTIALS_FILE"),
		DynamoDBTable:      viper.GetString("DYNAMODB_TABLE"),
		AWSRegion:          viper.GetString("AWS_REGION"),
		DynamoDBEndpoint:   viper.GetString("DYNAMODB_ENDPOINT"),
		GeminiAPIKey:       viper.GetString("GEMINI_API_KEY"),
		ExtractionModel:    viper.GetString("EXTRACTION_MODEL"),
		AdviceModel:        viper.GetString("ADVICE_MODEL"),
		DefaultLanguage:    viper.GetString("DEFAULT_LANGUAGE"),
		UndatedGroupLabel:  viper.GetString("UNDATED_GROUP_LABEL"),
		Currency:           strings.ToUpper(viper.GetString("CURRENCY")),
		RateLimit:          viper.GetString("RATE_LIMIT"),
		CORSAllowedOrigins: splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set. Extraction and advice will return empty results.")
	}

	if err := cfg.validateStorage(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validateStorage() error {
	switch c.StorageBackend {
	case StorageMemory, StorageFile, StorageSQLite, StorageDynamoDB:
		return nil
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("PGSQL_URL is required for storage backend %q", c.StorageBackend)
		}
		return nil
	case StorageGCS:
		if c.GCSBucket == "" {
			return fmt.Errorf("GCS_BUCKET is required for storage backend %q", c.StorageBackend)
		}
		return nil
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
