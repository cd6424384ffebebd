package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
)

var (
	config     *Config
	configOnce sync.Once
)

// Config stores all configuration of the application
type Config struct {
	// Environment type
	EnvType string

	// Server
	ServerPort string

	// MongoDB
	MongoURI    string
	MongoDBName string

	// JWT Authentication
	JWTSecretKey string

	// Admin hesabı (ortam değişkenlerinden okunur, veritabanında tutulmaz)
	AdminEmail        string
	AdminPassword     string // düz metin karşılaştırma (geliştirme)
	AdminPasswordHash string // bcrypt hash, doluysa öncelikli

	// Blob depolama (S3 uyumlu)
	S3Bucket    string
	S3Region    string
	S3Endpoint  string // MinIO vb. için özel endpoint, boşsa AWS varsayılanı
	S3PublicURL string // yüklenen dosyaların servis edildiği taban URL
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		EnvType: getEnv("ENV_TYPE", "development"),

		// Server config
		ServerPort: getEnv("SERVER_PORT", "8080"),

		// MongoDB config
		MongoURI:    getEnv("MONGODB_URI", ""),
		MongoDBName: getEnv("MONGODB_DB", "hmz-solutions"),

		// JWT config
		JWTSecretKey: getEnv("JWT_SECRET", ""),

		// Admin config
		AdminEmail:        getEnv("ADMIN_EMAIL", ""),
		AdminPassword:     getEnv("ADMIN_PASSWORD", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),

		// Blob storage config
		S3Bucket:    getEnv("S3_BUCKET", ""),
		S3Region:    getEnv("S3_REGION", "eu-central-1"),
		S3Endpoint:  getEnv("S3_ENDPOINT", ""),
		S3PublicURL: getEnv("S3_PUBLIC_URL", ""),
	}
}

// GetConfig returns the application configuration as a singleton
func GetConfig() *Config {
	configOnce.Do(func() {
		config = LoadConfig()
	})
	return config
}

// Validate zorunlu yapılandırma değerlerini denetler
func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("MONGODB_URI tanımlı değil")
	}
	if c.JWTSecretKey == "" {
		return fmt.Errorf("JWT_SECRET tanımlı değil")
	}
	return nil
}

// Helper function to get environment variable with default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as integer with default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as boolean with default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
