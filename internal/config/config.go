package config

import (
	"fmt"     // For DSN formatting
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"time"    // For pool lifetimes

	"github.com/joho/godotenv" // For loading .env files
)

// Image store backends
const (
	ImageStoreDisk  = "disk"  // Local directory
	ImageStoreMinio = "minio" // S3-compatible bucket
)

// Config holds the application configuration
type Config struct {
	AppPort        string        // Application port
	DBUser         string        // Database user
	DBPassword     string        // Database password
	DBHost         string        // Database host
	DBPort         string        // Database port
	DBName         string        // Database name
	DBMaxOpenConns int           // Pool size
	DBMaxIdleConns int           // Idle connections kept in the pool
	DBConnLifetime time.Duration // Maximum lifetime of a pooled connection
	ImageStore     string        // Image store backend: disk or minio
	ImageDir       string        // Directory for uploaded images (disk backend)
	MinioEndpoint  string        // MinIO endpoint, host:port or URL
	MinioAccessKey string        // MinIO access key
	MinioSecretKey string        // MinIO secret key
	MinioBucket    string        // MinIO bucket for images
	LogLevel       string        // Logrus level name
	IsProd         bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	return &Config{
		AppPort:        getEnv("APP_PORT", getEnv("PORT", "3000")),
		DBUser:         getEnv("DB_USER", "root"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "3306"),
		DBName:         getEnv("DB_NAME", "reciplette"),
		DBMaxOpenConns: getInt("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns: getInt("DB_MAX_IDLE_CONNS", 5),
		DBConnLifetime: getDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		ImageStore:     getEnv("IMAGE_STORE", ImageStoreDisk),
		ImageDir:       getEnv("IMAGE_DIR", "public/images"),
		MinioEndpoint:  os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey: os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:    os.Getenv("MINIO_BUCKET"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		IsProd:         os.Getenv("IS_PROD") == "true", // Is production environment
	}
}

// DSN returns the MySQL data source name for this configuration
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// getEnv returns the variable or def when it is unset or empty
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return def // Unset or invalid
	}
	return v
}

func getDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}
