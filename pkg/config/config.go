package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Export   ExportConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Database        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Enabled      bool
	Host         string
	Port         string
	Password     string
	DB           int
	TTL          time.Duration
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type NATSConfig struct {
	Enabled bool
	URL     string
}

// ExportConfig настраивает export sink и опциональный S3 архив выгрузок
type ExportConfig struct {
	ArchiveEnabled  bool
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UsePathStyle    bool
	KeyPrefix       string
	PresignedTTL    time.Duration
}

type SecurityConfig struct {
	AllowedOrigins  []string
	AuthEnabled     bool
	AuthToken       string
	WriteRPS        float64
	WriteBurst      int
	RateLimitWrites bool
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cacheTTL, err := time.ParseDuration(getEnv("REDIS_CACHE_TTL", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_CACHE_TTL: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	presignedTTL, err := time.ParseDuration(getEnv("EXPORT_S3_PRESIGNED_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid EXPORT_S3_PRESIGNED_TTL: %w", err)
	}

	writeRPS, err := strconv.ParseFloat(getEnv("WRITE_RATE_LIMIT_RPS", "5"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid WRITE_RATE_LIMIT_RPS: %w", err)
	}

	writeBurst, err := strconv.Atoi(getEnv("WRITE_RATE_LIMIT_BURST", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid WRITE_RATE_LIMIT_BURST: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			Database:        getEnv("DB_NAME", "scrum_health"),
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 5 * time.Minute,
			ConnMaxIdleTime: 10 * time.Minute,
		},
		Redis: RedisConfig{
			Enabled:      getEnvBool("REDIS_ENABLED", false),
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           redisDB,
			TTL:          cacheTTL,
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		NATS: NATSConfig{
			Enabled: getEnvBool("NATS_ENABLED", false),
			URL:     getEnv("NATS_URL", "nats://localhost:4222"),
		},
		Export: ExportConfig{
			ArchiveEnabled:  getEnvBool("EXPORT_S3_ARCHIVE_ENABLED", false),
			Bucket:          getEnv("EXPORT_S3_BUCKET", ""),
			Region:          getEnv("EXPORT_S3_REGION", "ru-central1"),
			Endpoint:        getEnv("EXPORT_S3_ENDPOINT", "https://storage.yandexcloud.net"),
			AccessKeyID:     getEnv("EXPORT_S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("EXPORT_S3_SECRET_ACCESS_KEY", ""),
			UsePathStyle:    getEnvBool("EXPORT_S3_USE_PATH_STYLE", true),
			KeyPrefix:       getEnv("EXPORT_S3_KEY_PREFIX", "exports"),
			PresignedTTL:    presignedTTL,
		},
		Security: SecurityConfig{
			AllowedOrigins:  splitCSV(getEnv("ALLOWED_ORIGINS", "http://localhost:8080,http://127.0.0.1:8080")),
			AuthEnabled:     getEnvBool("AUTH_ENABLED", false),
			AuthToken:       getEnv("AUTH_BEARER_TOKEN", ""),
			WriteRPS:        writeRPS,
			WriteBurst:      writeBurst,
			RateLimitWrites: getEnvBool("WRITE_RATE_LIMIT_ENABLED", true),
		},
	}

	if cfg.Security.AuthEnabled && cfg.Security.AuthToken == "" {
		return nil, fmt.Errorf("AUTH_BEARER_TOKEN is required when AUTH_ENABLED=true")
	}

	if cfg.Export.ArchiveEnabled && cfg.Export.Bucket == "" {
		return nil, fmt.Errorf("EXPORT_S3_BUCKET is required when EXPORT_S3_ARCHIVE_ENABLED=true")
	}

	return cfg, nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.Database)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return parsed
}

func splitCSV(raw string) []string {
	items := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
