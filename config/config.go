package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultDatabaseDriver = "sqlite"
	DefaultSQLiteURL      = "file:bgt-backend.db?_pragma=foreign_keys(1)"
	DefaultServerPort     = 5000
	DefaultAllowedOrigin  = "http://localhost:8080"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	DatabaseDriver     string
	DatabaseURL        string
	ServerPort         int
	CORSAllowedOrigins []string
	LogLevel           slog.Level

	Storage StorageConfig
}

// StorageConfig - параметры S3-совместимого хранилища для выгрузки снимков.
// Для Cloudflare R2 достаточно указать R2AccountID вместо Endpoint.
type StorageConfig struct {
	R2AccountID     string
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	PublicBaseURL   string
}

// Configured сообщает, заданы ли бакет и ключи доступа.
func (s StorageConfig) Configured() bool {
	return s.BucketName != "" && s.AccessKeyID != "" && s.SecretAccessKey != ""
}

// Load загружает конфигурацию из переменных окружения.
// Опционально подгружает .env файл (полезно для локальной разработки).
func Load() (*Config, error) {
	// Загружаем .env файл, если он есть. Ошибку не считаем фатальной.
	_ = godotenv.Load()

	return FromEnv(os.Getenv)
}

// FromEnv собирает конфигурацию из произвольного источника переменных.
func FromEnv(getenv func(string) string) (*Config, error) {
	driver := strings.ToLower(strings.TrimSpace(getenv("DATABASE_DRIVER")))
	if driver == "" {
		driver = DefaultDatabaseDriver
	}

	dbURL := getenv("DATABASE_URL")
	switch driver {
	case "sqlite":
		if dbURL == "" {
			dbURL = DefaultSQLiteURL
		}
	case "postgres":
		if dbURL == "" {
			return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
		}
	default:
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q (expected sqlite or postgres)", driver)
	}

	portStr := getenv("SERVER_PORT")
	if portStr == "" {
		portStr = strconv.Itoa(DefaultServerPort)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	level, err := parseLogLevel(getenv("LOG_LEVEL"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DatabaseDriver:     driver,
		DatabaseURL:        dbURL,
		ServerPort:         port,
		CORSAllowedOrigins: splitList(getenv("CORS_ALLOWED_ORIGINS"), DefaultAllowedOrigin),
		LogLevel:           level,
		Storage: StorageConfig{
			R2AccountID:     getenv("R2_ACCOUNT_ID"),
			Endpoint:        getenv("S3_ENDPOINT"),
			Region:          getenv("S3_REGION"),
			AccessKeyID:     getenv("S3_ACCESS_KEY_ID"),
			SecretAccessKey: getenv("S3_SECRET_ACCESS_KEY"),
			BucketName:      getenv("S3_BUCKET"),
			PublicBaseURL:   getenv("S3_PUBLIC_BASE_URL"),
		},
	}

	return cfg, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q: %w", s, err)
	}
	return level, nil
}

func splitList(s, fallback string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{fallback}
	}
	return out
}
