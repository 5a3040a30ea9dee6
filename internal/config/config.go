package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type Config struct {
	AppPort           string
	DbDriver          string
	DbHost            string
	DbPort            string
	DbUser            string
	DbPassword        string
	DbName            string
	DbParams          string
	SqlitePath        string
	SessionSecret     string
	SessionTTL        time.Duration
	SessionSecure     bool
	LogFile           string
	TranslationFolder string
	TrustedProxies    []string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:           getEnv("APP_PORT", "8080"),
		DbDriver:          getEnv("DB_DRIVER", DriverMySQL),
		DbHost:            getEnv("MYSQL_HOST", "db"),
		DbPort:            getEnv("MYSQL_PORT", "3306"),
		DbUser:            getEnv("MYSQL_USER", "taskmanager"),
		DbPassword:        getEnv("MYSQL_PASSWORD", "taskmanager"),
		DbName:            getEnv("MYSQL_DATABASE", "taskmanager"),
		DbParams:          getEnv("MYSQL_PARAMS", "parseTime=true"),
		SqlitePath:        getEnv("SQLITE_PATH", "taskmanager.db"),
		SessionSecret:     getEnv("SESSION_SECRET", ""),
		SessionTTL:        parseDuration(os.Getenv("SESSION_TTL"), 14*24*time.Hour),
		SessionSecure:     getEnv("SESSION_SECURE", "false") == "true",
		LogFile:           getEnv("LOG_FILE", ""),
		TranslationFolder: getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
		TrustedProxies:    parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		zap.L().Warn("invalid duration, using default", zap.String("value", value), zap.Duration("default", fallback))
		return fallback
	}
	return d
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
