package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Session   SessionConfig
	Pipeline  PipelineConfig
	Microsoft MicrosoftConfig
	SMTP      SMTPConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
	Driver     string // "postgres" or "memory"
}

type SessionConfig struct {
	TTL         time.Duration
	StateSecret string // signs the OAuth state parameter
}

type PipelineConfig struct {
	ProcessingDelay     time.Duration
	AssistantReplyDelay time.Duration
}

type MicrosoftConfig struct {
	TenantID     string
	ClientID     string
	ClientSecret string
	EmailDomain  string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			RedisURL:           getEnv("REDIS_URL", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
			Driver:     getEnv("STORAGE_DRIVER", "postgres"),
		},
		Session: SessionConfig{
			TTL:         getEnvAsDuration("SESSION_TTL", 24*time.Hour),
			StateSecret: getEnv("OAUTH_STATE_SECRET", "change-me-in-production"),
		},
		Pipeline: PipelineConfig{
			ProcessingDelay:     getEnvAsDuration("PROCESSING_DELAY", 5*time.Second),
			AssistantReplyDelay: getEnvAsDuration("ASSISTANT_REPLY_DELAY", time.Second),
		},
		Microsoft: MicrosoftConfig{
			TenantID:     getEnv("AZURE_TENANT_ID", ""),
			ClientID:     getEnv("AZURE_CLIENT_ID", ""),
			ClientSecret: getEnv("AZURE_CLIENT_SECRET", ""),
			EmailDomain:  getEnv("CORPORATE_EMAIL_DOMAIN", "@bpn.rw"),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "Document Intelligence"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
