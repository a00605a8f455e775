package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	NotifyDeliveryDirect = "direct"
	NotifyDeliveryQueue  = "queue"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Auth Config
	JWTSecret string   `env:"JWT_SECRET"`
	APIKeys   []string `env:"API_KEYS"`

	// Hold-to-trigger Config
	HoldThreshold    time.Duration `env:"HOLD_THRESHOLD" envDefault:"3s"`
	HoldTickInterval time.Duration `env:"HOLD_TICK_INTERVAL" envDefault:"100ms"`

	// Geolocation Config
	LocationCacheTTL    time.Duration `env:"LOCATION_CACHE_TTL" envDefault:"5m"`
	LocationFixTimeout  time.Duration `env:"LOCATION_FIX_TIMEOUT" envDefault:"15s"`
	LocationRaceTimeout time.Duration `env:"LOCATION_RACE_TIMEOUT" envDefault:"8s"`
	GeoIPDatabasePath   string        `env:"GEOIP_DB_PATH"`
	GeocoderURL         string        `env:"GEOCODER_URL" envDefault:"https://nominatim.openstreetmap.org"`
	GeocoderUserAgent   string        `env:"GEOCODER_USER_AGENT" envDefault:"panic-alert-system/1.0"`
	GeocoderTimeout     time.Duration `env:"GEOCODER_TIMEOUT" envDefault:"10s"`

	// Telegram Config
	TelegramAPIURL   string        `env:"TELEGRAM_API_URL" envDefault:"https://api.telegram.org"`
	TelegramBotToken string        `env:"TELEGRAM_BOT_TOKEN"`
	TelegramTimeout  time.Duration `env:"TELEGRAM_TIMEOUT" envDefault:"10s"`

	// Notification function Config
	FunctionsURL        string        `env:"FUNCTIONS_URL"`
	FunctionsServiceKey string        `env:"FUNCTIONS_SERVICE_KEY"`
	NotifyDelivery      string        `env:"NOTIFY_DELIVERY" envDefault:"direct"`
	WebhookSecret       string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout      time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries   int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"5"`
	WebhookBaseDelay    time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Лимит отчетов о местоположении на пользователя, формат limiter ("60-M")
	LocationRateLimit string `env:"LOCATION_RATE_LIMIT" envDefault:"60-M"`

	// Inbox Config
	InboxLimit      int `env:"INBOX_LIMIT" envDefault:"50"`
	AdminQueryLimit int `env:"ADMIN_QUERY_LIMIT" envDefault:"200"`

	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		HTTPPort:            getEnv("HTTP_PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:           os.Getenv("REDIS_PASSWORD"),
		RedisDB:             getEnvAsInt("REDIS_DB", 0),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		HoldThreshold:       getEnvAsDuration("HOLD_THRESHOLD", 3*time.Second),
		HoldTickInterval:    getEnvAsDuration("HOLD_TICK_INTERVAL", 100*time.Millisecond),
		LocationCacheTTL:    getEnvAsDuration("LOCATION_CACHE_TTL", 5*time.Minute),
		LocationFixTimeout:  getEnvAsDuration("LOCATION_FIX_TIMEOUT", 15*time.Second),
		LocationRaceTimeout: getEnvAsDuration("LOCATION_RACE_TIMEOUT", 8*time.Second),
		GeoIPDatabasePath:   os.Getenv("GEOIP_DB_PATH"),
		GeocoderURL:         getEnv("GEOCODER_URL", "https://nominatim.openstreetmap.org"),
		GeocoderUserAgent:   getEnv("GEOCODER_USER_AGENT", "panic-alert-system/1.0"),
		GeocoderTimeout:     getEnvAsDuration("GEOCODER_TIMEOUT", 10*time.Second),
		TelegramAPIURL:      getEnv("TELEGRAM_API_URL", "https://api.telegram.org"),
		TelegramBotToken:    os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramTimeout:     getEnvAsDuration("TELEGRAM_TIMEOUT", 10*time.Second),
		FunctionsURL:        os.Getenv("FUNCTIONS_URL"),
		FunctionsServiceKey: os.Getenv("FUNCTIONS_SERVICE_KEY"),
		NotifyDelivery:      getEnv("NOTIFY_DELIVERY", NotifyDeliveryDirect),
		WebhookSecret:       os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:      getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:   getEnvAsInt("WEBHOOK_MAX_RETRIES", 5),
		WebhookBaseDelay:    getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		LocationRateLimit:   getEnv("LOCATION_RATE_LIMIT", "60-M"),
		InboxLimit:          getEnvAsInt("INBOX_LIMIT", 50),
		AdminQueryLimit:     getEnvAsInt("ADMIN_QUERY_LIMIT", 200),
		DefaultLanguage:     getEnv("DEFAULT_LANGUAGE", "en"),
	}

	// Загрузка API ключей
	cfg.APIKeys = splitList(os.Getenv("API_KEYS"))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable is required")
	}
	if c.NotifyDelivery != NotifyDeliveryDirect && c.NotifyDelivery != NotifyDeliveryQueue {
		return fmt.Errorf("NOTIFY_DELIVERY must be %q or %q, got %q", NotifyDeliveryDirect, NotifyDeliveryQueue, c.NotifyDelivery)
	}
	if c.HoldTickInterval <= 0 || c.HoldThreshold < c.HoldTickInterval {
		return fmt.Errorf("HOLD_THRESHOLD must be greater than HOLD_TICK_INTERVAL")
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
