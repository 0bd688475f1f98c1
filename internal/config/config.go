package config

import (
	"fmt"
	"net/netip"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL      string `env:"DATABASE_URL"`
	DatabaseMaxConns int    `env:"DATABASE_MAX_CONNS" envDefault:"10"`
	MigrationsPath   string `env:"MIGRATIONS_PATH" envDefault:"file://migrations"`
	HTTPPort         string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string `env:"LOG_FORMAT" envDefault:"json"`

	// Redis
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Подписчики ленты держат отдельные соединения pub/sub
	RedisPoolSize int `env:"REDIS_POOL_SIZE" envDefault:"10"`

	// Вебхук внешним службам реагирования
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`

	// Адреса или подсети прокси, которым доверяются заголовки X-Forwarded-*
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	// Геолокация
	GoogleMapsAPIKey         string  `env:"GOOGLE_MAPS_API_KEY"`
	GeolocationRatePerSecond float64 `env:"GEOLOCATION_RATE_PER_SECOND" envDefault:"10"`

	// Лента
	FeedMaxSubscribers    int           `env:"FEED_MAX_SUBSCRIBERS" envDefault:"1000"`
	FeedHeartbeatInterval time.Duration `env:"FEED_HEARTBEAT_INTERVAL" envDefault:"30s"`
	FeedBufferSize        int           `env:"FEED_BUFFER_SIZE" envDefault:"64"`

	WizardTTL        time.Duration `env:"WIZARD_TTL" envDefault:"30m"`
	IncidentCacheTTL time.Duration `env:"INCIDENT_CACHE_TTL" envDefault:"5m"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:              os.Getenv("DATABASE_URL"),
		DatabaseMaxConns:         getEnvAsInt("DATABASE_MAX_CONNS", 10),
		MigrationsPath:           getEnv("MIGRATIONS_PATH", "file://migrations"),
		HTTPPort:                 getEnv("HTTP_PORT", "8080"),
		LogLevel:                 getEnv("LOG_LEVEL", "info"),
		LogFormat:                getEnv("LOG_FORMAT", "json"),
		RedisAddr:                getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:                os.Getenv("REDIS_PASSWORD"),
		RedisDB:                  getEnvAsInt("REDIS_DB", 0),
		RedisPoolSize:            getEnvAsInt("REDIS_POOL_SIZE", 10),
		WebhookURL:               os.Getenv("WEBHOOK_URL"),
		WebhookSecret:            os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:           getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:        getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:         getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		GoogleMapsAPIKey:         os.Getenv("GOOGLE_MAPS_API_KEY"),
		GeolocationRatePerSecond: getEnvAsFloat("GEOLOCATION_RATE_PER_SECOND", 10),
		FeedMaxSubscribers:       getEnvAsInt("FEED_MAX_SUBSCRIBERS", 1000),
		FeedHeartbeatInterval:    getEnvAsDuration("FEED_HEARTBEAT_INTERVAL", 30*time.Second),
		FeedBufferSize:           getEnvAsInt("FEED_BUFFER_SIZE", 64),
		WizardTTL:                getEnvAsDuration("WIZARD_TTL", 30*time.Minute),
		IncidentCacheTTL:         getEnvAsDuration("INCIDENT_CACHE_TTL", 5*time.Minute),
	}

	cfg.APIKeys = splitList(os.Getenv("API_KEYS"))
	cfg.TrustedProxies = splitList(os.Getenv("TRUSTED_PROXIES"))
	if _, err := ParseProxies(cfg.TrustedProxies); err != nil {
		return nil, err
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.WebhookMaxRetries < 1 {
		cfg.WebhookMaxRetries = 1
	}

	return cfg, nil
}

// ParseProxies разбирает список адресов и подсетей доверенных прокси
func ParseProxies(raw []string) ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(raw))
	for _, item := range raw {
		if strings.Contains(item, "/") {
			prefix, err := netip.ParsePrefix(item)
			if err != nil {
				return nil, fmt.Errorf("invalid TRUSTED_PROXIES entry %q: %w", item, err)
			}
			prefixes = append(prefixes, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(item)
		if err != nil {
			return nil, fmt.Errorf("invalid TRUSTED_PROXIES entry %q: %w", item, err)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}

// splitList разбирает список через запятую, пустые элементы отбрасываются
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
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

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
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
