package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shenikar/emergency_locator/internal/geo"
)

// Значения по умолчанию для пространственных запросов
const (
	DefaultNearestLimit = 5
	MaxNearestLimit     = 100
	DefaultRadiusKm     = 5.0
	MaxRadiusKm         = 500.0
)

// Настройки геокодирования по умолчанию (Ирландия)
const (
	DefaultCountryName       = "Ireland"
	DefaultCountryCode       = "ie"
	DefaultOpenCageURL       = "https://api.opencagedata.com/geocode/v1/json"
	DefaultNominatimURL      = "https://nominatim.openstreetmap.org"
	DefaultGeocoderUserAgent = "EmergencyServicesLocator/1.0"
	DefaultGeocoderTimeout   = 5 * time.Second

	DefaultBBoxMinLat = 51.2
	DefaultBBoxMinLng = -11.0
	DefaultBBoxMaxLat = 55.5
	DefaultBBoxMaxLng = -5.3
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

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Spatial query Config
	DefaultNearestLimit int     `env:"DEFAULT_NEAREST_LIMIT" envDefault:"5"`
	MaxNearestLimit     int     `env:"MAX_NEAREST_LIMIT" envDefault:"100"`
	DefaultRadiusKm     float64 `env:"DEFAULT_RADIUS_KM" envDefault:"5"`
	MaxRadiusKm         float64 `env:"MAX_RADIUS_KM" envDefault:"500"`

	// Geocoding Config
	OpenCageAPIKey    string        `env:"OPENCAGE_API_KEY"`
	OpenCageURL       string        `env:"OPENCAGE_URL"`
	NominatimURL      string        `env:"NOMINATIM_URL"`
	GeocoderUserAgent string        `env:"GEOCODER_USER_AGENT"`
	GeocoderTimeout   time.Duration `env:"GEOCODER_TIMEOUT" envDefault:"5s"`
	CountryName       string        `env:"GEO_COUNTRY_NAME" envDefault:"Ireland"`
	CountryCode       string        `env:"GEO_COUNTRY_CODE" envDefault:"ie"`
	BoundingBox       geo.BoundingBox
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),

		DefaultNearestLimit: getEnvAsInt("DEFAULT_NEAREST_LIMIT", DefaultNearestLimit),
		MaxNearestLimit:     getEnvAsInt("MAX_NEAREST_LIMIT", MaxNearestLimit),
		DefaultRadiusKm:     getEnvAsFloat("DEFAULT_RADIUS_KM", DefaultRadiusKm),
		MaxRadiusKm:         getEnvAsFloat("MAX_RADIUS_KM", MaxRadiusKm),

		OpenCageAPIKey:    os.Getenv("OPENCAGE_API_KEY"),
		OpenCageURL:       getEnv("OPENCAGE_URL", DefaultOpenCageURL),
		NominatimURL:      getEnv("NOMINATIM_URL", DefaultNominatimURL),
		GeocoderUserAgent: getEnv("GEOCODER_USER_AGENT", DefaultGeocoderUserAgent),
		GeocoderTimeout:   getEnvAsDuration("GEOCODER_TIMEOUT", DefaultGeocoderTimeout),
		CountryName:       getEnv("GEO_COUNTRY_NAME", DefaultCountryName),
		CountryCode:       getEnv("GEO_COUNTRY_CODE", DefaultCountryCode),
		BoundingBox: geo.BoundingBox{
			MinLat: getEnvAsFloat("GEO_BBOX_MIN_LAT", DefaultBBoxMinLat),
			MinLng: getEnvAsFloat("GEO_BBOX_MIN_LNG", DefaultBBoxMinLng),
			MaxLat: getEnvAsFloat("GEO_BBOX_MAX_LAT", DefaultBBoxMaxLat),
			MaxLng: getEnvAsFloat("GEO_BBOX_MAX_LNG", DefaultBBoxMaxLng),
		},
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate проверяет согласованность числовых настроек
func (c *Config) validate() error {
	if c.DefaultNearestLimit < 1 || c.MaxNearestLimit < c.DefaultNearestLimit {
		return fmt.Errorf("invalid nearest limits: default=%d max=%d", c.DefaultNearestLimit, c.MaxNearestLimit)
	}
	if c.DefaultRadiusKm <= 0 || c.MaxRadiusKm < c.DefaultRadiusKm {
		return fmt.Errorf("invalid radius limits: default=%v max=%v", c.DefaultRadiusKm, c.MaxRadiusKm)
	}
	box := c.BoundingBox
	if box.MinLat >= box.MaxLat || box.MinLng >= box.MaxLng {
		return fmt.Errorf("invalid geocoding bounding box %s", box)
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

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
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
