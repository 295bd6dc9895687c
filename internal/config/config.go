package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config хранит всю конфигурацию приложения
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	AppEnv    string // Окружение приложения: development, production, etc.
}

// ServerConfig хранит конфигурацию сервера
type ServerConfig struct {
	Host string
	Port string
}

// DatabaseConfig хранит конфигурацию базы данных
type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int           // Максимальное количество открытых соединений
	MaxIdleConns    int           // Максимальное количество неактивных соединений
	ConnMaxLifetime time.Duration // Максимальное время жизни соединения
	ConnMaxIdleTime time.Duration // Максимальное время простоя соединения
}

// JWTConfig хранит параметры подписи и времени жизни токенов.
type JWTConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	Issuer        string
}

// CORSConfig хранит настройки Cross-Origin Resource Sharing.
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           time.Duration
}

// RateLimitConfig хранит настройки ограничения частоты запросов.
// RPS — запросов в секунду на один IP, Burst — допустимый всплеск.
type RateLimitConfig struct {
	Enabled bool
	RPS     int
	Burst   int
}

// DSN возвращает строку подключения к базе данных
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Address возвращает адрес сервера (host:port)
func (s *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

// Load загружает конфигурацию из переменных окружения
func Load() (*Config, error) {
	// Загружаем .env файл (если существует)
	// В production переменные окружения должны быть установлены напрямую
	_ = godotenv.Load()

	cfg := &Config{}

	// Загружаем конфигурацию сервера
	cfg.Server.Host = getEnv("SERVER_HOST", "localhost")
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")

	// Загружаем конфигурацию базы данных
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnv("DB_PORT", "5432")
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "")
	cfg.Database.DBName = getEnv("DB_NAME", "gym_planner")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")

	// Загружаем настройки пула соединений
	cfg.Database.MaxOpenConns = getEnvAsInt("DB_MAX_OPEN_CONNS", 25)
	cfg.Database.MaxIdleConns = getEnvAsInt("DB_MAX_IDLE_CONNS", 5)
	cfg.Database.ConnMaxLifetime = getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute)
	cfg.Database.ConnMaxIdleTime = getEnvAsDuration("DB_CONN_MAX_IDLE_TIME", 10*time.Minute)

	// Загружаем настройки JWT
	cfg.JWT.AccessSecret = getEnv("JWT_ACCESS_SECRET", "")
	cfg.JWT.RefreshSecret = getEnv("JWT_REFRESH_SECRET", "")
	cfg.JWT.AccessTTL = getEnvAsDuration("JWT_ACCESS_TTL", 15*time.Minute)
	cfg.JWT.RefreshTTL = getEnvAsDuration("JWT_REFRESH_TTL", 720*time.Hour)
	cfg.JWT.Issuer = getEnv("JWT_ISSUER", "gym-planner")

	// Загружаем настройки CORS
	cfg.CORS.AllowedOrigins = getEnvAsSlice("CORS_ALLOWED_ORIGINS", nil)
	cfg.CORS.AllowedMethods = getEnvAsSlice("CORS_ALLOWED_METHODS",
		[]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	cfg.CORS.AllowedHeaders = getEnvAsSlice("CORS_ALLOWED_HEADERS",
		[]string{"Origin", "Content-Type", "Authorization"})
	cfg.CORS.ExposedHeaders = getEnvAsSlice("CORS_EXPOSED_HEADERS", nil)
	cfg.CORS.AllowCredentials = getEnvAsBool("CORS_ALLOW_CREDENTIALS", false)
	cfg.CORS.MaxAge = getEnvAsDuration("CORS_MAX_AGE", 12*time.Hour)

	// Загружаем настройки rate limiting
	cfg.RateLimit.Enabled = getEnvAsBool("RATE_LIMIT_ENABLED", true)
	cfg.RateLimit.RPS = getEnvAsInt("RATE_LIMIT_RPS", 20)
	cfg.RateLimit.Burst = getEnvAsInt("RATE_LIMIT_BURST", 40)

	// Загружаем окружение приложения
	cfg.AppEnv = getEnv("APP_ENV", "development")

	// Вне production подставляем дефолтные секреты JWT, чтобы не усложнять
	// локальный запуск. Validate конфигурацию не изменяет.
	if cfg.AppEnv != "production" {
		if cfg.JWT.AccessSecret == "" {
			cfg.JWT.AccessSecret = "dev-access-secret"
		}
		if cfg.JWT.RefreshSecret == "" {
			cfg.JWT.RefreshSecret = "dev-refresh-secret"
		}
	}

	// Валидируем конфигурацию
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("ошибка валидации конфигурации: %w", err)
	}

	return cfg, nil
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	if c.Server.Host == "" {
		return fmt.Errorf("SERVER_HOST не может быть пустым")
	}
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT не может быть пустым")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST не может быть пустым")
	}
	if c.Database.User == "" {
		return fmt.Errorf("DB_USER не может быть пустым")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("DB_NAME не может быть пустым")
	}
	// В production секреты JWT обязательны; вне production их дефолты
	// подставляет Load до вызова валидации.
	if c.AppEnv == "production" {
		if c.JWT.AccessSecret == "" || c.JWT.RefreshSecret == "" {
			return fmt.Errorf("JWT_ACCESS_SECRET и JWT_REFRESH_SECRET обязательны в production")
		}
	}
	if c.RateLimit.RPS <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS должен быть положительным")
	}
	if c.RateLimit.Burst <= 0 {
		return fmt.Errorf("RATE_LIMIT_BURST должен быть положительным")
	}
	return nil
}

// getEnv получает переменную окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt получает переменную окружения как int или возвращает значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

// getEnvAsBool получает переменную окружения как bool или возвращает значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolValue
}

// getEnvAsDuration получает переменную окружения как time.Duration или возвращает значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

// getEnvAsSlice получает переменную окружения как список значений, разделённых запятыми
func getEnvAsSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	if len(result) == 0 {
		return defaultValue
	}
	return result
}
