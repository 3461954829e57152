package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"rescue-site-server/internal/utils"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
)

// Поддерживаемые реализации клиента модели
const (
	AIClientOpenAI = "openai"
	AIClientOllama = "ollama"
	AIClientGemini = "gemini"
)

var (
	// ErrMissingAIAPIKey - ключ API модели не найден ни в секрете, ни в окружении.
	ErrMissingAIAPIKey = errors.New("AI API key is not configured: set AI_API_KEY (or OPENAI_API_KEY) or provide the ai_api_key secret")
	// ErrMissingJWTSecret - авторизация включена, но секрет подписи не задан.
	ErrMissingJWTSecret = errors.New("JWT secret is not configured: set JWT_SECRET, provide the jwt_secret secret or disable AUTH_ENABLED")
	// ErrUnsupportedAIClient - неизвестное значение AI_CLIENT_TYPE.
	ErrUnsupportedAIClient = errors.New("unsupported AI client type")
)

// Config - конфигурация сервиса генерации сайтов и CLI.
type Config struct {
	Env         string `envconfig:"ENV" default:"production"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogEncoding string `envconfig:"LOG_ENCODING" default:"json"`
	ServerPort  string `envconfig:"SERVER_PORT" default:"8080"`

	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:""`
	RateLimitPerMinute int    `envconfig:"RATE_LIMIT_PER_MINUTE" default:"10"`
	AuthEnabled        bool   `envconfig:"AUTH_ENABLED" default:"true"`
	// Секрет без envconfig тега
	JWTSecret string `ignored:"true"`

	// Настройки модели
	AIClientType  string        `envconfig:"AI_CLIENT_TYPE" default:"openai"`
	AIBaseURL     string        `envconfig:"AI_BASE_URL" default:"https://api.openai.com/v1"`
	AIModel       string        `envconfig:"AI_MODEL" default:"gpt-4o-mini"`
	AITimeout     time.Duration `envconfig:"AI_TIMEOUT" default:"120s"`
	AIMaxRetries  int           `envconfig:"AI_MAX_RETRIES" default:"2"`
	AITemperature float32       `envconfig:"AI_TEMPERATURE" default:"0.7"`
	AIAPIKey      string        `ignored:"true"`

	// Блокировка генерации на тенанта
	GenerationLockTTL time.Duration `envconfig:"GENERATION_LOCK_TTL" default:"15m"`

	// PostgreSQL
	DBHost        string        `envconfig:"DB_HOST" default:"localhost"`
	DBPort        string        `envconfig:"DB_PORT" default:"5432"`
	DBUser        string        `envconfig:"DB_USER" default:"postgres"`
	DBName        string        `envconfig:"DB_NAME" default:"rescue_sites"`
	DBSSLMode     string        `envconfig:"DB_SSL_MODE" default:"disable"`
	DBMaxConns    int           `envconfig:"DB_MAX_CONNECTIONS" default:"10"`
	DBIdleTimeout time.Duration `envconfig:"DB_IDLE_TIMEOUT" default:"5m"`
	DBPassword    string        `ignored:"true"`

	// Redis опционален: без него используется локальная блокировка и in-memory rate limit
	RedisAddr     string `envconfig:"REDIS_ADDR" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
	RedisPassword string `ignored:"true"`

	// RabbitMQ опционален: без него события не публикуются
	RabbitMQURL        string `envconfig:"RABBITMQ_URL" default:""`
	SiteEventsExchange string `envconfig:"SITE_EVENTS_EXCHANGE" default:"site_events"`
}

// Load читает .env (если файл есть), переменные окружения и секреты.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	cfg.AIAPIKey = utils.ReadSecretOrEnv("ai_api_key", "AI_API_KEY", "OPENAI_API_KEY")
	cfg.DBPassword = utils.ReadSecretOrEnv("db_password", "DB_PASSWORD")
	cfg.RedisPassword = utils.ReadSecretOrEnv("redis_password", "REDIS_PASSWORD")
	cfg.JWTSecret = utils.ReadSecretOrEnv("jwt_secret", "JWT_SECRET")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет согласованность настроек.
func (c *Config) Validate() error {
	c.AIClientType = strings.ToLower(strings.TrimSpace(c.AIClientType))
	switch c.AIClientType {
	case AIClientOpenAI, AIClientGemini:
		if c.AIAPIKey == "" {
			return ErrMissingAIAPIKey
		}
	case AIClientOllama:
		// локальной модели ключ не нужен
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedAIClient, c.AIClientType)
	}
	if c.AIMaxRetries < 0 {
		return fmt.Errorf("AI_MAX_RETRIES must be >= 0, got %d", c.AIMaxRetries)
	}
	if c.AITemperature < 0 || c.AITemperature > 2 {
		return fmt.Errorf("AI_TEMPERATURE must be within [0, 2], got %v", c.AITemperature)
	}
	if c.AuthEnabled && c.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	if c.GenerationLockTTL <= 0 {
		return fmt.Errorf("GENERATION_LOCK_TTL must be positive, got %v", c.GenerationLockTTL)
	}
	return nil
}

// GetDSN возвращает строку подключения к PostgreSQL.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// GetAllowedOrigins разбирает CORS_ALLOWED_ORIGINS (через запятую).
func (c *Config) GetAllowedOrigins() []string {
	if c.CORSAllowedOrigins == "" {
		return nil
	}
	var origins []string
	for _, origin := range strings.Split(c.CORSAllowedOrigins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// LogFields возвращает поля для логирования конфигурации без секретов.
func (c *Config) LogFields() []zap.Field {
	return []zap.Field{
		zap.String("env", c.Env),
		zap.String("server_port", c.ServerPort),
		zap.String("ai_client_type", c.AIClientType),
		zap.String("ai_base_url", c.AIBaseURL),
		zap.String("ai_model", c.AIModel),
		zap.Duration("ai_timeout", c.AITimeout),
		zap.Int("ai_max_retries", c.AIMaxRetries),
		zap.Bool("ai_api_key_loaded", c.AIAPIKey != ""),
		zap.String("db_dsn", c.maskedDSN()),
		zap.String("redis_addr", c.RedisAddr),
		zap.Bool("rabbitmq_enabled", c.RabbitMQURL != ""),
		zap.Bool("auth_enabled", c.AuthEnabled),
		zap.Duration("generation_lock_ttl", c.GenerationLockTTL),
	}
}

func (c *Config) maskedDSN() string {
	return fmt.Sprintf("postgres://%s:********@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}
