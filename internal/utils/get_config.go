package utils

import (
	"fmt"
	"os"
	"reflect"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Application
	AppPort  string `yaml:"APP_PORT"`
	AppEnv   string `yaml:"APP_ENV"`
	AppURL   string `yaml:"APP_URL"`
	LogLevel string `yaml:"LOG_LEVEL"`
	LogFile  string `yaml:"LOG_FILE"`

	// Database configuration
	DBDriver   string `yaml:"DB_DRIVER"`
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBSSLMode  string `yaml:"DB_SSLMODE"`
	DBTimeZone string `yaml:"DB_TIMEZONE"`
	SQLitePath string `yaml:"SQLITE_PATH"`

	// Auth
	AuthEnabled      bool   `yaml:"AUTH_ENABLED"`
	AuthUsername     string `yaml:"AUTH_USERNAME"`
	AuthPasswordHash string `yaml:"AUTH_PASSWORD_HASH"`
	JWTSecret        string `yaml:"JWT_SECRET"`
	JWTTTLMinutes    int    `yaml:"JWT_TTL_MINUTES"`

	// Rate limiting
	RateLimitMax           int `yaml:"RATE_LIMIT_MAX"`
	RateLimitWindowSeconds int `yaml:"RATE_LIMIT_WINDOW_SECONDS"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration, used to archive pages fetched for extraction
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// AI extraction
	AIProvider        string `yaml:"AI_PROVIDER"`
	AIMaxTokens       int    `yaml:"AI_MAX_TOKENS"`
	AITimeoutSeconds  int    `yaml:"AI_TIMEOUT_SECONDS"`
	OpenRouterAPIKey  string `yaml:"OPENROUTER_API_KEY"`
	OpenRouterModel   string `yaml:"OPENROUTER_MODEL"`
	OpenRouterBaseURL string `yaml:"OPENROUTER_BASE_URL"`
	AnthropicAPIKey   string `yaml:"ANTHROPIC_API_KEY"`
	AnthropicModel    string `yaml:"ANTHROPIC_MODEL"`

	// Page fetching
	FetchTimeoutSeconds int    `yaml:"FETCH_TIMEOUT_SECONDS"`
	FetchMaxChars       int    `yaml:"FETCH_MAX_CHARS"`
	FetchUserAgent      string `yaml:"FETCH_USER_AGENT"`

	// Extraction cache
	CacheDriver     string `yaml:"CACHE_DRIVER"`
	CacheTTLMinutes int    `yaml:"CACHE_TTL_MINUTES"`
	RedisAddr       string `yaml:"REDIS_ADDR"`
	RedisPassword   string `yaml:"REDIS_PASSWORD"`
	RedisDB         int    `yaml:"REDIS_DB"`
}

func defaultConfig() Config {
	return Config{
		AppPort:                "8080",
		AppEnv:                 "development",
		AppURL:                 "http://localhost:8080",
		LogLevel:               "info",
		LogFile:                "logs/app.log",
		DBDriver:               "postgres",
		DBPort:                 "5432",
		DBSSLMode:              "disable",
		DBTimeZone:             "UTC",
		SQLitePath:             "recipes.db",
		JWTTTLMinutes:          120,
		RateLimitMax:           50,
		RateLimitWindowSeconds: 1,
		SMTPPort:               "587",
		AIProvider:             "openrouter",
		AIMaxTokens:            4096,
		AITimeoutSeconds:       60,
		OpenRouterModel:        "anthropic/claude-3.5-haiku",
		OpenRouterBaseURL:      "https://openrouter.ai/api/v1",
		AnthropicModel:         "claude-3-5-haiku-latest",
		FetchTimeoutSeconds:    15,
		FetchMaxChars:          60000,
		FetchUserAgent:         "recipe-box/1.0 (+https://github.com/recipe-box)",
		CacheDriver:            "memory",
		CacheTTLMinutes:        24 * 60,
	}
}

// LoadConfig reads path (missing files are allowed), loads .env if present and
// lets environment variables named after the yaml keys override both.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	config := defaultConfig()
	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, &config); err != nil {
			return nil, fmt.Errorf("error parsing %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	if err := applyEnv(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

func applyEnv(config *Config) error {
	v := reflect.ValueOf(config).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		key := t.Field(i).Tag.Get("yaml")
		raw, ok := os.LookupEnv(key)
		if key == "" || !ok {
			continue
		}

		field := v.Field(i)
		switch field.Kind() {
		case reflect.String:
			field.SetString(raw)
		case reflect.Int:
			n, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("env %s: %w", key, err)
			}
			field.SetInt(int64(n))
		case reflect.Bool:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return fmt.Errorf("env %s: %w", key, err)
			}
			field.SetBool(b)
		}
	}
	return nil
}
