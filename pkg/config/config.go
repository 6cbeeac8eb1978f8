package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	OTEL     OTELConfig
	Triage   TriageConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host        string
	Port        int
	Environment string
	LogLevel    string

	// AllowedOrigins feeds CORS; empty allows any origin.
	AllowedOrigins []string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
	LogsEnabled    bool
}

// TriageConfig holds symptom analysis configuration
type TriageConfig struct {
	// ModelSeed seeds classifier initialization when HasModelSeed is set.
	ModelSeed    uint64
	HasModelSeed bool

	// ModelParametersPath loads classifier parameters from a file and takes
	// precedence over ModelSeed.
	ModelParametersPath string

	// FeeSchedulePath optionally points at a JSON file of fee overrides.
	FeeSchedulePath string

	MaxSymptomTextLength int
	WarmOnStart          bool

	CacheEnabled   bool
	ResultCacheTTL time.Duration

	EscalationsEnabled bool
	ReviewQueueEnabled bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	triage := TriageConfig{
		ModelParametersPath:  getEnv("MODEL_PARAMETERS_PATH", ""),
		FeeSchedulePath:      getEnv("FEE_SCHEDULE_PATH", ""),
		MaxSymptomTextLength: getEnvAsInt("MAX_SYMPTOM_TEXT_LENGTH", 2000),
		WarmOnStart:          getEnvAsBool("MODEL_WARM_ON_START", true),
		CacheEnabled:         getEnvAsBool("ANALYSIS_CACHE_ENABLED", true),
		ResultCacheTTL:       getEnvAsDuration("ANALYSIS_CACHE_TTL", 15*time.Minute),
		EscalationsEnabled:   getEnvAsBool("ESCALATIONS_ENABLED", true),
		ReviewQueueEnabled:   getEnvAsBool("REVIEW_QUEUE_ENABLED", false),
	}

	if value := os.Getenv("MODEL_SEED"); value != "" {
		seed, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid MODEL_SEED %q: %w", value, err)
		}
		triage.ModelSeed = seed
		triage.HasModelSeed = true
	}

	if triage.MaxSymptomTextLength <= 0 {
		return nil, fmt.Errorf("MAX_SYMPTOM_TEXT_LENGTH must be positive, got %d", triage.MaxSymptomTextLength)
	}

	return &Config{
		Server: ServerConfig{
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			Environment:    getEnv("ENV", "development"),
			LogLevel:       getEnv("LOG_LEVEL", "info"),
			AllowedOrigins: getEnvAsSlice("ALLOWED_ORIGINS"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "telecure_triage"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		OTEL: OTELConfig{
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "telecure-triage"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			Endpoint:       getEnv("OTEL_ENDPOINT", ""),
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
			LogsEnabled:    getEnvAsBool("OTEL_LOGS_ENABLED", false),
		},
		Triage: triage,
	}, nil
}

// DatabaseDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
