package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	ElevenLabs ElevenLabsConfig
	Gemini     GeminiConfig
	Pipeline   PipelineConfig
	Log        LogConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	AllowedOrigins  []string
	ShutdownTimeout int
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	MaxConns    int
	MinConns    int
	AutoMigrate bool
}

// RedisConfig holds Redis configuration. Redis is optional; when Host is
// empty the transcript cache falls back to an in-process store.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// ElevenLabsConfig holds the conversational voice platform configuration
type ElevenLabsConfig struct {
	APIKey  string
	BaseURL string
}

// GeminiConfig holds the LLM provider configuration
type GeminiConfig struct {
	APIKey          string
	BaseURL         string
	AssessmentModel string
	CoachModel      string
}

// PipelineConfig tunes the transcript polling and generation retry loops.
// Populated via envconfig so every knob maps to one environment variable.
type PipelineConfig struct {
	TranscriptPollMaxMs      int           `envconfig:"TRANSCRIPT_POLL_MAX_MS" default:"60000"`
	TranscriptPollBaseMs     int           `envconfig:"TRANSCRIPT_POLL_BASE_MS" default:"300"`
	TranscriptPollMaxDelayMs int           `envconfig:"TRANSCRIPT_POLL_MAX_DELAY_MS" default:"3000"`
	GenMaxAttempts           int           `envconfig:"GEN_MAX_ATTEMPTS" default:"3"`
	GenInitialDelayMs        int           `envconfig:"GEN_INITIAL_DELAY_MS" default:"500"`
	GenDelayIncrementMs      int           `envconfig:"GEN_DELAY_INCREMENT_MS" default:"500"`
	LLMTransportMaxElapsedMs int           `envconfig:"LLM_TRANSPORT_MAX_ELAPSED_MS" default:"30000"`
	TranscriptCacheTTL       time.Duration `envconfig:"TRANSCRIPT_CACHE_TTL" default:"1h"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			AllowedOrigins:  []string{getEnv("ALLOWED_ORIGINS", "http://localhost:3000")},
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
		},
		Database: DatabaseConfig{
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        getEnv("DB_PORT", "5432"),
			User:        getEnv("DB_USER", "postgres"),
			Password:    getEnv("DB_PASSWORD", "postgres"),
			Name:        getEnv("DB_NAME", "consult_assistant"),
			SSLMode:     getEnv("DB_SSLMODE", "disable"),
			MaxConns:    getEnvAsInt("DB_MAX_CONNS", 25),
			MinConns:    getEnvAsInt("DB_MIN_CONNS", 5),
			AutoMigrate: getEnvAsBool("DB_AUTO_MIGRATE", false),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		ElevenLabs: ElevenLabsConfig{
			APIKey:  getEnv("ELEVENLABS_API_KEY", ""),
			BaseURL: getEnv("ELEVENLABS_API_URL", "https://api.elevenlabs.io"),
		},
		Gemini: GeminiConfig{
			APIKey:          getEnv("GEMINI_API_KEY", ""),
			BaseURL:         getEnv("GEMINI_API_URL", "https://generativelanguage.googleapis.com"),
			AssessmentModel: getEnv("GEMINI_ASSESSMENT_MODEL", "gemini-2.5-pro"),
			CoachModel:      getEnv("GEMINI_COACH_MODEL", "gemini-2.5-flash"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvAsBool("LOG_PRETTY", false),
		},
	}

	if err := envconfig.Process("", &config.Pipeline); err != nil {
		return nil, fmt.Errorf("failed to process pipeline config: %w", err)
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.ElevenLabs.APIKey == "" {
		return fmt.Errorf("ELEVENLABS_API_KEY is required")
	}
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.Pipeline.TranscriptPollBaseMs <= 0 || c.Pipeline.TranscriptPollMaxMs <= 0 {
		return fmt.Errorf("transcript polling budget must be positive")
	}
	return nil
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}
