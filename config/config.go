package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	RedisPassword   string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB  int    `mapstructure:"REDIS_SESSION_DB"`
	RedisCacheDB    int    `mapstructure:"REDIS_CACHE_DB"`
	RedisReminderDB int    `mapstructure:"REDIS_REMINDER_DB"`

	// LLM configuration.
	GeminiAPIKey      string `mapstructure:"GEMINI_API_KEY"`
	LLMTimeoutSeconds int    `mapstructure:"LLM_TIMEOUT_SECONDS"`

	// Qdrant (document retrieval) configuration.
	QdrantURL        string `mapstructure:"QDRANT_URL"`
	QdrantAPIKey     string `mapstructure:"QDRANT_API_KEY"`
	QdrantCollection string `mapstructure:"QDRANT_COLLECTION"`
	RagTopK          int    `mapstructure:"RAG_TOP_K"`
	ChunkSize        int    `mapstructure:"CHUNK_SIZE"`
	ChunkOverlap     int    `mapstructure:"CHUNK_OVERLAP"`

	// Email (SMTP) configuration.
	SMTPHost       string `mapstructure:"SMTP_HOST"`
	SMTPPort       int    `mapstructure:"SMTP_PORT"`
	SenderEmail    string `mapstructure:"SENDER_EMAIL"`
	SenderPassword string `mapstructure:"SENDER_PASSWORD"`

	// Booking conversation configuration.
	ServiceTypes      []string `mapstructure:"SERVICE_TYPES"`
	MaxMemoryMessages int      `mapstructure:"MAX_MEMORY_MESSAGES"`
	MinPhoneDigits    int      `mapstructure:"MIN_PHONE_DIGITS"`
	DateLayout        string   `mapstructure:"DATE_LAYOUT"`
	TimeLayout        string   `mapstructure:"TIME_LAYOUT"`
	SessionTTLMinutes int      `mapstructure:"SESSION_TTL_MINUTES"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_CACHE_DB", 1)
	viper.SetDefault("REDIS_REMINDER_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("LLM_TIMEOUT_SECONDS", 5)
	viper.SetDefault("QDRANT_URL", "")
	viper.SetDefault("QDRANT_API_KEY", "")
	viper.SetDefault("QDRANT_COLLECTION", "service_documents")
	viper.SetDefault("RAG_TOP_K", 4)
	viper.SetDefault("CHUNK_SIZE", 500)
	viper.SetDefault("CHUNK_OVERLAP", 50)
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SENDER_EMAIL", "")
	viper.SetDefault("SENDER_PASSWORD", "")
	viper.SetDefault("SERVICE_TYPES", []string{
		"Doctor Appointment",
		"Salon Service",
		"Hotel Reservation",
		"Event Booking",
		"Fitness Class",
		"Restaurant Reservation",
		"Travel Booking",
		"Spa Treatment",
		"Consultation",
	})
	viper.SetDefault("MAX_MEMORY_MESSAGES", 25)
	viper.SetDefault("MIN_PHONE_DIGITS", 10)
	viper.SetDefault("DATE_LAYOUT", "2006-01-02")
	viper.SetDefault("TIME_LAYOUT", "15:04")
	viper.SetDefault("SESSION_TTL_MINUTES", 30)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
