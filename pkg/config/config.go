package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Summarizer providers.
const (
	ProviderNone   = "none"
	ProviderGroq   = "groq"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Transcription providers.
const (
	TranscriberNone       = "none"
	TranscriberAssemblyAI = "assemblyai"
	TranscriberWhisper    = "whisper"
)

// Config holds application configuration
type Config struct {
	Server        ServerConfig
	Redis         RedisConfig
	Storage       StorageConfig
	Summarizer    SummarizerConfig
	Transcription TranscriptionConfig
	Groq          GroqConfig
	OpenAI        OpenAIConfig
	Gemini        GeminiConfig
	Assembly      AssemblyAIConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
	BodyLimit       string   `envconfig:"BODY_LIMIT" default:"25M"`
}

// RedisConfig holds Redis configuration. When disabled, summaries are cached
// in process memory.
type RedisConfig struct {
	Enabled  bool          `envconfig:"REDIS_ENABLED" default:"false"`
	Host     string        `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string        `envconfig:"REDIS_PORT" default:"6379"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTL time.Duration `envconfig:"SUMMARY_CACHE_TTL" default:"24h"`
}

// StorageConfig holds storage configuration
type StorageConfig struct {
	Enabled         bool   `envconfig:"STORAGE_ENABLED" default:"false"`
	Endpoint        string `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	BucketName      string `envconfig:"STORAGE_BUCKET" default:"meeting-summaries"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
}

// SummarizerConfig selects the remote summarizer and bounds its input.
type SummarizerConfig struct {
	Provider      string        `envconfig:"SUMMARIZER_PROVIDER" default:"none"`
	Timeout       time.Duration `envconfig:"SUMMARIZER_TIMEOUT" default:"30s"`
	MaxInputChars int           `envconfig:"SUMMARIZER_MAX_INPUT_CHARS" default:"12000"`
	LexiconPath   string        `envconfig:"SUMMARIZER_LEXICON_PATH"`
}

// TranscriptionConfig selects the speech-to-text backend.
type TranscriptionConfig struct {
	Provider      string        `envconfig:"TRANSCRIPTION_PROVIDER" default:"none"`
	Timeout       time.Duration `envconfig:"TRANSCRIPTION_TIMEOUT" default:"5m"`
	MaxConcurrent int           `envconfig:"TRANSCRIPTION_MAX_CONCURRENT" default:"2"`
}

// GroqConfig holds Groq API configuration
type GroqConfig struct {
	APIKey  string `envconfig:"GROQ_API_KEY"`
	BaseURL string `envconfig:"GROQ_API_URL" default:"https://api.groq.com"`
	Model   string `envconfig:"GROQ_MODEL" default:"llama-3.3-70b-versatile"`
}

// OpenAIConfig holds OpenAI chat and Whisper configuration
type OpenAIConfig struct {
	APIKey       string `envconfig:"OPENAI_API_KEY"`
	BaseURL      string `envconfig:"OPENAI_BASE_URL" default:"https://api.openai.com/v1"`
	Model        string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	WhisperModel string `envconfig:"OPENAI_WHISPER_MODEL" default:"whisper-1"`
}

// GeminiConfig holds Gemini API configuration
type GeminiConfig struct {
	APIKey  string `envconfig:"GEMINI_API_KEY"`
	BaseURL string `envconfig:"GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com/v1beta"`
	Model   string `envconfig:"GEMINI_MODEL" default:"gemini-1.5-flash"`
}

// AssemblyAIConfig holds AssemblyAI configuration
type AssemblyAIConfig struct {
	APIKey       string `envconfig:"ASSEMBLYAI_API_KEY"`
	LanguageCode string `envconfig:"ASSEMBLYAI_LANGUAGE" default:"ko"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{}
	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration. Missing API keys are not an error
// here: the summarizer reports them per request and falls back locally.
func (c *Config) Validate() error {
	switch c.Summarizer.Provider {
	case ProviderNone, ProviderGroq, ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("SUMMARIZER_PROVIDER must be one of none, groq, openai, gemini (got %q)", c.Summarizer.Provider)
	}
	switch c.Transcription.Provider {
	case TranscriberNone, TranscriberAssemblyAI, TranscriberWhisper:
	default:
		return fmt.Errorf("TRANSCRIPTION_PROVIDER must be one of none, assemblyai, whisper (got %q)", c.Transcription.Provider)
	}
	if c.Summarizer.Timeout <= 0 {
		return fmt.Errorf("SUMMARIZER_TIMEOUT must be positive")
	}
	if c.Summarizer.MaxInputChars <= 0 {
		return fmt.Errorf("SUMMARIZER_MAX_INPUT_CHARS must be positive")
	}
	if c.Transcription.MaxConcurrent <= 0 {
		return fmt.Errorf("TRANSCRIPTION_MAX_CONCURRENT must be positive")
	}
	if c.Storage.Enabled && c.Storage.BucketName == "" {
		return fmt.Errorf("STORAGE_BUCKET is required when storage is enabled")
	}
	return nil
}

// RedisAddr returns host:port for the Redis client.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
