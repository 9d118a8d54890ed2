package genai

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the settings for a generative outline client.
type Config struct {
	// URL is the chat completions endpoint
	URL string

	// Token is the bearer token sent with each request
	Token string

	// Model names the model to request, empty for the endpoint default
	Model string

	// Temperature is the sampling temperature, 0 for deterministic output
	Temperature float64

	// MaxTokens caps the completion length
	MaxTokens int

	// Timeout bounds each HTTP request
	Timeout time.Duration

	// MaxDocumentSize is the largest document, in bytes, the client
	// will send
	MaxDocumentSize int
}

// DefaultConfig returns a configuration with sensible limits. URL and
// Token have no defaults and must be set before use.
func DefaultConfig() Config {
	return Config{
		Temperature:     0,
		MaxTokens:       4096,
		Timeout:         120 * time.Second,
		MaxDocumentSize: 20 << 20, // 20 MB
	}
}

// ConfigFromEnv builds a configuration from TOCCATA_GENAI_* environment
// variables, reading a .env file first if one exists. Unset variables
// fall back to DefaultConfig values.
//
// Recognized variables:
//
//	TOCCATA_GENAI_URL
//	TOCCATA_GENAI_TOKEN
//	TOCCATA_GENAI_MODEL
//	TOCCATA_GENAI_TEMPERATURE
//	TOCCATA_GENAI_MAX_TOKENS
//	TOCCATA_GENAI_TIMEOUT_SECONDS
//	TOCCATA_GENAI_MAX_DOCUMENT_BYTES
func ConfigFromEnv() Config {
	_ = godotenv.Load()

	defaults := DefaultConfig()
	return Config{
		URL:             getEnv("TOCCATA_GENAI_URL", ""),
		Token:           getEnv("TOCCATA_GENAI_TOKEN", ""),
		Model:           getEnv("TOCCATA_GENAI_MODEL", defaults.Model),
		Temperature:     getEnvFloat("TOCCATA_GENAI_TEMPERATURE", defaults.Temperature),
		MaxTokens:       getEnvInt("TOCCATA_GENAI_MAX_TOKENS", defaults.MaxTokens),
		Timeout:         time.Duration(getEnvInt("TOCCATA_GENAI_TIMEOUT_SECONDS", int(defaults.Timeout/time.Second))) * time.Second,
		MaxDocumentSize: getEnvInt("TOCCATA_GENAI_MAX_DOCUMENT_BYTES", defaults.MaxDocumentSize),
	}
}

// Validate checks that the required settings are present.
func (c Config) Validate() error {
	if c.URL == "" || c.Token == "" {
		return fmt.Errorf("TOCCATA_GENAI_URL and TOCCATA_GENAI_TOKEN are required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
