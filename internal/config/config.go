package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultGroqModel is used when GROQ_MODEL is not set.
	DefaultGroqModel = "meta-llama/llama-4-maverick-17b-128e-instruct"

	// GroqBaseURL is the OpenAI-compatible chat completions endpoint.
	GroqBaseURL = "https://api.groq.com/openai/v1"
)

type Config struct {
	Port       string
	DBUrl      string
	GroqAPIKey string
	GroqModel  string
	AppEnv     string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	apiKey, exists := os.LookupEnv("GROQ_API_KEY")
	if !exists || apiKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY is required")
	}

	return &Config{
		Port:       getEnv("PORT", "8080"),
		DBUrl:      getEnv("DB_URL", ""),
		GroqAPIKey: apiKey,
		GroqModel:  getEnv("GROQ_MODEL", DefaultGroqModel),
		AppEnv:     normalizeEnv(getEnv("APP_ENV", "production")),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}
