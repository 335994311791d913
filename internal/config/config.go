package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"resume-extractor/internal/logger"
)

type Config struct {
	Port       string
	StorePath  string // JSON results file
	UploadsDir string
	PDFEngine  string // "native" (pure Go) or "docconv"

	// LLM configuration for the generative summary path
	LLMProvider string // "openai", "groq", "ollama", "gemini" or "none"
	LLMModel    string
	LLMAPIKey   string
	LLMTimeout  time.Duration

	SummarySentences int

	LogLevel  string
	LogFormat string

	// Static credentials for the optional basic-auth gate
	AdminUsername string
	AdminPassword string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		// Fall back to a parent-directory .env, then plain env vars.
		if err := godotenv.Load("../../.env"); err != nil {
			logger.Debug().Msg("no .env file found, using environment variables")
		}
	}

	llmProvider := getenv("LLM_PROVIDER", "none")
	llmAPIKey := ""
	switch llmProvider {
	case "openai":
		llmAPIKey = os.Getenv("OPENAI_API_KEY")
	case "groq":
		llmAPIKey = os.Getenv("GROQ_API_KEY")
	case "gemini":
		llmAPIKey = os.Getenv("GEMINI_API_KEY")
	}

	return &Config{
		Port:             getenv("PORT", "8080"),
		StorePath:        getenv("STORE_PATH", "results.json"),
		UploadsDir:       getenv("UPLOADS_DIR", "./uploads"),
		PDFEngine:        getenv("PDF_ENGINE", "native"),
		LLMProvider:      llmProvider,
		LLMModel:         getenv("LLM_MODEL", "gpt-4o-mini"),
		LLMAPIKey:        llmAPIKey,
		LLMTimeout:       time.Duration(getenvInt("LLM_TIMEOUT_SECONDS", 60)) * time.Second,
		SummarySentences: getenvInt("SUMMARY_SENTENCES", 3),
		LogLevel:         getenv("LOG_LEVEL", "info"),
		LogFormat:        getenv("LOG_FORMAT", "json"),
		AdminUsername:    getenv("ADMIN_USERNAME", "hradmin"),
		AdminPassword:    getenv("ADMIN_PASSWORD", "hradmin123"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logger.Warn().Str("key", key).Str("value", v).Msg("invalid integer in environment, using default")
		return fallback
	}
	return n
}
