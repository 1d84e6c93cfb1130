package config

import (
	"fmt"
	"os"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Config struct {
	Addr string

	// DatabaseURL selects the postgres store when set; otherwise the
	// server falls back to a local sqlite file at SQLitePath.
	DatabaseURL string
	SQLitePath  string

	Provider string

	GeminiAPIKey string
	GeminiModel  string

	OpenAIBaseURL string
	OpenAIAPIKey  string
	OpenAIModel   string
}

// FromEnv builds the configuration from environment variables and validates
// that the selected model provider is fully configured.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Addr:          getenv("ADDR", ":8100"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SQLitePath:    getenv("SQLITE_PATH", "gemflow.db"),
		Provider:      getenv("LLM_PROVIDER", ProviderGemini),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getenv("GEMINI_MODEL", "gemini-2.5-flash"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   os.Getenv("OPENAI_MODEL"),
	}

	switch cfg.Provider {
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("config: GEMINI_API_KEY is required when LLM_PROVIDER=%s", ProviderGemini)
		}
	case ProviderOpenAI:
		if cfg.OpenAIBaseURL == "" || cfg.OpenAIModel == "" {
			return nil, fmt.Errorf("config: OPENAI_BASE_URL and OPENAI_MODEL are required when LLM_PROVIDER=%s", ProviderOpenAI)
		}
	default:
		return nil, fmt.Errorf("config: unknown LLM_PROVIDER %q", cfg.Provider)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
