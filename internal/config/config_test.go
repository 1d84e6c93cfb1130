package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("ADDR", "")
	t.Setenv("SQLITE_PATH", "")
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("GEMINI_API_KEY", "k")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8100", cfg.Addr)
	assert.Equal(t, "gemflow.db", cfg.SQLitePath)
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
}

func TestFromEnvMissingGeminiKey(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("GEMINI_API_KEY", "")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestFromEnvOpenAIProvider(t *testing.T) {
	t.Setenv("LLM_PROVIDER", ProviderOpenAI)
	t.Setenv("OPENAI_BASE_URL", "http://localhost:11434/v1/")
	t.Setenv("OPENAI_MODEL", "llama3.1:8b")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, cfg.Provider)
}

func TestFromEnvOpenAIIncomplete(t *testing.T) {
	t.Setenv("LLM_PROVIDER", ProviderOpenAI)
	t.Setenv("OPENAI_BASE_URL", "")
	t.Setenv("OPENAI_MODEL", "")

	_, err := FromEnv()
	require.Error(t, err)
}

func TestFromEnvUnknownProvider(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "bedrock")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bedrock")
}
