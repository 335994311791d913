package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "STORE_PATH", "PDF_ENGINE", "LLM_PROVIDER",
		"LLM_TIMEOUT_SECONDS", "SUMMARY_SENTENCES", "ADMIN_USERNAME",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "results.json", cfg.StorePath)
	assert.Equal(t, "native", cfg.PDFEngine)
	assert.Equal(t, "none", cfg.LLMProvider)
	assert.Empty(t, cfg.LLMAPIKey)
	assert.Equal(t, 60*time.Second, cfg.LLMTimeout)
	assert.Equal(t, 3, cfg.SummarySentences)
	assert.Equal(t, "hradmin", cfg.AdminUsername)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PDF_ENGINE", "docconv")
	t.Setenv("LLM_PROVIDER", "groq")
	t.Setenv("GROQ_API_KEY", "test-key")
	t.Setenv("LLM_TIMEOUT_SECONDS", "5")

	cfg := LoadConfig()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "docconv", cfg.PDFEngine)
	assert.Equal(t, "groq", cfg.LLMProvider)
	assert.Equal(t, "test-key", cfg.LLMAPIKey)
	assert.Equal(t, 5*time.Second, cfg.LLMTimeout)
}

func TestLoadConfigAPIKeyFollowsProvider(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "openai-key")
	t.Setenv("GROQ_API_KEY", "groq-key")

	cfg := LoadConfig()
	assert.Equal(t, "openai-key", cfg.LLMAPIKey)
}

func TestLoadConfigBadInteger(t *testing.T) {
	t.Setenv("SUMMARY_SENTENCES", "many")
	cfg := LoadConfig()
	assert.Equal(t, 3, cfg.SummarySentences)
}
