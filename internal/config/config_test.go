package config

import (
	"testing"
)

func TestLoad_RequiresAProviderKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when no provider API key is set")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.OpenAIModel != "gpt-4" {
		t.Errorf("expected default model gpt-4, got %s", cfg.OpenAIModel)
	}
	if cfg.Temperature != 0.1 {
		t.Errorf("expected default temperature 0.1, got %v", cfg.Temperature)
	}
}

func TestLoad_AutoPrefersGemini(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GEMINI_API_KEY", "g-test")
	t.Setenv("LLM_PROVIDER", "auto")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LLMProvider != ProviderGemini {
		t.Errorf("expected gemini, got %s", cfg.LLMProvider)
	}
}

func TestLoad_ExplicitProviderNeedsMatchingKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("LLM_PROVIDER", "gemini")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for gemini provider without GEMINI_API_KEY")
	}
}

func TestLoad_UnknownProvider(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("LLM_PROVIDER", "llama-at-home")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestConfig_IsDev(t *testing.T) {
	c := &Config{Env: "development"}
	if !c.IsDev() {
		t.Error("expected IsDev() to return true for development")
	}

	c.Env = "production"
	if c.IsDev() {
		t.Error("expected IsDev() to return false for production")
	}
}
