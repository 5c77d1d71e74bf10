package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("CFG_VALUE", "custom")
	if got := getEnv("CFG_VALUE", "default"); got != "custom" {
		t.Fatalf("getEnv returned %q, want custom", got)
	}

	// Empty environment value should fall back to default
	t.Setenv("CFG_EMPTY", "")
	if got := getEnv("CFG_EMPTY", "fallback"); got != "fallback" {
		t.Fatalf("getEnv returned %q, want fallback", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("CFG_INT", "45")
	if got := getEnvInt("CFG_INT", 30); got != 45 {
		t.Fatalf("getEnvInt returned %d, want 45", got)
	}

	// Garbage and non-positive values fall back to the default
	t.Setenv("CFG_INT", "not-a-number")
	if got := getEnvInt("CFG_INT", 30); got != 30 {
		t.Fatalf("getEnvInt returned %d, want 30", got)
	}
	t.Setenv("CFG_INT", "-1")
	if got := getEnvInt("CFG_INT", 30); got != 30 {
		t.Fatalf("getEnvInt returned %d, want 30", got)
	}
}

func TestLoad(t *testing.T) {
	// Ensure defaults when env vars are empty.
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SEED", "")
	t.Setenv("SESSION_TTL_HOURS", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_ADVICE_MODEL", "")
	t.Setenv("ADVICE_TIMEOUT_SECONDS", "")

	cfg := Load()
	if cfg.Port != "8080" || cfg.DatabaseURL == "" || cfg.LogLevel != "info" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.Seed {
		t.Fatalf("expected Seed default false")
	}
	if cfg.SessionTTLHours != 168 {
		t.Fatalf("SessionTTLHours = %d, want 168", cfg.SessionTTLHours)
	}
	if cfg.AdviceTimeoutSecs != 30 {
		t.Fatalf("AdviceTimeoutSecs = %d, want 30", cfg.AdviceTimeoutSecs)
	}
	if cfg.OpenAIAdviceModel != "gpt-4o-mini" {
		t.Fatalf("OpenAIAdviceModel = %q, want gpt-4o-mini", cfg.OpenAIAdviceModel)
	}

	// Custom values override defaults
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SEED", "true")
	t.Setenv("SESSION_TTL_HOURS", "24")
	t.Setenv("OPENAI_API_KEY", "key")
	t.Setenv("OPENAI_ADVICE_MODEL", "model")
	t.Setenv("ADVICE_TIMEOUT_SECONDS", "10")

	cfg = Load()
	if cfg.Port != "9090" || cfg.DatabaseURL != "postgres://example" || cfg.LogLevel != "debug" || !cfg.Seed {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.OpenAIAPIKey != "key" || cfg.OpenAIAdviceModel != "model" {
		t.Fatalf("openai env overrides missing: %+v", cfg)
	}
	if cfg.SessionTTLHours != 24 || cfg.AdviceTimeoutSecs != 10 {
		t.Fatalf("numeric overrides missing: %+v", cfg)
	}
}
