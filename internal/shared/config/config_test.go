package config

import (
	"testing"
	"time"
)

func TestNormalizeEnv(t *testing.T) {
	cases := map[string]string{
		"prod":       "production",
		"Production": "production",
		"staging":    "staging",
		"local":      "local",
		"dev":        "dev",
		"":           "dev",
		"garbage":    "dev",
	}
	for raw, want := range cases {
		if got := normalizeEnv(raw); got != want {
			t.Fatalf("normalizeEnv(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestGetEnvDurationSeconds(t *testing.T) {
	t.Setenv("WATCHDOG_TIMEOUT", "90")
	if got := getEnvDuration("WATCHDOG_TIMEOUT", time.Minute); got != 90*time.Second {
		t.Fatalf("expected 90s, got %v", got)
	}

	t.Setenv("WATCHDOG_TIMEOUT", "2m")
	if got := getEnvDuration("WATCHDOG_TIMEOUT", time.Minute); got != 2*time.Minute {
		t.Fatalf("expected 2m, got %v", got)
	}

	t.Setenv("WATCHDOG_TIMEOUT", "not-a-duration")
	if got := getEnvDuration("WATCHDOG_TIMEOUT", time.Minute); got != time.Minute {
		t.Fatalf("expected default on invalid value, got %v", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "dev")
	t.Setenv("PORT", "")
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("DEFAULT_SERVER", "")

	cfg := Load()
	if cfg.Port != "8503" {
		t.Fatalf("expected default port 8503, got %q", cfg.Port)
	}
	if cfg.LLMProvider != "gemini" {
		t.Fatalf("expected default provider gemini, got %q", cfg.LLMProvider)
	}
	if cfg.DefaultServer != "server2" {
		t.Fatalf("expected default server2, got %q", cfg.DefaultServer)
	}
	if cfg.MaxRestarts != 5 {
		t.Fatalf("expected 5 max restarts, got %d", cfg.MaxRestarts)
	}
}
