package config

import (
	"testing"
)

func TestLoad_DefaultsWithEnvCredentials(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir()) // no config file
	t.Setenv("PREPDECK_DIRECTORY_BASE_URL", "https://api.example.com")
	t.Setenv("PREPDECK_DIRECTORY_TOKEN", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Directory.BaseURL != "https://api.example.com" {
		t.Errorf("BaseURL = %q", cfg.Directory.BaseURL)
	}
	if cfg.Directory.TimeoutSeconds != 15 {
		t.Errorf("TimeoutSeconds = %d, want default 15", cfg.Directory.TimeoutSeconds)
	}
	if cfg.Session.DefaultDuration != 45 {
		t.Errorf("DefaultDuration = %d, want 45", cfg.Session.DefaultDuration)
	}
	if cfg.Session.ReviewWindow != 10 || cfg.Session.OverdueRank != 15 {
		t.Errorf("session heuristics = %+v, want tuned defaults", cfg.Session)
	}
}

func TestLoad_MissingCredentialsFailsValidation(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("PREPDECK_DIRECTORY_BASE_URL", "")
	t.Setenv("PREPDECK_DIRECTORY_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected validation error without directory credentials")
	}
}

func TestLoad_InvalidURLFails(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("PREPDECK_DIRECTORY_BASE_URL", "not a url")
	t.Setenv("PREPDECK_DIRECTORY_TOKEN", "secret")

	if _, err := Load(); err == nil {
		t.Fatal("expected validation error for malformed base URL")
	}
}
