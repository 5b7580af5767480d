package config

import (
	"os"
	"testing"
	"time"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_STRING", "value")
	if got := getEnv("TEST_STRING", "default"); got != "value" {
		t.Fatalf("expected value, got %q", got)
	}
	if got := getEnv("MISSING_STRING", "default"); got != "default" {
		t.Fatalf("expected default, got %q", got)
	}

	t.Setenv("TEST_DURATION", "30")
	if got := getDurationEnv("TEST_DURATION", 5*time.Second); got != 30*time.Second {
		t.Fatalf("expected 30s, got %v", got)
	}
	t.Setenv("TEST_DURATION", "invalid")
	if got := getDurationEnv("TEST_DURATION", 5*time.Second); got != 5*time.Second {
		t.Fatalf("expected default duration, got %v", got)
	}
	t.Setenv("TEST_DURATION", "-3")
	if got := getDurationEnv("TEST_DURATION", 5*time.Second); got != 5*time.Second {
		t.Fatalf("expected default duration for negative value, got %v", got)
	}
}

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MYSQL_DSN", "user:pass@tcp(localhost:3306)/intent")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("MONGO_DB", "intent")
	t.Setenv("MODEL_URL", "http://localhost:9000/")
}

func chdirTemp(t *testing.T) {
	t.Helper()

	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd failed: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(origDir) })
}

func TestLoadRequiresConnectionParameters(t *testing.T) {
	chdirTemp(t)

	for _, key := range []string{"MYSQL_DSN", "MONGO_URI", "MONGO_DB", "MODEL_URL"} {
		setRequiredEnv(t)
		t.Setenv(key, "")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error when %s is missing", key)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)
	setRequiredEnv(t)
	t.Setenv("ENV", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Env != EnvProd {
		t.Fatalf("expected prod env by default, got %q", cfg.Env)
	}
	if !cfg.AuthEnabled() {
		t.Fatal("expected auth enabled in prod")
	}
	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.HTTPPort)
	}
	if cfg.ModelURL != "http://localhost:9000" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.ModelURL)
	}
	if cfg.InferenceTimeout != 10*time.Second {
		t.Fatalf("expected default inference timeout, got %v", cfg.InferenceTimeout)
	}
	if cfg.PredictionLogCollection() != "PROD_intent_logs" {
		t.Fatalf("unexpected collection name %q", cfg.PredictionLogCollection())
	}
}

func TestLoadDevModeDisablesAuth(t *testing.T) {
	chdirTemp(t)
	setRequiredEnv(t)
	t.Setenv("ENV", "DEV")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Env != EnvDev {
		t.Fatalf("expected dev env, got %q", cfg.Env)
	}
	if cfg.AuthEnabled() {
		t.Fatal("expected auth disabled in dev")
	}
	if cfg.PredictionLogCollection() != "DEV_intent_logs" {
		t.Fatalf("unexpected collection name %q", cfg.PredictionLogCollection())
	}
}

func TestLoadRejectsUnknownEnv(t *testing.T) {
	chdirTemp(t)
	setRequiredEnv(t)
	t.Setenv("ENV", "staging")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown ENV")
	}
}
