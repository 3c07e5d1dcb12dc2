package config

import (
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"DOCUMENT_PATH", "FALLBACK_PATH", "SAVE_TO_DB",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASS", "DB_NAME", "SSL_MODE",
		"TARGET_COLOR", "DEMO_SEED", "BIT_WIDTH", "FIB_TERMS",
	}
	for _, key := range keys {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Document.Path != "bincom_colors.html" {
		t.Errorf("Document.Path = %s", cfg.Document.Path)
	}
	if cfg.Document.FallbackPath != "bincom_colors_sample.html" {
		t.Errorf("Document.FallbackPath = %s", cfg.Document.FallbackPath)
	}
	if cfg.Persistence.Enabled {
		t.Error("persistence should default to disabled")
	}
	if cfg.Persistence.Host != "localhost" || cfg.Persistence.Port != 5432 {
		t.Errorf("unexpected DB defaults: %s:%d", cfg.Persistence.Host, cfg.Persistence.Port)
	}
	if cfg.Analysis.TargetColor != "RED" {
		t.Errorf("Analysis.TargetColor = %s", cfg.Analysis.TargetColor)
	}
	if cfg.Analysis.BitWidth != 4 || cfg.Analysis.FibonacciTerms != 50 {
		t.Errorf("unexpected demo defaults: width=%d terms=%d",
			cfg.Analysis.BitWidth, cfg.Analysis.FibonacciTerms)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DOCUMENT_PATH", "colors.html")
	t.Setenv("SAVE_TO_DB", "true")
	t.Setenv("DB_NAME", "huestat")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("TARGET_COLOR", "BLUE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Document.Path != "colors.html" {
		t.Errorf("Document.Path = %s", cfg.Document.Path)
	}
	if !cfg.Persistence.Enabled {
		t.Error("persistence should be enabled")
	}
	if cfg.Persistence.Port != 5433 {
		t.Errorf("Persistence.Port = %d", cfg.Persistence.Port)
	}
	if cfg.Analysis.TargetColor != "BLUE" {
		t.Errorf("Analysis.TargetColor = %s", cfg.Analysis.TargetColor)
	}
}

func TestLoad_PersistenceRequiresName(t *testing.T) {
	clearEnv(t)
	t.Setenv("SAVE_TO_DB", "true")

	if _, err := Load(); err == nil {
		t.Error("expected validation error when SAVE_TO_DB is set without DB_NAME")
	}
}

func TestPersistenceConfig_DSN(t *testing.T) {
	p := PersistenceConfig{
		Host: "db.internal", Port: 5433,
		User: "analyst", Password: "secret",
		Name: "huestat", SSLMode: "require",
	}

	want := "host=db.internal port=5433 user=analyst password=secret dbname=huestat sslmode=require"
	if got := p.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
