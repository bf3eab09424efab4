package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Setenv("SERVER_ADDR", "")
	t.Setenv("SERVER_READ_TIMEOUT_SECONDS", "")
	t.Setenv("SERVER_WRITE_TIMEOUT_SECONDS", "")
	t.Setenv("SERVER_IDLE_TIMEOUT_SECONDS", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("CACHE_TTL_MINUTES", "")
	t.Setenv("RATE_LIMIT_REQUESTS", "")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "")
	t.Setenv("MAX_STUDY_PERIOD_YEARS", "")
}

func TestLoad_Defaults(t *testing.T) {

	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %s", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeoutSeconds != 15 || cfg.Server.WriteTimeoutSeconds != 15 || cfg.Server.IdleTimeoutSeconds != 60 {
		t.Errorf("unexpected server timeout defaults: %+v", cfg.Server)
	}
	if cfg.Redis.Addr != "" {
		t.Errorf("expected no redis by default, got %s", cfg.Redis.Addr)
	}
	if cfg.RateLimit.Requests != 5 || cfg.RateLimit.WindowSeconds != 60 {
		t.Errorf("unexpected rate limit defaults: %+v", cfg.RateLimit)
	}
	if cfg.Analysis.MaxStudyPeriodYears != 600 {
		t.Errorf("expected default max study period 600, got %d", cfg.Analysis.MaxStudyPeriodYears)
	}
}

func TestLoad_FromFile(t *testing.T) {

	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
server:
  addr: ":9090"
  read_timeout_seconds: 5
  write_timeout_seconds: 20
  idle_timeout_seconds: 90
redis:
  addr: "localhost:6379"
  cache_ttl_minutes: 15
rate_limit:
  requests: 10
  window_seconds: 30
analysis:
  max_study_period_years: 120
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Addr != ":9090" {
		t.Errorf("expected :9090, got %s", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeoutSeconds != 5 || cfg.Server.WriteTimeoutSeconds != 20 || cfg.Server.IdleTimeoutSeconds != 90 {
		t.Errorf("unexpected server timeouts: %+v", cfg.Server)
	}
	if cfg.Redis.Addr != "localhost:6379" || cfg.Redis.CacheTTLMinutes != 15 {
		t.Errorf("unexpected redis config: %+v", cfg.Redis)
	}
	if cfg.RateLimit.Requests != 10 || cfg.RateLimit.WindowSeconds != 30 {
		t.Errorf("unexpected rate limit config: %+v", cfg.RateLimit)
	}
	if cfg.Analysis.MaxStudyPeriodYears != 120 {
		t.Errorf("expected 120, got %d", cfg.Analysis.MaxStudyPeriodYears)
	}
}

func TestLoad_EnvOverride(t *testing.T) {

	clearEnv(t)
	t.Setenv("SERVER_ADDR", ":7070")
	t.Setenv("SERVER_READ_TIMEOUT_SECONDS", "30")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "120")
	t.Setenv("MAX_STUDY_PERIOD_YEARS", "200")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Addr != ":7070" {
		t.Errorf("expected env override :7070, got %s", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeoutSeconds != 30 {
		t.Errorf("expected env override 30, got %d", cfg.Server.ReadTimeoutSeconds)
	}
	if cfg.RateLimit.WindowSeconds != 120 {
		t.Errorf("expected env override 120, got %d", cfg.RateLimit.WindowSeconds)
	}
	if cfg.Analysis.MaxStudyPeriodYears != 200 {
		t.Errorf("expected env override 200, got %d", cfg.Analysis.MaxStudyPeriodYears)
	}
}
