package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Database.Name != "meeting_summarizer" {
		t.Errorf("unexpected default database name %s", cfg.Database.Name)
	}
	if cfg.Analysis.MinTranscriptLength != 50 {
		t.Errorf("expected min transcript length 50, got %d", cfg.Analysis.MinTranscriptLength)
	}
	if cfg.Analysis.MaxTranscriptLength != 50000 {
		t.Errorf("expected max transcript length 50000, got %d", cfg.Analysis.MaxTranscriptLength)
	}
	if cfg.Analysis.CacheTTL != time.Hour {
		t.Errorf("expected cache TTL 1h, got %s", cfg.Analysis.CacheTTL)
	}
	if cfg.Worker.Count != 2 {
		t.Errorf("expected 2 workers, got %d", cfg.Worker.Count)
	}
	if cfg.Redis.Enabled {
		t.Error("redis must be disabled by default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ANALYSIS_MIN_TRANSCRIPT_LENGTH", "10")
	t.Setenv("ANALYSIS_PROCESSING_DELAY", "2s")
	t.Setenv("WORKER_POLL_INTERVAL", "1s")
	t.Setenv("REDIS_ENABLED", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Server.Port)
	}
	if cfg.Analysis.MinTranscriptLength != 10 {
		t.Errorf("expected min transcript length 10, got %d", cfg.Analysis.MinTranscriptLength)
	}
	if cfg.Analysis.ProcessingDelay != 2*time.Second {
		t.Errorf("expected processing delay 2s, got %s", cfg.Analysis.ProcessingDelay)
	}
	if cfg.Worker.PollInterval != time.Second {
		t.Errorf("expected poll interval 1s, got %s", cfg.Worker.PollInterval)
	}
	if !cfg.Redis.Enabled {
		t.Error("expected redis to be enabled")
	}
}

func TestValidateRejectsBadBounds(t *testing.T) {
	t.Setenv("ANALYSIS_MIN_TRANSCRIPT_LENGTH", "100")
	t.Setenv("ANALYSIS_MAX_TRANSCRIPT_LENGTH", "50")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when max length is below min length")
	}
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "db",
			Port:     "5433",
			User:     "app",
			Password: "secret",
			Name:     "meetings",
			SSLMode:  "disable",
		},
	}

	want := "host=db port=5433 user=app password=secret dbname=meetings sslmode=disable"
	if got := cfg.GetDatabaseDSN(); got != want {
		t.Errorf("GetDatabaseDSN() = %q, want %q", got, want)
	}
}

func TestGetRedisAddr(t *testing.T) {
	cfg := &Config{Redis: RedisConfig{Host: "redis", Port: "6380"}}
	if got := cfg.GetRedisAddr(); got != "redis:6380" {
		t.Errorf("GetRedisAddr() = %q", got)
	}
}
