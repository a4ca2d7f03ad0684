package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.DefaultLocale != "en-GH" {
		t.Errorf("DefaultLocale = %q, want en-GH", cfg.DefaultLocale)
	}
	if !cfg.AutoDetectLocale {
		t.Error("AutoDetectLocale should default to true")
	}
	if cfg.VoiceConfidenceThreshold != 0.75 {
		t.Errorf("VoiceConfidenceThreshold = %v, want 0.75", cfg.VoiceConfidenceThreshold)
	}
	if cfg.HistoryLimit != 50 {
		t.Errorf("HistoryLimit = %d, want 50", cfg.HistoryLimit)
	}
	if cfg.RouterTimeout != 30*time.Second {
		t.Errorf("RouterTimeout = %v, want 30s", cfg.RouterTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("AUTO_DETECT_LOCALE", "false")
	t.Setenv("VOICE_CONFIDENCE_THRESHOLD", "0.8")
	t.Setenv("ROUTER_TIMEOUT", "5s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://hospital.example, https://staging.hospital.example")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.AutoDetectLocale {
		t.Error("AutoDetectLocale should be false")
	}
	if cfg.VoiceConfidenceThreshold != 0.8 {
		t.Errorf("VoiceConfidenceThreshold = %v, want 0.8", cfg.VoiceConfidenceThreshold)
	}
	if cfg.RouterTimeout != 5*time.Second {
		t.Errorf("RouterTimeout = %v, want 5s", cfg.RouterTimeout)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://staging.hospital.example" {
		t.Errorf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("HISTORY_LIMIT", "not-a-number")
	t.Setenv("ROUTER_TIMEOUT", "soon")

	cfg := Load()

	if cfg.HistoryLimit != 50 {
		t.Errorf("HistoryLimit = %d, want default 50", cfg.HistoryLimit)
	}
	if cfg.RouterTimeout != 30*time.Second {
		t.Errorf("RouterTimeout = %v, want default 30s", cfg.RouterTimeout)
	}
}
