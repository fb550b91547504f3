package config

import (
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SMS_BASE_URL", "")
	t.Setenv("SMS_TIMEOUT", "")

	cfg := Load(zap.NewNop())

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port, got %q", cfg.Port)
	}
	if cfg.DatabaseURL != defaultDatabaseURL {
		t.Fatalf("expected default database url, got %q", cfg.DatabaseURL)
	}
	if cfg.SMS.Timeout != defaultSMSTimeout {
		t.Fatalf("expected default sms timeout, got %s", cfg.SMS.Timeout)
	}
	if len(cfg.CORSOrigins) == 0 {
		t.Fatalf("expected default cors origins")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SMS_BASE_URL", "https://gateway.example/v1/send-sms")
	t.Setenv("SMS_KEY", "key-1")
	t.Setenv("SMS_SECRET", "secret-1")
	t.Setenv("SMS_CLIENT_ID", "client-1")
	t.Setenv("SMS_SERVICE_ID", "service-1")
	t.Setenv("SMS_TIMEOUT", "3s")
	t.Setenv("CORS_ORIGINS", "https://shop.example, https://admin.example")

	cfg := Load(zap.NewNop())

	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.SMS.BaseURL != "https://gateway.example/v1/send-sms" {
		t.Fatalf("unexpected sms base url %q", cfg.SMS.BaseURL)
	}
	if cfg.SMS.Timeout != 3*time.Second {
		t.Fatalf("expected 3s timeout, got %s", cfg.SMS.Timeout)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://admin.example" {
		t.Fatalf("unexpected cors origins %v", cfg.CORSOrigins)
	}
}

func TestLoad_InvalidSMSTimeoutFallsBack(t *testing.T) {
	t.Setenv("SMS_TIMEOUT", "not-a-duration")

	cfg := Load(zap.NewNop())

	if cfg.SMS.Timeout != defaultSMSTimeout {
		t.Fatalf("expected fallback timeout, got %s", cfg.SMS.Timeout)
	}
}
