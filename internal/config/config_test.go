package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	cfg := Load()
	if cfg.Port != "8080" || cfg.LoginDelay != 500*time.Millisecond || cfg.DB.Enabled() {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.Queue.Name != "booking.events" || cfg.Queue.Enabled {
		t.Errorf("queue defaults = %+v", cfg.Queue)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("LOGIN_DELAY", "0s")
	t.Setenv("DB_HOST", "db")
	t.Setenv("AMQP_URL", "amqp://broker/")
	t.Setenv("FIXTURE_ENROLL", "off")
	cfg := Load()
	if cfg.LoginDelay != 0 || !cfg.DB.Enabled() || cfg.Queue.URL != "amqp://broker/" || cfg.FixtureFill {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestRateLimitClamping(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want RateLimitConfig
	}{
		{
			name: "burst and refill every",
			env:  map[string]string{"RATE_LIMIT_BURST": "5", "RATE_LIMIT_REFILL_EVERY": "2s"},
			want: RateLimitConfig{Capacity: 5, RefillTokens: 1, RefillInterval: 2 * time.Second, TTL: 10 * time.Minute},
		},
		{
			name: "invalid values clamp",
			env:  map[string]string{"RATE_LIMIT_CAPACITY": "0", "RATE_LIMIT_REFILL_TOKENS": "-3", "RATE_LIMIT_TTL": "1s"},
			want: RateLimitConfig{Capacity: 1, RefillTokens: 1, RefillInterval: time.Second, TTL: 5 * time.Second},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			got := LoadRateLimitConfig()
			if got.Capacity != tt.want.Capacity || got.RefillTokens != tt.want.RefillTokens ||
				got.RefillInterval != tt.want.RefillInterval || got.TTL != tt.want.TTL {
				t.Errorf("LoadRateLimitConfig() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseMethods(t *testing.T) {
	got := parseMethods(" get, head ,,")
	if len(got) != 2 || !got["GET"] || !got["HEAD"] {
		t.Errorf("parseMethods() = %v", got)
	}
}
