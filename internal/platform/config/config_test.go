package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.Environment != "development" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.TokenExpiry() != time.Hour {
		t.Fatalf("expected 1h token expiry, got %v", cfg.TokenExpiry())
	}
	if cfg.ShutdownTimeout != 15*time.Second {
		t.Fatalf("expected 15s shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
	if !cfg.RunMigrations || !cfg.MetricsEnabled {
		t.Fatal("expected migrations and metrics enabled by default")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/ems")
	t.Setenv("DB_MAX_CONNS", "4")
	t.Setenv("JWT_EXPIRY_MINUTES", "15")
	t.Setenv("RUN_SEED", "false")

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Addr != ":9090" || cfg.DatabaseURL != "postgres://localhost/ems" {
		t.Fatalf("env values not applied: %+v", cfg)
	}
	if cfg.DBMaxConns != 4 || cfg.TokenExpiry() != 15*time.Minute {
		t.Fatalf("numeric env values not applied: %+v", cfg)
	}
	if cfg.RunSeed {
		t.Fatal("expected RUN_SEED=false to disable seeding")
	}
}

func TestLoadFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ems.yaml")
	body := "JWT_ISSUER: file-issuer\nJWT_SECRET: from-file\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.JWTIssuer != "file-issuer" {
		t.Fatalf("expected issuer from file, got %q", cfg.JWTIssuer)
	}
	if cfg.JWTSecret != "from-env" {
		t.Fatalf("expected env to override file, got %q", cfg.JWTSecret)
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		DatabaseURL:        "postgres://localhost/ems",
		JWTSecret:          "secret",
		JWTExpiryMinutes:   60,
		DBMaxConns:         5,
		MaxBodyBytes:       4096,
		RateLimitPerMinute: 10,
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing database", mutate: func(c *Config) { c.DatabaseURL = " " }, want: "DATABASE_URL"},
		{name: "missing secret", mutate: func(c *Config) { c.JWTSecret = "" }, want: "JWT_SECRET"},
		{name: "short production secret", mutate: func(c *Config) { c.Environment = "production" }, want: "at least 32"},
		{name: "production seed without password", mutate: func(c *Config) {
			c.Environment = "production"
			c.JWTSecret = strings.Repeat("s", 32)
			c.RunSeed = true
		}, want: "SEED_ADMIN_PASSWORD"},
		{name: "zero expiry", mutate: func(c *Config) { c.JWTExpiryMinutes = 0 }, want: "JWT_EXPIRY_MINUTES"},
		{name: "tiny body limit", mutate: func(c *Config) { c.MaxBodyBytes = 10 }, want: "MAX_BODY_BYTES"},
		{name: "zero rate limit", mutate: func(c *Config) { c.RateLimitPerMinute = 0 }, want: "AUTH_RATE_LIMIT_PER_MINUTE"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.want == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}
