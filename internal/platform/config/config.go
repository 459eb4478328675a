package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Addr               string        `mapstructure:"APP_ADDR"`
	Environment        string        `mapstructure:"APP_ENV"`
	DatabaseURL        string        `mapstructure:"DATABASE_URL"`
	DBMaxConns         int32         `mapstructure:"DB_MAX_CONNS"`
	JWTSecret          string        `mapstructure:"JWT_SECRET"`
	JWTIssuer          string        `mapstructure:"JWT_ISSUER"`
	JWTAudience        string        `mapstructure:"JWT_AUDIENCE"`
	JWTExpiryMinutes   int           `mapstructure:"JWT_EXPIRY_MINUTES"`
	RunMigrations      bool          `mapstructure:"RUN_MIGRATIONS"`
	RunSeed            bool          `mapstructure:"RUN_SEED"`
	SeedAdminEmail     string        `mapstructure:"SEED_ADMIN_EMAIL"`
	SeedAdminPassword  string        `mapstructure:"SEED_ADMIN_PASSWORD"`
	MaxBodyBytes       int64         `mapstructure:"MAX_BODY_BYTES"`
	RateLimitPerMinute int           `mapstructure:"AUTH_RATE_LIMIT_PER_MINUTE"`
	MetricsEnabled     bool          `mapstructure:"METRICS_ENABLED"`
	ShutdownTimeout    time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

var defaults = map[string]any{
	"APP_ADDR":                   ":8080",
	"APP_ENV":                    "development",
	"DATABASE_URL":               "",
	"DB_MAX_CONNS":               10,
	"JWT_SECRET":                 "",
	"JWT_ISSUER":                 "ems",
	"JWT_AUDIENCE":               "ems-clients",
	"JWT_EXPIRY_MINUTES":         60,
	"RUN_MIGRATIONS":             true,
	"RUN_SEED":                   true,
	"SEED_ADMIN_EMAIL":           "admin@ems.local",
	"SEED_ADMIN_PASSWORD":        "",
	"MAX_BODY_BYTES":             1048576,
	"AUTH_RATE_LIMIT_PER_MINUTE": 30,
	"METRICS_ENABLED":            true,
	"SHUTDOWN_TIMEOUT":           "15s",
}

// Load reads configuration from the environment. When CONFIG_FILE points at
// a file it is read first and environment variables still take precedence.
func Load() (Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (Config, error) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("CONFIG_FILE"); err != nil {
		return Config{}, err
	}
	if path := v.GetString("CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return cfg, nil
}

func (c Config) TokenExpiry() time.Duration {
	return time.Duration(c.JWTExpiryMinutes) * time.Minute
}

func (c Config) Production() bool {
	return c.Environment == "production"
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Production() {
		if len(c.JWTSecret) < 32 {
			return fmt.Errorf("JWT_SECRET must be at least 32 characters in production")
		}
		if c.RunSeed && strings.TrimSpace(c.SeedAdminPassword) == "" {
			return fmt.Errorf("SEED_ADMIN_PASSWORD must be set or RUN_SEED disabled in production")
		}
	}
	if c.JWTExpiryMinutes <= 0 {
		return fmt.Errorf("JWT_EXPIRY_MINUTES must be positive")
	}
	if c.DBMaxConns <= 0 {
		return fmt.Errorf("DB_MAX_CONNS must be positive")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("AUTH_RATE_LIMIT_PER_MINUTE must be positive")
	}
	return nil
}
