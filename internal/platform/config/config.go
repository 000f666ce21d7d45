package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/netip"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"paysim/internal/domain/payroll"
)

type Config struct {
	Addr               string
	Environment        string
	LogLevel           string
	MinPercentage      int
	MaxPercentage      int
	DefaultPercentage  int
	LevyBasis          string
	CORSAllowedOrigins []string
	TrustedProxies     []string
	MaxBodyBytes       int64
	RateLimitPerMinute int
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	MetricsEnabled     bool

	loadErrs []error
}

// Load reads the configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
// Malformed values keep their default and are reported by Validate.
func Load() Config {
	_ = godotenv.Load()
	env := &envReader{}
	cfg := Config{
		Addr:               env.str("APP_ADDR", ":8080"),
		Environment:        env.str("APP_ENV", "development"),
		LogLevel:           env.str("LOG_LEVEL", "info"),
		MinPercentage:      env.integer("MIN_PERCENTAGE", payroll.DefaultMinPercentage),
		MaxPercentage:      env.integer("MAX_PERCENTAGE", payroll.DefaultMaxPercentage),
		DefaultPercentage:  env.integer("DEFAULT_PERCENTAGE", payroll.DefaultPercentage),
		LevyBasis:          env.str("LEVY_BASIS", payroll.BasisExcess),
		CORSAllowedOrigins: env.list("CORS_ALLOWED_ORIGINS", nil),
		TrustedProxies:     env.list("TRUSTED_PROXIES", nil),
		MaxBodyBytes:       int64(env.integer("MAX_BODY_BYTES", 1048576)),
		RateLimitPerMinute: env.integer("RATE_LIMIT_PER_MINUTE", 120),
		ReadTimeout:        env.duration("READ_TIMEOUT", 5*time.Second),
		WriteTimeout:       env.duration("WRITE_TIMEOUT", 10*time.Second),
		MetricsEnabled:     env.boolean("METRICS_ENABLED", true),
	}
	cfg.loadErrs = env.errs
	return cfg
}

func (c Config) Bounds() payroll.Bounds {
	return payroll.Bounds{Min: c.MinPercentage, Max: c.MaxPercentage}
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// TrustedProxyPrefixes parses TRUSTED_PROXIES. Entries are CIDR ranges or
// single addresses.
func (c Config) TrustedProxyPrefixes() ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(c.TrustedProxies))
	for _, raw := range c.TrustedProxies {
		if prefix, err := netip.ParsePrefix(raw); err == nil {
			prefixes = append(prefixes, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(raw)
		if err != nil {
			return nil, fmt.Errorf("TRUSTED_PROXIES entry %q is not an address or CIDR range", raw)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}

type envReader struct {
	errs []error
}

func (e *envReader) invalid(key, value, want string) {
	e.errs = append(e.errs, fmt.Errorf("%s=%q is not a valid %s", key, value, want))
}

func (e *envReader) str(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func (e *envReader) boolean(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		e.invalid(key, value, "boolean")
		return fallback
	}
	return parsed
}

func (e *envReader) integer(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		e.invalid(key, value, "integer")
		return fallback
	}
	return parsed
}

func (e *envReader) duration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		e.invalid(key, value, "duration")
		return fallback
	}
	return parsed
}

func (e *envReader) list(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (c Config) Validate() error {
	if len(c.loadErrs) > 0 {
		return errors.Join(c.loadErrs...)
	}
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("APP_ADDR is required")
	}
	if c.MinPercentage <= 0 {
		return fmt.Errorf("MIN_PERCENTAGE must be positive")
	}
	if c.MaxPercentage < c.MinPercentage {
		return fmt.Errorf("MAX_PERCENTAGE must be at least MIN_PERCENTAGE")
	}
	if c.DefaultPercentage < c.MinPercentage || c.DefaultPercentage > c.MaxPercentage {
		return fmt.Errorf("DEFAULT_PERCENTAGE must be between %d and %d", c.MinPercentage, c.MaxPercentage)
	}
	if _, err := payroll.ParseBasis(c.LevyBasis); err != nil {
		return fmt.Errorf("LEVY_BASIS must be one of %s", strings.Join(payroll.LevyBases, ", "))
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must not be negative")
	}
	if _, err := c.TrustedProxyPrefixes(); err != nil {
		return err
	}
	if c.IsProduction() && len(c.CORSAllowedOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOWED_ORIGINS must be set in production")
	}
	return nil
}
