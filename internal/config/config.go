// Package config loads process configuration from an optional .env file, an
// optional YAML file and environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const minSecretLength = 32

// Config holds every setting the service reads at startup.
type Config struct {
	Port     string `yaml:"port"      env:"PORT"`
	Env      string `yaml:"env"       env:"APP_ENV"`
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`

	DBDriver     string `yaml:"db_driver"     env:"DB_DRIVER"`
	DatabasePath string `yaml:"database_path" env:"DATABASE_PATH"`
	DatabaseURL  string `yaml:"database_url"  env:"DATABASE_URL"`

	JWTSecret    string   `yaml:"jwt_secret"     env:"JWT_SECRET"`
	JWTExpiresIn Duration `yaml:"jwt_expires_in" env:"JWT_EXPIRES_IN"`

	HashAlgorithm string `yaml:"hash_algorithm" env:"HASH_ALGORITHM"`
	BcryptCost    int    `yaml:"bcrypt_cost"    env:"BCRYPT_COST"`

	LoginRateLimit float64 `yaml:"login_rate_limit" env:"LOGIN_RATE_LIMIT"`
	LoginRateBurst float64 `yaml:"login_rate_burst" env:"LOGIN_RATE_BURST"`
}

// Defaults returns the configuration used when nothing overrides a field.
func Defaults() Config {
	return Config{
		Port:           "8080",
		Env:            "production",
		LogLevel:       "info",
		DBDriver:       "sqlite",
		DatabasePath:   "account-service.db",
		JWTExpiresIn:   Duration(24 * time.Hour),
		HashAlgorithm:  "bcrypt",
		BcryptCost:     10,
		LoginRateLimit: 0.2,
		LoginRateBurst: 5,
	}
}

// Load reads the first existing file of envFiles (".env" when none are given)
// into the process environment, then the YAML file named by CONFIG_FILE, then
// environment variables, and validates the result.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
		break
	}

	cfg := Defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.mergeYAML(path); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) mergeYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal([]byte(expandEnvVars(string(data))), c); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR} with the value of VAR. Bare $VAR is left
// alone so secrets containing '$' survive.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(envVarPattern.FindStringSubmatch(match)[1])
	})
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	switch {
	case c.JWTSecret == "":
		errs = append(errs, errors.New("JWT_SECRET is required"))
	case len(c.JWTSecret) < minSecretLength && !c.IsDevelopment():
		errs = append(errs, fmt.Errorf("JWT_SECRET must be at least %d bytes outside development", minSecretLength))
	}

	if c.JWTExpiresIn <= 0 {
		errs = append(errs, errors.New("JWT_EXPIRES_IN must be positive"))
	}

	switch c.HashAlgorithm {
	case "bcrypt":
		if c.BcryptCost < 4 || c.BcryptCost > 31 {
			errs = append(errs, fmt.Errorf("BCRYPT_COST must be between 4 and 31, got %d", c.BcryptCost))
		}
	case "argon2id":
	default:
		errs = append(errs, fmt.Errorf("HASH_ALGORITHM must be bcrypt or argon2id, got %q", c.HashAlgorithm))
	}

	switch c.DBDriver {
	case "sqlite":
		if c.DatabasePath == "" {
			errs = append(errs, errors.New("DATABASE_PATH is required for the sqlite driver"))
		}
	case "postgres":
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for the postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER must be sqlite or postgres, got %q", c.DBDriver))
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	if c.LoginRateLimit < 0 {
		errs = append(errs, errors.New("LOGIN_RATE_LIMIT must not be negative"))
	}
	if c.LoginRateBurst < 1 {
		errs = append(errs, errors.New("LOGIN_RATE_BURST must be at least 1"))
	}

	return errors.Join(errs...)
}

// IsDevelopment reports whether APP_ENV is "development".
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// SlogLevel returns LogLevel as a slog.Level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// TokenTTL returns JWTExpiresIn as a time.Duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTExpiresIn)
}

// Duration accepts a Go duration ("24h"), a day count ("7d") or a plain
// number of seconds ("86400").
type Duration time.Duration

// ParseDuration parses the formats accepted by Duration.
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty duration")
	}
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.ParseInt(days, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	return d, nil
}

// UnmarshalText implements encoding.TextUnmarshaler for env parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}
