package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/variance"
)

type Config struct {
	App struct {
		Name     string `envconfig:"APP_NAME" default:"FuelSync"`
		Port     int    `envconfig:"PORT" default:"8080"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		Locale   string `envconfig:"APP_LOCALE" default:"en-IN"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"fuelsync"`
		SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
		MaxConns int    `envconfig:"DB_MAX_CONNS" default:"25"`
		MaxIdle  int    `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
		Migrate  bool   `envconfig:"DB_MIGRATE" default:"true"`
	}

	Server struct {
		Timeout         time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"15s"`
	}

	Auth struct {
		JWTSecret string `envconfig:"JWT_SECRET"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	}

	RateLimit struct {
		RPS   float64 `envconfig:"RATE_LIMIT_RPS" default:"10"`
		Burst int     `envconfig:"RATE_LIMIT_BURST" default:"20"`
	}

	// Settlement thresholds left empty inherit the handover values.
	Variance struct {
		HandoverAbsolute     string `envconfig:"VARIANCE_HANDOVER_ABSOLUTE" default:"100"`
		HandoverPercentage   string `envconfig:"VARIANCE_HANDOVER_PERCENTAGE" default:"2"`
		SettlementAbsolute   string `envconfig:"VARIANCE_SETTLEMENT_ABSOLUTE"`
		SettlementPercentage string `envconfig:"VARIANCE_SETTLEMENT_PERCENTAGE"`
	}

	Audit struct {
		QueueSize int `envconfig:"AUDIT_QUEUE_SIZE" default:"1024"`
	}

	Integrity struct {
		Schedule string `envconfig:"INTEGRITY_SCHEDULE" default:"@hourly"`
	}

	// Console is the terminal client's identity; its reviews are recorded as this user.
	Console struct {
		OperatorID string `envconfig:"CONSOLE_OPERATOR_ID"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name, c.DB.SSLMode)
}

// Language parses App.Locale as a BCP 47 tag.
func (c *Config) Language() (language.Tag, error) {
	tag, err := language.Parse(c.App.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("parsing APP_LOCALE %q: %w", c.App.Locale, err)
	}

	return tag, nil
}

// ValidateAuth reports whether the API can verify bearer tokens. The console does not need a secret.
func (c *Config) ValidateAuth() error {
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET must not be empty")
	}

	return nil
}

// Operator parses Console.OperatorID. It is only needed by the terminal client.
func (c *Config) Operator() (uuid.UUID, error) {
	if c.Console.OperatorID == "" {
		return uuid.Nil, errors.New("CONSOLE_OPERATOR_ID is required")
	}

	id, err := uuid.Parse(c.Console.OperatorID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parsing CONSOLE_OPERATOR_ID: %w", err)
	}

	return id, nil
}

// Thresholds returns the configured default tolerances per variance context.
func (c *Config) Thresholds() (map[variance.Context]variance.Thresholds, error) {
	handover := variance.DefaultThresholds

	if err := parseInto(&handover.Absolute, c.Variance.HandoverAbsolute, "VARIANCE_HANDOVER_ABSOLUTE"); err != nil {
		return nil, err
	}

	if err := parseInto(&handover.Percentage, c.Variance.HandoverPercentage, "VARIANCE_HANDOVER_PERCENTAGE"); err != nil {
		return nil, err
	}

	settlement := handover

	if err := parseInto(&settlement.Absolute, c.Variance.SettlementAbsolute, "VARIANCE_SETTLEMENT_ABSOLUTE"); err != nil {
		return nil, err
	}

	if err := parseInto(&settlement.Percentage, c.Variance.SettlementPercentage, "VARIANCE_SETTLEMENT_PERCENTAGE"); err != nil {
		return nil, err
	}

	return map[variance.Context]variance.Thresholds{
		variance.ContextHandover:   handover,
		variance.ContextSettlement: settlement,
	}, nil
}

// parseInto leaves dst untouched when raw is empty.
func parseInto(dst *decimal.Decimal, raw, name string) error {
	if raw == "" {
		return nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}

	if d.IsNegative() {
		return fmt.Errorf("%s must not be negative", name)
	}

	*dst = d

	return nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if _, err := cfg.Thresholds(); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if _, err := cfg.Language(); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
