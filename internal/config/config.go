package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/BruksfildServices01/dental-clinic/internal/form"
)

type Config struct {
	Environment string `env:"ENV" envDefault:"development"`
	ServerPort  string `env:"SERVER_PORT" envDefault:"8080"`

	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile       string `env:"LOG_FILE"`
	LogMaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"100"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`
	LogMaxAgeDays int    `env:"LOG_MAX_AGE_DAYS" envDefault:"7"`

	DismissAfter time.Duration `env:"FORM_DISMISS_AFTER" envDefault:"5s"`
	SubmitGate   string        `env:"FORM_SUBMIT_GATE" envDefault:"live"`

	SessionIdleTTL       time.Duration `env:"SESSION_IDLE_TTL" envDefault:"30m"`
	SessionSweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`
	SessionMax           int           `env:"SESSION_MAX" envDefault:"10000"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"10"`

	// Buckets of clients quiet for this long are dropped.
	RateLimitIdleTTL time.Duration `env:"RATE_LIMIT_IDLE_TTL" envDefault:"10m"`

	AuditQueueSize int `env:"AUDIT_QUEUE_SIZE" envDefault:"100"`

	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	LogoURL      string   `env:"LOGO_URL" envDefault:"/assets/logo.png"`
	HeroImageURL string   `env:"HERO_IMAGE_URL" envDefault:"/assets/dental-care.png"`
	StaticDir    string   `env:"STATIC_DIR"`
	CORSOrigins  []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// Load reads .env (when present) and then the process environment.
// Variables already set in the environment win over .env.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log level: %s", c.LogLevel))
	}
	if c.LogFile != "" && c.LogMaxSizeMB <= 0 {
		errs = append(errs, errors.New("LOG_MAX_SIZE_MB must be positive"))
	}
	if c.DismissAfter <= 0 {
		errs = append(errs, errors.New("FORM_DISMISS_AFTER must be positive"))
	}
	if _, err := form.ParseSubmitGate(c.SubmitGate); err != nil {
		errs = append(errs, err)
	}
	if c.SessionIdleTTL <= 0 || c.SessionSweepInterval <= 0 {
		errs = append(errs, errors.New("session durations must be positive"))
	}
	if c.SessionMax <= 0 {
		errs = append(errs, errors.New("SESSION_MAX must be positive"))
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 || c.RateLimitIdleTTL <= 0 {
		errs = append(errs, errors.New("rate limit must be positive"))
	}

	return errors.Join(errs...)
}

// Gate is the parsed FORM_SUBMIT_GATE. Validate has already rejected bad values.
func (c *Config) Gate() form.SubmitGate {
	g, _ := form.ParseSubmitGate(c.SubmitGate)
	return g
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
