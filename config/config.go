package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"invites/internal/adapters/email"
)

// MinSessionSecretLength is the shortest SESSION_SECRET accepted at startup.
const MinSessionSecretLength = 32

// Config holds all configuration for the application
type Config struct {
	Environment string `env:"GO_ENV" envDefault:"development"`
	Port        string `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	DBDriver string `env:"DB_DRIVER" envDefault:"sqlite"`
	DBUrl    string `env:"DATABASE_URL" envDefault:"/data/invites.db"`

	UploadDir     string `env:"UPLOAD_DIR" envDefault:"static/uploads"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`

	SessionSecret     string        `env:"SESSION_SECRET,required"`
	SessionTTL        time.Duration `env:"SESSION_TTL" envDefault:"12h"`
	AdminUsername     string        `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH,required"`

	AdminNotifyEmail string `env:"ADMIN_NOTIFY_EMAIL"`
	Email            EmailConfig
}

// EmailConfig holds the outgoing mail settings.
type EmailConfig struct {
	Provider              string `env:"EMAIL_PROVIDER" envDefault:"noop"`
	FromAddress           string `env:"EMAIL_FROM_ADDRESS"`
	FromName              string `env:"EMAIL_FROM_NAME" envDefault:"Invites"`
	AWSRegion             string `env:"AWS_REGION"`
	AWSAccessKeyID        string `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey    string `env:"AWS_SECRET_ACCESS_KEY"`
	SESInsecureSkipVerify bool   `env:"SES_INSECURE_SKIP_VERIFY"`
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	if os.Getenv("GO_ENV") != "production" {
		// In production there is no .env; the process environment is authoritative.
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}
	return parse(env.Options{})
}

// parse reads opts.Environment (the process environment when nil) into a Config.
func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if len(c.SessionSecret) < MinSessionSecretLength {
		errs = append(errs, fmt.Errorf("SESSION_SECRET must be at least %d bytes", MinSessionSecretLength))
	}
	if !strings.HasPrefix(c.AdminPasswordHash, "$2") {
		errs = append(errs, errors.New("ADMIN_PASSWORD_HASH must be a bcrypt hash"))
	}
	if strings.TrimSpace(c.AdminUsername) == "" {
		errs = append(errs, errors.New("ADMIN_USERNAME must not be empty"))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}
	if strings.TrimSpace(c.DBUrl) == "" {
		errs = append(errs, errors.New("DATABASE_URL must not be empty"))
	}
	return errors.Join(errs...)
}

// IsProduction reports whether GO_ENV is "production".
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Mailer returns the mailer settings in the shape the email adapter expects.
func (c *Config) Mailer() email.MailerConfig {
	return email.MailerConfig{
		Provider:    c.Email.Provider,
		FromAddress: c.Email.FromAddress,
		FromName:    c.Email.FromName,
		SES: email.SESConfig{
			Region:             c.Email.AWSRegion,
			AccessKeyID:        c.Email.AWSAccessKeyID,
			SecretAccessKey:    c.Email.AWSSecretAccessKey,
			InsecureSkipVerify: c.Email.SESInsecureSkipVerify,
		},
	}
}
