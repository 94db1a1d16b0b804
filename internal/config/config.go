// Package config loads the server configuration from the environment.
// A .env file in the working directory is loaded first by the main package.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/Santi2307/santi-portfolio/internal/typewriter"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`
	GinMode      string `env:"GIN_MODE" envDefault:"debug"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"portfolio.db"`

	// VisitorRetention bounds how long hashed visitor rows are kept.
	VisitorRetention time.Duration `env:"VISITOR_RETENTION" envDefault:"8760h"`

	Contact    Contact    `envPrefix:"CONTACT_"`
	SMTP       SMTP       `envPrefix:"SMTP_"`
	Admin      Admin      `envPrefix:"ADMIN_"`
	Typewriter Typewriter `envPrefix:"TYPEWRITER_"`
}

type Contact struct {
	// FormspreeEndpoint, when set, receives submissions as JSON.
	FormspreeEndpoint string        `env:"FORMSPREE_ENDPOINT"`
	Timeout           time.Duration `env:"TIMEOUT" envDefault:"10s"`
	ToEmail           string        `env:"TO_EMAIL" envDefault:"santiagodelgadosanchez9@gmail.com"`
}

type SMTP struct {
	Host string `env:"HOST" envDefault:"smtp.gmail.com"`
	Port string `env:"PORT" envDefault:"587"`
	User string `env:"USER"`
	Pass string `env:"PASS"`
}

// Configured reports whether credentials were supplied.
func (s SMTP) Configured() bool {
	return s.User != "" && s.Pass != ""
}

type Admin struct {
	Username string `env:"USERNAME" envDefault:"admin"`
	// Password has no default; admin login is refused while it is empty.
	Password string `env:"PASSWORD"`
}

// Typewriter timings in milliseconds.
type Typewriter struct {
	TypingSpeedMS      int `env:"TYPING_SPEED_MS" envDefault:"80"`
	DeletingSpeedMS    int `env:"DELETING_SPEED_MS" envDefault:"50"`
	PauseAfterTypingMS int `env:"PAUSE_AFTER_TYPING_MS" envDefault:"1500"`
	PauseAfterDeleteMS int `env:"PAUSE_AFTER_DELETE_MS" envDefault:"800"`
}

// Animator converts the millisecond settings into a typewriter.Config.
func (t Typewriter) Animator() typewriter.Config {
	return typewriter.ConfigFromMillis(t.TypingSpeedMS, t.DeletingSpeedMS, t.PauseAfterTypingMS, t.PauseAfterDeleteMS)
}

// Load parses the environment and validates the result.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("%w: empty port", ErrInvalidConfig)
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("%w: empty database path", ErrInvalidConfig)
	}
	if c.Contact.Timeout <= 0 {
		return fmt.Errorf("%w: contact timeout must be positive", ErrInvalidConfig)
	}
	if err := c.Typewriter.Animator().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
