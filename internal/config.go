package internal

import (
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the application configuration.
type Config struct {
	App      ApplicationConfig `yaml:"app"`
	API      APIConfig         `yaml:"api"`
	Session  SessionConfig     `yaml:"session"`
	Assets   AssetsConfig      `yaml:"assets"`
	Activity ActivityConfig    `yaml:"activity"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.API.Validate(); err != nil {
		return err
	}
	if err := c.Session.Validate(); err != nil {
		return err
	}
	if err := c.Assets.Validate(); err != nil {
		return err
	}
	return c.Activity.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return c.HTTP.Validate()
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// APIConfig points at the upstream content API.
//
// ContactID is the fixed identifier of the contact-details record; the
// upstream exposes it only at /contacts/{id}.
type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	ContactID      string `yaml:"contact_id"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the per-request HTTP client timeout.
func (c *APIConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Validate validates the upstream API configuration.
func (c *APIConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.Required),
		validation.Field(&c.ContactID, validation.Required),
	)
}

// AdminAccount is the single seeded admin login.
type AdminAccount struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// Validate validates the seeded account.
func (c *AdminAccount) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Username, validation.Required),
		validation.Field(&c.Password, validation.Required),
	)
}

// SessionConfig holds the session record path, lifetime, and seeded account.
type SessionConfig struct {
	Path     string       `yaml:"path"`
	TTLHours int          `yaml:"ttl_hours"`
	Admin    AdminAccount `yaml:"admin"`
}

// TTL returns the session lifetime.
func (c *SessionConfig) TTL() time.Duration {
	if c.TTLHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.TTLHours) * time.Hour
}

// Validate validates the session configuration.
func (c *SessionConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	); err != nil {
		return err
	}
	return c.Admin.Validate()
}

// AssetsConfig holds the uploaded images directory.
type AssetsConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the assets configuration.
func (c *AssetsConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// ActivityConfig holds the admin activity log database path.
type ActivityConfig struct {
	SQLitePath string `yaml:"sqlite_path"`
}

// Validate validates the activity configuration.
func (c *ActivityConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.SQLitePath, validation.Required),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			HTTP: HTTPConfig{
				Port: 8080,
			},
		},
		API: APIConfig{
			BaseURL:        "http://localhost:5000/api",
			ContactID:      "contact",
			TimeoutSeconds: 15,
		},
		Session: SessionConfig{
			Path:     "./data/session.json",
			TTLHours: 24,
			Admin: AdminAccount{
				Username: "admin",
				Password: "admin123",
				Name:     "Admin User",
			},
		},
		Assets: AssetsConfig{
			Path: "./data/assets",
		},
		Activity: ActivityConfig{
			SQLitePath: "./data/activity.db",
		},
	}
}
