package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// StandingPlan defines a recurring visit series requested in configuration
// rather than interactively. The rrule is validated at load time.
type StandingPlan struct {
	MotherID int64  `yaml:"motherID" validate:"required"`
	RRule    string `yaml:"rrule" validate:"required"`
	Time     string `yaml:"time,omitempty"`
	Notes    string `yaml:"notes,omitempty"`
}

// Config represents the application configuration
type Config struct {
	// DatabaseURL is a Postgres connection string. Empty selects the
	// in-memory store (demo and tests).
	DatabaseURL string `yaml:"databaseURL,omitempty"`

	// NotificationSubject is the subject line for emailed notifications
	NotificationSubject string `yaml:"notificationSubject,omitempty"`

	// EmailEnabled turns on Gmail delivery for notifications. Requires an
	// OAuth client file (see LoadOAuthClientWithEnv).
	EmailEnabled bool   `yaml:"emailEnabled,omitempty"`
	GmailUserID  string `yaml:"gmailUserID,omitempty"`

	StandingPlans []StandingPlan `yaml:"standingPlans,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// LoadWithEnv loads and validates the configuration for an environment,
// e.g. env="test" reads "homevisit_config.test.yaml"
func LoadWithEnv(env string) (*Config, error) {
	name := "homevisit_config.yaml"
	if env != "" {
		name = "homevisit_config." + env + ".yaml"
	}
	path, err := findFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}
	return LoadFromPath(path)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, plan := range cfg.StandingPlans {
		if _, err := rrule.StrToRRule(plan.RRule); err != nil {
			return fmt.Errorf("invalid rrule in standingPlans[%d]: %w", i, err)
		}
	}

	if cfg.EmailEnabled && cfg.GmailUserID == "" {
		return fmt.Errorf("config validation failed: gmailUserID is required when emailEnabled is set")
	}

	return nil
}

// findFile searches the current directory, then the user's home directory
func findFile(name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homePath := filepath.Join(homeDir, name)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}

	return "", fmt.Errorf("%s not found in current directory or home directory", name)
}
