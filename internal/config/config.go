package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Ledger LedgerConfig
	Sweep  SweepConfig
	Report ReportConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// LedgerConfig holds the attendance ledger configuration
type LedgerConfig struct {
	Path              string
	DefaultEmployeeID string
}

// SweepConfig holds the forced-closure sweep configuration
type SweepConfig struct {
	Cutoff   string // "HH:MM" or "HH:MM:SS" local time-of-day
	Timezone string
	Interval time.Duration
}

// ReportConfig holds the report archive configuration
type ReportConfig struct {
	ArchivePath string
}

func Load() (*Config, error) {
	// Missing .env is fine; variables may come from the environment.
	_ = godotenv.Load()

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	// Ledger configuration
	config.Ledger = LedgerConfig{
		Path:              getEnv("LEDGER_PATH", "registro.csv"),
		DefaultEmployeeID: getEnv("DEFAULT_EMPLOYEE_ID", "employee-1"),
	}

	// Sweep configuration
	sweepInterval, err := time.ParseDuration(getEnv("SWEEP_INTERVAL", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid SWEEP_INTERVAL: %w", err)
	}

	config.Sweep = SweepConfig{
		Cutoff:   getEnv("SWEEP_CUTOFF", "20:00"),
		Timezone: getEnv("TIMEZONE", "Local"),
		Interval: sweepInterval,
	}

	// Report configuration
	config.Report = ReportConfig{
		ArchivePath: getEnv("REPORT_ARCHIVE_PATH", "reports"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Ledger.Path == "" {
		return fmt.Errorf("LEDGER_PATH is required")
	}
	if c.Report.ArchivePath == "" {
		return fmt.Errorf("REPORT_ARCHIVE_PATH is required")
	}
	if _, err := time.Parse("15:04", c.Sweep.Cutoff); err != nil {
		if _, err := time.Parse("15:04:05", c.Sweep.Cutoff); err != nil {
			return fmt.Errorf("SWEEP_CUTOFF must be HH:MM or HH:MM:SS, got %q", c.Sweep.Cutoff)
		}
	}
	if c.Sweep.Interval <= 0 {
		return fmt.Errorf("SWEEP_INTERVAL must be positive")
	}
	if _, err := time.LoadLocation(c.Sweep.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.Sweep.Timezone, err)
	}
	return nil
}

// Location returns the timezone all calendar-day decisions are made in.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Sweep.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env, fallback string) []string {
	value := getEnv(env, fallback)
	if value == "" {
		return []string{}
	}
	return strings.Split(value, ",")
}
