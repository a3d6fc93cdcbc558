package config

import (
	"fmt"
	"os"

	"github.com/nadavsagiv/beachrental2/internal/pricing"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	Pricing   PricingConfig   `yaml:"pricing"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host                string `yaml:"host"`
	Port                int    `yaml:"port"`
	ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `yaml:"write_timeout_seconds"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// PricingConfig overrides the stand's price list. Zero values fall back to
// the default schedule.
type PricingConfig struct {
	BedPrice         int32 `yaml:"bed_price"`
	SnorkelPrice     int32 `yaml:"snorkel_price"`
	SupHalfHourPrice int32 `yaml:"sup_half_hour_price"`
	SupFullHourPrice int32 `yaml:"sup_full_hour_price"`
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	DailyReset  string `yaml:"daily_reset"`
	ExpirySweep string `yaml:"expiry_sweep"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
}

// Validate checks the configuration and fills in defaults.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.ReadTimeoutSeconds <= 0 {
		c.Server.ReadTimeoutSeconds = 5
	}
	if c.Server.WriteTimeoutSeconds <= 0 {
		c.Server.WriteTimeoutSeconds = 10
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	defaults := pricing.DefaultSchedule()
	if c.Pricing.BedPrice == 0 {
		c.Pricing.BedPrice = defaults.BedPrice
	}
	if c.Pricing.SnorkelPrice == 0 {
		c.Pricing.SnorkelPrice = defaults.SnorkelPrice
	}
	if c.Pricing.SupHalfHourPrice == 0 {
		c.Pricing.SupHalfHourPrice = defaults.SupHalfHourPrice
	}
	if c.Pricing.SupFullHourPrice == 0 {
		c.Pricing.SupFullHourPrice = defaults.SupFullHourPrice
	}

	// Scheduler defaults
	if c.Scheduler.DailyReset == "" {
		c.Scheduler.DailyReset = "0 0 3 * * *" // 3 AM UTC, stand is closed
	}
	if c.Scheduler.ExpirySweep == "" {
		c.Scheduler.ExpirySweep = "0 * * * * *" // every minute
	}

	return nil
}

// Schedule converts the pricing section into the engine's price list.
func (c *Config) Schedule() pricing.Schedule {
	return pricing.Schedule{
		BedPrice:         c.Pricing.BedPrice,
		SnorkelPrice:     c.Pricing.SnorkelPrice,
		SupHalfHourPrice: c.Pricing.SupHalfHourPrice,
		SupFullHourPrice: c.Pricing.SupFullHourPrice,
	}
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
