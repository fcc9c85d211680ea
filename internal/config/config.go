package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Email     EmailConfig     `yaml:"email"`
	JWT       JWTConfig       `yaml:"jwt"`
	Log       LogConfig       `yaml:"log"`
	Booking   BookingConfig   `yaml:"booking"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
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

// EmailConfig selects and configures the outbound email provider.
// Provider is "smtp" or "sendgrid".
type EmailConfig struct {
	Provider       string `yaml:"provider"`
	From           string `yaml:"from"`
	SMTPHost       string `yaml:"smtp_host"`
	SMTPPort       int    `yaml:"smtp_port"`
	SMTPUser       string `yaml:"smtp_user"`
	SMTPPassword   string `yaml:"smtp_password"`
	SendGridAPIKey string `yaml:"sendgrid_api_key"`
}

// JWTConfig contains JWT token settings
type JWTConfig struct {
	Secret             string `yaml:"secret"`
	AccessTokenExpiry  int    `yaml:"access_token_expiry_minutes"`
	RefreshTokenExpiry int    `yaml:"refresh_token_expiry_minutes"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// BookingConfig contains escrow and fee settings
type BookingConfig struct {
	// PlatformFee is the fixed, non-refundable fee charged per
	// booking on top of the room deposit, in whole shillings.
	PlatformFee int64 `yaml:"platform_fee"`
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	SendEscrowReminders string `yaml:"send_escrow_reminders"`
	ReconcileWallets    string `yaml:"reconcile_wallets"`
	// EscrowReminderDays is how long a booking may sit in escrow
	// before the student is nudged to confirm or cancel.
	EscrowReminderDays int `yaml:"escrow_reminder_days"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	// A local .env is optional; env vars win over the YAML file either way.
	_ = godotenv.Load()

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

	// Email
	if val := os.Getenv("EMAIL_PROVIDER"); val != "" {
		c.Email.Provider = val
	}
	if val := os.Getenv("SMTP_HOST"); val != "" {
		c.Email.SMTPHost = val
	}
	if val := os.Getenv("SMTP_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Email.SMTPPort)
	}
	if val := os.Getenv("SMTP_USER"); val != "" {
		c.Email.SMTPUser = val
	}
	if val := os.Getenv("SMTP_PASSWORD"); val != "" {
		c.Email.SMTPPassword = val
	}
	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.Email.SendGridAPIKey = val
	}
	if val := os.Getenv("EMAIL_FROM"); val != "" {
		c.Email.From = val
	}

	// JWT
	if val := os.Getenv("JWT_SECRET"); val != "" {
		c.JWT.Secret = val
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

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
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

	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters")
	}

	switch c.Email.Provider {
	case "", "smtp":
		c.Email.Provider = "smtp"
		if c.Email.SMTPHost == "" {
			return fmt.Errorf("SMTP host is required")
		}
		if c.Email.SMTPPort <= 0 || c.Email.SMTPPort > 65535 {
			return fmt.Errorf("invalid SMTP port: %d", c.Email.SMTPPort)
		}
	case "sendgrid":
		if c.Email.SendGridAPIKey == "" {
			return fmt.Errorf("SendGrid API key is required")
		}
	default:
		return fmt.Errorf("unknown email provider: %s", c.Email.Provider)
	}

	// Booking defaults
	if c.Booking.PlatformFee == 0 {
		c.Booking.PlatformFee = 50 // KSh 50
	}

	// Scheduler defaults
	if c.Scheduler.SendEscrowReminders == "" {
		c.Scheduler.SendEscrowReminders = "0 0 8 * * *" // 8 AM UTC
	}
	if c.Scheduler.ReconcileWallets == "" {
		c.Scheduler.ReconcileWallets = "0 30 2 * * *" // 2:30 AM UTC
	}
	if c.Scheduler.EscrowReminderDays == 0 {
		c.Scheduler.EscrowReminderDays = 7
	}

	return nil
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
