package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port string
}

// JWTConfig holds token signing settings
type JWTConfig struct {
	SecretKey       string
	ExpirationHours int64
}

// SMTPConfig holds the email transport credentials for reminders
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// TwilioConfig holds the SMS transport credentials for reminders
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromPhone  string
}

// ReminderConfig holds the poller cadence and lookahead window
type ReminderConfig struct {
	Interval  time.Duration
	Lookahead time.Duration
}

// Config is the full application configuration, loaded once from the
// environment and passed explicitly to each component.
type Config struct {
	Server   ServerConfig
	DB       DBConfig
	JWT      JWTConfig
	SMTP     SMTPConfig
	Twilio   TwilioConfig
	Reminder ReminderConfig
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	dbCfg, err := LoadDBConfig()
	if err != nil {
		return nil, err
	}

	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY not set in environment")
	}
	jwtExpHours := int64(24)
	if v := os.Getenv("JWT_EXPIRATION_HOURS"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %w", err)
		}
		jwtExpHours = parsed
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080" // Default port
	}

	smtpPort := 587
	if v := os.Getenv("SMTP_PORT"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
		}
		smtpPort = parsed
	}

	interval := time.Minute
	if v := os.Getenv("REMINDER_INTERVAL"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REMINDER_INTERVAL: %w", err)
		}
		interval = parsed
	}
	lookahead := 5 * time.Minute
	if v := os.Getenv("REMINDER_LOOKAHEAD"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REMINDER_LOOKAHEAD: %w", err)
		}
		lookahead = parsed
	}

	return &Config{
		Server: ServerConfig{Port: serverPort},
		DB:     *dbCfg,
		JWT: JWTConfig{
			SecretKey:       jwtSecret,
			ExpirationHours: jwtExpHours,
		},
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     smtpPort,
			User:     os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     os.Getenv("SMTP_FROM"),
		},
		Twilio: TwilioConfig{
			AccountSID: os.Getenv("TWILIO_SID"),
			AuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
			FromPhone:  os.Getenv("TWILIO_PHONE"),
		},
		Reminder: ReminderConfig{
			Interval:  interval,
			Lookahead: lookahead,
		},
	}, nil
}
