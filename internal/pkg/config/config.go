package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: values that differ between environments (port, DB connection,
//   secrets) or that must never ship with a default
// - default: values common across all environments (timeouts, intervals)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Redis   RedisConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Payment PaymentConfig
	Mail    MailConfig
	SMS     SMSConfig
	Booking BookingConfig
	OTP     OTPConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type PaymentConfig struct {
	KeyID     string `envconfig:"RAZORPAY_KEY_ID" required:"true"`
	KeySecret string `envconfig:"RAZORPAY_KEY_SECRET" required:"true"`
	Currency  string `envconfig:"RAZORPAY_CURRENCY" default:"INR"`
}

type MailConfig struct {
	SMTPHost string `envconfig:"SMTP_HOST" default:"localhost"`
	SMTPPort string `envconfig:"SMTP_PORT" default:"1025"`
	From     string `envconfig:"MAIL_FROM" default:"no-reply@boxarena.local"`
}

type SMSConfig struct {
	WebhookURL   string `envconfig:"SMS_WEBHOOK_URL" default:""`
	WebhookToken string `envconfig:"SMS_WEBHOOK_TOKEN" default:""`
}

type BookingConfig struct {
	PendingRetention time.Duration `envconfig:"BOOKING_PENDING_RETENTION" default:"15m"`
	CleanupInterval  time.Duration `envconfig:"BOOKING_CLEANUP_INTERVAL" default:"1m"`
}

type OTPConfig struct {
	TTL         time.Duration `envconfig:"OTP_TTL" default:"10m"`
	MaxAttempts int           `envconfig:"OTP_MAX_ATTEMPTS" default:"5"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:      "error",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Booking: BookingConfig{
			PendingRetention: 15 * time.Minute,
			CleanupInterval:  time.Minute,
		},
		OTP: OTPConfig{
			TTL:         10 * time.Minute,
			MaxAttempts: 5,
		},
	}
}
