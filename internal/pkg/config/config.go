package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, timeout, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Cookie CookieConfig
	Stripe StripeConfig
	App    AppConfig
	Mail   MailConfig
	Jobs   JobsConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Paris"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Paris"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"720h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type StripeConfig struct {
	SecretKey     string `envconfig:"STRIPE_SECRET_KEY" required:"true"`
	WebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET" required:"true"`
	Currency      string `envconfig:"STRIPE_CURRENCY" default:"eur"`
}

type AppConfig struct {
	Name string `envconfig:"APP_NAME" default:"Villa Booking"`
	// Fallback for payment redirects when a client omits frontendUrl.
	FrontendURL string `envconfig:"FRONTEND_URL" default:"http://localhost:3000"`
}

type MailConfig struct {
	SendGridAPIKey string `envconfig:"SENDGRID_API_KEY" default:""`
	FromEmail      string `envconfig:"MAIL_FROM_EMAIL" default:"no-reply@example.com"`
	FromName       string `envconfig:"MAIL_FROM_NAME" default:"Villa Booking"`
	SandboxMode    bool   `envconfig:"MAIL_SANDBOX_MODE" default:"false"`
}

type JobsConfig struct {
	Enabled            bool          `envconfig:"JOBS_ENABLED" default:"false"`
	PendingTTL         time.Duration `envconfig:"JOBS_PENDING_TTL" default:"2h"`
	ExpirePendingSpec  string        `envconfig:"JOBS_EXPIRE_PENDING_SPEC" default:"@every 10m"`
	CompleteStaysSpec  string        `envconfig:"JOBS_COMPLETE_STAYS_SPEC" default:"0 3 * * *"`
	PurgeIdemSpec      string        `envconfig:"JOBS_PURGE_IDEMPOTENCY_SPEC" default:"30 3 * * *"`
	DispatchMailSpec   string        `envconfig:"JOBS_DISPATCH_MAIL_SPEC" default:"@every 1m"`
	DispatchBatchLimit int32         `envconfig:"JOBS_DISPATCH_BATCH_LIMIT" default:"50"`
	Timeout            time.Duration `envconfig:"JOBS_TIMEOUT" default:"2m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Jobs.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// The checkout session expires with the pending reservation, and Stripe only accepts
// expiries 30 minutes to 24 hours out. The lower bound leaves room for the booking request.
const (
	MinPendingTTL = 35 * time.Minute
	MaxPendingTTL = 24 * time.Hour
)

func (c JobsConfig) validate() error {
	if c.PendingTTL < MinPendingTTL || c.PendingTTL > MaxPendingTTL {
		return fmt.Errorf("JOBS_PENDING_TTL must be between %s and %s, got %s", MinPendingTTL, MaxPendingTTL, c.PendingTTL)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-jwt-signing",
			Duration: "1h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Stripe: StripeConfig{
			SecretKey:     "sk_test_dummy",
			WebhookSecret: "whsec_test_secret",
			Currency:      "eur",
		},
		App: AppConfig{
			Name:        "Villa Booking Test",
			FrontendURL: "http://localhost:3000",
		},
		Mail: MailConfig{
			FromEmail: "no-reply@example.com",
			FromName:  "Villa Booking Test",
		},
		Jobs: JobsConfig{
			Enabled:            false,
			PendingTTL:         2 * time.Hour,
			DispatchBatchLimit: 10,
			Timeout:            30 * time.Second,
		},
	}
}
