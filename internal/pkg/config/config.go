package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, cutoffs, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	Redis      RedisConfig
	SMTP       SMTPConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Cookie     CookieConfig
	Allocation AllocationConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/London"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type SMTPConfig struct {
	Host     string `envconfig:"SMTP_HOST" required:"true"`
	Port     int    `envconfig:"SMTP_PORT" default:"587"`
	Username string `envconfig:"SMTP_USERNAME" required:"true"`
	Password string `envconfig:"SMTP_PASSWORD" required:"true"`
	From     string `envconfig:"SMTP_FROM" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone   string `envconfig:"LOG_TIMEZONE" default:"Europe/London"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// AllocationConfig carries the engine tunables that are deployment policy
// rather than data (the per-site space counts live in the configuration
// store, not here).
type AllocationConfig struct {
	// TimeZone is the business timezone all date windows are computed in.
	TimeZone string `envconfig:"ALLOCATION_TIMEZONE" default:"Europe/London"`
	// RatioWindowStart anchors the fairness-ratio lookback. Whether this
	// should become a rolling window is an open product question; it is a
	// config value so either policy is a deploy-time change.
	RatioWindowStart string `envconfig:"RATIO_WINDOW_START" default:"2021-09-06"`
	// ShortLeadDays is the number of working days allocated with full capacity.
	ShortLeadDays int `envconfig:"SHORT_LEAD_DAYS" default:"2"`
	// LongLeadWeeks is how many whole weeks ahead the long window extends.
	LongLeadWeeks int `envconfig:"LONG_LEAD_WEEKS" default:"2"`
	// DailyCutoffHour is the local hour after which today's allocation is
	// settled (daily summary emails and the soft-interruption cutover fire
	// at this hour).
	DailyCutoffHour int `envconfig:"DAILY_CUTOFF_HOUR" default:"11"`
	// RunInterval is the cadence of the rolling recomputation.
	RunInterval time.Duration `envconfig:"ALLOCATION_RUN_INTERVAL" default:"10m"`
	// RunLockTTL bounds how long a crashed run can hold the run lock.
	RunLockTTL time.Duration `envconfig:"ALLOCATION_RUN_LOCK_TTL" default:"15m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
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
			TimeZone: "Europe/London",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "Europe/London",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "24h",
		},
		Allocation: AllocationConfig{
			TimeZone:         "Europe/London",
			RatioWindowStart: "2021-09-06",
			ShortLeadDays:    2,
			LongLeadWeeks:    2,
			DailyCutoffHour:  11,
			RunInterval:      10 * time.Minute,
			RunLockTTL:       15 * time.Minute,
		},
	}
}
