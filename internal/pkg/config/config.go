package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, backend URL), security settings
// - default: Values common across all environments (timezone, timeout, buffer bounds)
// - optional infrastructure (Redis, RabbitMQ, Postgres source) is disabled when left empty
// -----------------------------------------------------------------------------

const (
	ShowSourceREST     = "rest"
	ShowSourcePostgres = "postgres"
)

type Config struct {
	Server   ServerConfig
	Backend  BackendConfig
	Schedule ScheduleConfig
	DB       DBConfig
	Redis    RedisConfig
	Broker   BrokerConfig
	CORS     CORSConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type BackendConfig struct {
	BaseURL string        `envconfig:"BACKEND_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"BACKEND_TIMEOUT" default:"10s"`
}

type ScheduleConfig struct {
	TimeZone    string `envconfig:"SCHEDULE_TIMEZONE" default:"Asia/Kolkata"`
	IntervalMin int    `envconfig:"SCHEDULE_INTERVAL_MIN" default:"0"`
	IntervalMax int    `envconfig:"SCHEDULE_INTERVAL_MAX" default:"30"`
	CleanupMin  int    `envconfig:"SCHEDULE_CLEANUP_MIN" default:"10"`
	CleanupMax  int    `envconfig:"SCHEDULE_CLEANUP_MAX" default:"30"`
	// rest reads existing shows from the backend API, postgres from the shared read replica
	ShowSource string `envconfig:"SHOW_SOURCE" default:"rest"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type RedisConfig struct {
	Addr          string        `envconfig:"REDIS_ADDR"`
	Password      string        `envconfig:"REDIS_PASSWORD"`
	DB            int           `envconfig:"REDIS_DB" default:"0"`
	MovieCacheTTL time.Duration `envconfig:"MOVIE_CACHE_TTL" default:"10m"`
	SnapshotTTL   time.Duration `envconfig:"SNAPSHOT_TTL" default:"30m"`
}

type BrokerConfig struct {
	URL      string `envconfig:"AMQP_URL"`
	Exchange string `envconfig:"AMQP_EXCHANGE" default:"schedule.events"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Console-Session,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone   string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

func (c BrokerConfig) Enabled() bool {
	return c.URL != ""
}

func (c ScheduleConfig) Validate() error {
	if c.IntervalMin < 0 || c.IntervalMin > c.IntervalMax {
		return fmt.Errorf("invalid interval bounds %d..%d", c.IntervalMin, c.IntervalMax)
	}
	if c.CleanupMin < 0 || c.CleanupMin > c.CleanupMax {
		return fmt.Errorf("invalid cleanup bounds %d..%d", c.CleanupMin, c.CleanupMax)
	}
	switch c.ShowSource {
	case ShowSourceREST, ShowSourcePostgres:
		return nil
	default:
		return fmt.Errorf("unknown SHOW_SOURCE %q", c.ShowSource)
	}
}

func (c Config) Validate() error {
	if err := c.Schedule.Validate(); err != nil {
		return err
	}
	if c.Schedule.ShowSource == ShowSourcePostgres && (c.DB.User == "" || c.DB.DBName == "") {
		return fmt.Errorf("SHOW_SOURCE=postgres requires DB_USER and DB_NAME")
	}
	return nil
}

// LoadConfig reads the process environment, seeded from ENV_FILE (default .env) when that file exists.
func LoadConfig() (Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err == nil {
		// already-set variables win over the file
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Backend: BackendConfig{
			BaseURL: "http://localhost:18080",
			Timeout: 2 * time.Second,
		},
		Schedule: ScheduleConfig{
			TimeZone:    "Asia/Kolkata",
			IntervalMin: 0,
			IntervalMax: 30,
			CleanupMin:  10,
			CleanupMax:  30,
			ShowSource:  ShowSourceREST,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Redis: RedisConfig{
			MovieCacheTTL: time.Minute,
			SnapshotTTL:   time.Minute,
		},
		Broker: BrokerConfig{
			Exchange: "schedule.events",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "Asia/Kolkata",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}
