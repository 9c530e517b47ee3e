package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (service windows, timeouts, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Redis    RedisConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Schedule ScheduleConfig
	Composer ComposerConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Madrid"`
}

type RedisConfig struct {
	Addr        string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password    string        `envconfig:"REDIS_PASSWORD" default:""`
	DB          int           `envconfig:"REDIS_DB" default:"0"`
	TimelineTTL time.Duration `envconfig:"REDIS_TIMELINE_TTL" default:"30s"`
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
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Madrid"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"7200"` // 2*60*60
}

type JWTConfig struct {
	Secret          string        `envconfig:"JWT_SECRET" required:"true"`
	AccessDuration  time.Duration `envconfig:"JWT_ACCESS_DURATION" default:"15m"`
	RefreshDuration time.Duration `envconfig:"JWT_REFRESH_DURATION" default:"168h"`
}

// ScheduleConfig describes the bookable day: two service windows separated
// by a non-bookable break, sliced into fixed-width slots. Times are "HH:MM".
type ScheduleConfig struct {
	LunchOpens   string        `envconfig:"SCHEDULE_LUNCH_OPENS" default:"13:00"`
	LunchCloses  string        `envconfig:"SCHEDULE_LUNCH_CLOSES" default:"16:00"`
	DinnerOpens  string        `envconfig:"SCHEDULE_DINNER_OPENS" default:"18:30"`
	DinnerCloses string        `envconfig:"SCHEDULE_DINNER_CLOSES" default:"23:00"`
	SlotStep     time.Duration `envconfig:"SCHEDULE_SLOT_STEP" default:"15m"`
}

type ComposerConfig struct {
	SearchQuietPeriod time.Duration `envconfig:"COMPOSER_SEARCH_QUIET_PERIOD" default:"300ms"`
	MinQueryLength    int           `envconfig:"COMPOSER_MIN_QUERY_LENGTH" default:"2"`
	SuccessCloseDelay time.Duration `envconfig:"COMPOSER_SUCCESS_CLOSE_DELAY" default:"1500ms"`
	SubmitTimeout     time.Duration `envconfig:"COMPOSER_SUBMIT_TIMEOUT" default:"10s"`
	MaxSuggestions    int           `envconfig:"COMPOSER_MAX_SUGGESTIONS" default:"5"`
	MaxPartySize      int           `envconfig:"COMPOSER_MAX_PARTY_SIZE" default:"23"`
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
			TimeZone: "Europe/Madrid",
		},
		Redis: RedisConfig{
			Addr:        "localhost:16379",
			TimelineTTL: 30 * time.Second,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Madrid",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 7200,
		},
		Schedule: ScheduleConfig{
			LunchOpens:   "13:00",
			LunchCloses:  "16:00",
			DinnerOpens:  "18:30",
			DinnerCloses: "23:00",
			SlotStep:     15 * time.Minute,
		},
		Composer: ComposerConfig{
			SearchQuietPeriod: 300 * time.Millisecond,
			MinQueryLength:    2,
			SuccessCloseDelay: 1500 * time.Millisecond,
			SubmitTimeout:     10 * time.Second,
			MaxSuggestions:    5,
			MaxPartySize:      23,
		},
	}
}
