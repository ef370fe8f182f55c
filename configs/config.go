package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Defaults are the per-service fallbacks used when a variable is unset.
type Defaults struct {
	Name      string
	Port      string
	DBPort    string
	DBName    string
	DBUser    string
	SecretID  string
	ProjectID string
}

var CourseDefaults = Defaults{
	Name:      "course-service",
	Port:      "8081",
	DBPort:    "5433",
	DBName:    "course_db",
	DBUser:    "course_user",
	SecretID:  "course-db-password",
	ProjectID: "edutrack-cc-ass-2",
}

var EnrollmentDefaults = Defaults{
	Name:      "enrollment-service",
	Port:      "8080",
	DBPort:    "5434",
	DBName:    "enrollment_db",
	DBUser:    "enrollment_user",
	SecretID:  "enrollment-db-password",
	ProjectID: "edutrack-cc-ass-2",
}

type Database struct {
	Host           string        `env:"DB_HOST" env-default:"127.0.0.1" env-description:"database host"`
	Port           string        `env:"DB_PORT" env-description:"database port"`
	Name           string        `env:"DB_NAME" env-description:"database name"`
	User           string        `env:"DB_USER" env-description:"database user"`
	SSLMode        string        `env:"DB_SSLMODE" env-default:"prefer" env-description:"libpq sslmode"`
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" env-default:"10s" env-description:"connect timeout, e.g. 10s"`
}

type Secret struct {
	PasswordFile string `env:"DB_PASSWORD_FILE" env-description:"mounted password file, preferred when it exists"`
	ProjectID    string `env:"PROJECT_ID" env-description:"Secret Manager project"`
	SecretID     string `env:"SECRET_ID" env-description:"Secret Manager secret holding the database password"`
}

// Config is built once at startup and passed by pointer; nothing mutates it afterwards.
type Config struct {
	Service       string
	Env           string `env:"APP_ENV" env-default:"development" env-description:"deployment environment"`
	Port          string `env:"PORT" env-description:"HTTP listen port"`
	ExposeErrors  bool   `env:"EXPOSE_ERRORS" env-description:"include internal causes in 5xx bodies (default: true unless production)"`
	JWTSecret     string `env:"JWT_SECRET" env-description:"HS256 key guarding write endpoints, empty disables the guard"`
	LogLevel      string `env:"LOG_LEVEL" env-default:"info" env-description:"trace, debug, info, warn or error"`
	LogFile       string `env:"LOG_FILE" env-description:"rotating log file, console only when empty"`
	CheckSchedule string `env:"DB_CHECK_SCHEDULE" env-description:"cron spec for the database connectivity check"`

	Database Database
	Secret   Secret
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads envFile (if present) and the process environment on top of the service defaults.
func Load(d Defaults, envFile string) (*Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Warn().Str("file", envFile).Msg("env file not found, reading from system environment variables")
	}

	cfg := &Config{
		Service: d.Name,
		Port:    d.Port,
		Database: Database{
			Port: d.DBPort,
			Name: d.DBName,
			User: d.DBUser,
		},
		Secret: Secret{
			ProjectID: d.ProjectID,
			SecretID:  d.SecretID,
		},
	}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	if _, set := os.LookupEnv("EXPOSE_ERRORS"); !set {
		cfg.ExposeErrors = !cfg.IsProduction()
	}
	return cfg, nil
}

// Describe lists every variable Load reads, for command help.
func Describe() string {
	text, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}
	return text
}
