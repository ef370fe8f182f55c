package database

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ali-320/EduTrack-CC-Assignment-2/apperrors"
	config "github.com/ali-320/EduTrack-CC-Assignment-2/configs"
)

type PasswordResolver interface {
	ResolvePassword(ctx context.Context) (string, error)
}

// Acquirer hands out one connection per request. Callers must Close what they get.
type Acquirer interface {
	Acquire(ctx context.Context) (*Conn, error)
}

// Conn is a single-use database session.
type Conn struct {
	DB    *gorm.DB
	sqlDB *sql.DB
}

func (c *Conn) Close() error {
	return c.sqlDB.Close()
}

// NewConn opens a GORM session over dialector, pinging it, and caps it to one underlying connection.
func NewConn(dialector gorm.Dialector) (*Conn, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt:            false,
		SkipDefaultTransaction: true,
		Logger: gormlogger.New(&log.Logger, gormlogger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		if db != nil {
			if sqlDB, dbErr := db.DB(); dbErr == nil {
				_ = sqlDB.Close()
			}
		}
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	return &Conn{DB: db, sqlDB: sqlDB}, nil
}

// PostgresAcquirer opens a fresh connection for every Acquire; there is no pool.
type PostgresAcquirer struct {
	cfg      config.Database
	resolver PasswordResolver
}

func NewPostgresAcquirer(cfg config.Database, resolver PasswordResolver) *PostgresAcquirer {
	return &PostgresAcquirer{cfg: cfg, resolver: resolver}
}

func (a *PostgresAcquirer) Acquire(ctx context.Context) (*Conn, error) {
	logger := zerolog.Ctx(ctx)

	password, err := a.resolver.ResolvePassword(ctx)
	if err != nil {
		return nil, apperrors.ConnectionFailure(err)
	}

	dsn := DSN(a.cfg, password)
	conn, err := NewConn(postgres.Open(dsn))
	if err != nil {
		logger.Error().Err(err).Str("dsn", redact(dsn)).Msg("Failed to connect to database")
		return nil, apperrors.ConnectionFailure(err)
	}

	logger.Debug().Str("host", a.cfg.Host).Str("database", a.cfg.Name).Msg("Database connection opened")
	return conn, nil
}

// DSN renders a postgres:// URL; user and password are escaped by net/url.
func DSN(cfg config.Database, password string) string {
	q := url.Values{}
	if cfg.SSLMode != "" {
		q.Set("sslmode", cfg.SSLMode)
	}
	if cfg.ConnectTimeout > 0 {
		secs := int(math.Ceil(cfg.ConnectTimeout.Seconds()))
		q.Set("connect_timeout", strconv.Itoa(secs))
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, password),
		Host:     net.JoinHostPort(cfg.Host, cfg.Port),
		Path:     "/" + cfg.Name,
		RawQuery: q.Encode(),
	}
	return u.String()
}

func redact(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil {
		return "<invalid dsn>"
	}
	return u.Redacted()
}
