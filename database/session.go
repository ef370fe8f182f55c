package database

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/ali-320/EduTrack-CC-Assignment-2/apperrors"
)

// WithConn runs fn on a freshly acquired connection and always releases it.
func WithConn(ctx context.Context, acq Acquirer, fn func(db *gorm.DB) error) error {
	conn, err := acq.Acquire(ctx)
	if err != nil {
		return err
	}
	defer release(ctx, conn)

	if err := fn(conn.DB.WithContext(ctx)); err != nil {
		return persistence(ctx, err)
	}
	return nil
}

// WithTx runs fn inside a transaction: commit when fn returns nil, rollback on any error.
// The connection is released either way.
func WithTx(ctx context.Context, acq Acquirer, fn func(tx *gorm.DB) error) error {
	conn, err := acq.Acquire(ctx)
	if err != nil {
		return err
	}
	defer release(ctx, conn)

	if err := conn.DB.WithContext(ctx).Transaction(fn); err != nil {
		return persistence(ctx, err)
	}
	return nil
}

func release(ctx context.Context, conn *Conn) {
	if err := conn.Close(); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("Failed to close database connection")
	}
}

// persistence leaves domain errors (not found, validation) untouched and classifies everything else.
func persistence(ctx context.Context, err error) error {
	if apperrors.KindOf(err) != 0 {
		return err
	}

	event := zerolog.Ctx(ctx).Error().Err(err)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		event = event.Str("sqlstate", pgErr.Code).Str("constraint", pgErr.ConstraintName)
	}
	event.Msg("Database statement failed")

	return apperrors.Persistence(err)
}
