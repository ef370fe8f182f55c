// Package dbtest provides an Acquirer backed by go-sqlmock for handler and job tests.
package dbtest

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"

	"github.com/ali-320/EduTrack-CC-Assignment-2/database"
)

type Acquirer struct {
	Mock  sqlmock.Sqlmock
	Err   error
	Calls int
	conn  *database.Conn
}

// New returns an Acquirer whose single connection is a sqlmock behind the postgres dialector.
// Unmet expectations fail the test at cleanup.
func New(t *testing.T) *Acquirer {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	conn, err := database.NewConn(postgres.New(postgres.Config{Conn: db}))
	if err != nil {
		t.Fatalf("failed to open gorm over sqlmock: %v", err)
	}

	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sql expectations: %v", err)
		}
	})

	return &Acquirer{Mock: mock, conn: conn}
}

// Failing returns an Acquirer that always fails with err and never touches a database.
func Failing(err error) *Acquirer {
	return &Acquirer{Err: err}
}

func (a *Acquirer) Acquire(_ context.Context) (*database.Conn, error) {
	a.Calls++
	if a.Err != nil {
		return nil, a.Err
	}
	return a.conn, nil
}
