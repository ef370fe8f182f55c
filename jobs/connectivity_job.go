package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/ali-320/EduTrack-CC-Assignment-2/database"
)

const checkTimeout = 15 * time.Second

// ConnectivityCheck resolves credentials, opens a connection and runs SELECT 1, the same path a request takes.
type ConnectivityCheck struct {
	db database.Acquirer
}

func NewConnectivityCheck(db database.Acquirer) *ConnectivityCheck {
	return &ConnectivityCheck{db: db}
}

// Run satisfies cron.Job.
func (p *ConnectivityCheck) Run() {
	_ = p.Check(context.Background())
}

func (p *ConnectivityCheck) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	start := time.Now()
	err := database.WithConn(ctx, p.db, func(db *gorm.DB) error {
		return db.Exec("SELECT 1").Error
	})
	elapsed := time.Since(start)

	if err != nil {
		log.Warn().Err(err).Dur("elapsed", elapsed).Msg("Database connectivity check failed")
		return err
	}
	log.Debug().Dur("elapsed", elapsed).Msg("Database connectivity check passed")
	return nil
}

// Schedule registers the check under a standard five-field cron spec. Overlapping runs are skipped.
func Schedule(spec string, check *ConnectivityCheck) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	if _, err := c.AddJob(spec, check); err != nil {
		return nil, fmt.Errorf("invalid check schedule %q: %w", spec, err)
	}
	return c, nil
}
