// Package sweeper owns the background cleanup of expired pages.
package sweeper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"htmldigest/internal/database"

	"github.com/robfig/cron/v3"
)

const sweepTimeout = time.Minute

// Sweeper deletes expired pages on a fixed interval. A failed sweep is
// logged and retried on the next tick; it never reaches request handlers.
type Sweeper struct {
	ctx       context.Context
	cron      *cron.Cron
	db        *database.Database
	retention time.Duration
	interval  time.Duration
	log       *slog.Logger
}

func New(
	ctx context.Context,
	db *database.Database,
	retention time.Duration,
	interval time.Duration,
	log *slog.Logger,
) *Sweeper {
	return &Sweeper{
		ctx:       ctx,
		cron:      cron.New(),
		db:        db,
		retention: retention,
		interval:  interval,
		log:       log,
	}
}

func (s *Sweeper) Start() error {
	spec := fmt.Sprintf("@every %s", s.interval)

	if _, err := s.cron.AddFunc(spec, s.sweep); err != nil {
		return err
	}

	s.cron.Start()

	return nil
}

func (s *Sweeper) Stop() {
	s.cron.Stop()
}

func (s *Sweeper) sweep() {
	ctx, cancel := context.WithTimeout(s.ctx, sweepTimeout)
	defer cancel()

	select {
	case <-ctx.Done():
		s.log.InfoContext(ctx, "Sweeper context is done",
			"error", ctx.Err())
		return
	default:
	}

	s.Sweep(ctx)
}

// Sweep runs a single cleanup pass.
func (s *Sweeper) Sweep(ctx context.Context) {
	deleted, err := s.db.DeleteExpired(ctx, s.retention)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to delete expired pages",
			"error", err,
			"retentionSeconds", s.retention.Seconds())
		return
	}

	s.log.InfoContext(ctx, "Expired pages are swept",
		"deleted", deleted,
		"retentionSeconds", s.retention.Seconds())
}
