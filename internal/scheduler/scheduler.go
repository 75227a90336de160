package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/marell/syndimarket/internal/aggregate"
)

// Scheduler owns the cron runner and the catalogue prewarm job.
type Scheduler struct {
	cron   *cron.Cron
	agg    *aggregate.Aggregator
	logger *slog.Logger
}

// New creates a Scheduler. Jobs are registered separately.
func New(agg *aggregate.Aggregator, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		cron:   cron.New(),
		agg:    agg,
		logger: logger,
	}
}

// RegisterPrewarm schedules a forced catalogue refresh on the given cron
// expression. An empty expression disables the job.
func (s *Scheduler) RegisterPrewarm(spec string) error {
	if spec == "" {
		return nil
	}
	if _, err := s.cron.AddFunc(spec, s.prewarm); err != nil {
		return fmt.Errorf("register prewarm job: %w", err)
	}
	s.logger.Info("catalogue prewarm scheduled", "cron", spec)
	return nil
}

// Start begins running registered jobs in their own goroutines.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the runner and waits for in-flight jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) prewarm() {
	start := time.Now()
	results, err := s.agg.Catalogue(context.Background(), true)
	if err != nil {
		if errors.Is(err, aggregate.ErrNoData) {
			s.logger.Error("catalogue prewarm produced no data", "err", err)
			return
		}
		s.logger.Error("catalogue prewarm failed", "err", err)
		return
	}
	s.logger.Info("catalogue prewarm complete",
		"items", len(results),
		"duration", time.Since(start),
	)
}
