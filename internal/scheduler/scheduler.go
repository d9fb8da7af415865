package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"SignalSentry/internal/collector"
	"SignalSentry/internal/metrics"
	"SignalSentry/internal/notifier"
)

// Scheduler owns the polling loop: one scan per poll interval, symbols
// processed sequentially within a scan. Overlapping runs are skipped.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Notifier  notifier.Notifier
	Symbols   []string
	Ctx       context.Context
	logger    zerolog.Logger
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, n notifier.Notifier, symbols []string) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		Collector: col,
		Notifier:  n,
		Symbols:   symbols,
		Ctx:       ctx,
		logger:    log.With().Str("component", "scheduler").Logger(),
	}
}

// Register schedules the scan task at the given poll interval.
func (s *Scheduler) Register(pollInterval time.Duration) error {
	spec := fmt.Sprintf("@every %s", pollInterval)
	if _, err := s.Cron.AddFunc(spec, s.scanTask); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.logger.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	s.logger.Info().Msg("scheduler stopped")
}

// RunNow executes a scan immediately, outside the cron cadence.
func (s *Scheduler) RunNow() {
	s.scanTask()
}

func (s *Scheduler) scanTask() {
	defer metrics.ScansTotal.Inc()
	for _, symbol := range s.Symbols {
		if s.Ctx.Err() != nil {
			return
		}
		consensus, err := s.Collector.Analyze(s.Ctx, symbol)
		if err != nil {
			s.logger.Error().Err(err).Str("symbol", symbol).Msg("analyze failed, skipping symbol")
			metrics.FetchErrorsTotal.WithLabelValues(symbol).Inc()
			continue
		}
		metrics.SignalsTotal.WithLabelValues(symbol, string(consensus.Overall)).Inc()
		s.logger.Info().Str("symbol", symbol).Str("signal", string(consensus.Overall)).Msg("consensus")

		if err := s.Notifier.Send(s.Ctx, notifier.FormatConsensus(consensus)); err != nil {
			s.logger.Error().Err(err).Str("symbol", symbol).Msg("notify failed")
		}
	}
}
