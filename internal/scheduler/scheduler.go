package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/solar-potential-analysis/internal/solar"
	"github.com/i474232898/solar-potential-analysis/internal/store"
)

// Analyzer runs a batch over a selection of provinces.
type Analyzer interface {
	Analyze(ctx context.Context, sel solar.Selection) solar.BatchResult
}

// ReportSaver keeps completed batches.
type ReportSaver interface {
	Save(result solar.BatchResult) store.Report
}

// Scheduler periodically analyzes every province and stores the report.
type Scheduler struct {
	scheduler *gocron.Scheduler
	analyzer  Analyzer
	reports   ReportSaver
	interval  time.Duration
	logger    *slog.Logger
}

// New creates a new Scheduler. A non-positive interval disables it.
func New(interval time.Duration, analyzer Analyzer, reports ReportSaver, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		analyzer:  analyzer,
		reports:   reports,
		interval:  interval,
		logger:    logger,
	}
}

// Start schedules the refresh job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		s.logger.Info("scheduler: refresh disabled")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).SingletonMode().Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.interval)
		defer cancel()
		s.RunOnce(ctx)
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	s.logger.Info("scheduler: started", "interval", s.interval.String())
	return nil
}

// RunOnce analyzes all provinces and stores the result.
func (s *Scheduler) RunOnce(ctx context.Context) store.Report {
	s.logger.Info("scheduler: running solar refresh job")
	started := time.Now()

	result := s.analyzer.Analyze(ctx, solar.Selection{})
	report := s.reports.Save(result)

	s.logger.Info("scheduler: completed solar refresh job",
		"report", report.ID.String(),
		"spots", result.Total,
		"errors", len(result.Errors),
		"took", time.Since(started).String(),
	)
	return report
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
