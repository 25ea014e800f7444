package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Fridaxdnt/EcoFinance-Pro/internal/config"
	"github.com/Fridaxdnt/EcoFinance-Pro/internal/domain/models"
)

// ReportProducer generates (and archives, when configured) the executive report.
type ReportProducer interface {
	GenerateAndArchive(ctx context.Context) (models.ExecutiveReport, error)
}

// ReportSender delivers a report to a recipient.
type ReportSender interface {
	SendReport(ctx context.Context, to string, report models.ExecutiveReport) error
}

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron      *cron.Cron
	schedule  string
	reports   ReportProducer
	sender    ReportSender
	recipient string
	logger    *zap.Logger
}

// NewScheduler creates a scheduler running in the configured timezone. sender may be nil,
// in which case reports are only generated and archived.
func NewScheduler(cfg config.ReportingConfig, recipient string, reports ReportProducer, sender ReportSender, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", cfg.Timezone, err)
	}

	return &Scheduler{
		cron:      cron.New(cron.WithLocation(loc)),
		schedule:  cfg.CronSchedule,
		reports:   reports,
		sender:    sender,
		recipient: recipient,
		logger:    logger,
	}, nil
}

// Start registers the executive report job and starts the scheduler.
func (s *Scheduler) Start() error {
	s.logger.Info("starting scheduler", zap.String("schedule", s.schedule))

	if _, err := s.cron.AddFunc(s.schedule, s.runExecutiveReport); err != nil {
		return fmt.Errorf("schedule executive report %q: %w", s.schedule, err)
	}

	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) runExecutiveReport() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := s.RunOnce(ctx); err != nil {
		s.logger.Error("executive report job failed", zap.Error(err))
	}
}

// RunOnce generates the report and sends it when a sender and recipient are configured.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	s.logger.Info("generating executive report")

	report, err := s.reports.GenerateAndArchive(ctx)
	if err != nil {
		return fmt.Errorf("generate executive report: %w", err)
	}

	if s.sender == nil || s.recipient == "" {
		return nil
	}

	if err := s.sender.SendReport(ctx, s.recipient, report); err != nil {
		return fmt.Errorf("send executive report: %w", err)
	}

	s.logger.Info("executive report sent successfully", zap.String("period", report.Period))
	return nil
}
