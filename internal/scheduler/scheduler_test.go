package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fridaxdnt/EcoFinance-Pro/internal/config"
	"github.com/Fridaxdnt/EcoFinance-Pro/internal/domain/models"
)

type stubProducer struct {
	report models.ExecutiveReport
	err    error
	calls  int
}

func (s *stubProducer) GenerateAndArchive(context.Context) (models.ExecutiveReport, error) {
	s.calls++
	return s.report, s.err
}

type stubSender struct {
	to      []string
	reports []models.ExecutiveReport
}

func (s *stubSender) SendReport(_ context.Context, to string, report models.ExecutiveReport) error {
	s.to = append(s.to, to)
	s.reports = append(s.reports, report)
	return nil
}

var reportingCfg = config.ReportingConfig{CronSchedule: "0 8 1 * *", Timezone: "America/Lima"}

func TestRunOnceSendsReport(t *testing.T) {
	producer := &stubProducer{report: models.ExecutiveReport{Period: "March 2026"}}
	sender := &stubSender{}
	s, err := NewScheduler(reportingCfg, "51999", producer, sender, nil)
	require.NoError(t, err)

	require.NoError(t, s.RunOnce(context.Background()))

	assert.Equal(t, 1, producer.calls)
	assert.Equal(t, []string{"51999"}, sender.to)
	assert.Equal(t, "March 2026", sender.reports[0].Period)
}

func TestRunOnceWithoutRecipientOnlyGenerates(t *testing.T) {
	producer := &stubProducer{}
	sender := &stubSender{}
	s, err := NewScheduler(reportingCfg, "", producer, sender, nil)
	require.NoError(t, err)

	require.NoError(t, s.RunOnce(context.Background()))
	assert.Equal(t, 1, producer.calls)
	assert.Empty(t, sender.to)
}

func TestRunOnceSurfacesInsufficientData(t *testing.T) {
	producer := &stubProducer{err: models.ErrInsufficientData}
	sender := &stubSender{}
	s, err := NewScheduler(reportingCfg, "51999", producer, sender, nil)
	require.NoError(t, err)

	err = s.RunOnce(context.Background())
	assert.True(t, errors.Is(err, models.ErrInsufficientData))
	assert.Empty(t, sender.to)
}

func TestStartRejectsBadSchedule(t *testing.T) {
	cfg := reportingCfg
	cfg.CronSchedule = "every friday"
	s, err := NewScheduler(cfg, "", &stubProducer{}, nil, nil)
	require.NoError(t, err)

	assert.Error(t, s.Start())
}

func TestNewSchedulerRejectsBadTimezone(t *testing.T) {
	cfg := reportingCfg
	cfg.Timezone = "Nowhere/Land"

	_, err := NewScheduler(cfg, "", &stubProducer{}, nil, nil)
	assert.Error(t, err)
}

func TestStartStop(t *testing.T) {
	s, err := NewScheduler(reportingCfg, "", &stubProducer{}, nil, nil)
	require.NoError(t, err)

	require.NoError(t, s.Start())
	s.Stop()
}
