package reporting

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Fridaxdnt/EcoFinance-Pro/internal/domain/models"
)

// RecordReader is the read side of the record store.
type RecordReader interface {
	All(ctx context.Context) ([]models.OperationalRecord, error)
}

// Archive persists generated reports.
type Archive interface {
	SaveReport(ctx context.Context, report models.ExecutiveReport) error
}

// Service loads a record snapshot and turns it into an executive report.
type Service struct {
	records   RecordReader
	generator *Generator
	archive   Archive
	baseline  float64
	logger    *zap.Logger
}

// NewService wires a reporting service. archive may be nil when reports are not persisted.
func NewService(records RecordReader, generator *Generator, archive Archive, baselineEnergyMean float64, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		records:   records,
		generator: generator,
		archive:   archive,
		baseline:  baselineEnergyMean,
		logger:    logger,
	}
}

// Baseline returns the configured energy baseline.
func (s *Service) Baseline() float64 {
	return s.baseline
}

// GenerateReport builds the report over all records against baseline.
func (s *Service) GenerateReport(ctx context.Context, baseline float64) (models.ExecutiveReport, error) {
	records, err := s.records.All(ctx)
	if err != nil {
		return models.ExecutiveReport{}, fmt.Errorf("load records: %w", err)
	}

	report, err := s.generator.Generate(records, baseline)
	if err != nil {
		return models.ExecutiveReport{}, err
	}

	s.logger.Debug("executive report generated",
		zap.String("period", report.Period),
		zap.Int("records", report.RecordCount),
		zap.String("trend", string(report.EnergyTrend)))

	return report, nil
}

// GenerateAndArchive builds the report with the configured baseline and stores it when
// an archive is configured.
func (s *Service) GenerateAndArchive(ctx context.Context) (models.ExecutiveReport, error) {
	report, err := s.GenerateReport(ctx, s.baseline)
	if err != nil {
		return models.ExecutiveReport{}, err
	}

	if s.archive == nil {
		return report, nil
	}

	if err := s.archive.SaveReport(ctx, report); err != nil {
		return report, fmt.Errorf("archive report: %w", err)
	}
	s.logger.Info("executive report archived", zap.String("period", report.Period))

	return report, nil
}
