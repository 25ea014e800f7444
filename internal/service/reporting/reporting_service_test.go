package reporting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fridaxdnt/EcoFinance-Pro/internal/domain/models"
)

type stubReader struct {
	records []models.OperationalRecord
	err     error
}

func (s stubReader) All(context.Context) ([]models.OperationalRecord, error) {
	return s.records, s.err
}

type stubArchive struct {
	saved []models.ExecutiveReport
	err   error
}

func (s *stubArchive) SaveReport(_ context.Context, report models.ExecutiveReport) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, report)
	return nil
}

func TestGenerateAndArchive(t *testing.T) {
	archive := &stubArchive{}
	svc := NewService(stubReader{records: sampleRecords()}, newTestGenerator(t), archive, 100, nil)

	report, err := svc.GenerateAndArchive(context.Background())
	require.NoError(t, err)

	require.Len(t, archive.saved, 1)
	assert.Equal(t, report, archive.saved[0])
	assert.Equal(t, 100.0, report.BaselineEnergyMean)
}

func TestGenerateAndArchiveWithoutArchive(t *testing.T) {
	svc := NewService(stubReader{records: sampleRecords()}, newTestGenerator(t), nil, 100, nil)

	_, err := svc.GenerateAndArchive(context.Background())
	assert.NoError(t, err)
}

func TestGenerateReportErrors(t *testing.T) {
	boom := errors.New("store offline")
	svc := NewService(stubReader{err: boom}, newTestGenerator(t), nil, 100, nil)

	_, err := svc.GenerateReport(context.Background(), 100)
	assert.ErrorIs(t, err, boom)

	svc = NewService(stubReader{}, newTestGenerator(t), nil, 100, nil)
	_, err = svc.GenerateReport(context.Background(), 100)
	assert.ErrorIs(t, err, models.ErrInsufficientData)

	archive := &stubArchive{err: errors.New("write concern")}
	svc = NewService(stubReader{records: sampleRecords()}, newTestGenerator(t), archive, 100, nil)
	_, err = svc.GenerateAndArchive(context.Background())
	assert.ErrorContains(t, err, "archive report")
}
