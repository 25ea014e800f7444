package sheets

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fridaxdnt/EcoFinance-Pro/internal/domain/models"
)

type fakeSheet struct {
	rows    [][]interface{}
	readErr error
}

func (f *fakeSheet) WriteRow(_ context.Context, _ string, values []interface{}) error {
	f.rows = append(f.rows, values)
	return nil
}

func (f *fakeSheet) ReadRange(context.Context, string) ([][]interface{}, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.rows, nil
}

func TestRecordTableRoundTrip(t *testing.T) {
	sheet := &fakeSheet{}
	table := NewRecordTable(sheet, "Operations!A:L", nil)
	ctx := context.Background()

	rec := models.OperationalRecord{
		Date:                    time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
		Process:                 models.ProcessTransport,
		Material:                "Copper",
		WaterM3:                 12.5,
		EnergyKwh:               80,
		CO2Ton:                  1.1,
		ProductionTon:           3,
		Revenue:                 15000,
		Cost:                    10500,
		EnvironmentalInvestment: 44,
	}

	first, err := table.Append(ctx, rec)
	require.NoError(t, err)
	second, err := table.Append(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)

	all, err := table.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	last := all[1]
	assert.Equal(t, second, last.ID)
	last.ID = 0
	assert.Equal(t, rec, last)
}

func TestRecordTableDecodesSheetValues(t *testing.T) {
	sheet := &fakeSheet{rows: [][]interface{}{
		{"id", "date", "process", "material", "water", "energy", "co2", "waste", "production", "revenue", "cost", "env"},
		{float64(1), "2026-04-02", "Extraction", "Copper", float64(100), "50", "2.5", float64(0), float64(10), float64(50000), float64(35000), float64(100)},
		{float64(2), "2026-04-03", "Smelting", "Copper", float64(1), float64(1), float64(1), float64(0), float64(1), float64(1), float64(1), float64(1)},
		{float64(3), "2026-04-03"},
	}}
	table := NewRecordTable(sheet, "Operations!A:L", nil)

	all, err := table.All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, models.ProcessExtraction, all[0].Process)
	assert.Equal(t, 50.0, all[0].EnergyKwh)
	assert.Equal(t, 2.5, all[0].CO2Ton)
}

func TestRecordTableReadError(t *testing.T) {
	boom := errors.New("quota exceeded")
	table := NewRecordTable(&fakeSheet{readErr: boom}, "Operations!A:L", nil)

	_, err := table.All(context.Background())
	assert.ErrorIs(t, err, boom)

	_, err = table.Append(context.Background(), models.OperationalRecord{})
	assert.ErrorIs(t, err, boom)
}
