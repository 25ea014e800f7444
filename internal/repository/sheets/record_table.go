package sheets

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Fridaxdnt/EcoFinance-Pro/internal/domain/models"
)

// Column order of the records sheet (A:L).
const recordColumns = 12

// RecordTable stores operational records as sheet rows. Ids are the row count at append
// time, so appends from this process are serialized through mu.
type RecordTable struct {
	repo   Repository
	rng    string
	mu     sync.Mutex
	logger *zap.Logger
}

// NewRecordTable binds the table to a sheet range such as "Operations!A:L".
func NewRecordTable(repo Repository, sheetRange string, logger *zap.Logger) *RecordTable {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecordTable{repo: repo, rng: sheetRange, logger: logger}
}

// Append writes record as a new row.
func (t *RecordTable) Append(ctx context.Context, record models.OperationalRecord) (int64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rows, err := t.repo.ReadRange(ctx, t.rng)
	if err != nil {
		return 0, fmt.Errorf("count record rows: %w", err)
	}

	record.ID = int64(len(rows)) + 1
	if err := t.repo.WriteRow(ctx, t.rng, encodeRecord(record)); err != nil {
		return 0, err
	}
	return record.ID, nil
}

// All reads every row in sheet order. Rows that do not decode are skipped and logged.
func (t *RecordTable) All(ctx context.Context) ([]models.OperationalRecord, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rows, err := t.repo.ReadRange(ctx, t.rng)
	if err != nil {
		return nil, fmt.Errorf("load records range: %w", err)
	}

	records := make([]models.OperationalRecord, 0, len(rows))
	for i, row := range rows {
		rec, err := decodeRecord(row)
		if err != nil {
			t.logger.Debug("skip record row", zap.Int("row", i+1), zap.Error(err))
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// Close is a no-op; the Sheets client holds no connection.
func (t *RecordTable) Close(context.Context) error {
	return nil
}

func encodeRecord(r models.OperationalRecord) []interface{} {
	return []interface{}{
		r.ID,
		r.Date.Format(models.DateLayout),
		string(r.Process),
		r.Material,
		r.WaterM3,
		r.EnergyKwh,
		r.CO2Ton,
		r.WasteTon,
		r.ProductionTon,
		r.Revenue,
		r.Cost,
		r.EnvironmentalInvestment,
	}
}

func decodeRecord(row []interface{}) (models.OperationalRecord, error) {
	if len(row) < recordColumns {
		return models.OperationalRecord{}, fmt.Errorf("expected %d columns, got %d", recordColumns, len(row))
	}

	id, err := parseInt(row[0])
	if err != nil {
		return models.OperationalRecord{}, fmt.Errorf("id: %w", err)
	}
	date, err := parseDate(row[1])
	if err != nil {
		return models.OperationalRecord{}, fmt.Errorf("date: %w", err)
	}
	process, err := models.ParseProcess(fmt.Sprint(row[2]))
	if err != nil {
		return models.OperationalRecord{}, err
	}

	numbers := make([]float64, 0, recordColumns-4)
	for _, cell := range row[4:recordColumns] {
		v, err := parseFloat(cell)
		if err != nil {
			return models.OperationalRecord{}, err
		}
		numbers = append(numbers, v)
	}

	return models.OperationalRecord{
		ID:                      int64(id),
		Date:                    date,
		Process:                 process,
		Material:                fmt.Sprint(row[3]),
		WaterM3:                 numbers[0],
		EnergyKwh:               numbers[1],
		CO2Ton:                  numbers[2],
		WasteTon:                numbers[3],
		ProductionTon:           numbers[4],
		Revenue:                 numbers[5],
		Cost:                    numbers[6],
		EnvironmentalInvestment: numbers[7],
	}, nil
}

func parseDate(value interface{}) (time.Time, error) {
	str := fmt.Sprint(value)
	if str == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if len(str) > 10 {
		str = str[:10]
	}
	return time.Parse(models.DateLayout, str)
}

func parseInt(value interface{}) (int, error) {
	if f, ok := value.(float64); ok {
		return int(f), nil
	}
	str := fmt.Sprint(value)
	if str == "" {
		return 0, fmt.Errorf("empty numeric value")
	}
	return strconv.Atoi(str)
}

func parseFloat(value interface{}) (float64, error) {
	if f, ok := value.(float64); ok {
		return f, nil
	}
	str := fmt.Sprint(value)
	if str == "" {
		return 0, fmt.Errorf("empty numeric value")
	}
	return strconv.ParseFloat(str, 64)
}
