// Package records is the append-only record store. It validates and derives record fields
// before handing them to a backing Repository; there is no update or delete.
package records

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Fridaxdnt/EcoFinance-Pro/internal/config"
	"github.com/Fridaxdnt/EcoFinance-Pro/internal/domain/models"
)

// Repository is the persistence collaborator behind the store.
type Repository interface {
	Append(ctx context.Context, record models.OperationalRecord) (int64, error)
	All(ctx context.Context) ([]models.OperationalRecord, error)
}

// Service implements the record store contract over a Repository.
type Service struct {
	repo     Repository
	regime   config.Regime
	validate *validator.Validate
	logger   *zap.Logger
}

// NewService wires a record store.
func NewService(repo Repository, regime config.Regime, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	v, err := newValidator()
	if err != nil {
		panic(err)
	}

	return &Service{
		repo:     repo,
		regime:   regime,
		validate: v,
		logger:   logger,
	}
}

func newValidator() (*validator.Validate, error) {
	v := validator.New()
	if err := v.RegisterValidation("process", func(fl validator.FieldLevel) bool {
		return models.Process(fl.Field().String()).Valid()
	}); err != nil {
		return nil, fmt.Errorf("register process validation: %w", err)
	}
	if err := v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	}); err != nil {
		return nil, fmt.Errorf("register finite validation: %w", err)
	}
	return v, nil
}

// Append validates record and stores it, returning the assigned id.
func (s *Service) Append(ctx context.Context, record models.OperationalRecord) (int64, error) {
	if err := s.validate.Struct(record); err != nil {
		return 0, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	id, err := s.repo.Append(ctx, record)
	if err != nil {
		return 0, fmt.Errorf("append record: %w", err)
	}

	s.logger.Debug("record appended",
		zap.Int64("id", id),
		zap.String("process", string(record.Process)),
		zap.Time("date", record.Date))

	return id, nil
}

// All returns every record in insertion order.
func (s *Service) All(ctx context.Context) ([]models.OperationalRecord, error) {
	records, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	return records, nil
}

// Capture turns a capture-form tuple into a record, derives revenue, cost and
// environmental investment from the regime, and appends it.
func (s *Service) Capture(ctx context.Context, in models.CaptureInput) (models.OperationalRecord, error) {
	record, err := s.Build(in)
	if err != nil {
		return models.OperationalRecord{}, err
	}

	id, err := s.Append(ctx, record)
	if err != nil {
		return models.OperationalRecord{}, err
	}
	record.ID = id

	return record, nil
}

// Build converts a capture tuple into an unsaved record.
func (s *Service) Build(in models.CaptureInput) (models.OperationalRecord, error) {
	date, err := time.Parse(models.DateLayout, in.Date)
	if err != nil {
		return models.OperationalRecord{}, fmt.Errorf("%w: date %q must use %s", models.ErrValidation, in.Date, models.DateLayout)
	}

	process, err := models.ParseProcess(in.Process)
	if err != nil {
		return models.OperationalRecord{}, err
	}

	record := models.OperationalRecord{
		Date:                    date,
		Process:                 process,
		Material:                s.regime.Material,
		WaterM3:                 in.WaterM3,
		EnergyKwh:               in.EnergyKwh,
		CO2Ton:                  in.CO2Ton,
		WasteTon:                0,
		ProductionTon:           in.ProductionTon,
		Revenue:                 in.ProductionTon * s.regime.UnitPrice,
		Cost:                    in.ProductionTon * s.regime.UnitCost,
		EnvironmentalInvestment: in.CO2Ton * s.regime.EnvInvestmentRate,
	}

	// Derived fields overflow to +Inf for very large inputs.
	derived := []struct {
		name  string
		value float64
	}{
		{"revenue", record.Revenue},
		{"cost", record.Cost},
		{"environmental investment", record.EnvironmentalInvestment},
	}
	for _, d := range derived {
		if math.IsInf(d.value, 0) || math.IsNaN(d.value) {
			return models.OperationalRecord{}, fmt.Errorf("%w: derived %s is not finite", models.ErrValidation, d.name)
		}
	}

	return record, nil
}
