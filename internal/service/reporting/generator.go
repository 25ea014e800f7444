package reporting

import (
	"fmt"
	"time"

	"github.com/Fridaxdnt/EcoFinance-Pro/internal/domain/models"
	"github.com/Fridaxdnt/EcoFinance-Pro/internal/service/compliance"
	"github.com/Fridaxdnt/EcoFinance-Pro/internal/service/metrics"
)

const periodLayout = "January 2006"

// Generator assembles executive reports from a record snapshot. It never writes.
type Generator struct {
	evaluator  *compliance.Evaluator
	periodDays int
	now        func() time.Time
}

// NewGenerator builds a generator spreading totals over periodDays for daily rates.
func NewGenerator(evaluator *compliance.Evaluator, periodDays int) *Generator {
	return &Generator{evaluator: evaluator, periodDays: periodDays, now: time.Now}
}

// Generate computes the executive report. baselineEnergyMean is the previous period's
// mean energy per record; a lower current mean is reported as an improvement.
func (g *Generator) Generate(records []models.OperationalRecord, baselineEnergyMean float64) (models.ExecutiveReport, error) {
	if len(records) == 0 {
		return models.ExecutiveReport{}, fmt.Errorf("generate report: %w: no operational records", models.ErrInsufficientData)
	}

	totalProduction := metrics.TotalByField(records, metrics.FieldProduction)
	waterIntensity, err := metrics.Ratio(metrics.TotalByField(records, metrics.FieldWater), totalProduction)
	if err != nil {
		return models.ExecutiveReport{}, fmt.Errorf("water intensity: %w", err)
	}

	emissionsPerRevenue, err := metrics.Ratio(metrics.TotalByField(records, metrics.FieldCO2), metrics.TotalByField(records, metrics.FieldRevenue))
	if err != nil {
		return models.ExecutiveReport{}, fmt.Errorf("emissions per revenue: %w", err)
	}

	energyMean, err := metrics.MeanByField(records, metrics.FieldEnergy)
	if err != nil {
		return models.ExecutiveReport{}, err
	}

	co2Mean, err := metrics.MeanByField(records, metrics.FieldCO2)
	if err != nil {
		return models.ExecutiveReport{}, err
	}
	co2Verdict, err := g.evaluator.EvaluateKey(models.ThresholdCO2RecordMeanLimit, co2Mean)
	if err != nil {
		return models.ExecutiveReport{}, err
	}

	waterDaily, err := metrics.DailyRate(records, metrics.FieldWater, g.periodDays)
	if err != nil {
		return models.ExecutiveReport{}, err
	}
	waterVerdict, err := g.evaluator.EvaluateKey(models.ThresholdWaterDailyLimit, waterDaily)
	if err != nil {
		return models.ExecutiveReport{}, err
	}

	generatedAt := g.now()

	return models.ExecutiveReport{
		Period:              generatedAt.Format(periodLayout),
		RecordCount:         len(records),
		TotalProductionTon:  totalProduction,
		WaterIntensity:      waterIntensity,
		EmissionsPerRevenue: emissionsPerRevenue,
		EnergyMeanKwh:       energyMean,
		BaselineEnergyMean:  baselineEnergyMean,
		EnergyTrend:         trend(energyMean, baselineEnergyMean),
		CO2MeanTon:          co2Mean,
		CO2Compliance:       co2Verdict,
		WaterDailyRate:      waterDaily,
		WaterCompliance:     waterVerdict,
		EmissionsByProcess:  metrics.GroupedTotal(records, metrics.GroupByProcess, metrics.FieldCO2),
		GeneratedAt:         generatedAt,
	}, nil
}

func trend(current, baseline float64) models.Trend {
	if current < baseline {
		return models.TrendImproved
	}
	return models.TrendWorsened
}
