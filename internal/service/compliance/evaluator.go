package compliance

import (
	"fmt"

	"github.com/Fridaxdnt/EcoFinance-Pro/internal/domain/models"
)

// Evaluator compares observed values with the static regulatory thresholds.
// It performs no unit normalization; callers supply values in the threshold's unit.
type Evaluator struct {
	thresholds map[string]models.RegulatoryThreshold
}

// NewEvaluator copies the threshold table so later changes to the source map are not observed.
func NewEvaluator(thresholds map[string]models.RegulatoryThreshold) *Evaluator {
	table := make(map[string]models.RegulatoryThreshold, len(thresholds))
	for k, v := range thresholds {
		table[k] = v
	}
	return &Evaluator{thresholds: table}
}

// Evaluate passes when observed does not exceed the threshold limit.
func Evaluate(observed float64, threshold models.RegulatoryThreshold) models.ComplianceVerdict {
	return models.ComplianceVerdict{
		MetricName: threshold.Name,
		Observed:   observed,
		Threshold:  threshold.LimitValue,
		Unit:       threshold.Unit,
		Citation:   threshold.Citation,
		Passed:     observed <= threshold.LimitValue,
	}
}

// Threshold looks up a threshold by its fixed key.
func (e *Evaluator) Threshold(key string) (models.RegulatoryThreshold, error) {
	th, ok := e.thresholds[key]
	if !ok {
		return models.RegulatoryThreshold{}, fmt.Errorf("%w: unknown threshold %q", models.ErrConfiguration, key)
	}
	return th, nil
}

// EvaluateKey resolves key and evaluates observed against it.
func (e *Evaluator) EvaluateKey(key string, observed float64) (models.ComplianceVerdict, error) {
	th, err := e.Threshold(key)
	if err != nil {
		return models.ComplianceVerdict{}, err
	}
	return Evaluate(observed, th), nil
}

// Thresholds returns the table in a stable key order for presentation.
func (e *Evaluator) Thresholds() []models.RegulatoryThreshold {
	keys := []string{models.ThresholdCO2DailyLimit, models.ThresholdWaterDailyLimit, models.ThresholdCO2RecordMeanLimit}
	out := make([]models.RegulatoryThreshold, 0, len(e.thresholds))
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if th, ok := e.thresholds[k]; ok {
			out = append(out, th)
			seen[k] = true
		}
	}
	for k, th := range e.thresholds {
		if !seen[k] {
			out = append(out, th)
		}
	}
	return out
}
