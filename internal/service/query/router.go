// Package query answers free-text questions by keyword-routing them to a fixed set of
// analyses. There is no language understanding: the first trigger term found in the
// question selects the intent.
package query

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Fridaxdnt/EcoFinance-Pro/internal/domain/models"
	"github.com/Fridaxdnt/EcoFinance-Pro/internal/service/compliance"
	"github.com/Fridaxdnt/EcoFinance-Pro/internal/service/metrics"
)

// Trigger maps a lower-case term to the intent it selects.
type Trigger struct {
	Term   string
	Intent models.Intent
}

// DefaultTriggers is checked in order; earlier entries win when a question matches several.
var DefaultTriggers = []Trigger{
	{Term: "agua", Intent: models.IntentWaterEfficiency},
	{Term: "hídric", Intent: models.IntentWaterEfficiency},
	{Term: "hidric", Intent: models.IntentWaterEfficiency},
	{Term: "water", Intent: models.IntentWaterEfficiency},
	{Term: "emision", Intent: models.IntentEmissions},
	{Term: "emisión", Intent: models.IntentEmissions},
	{Term: "emission", Intent: models.IntentEmissions},
	{Term: "co2", Intent: models.IntentEmissions},
	{Term: "co₂", Intent: models.IntentEmissions},
}

// waterRecommendation is illustrative and independent of the records analysed.
var waterRecommendation = models.Recommendation{
	Summary:       "Implement a water recirculation system",
	InvestmentUSD: 1_200_000,
	ROIYears:      3,
	Heuristic:     true,
}

type handlerFunc func(records []models.OperationalRecord, answer *models.StructuredAnswer) error

// Router dispatches questions to intent handlers.
type Router struct {
	evaluator  *compliance.Evaluator
	references []models.LegalReference
	periodDays int
	triggers   []Trigger
	handlers   map[models.Intent]handlerFunc
	logger     *zap.Logger
}

// NewRouter wires a router using DefaultTriggers.
func NewRouter(evaluator *compliance.Evaluator, references []models.LegalReference, periodDays int, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Router{
		evaluator:  evaluator,
		references: append([]models.LegalReference(nil), references...),
		periodDays: periodDays,
		triggers:   DefaultTriggers,
		logger:     logger,
	}
	r.handlers = map[models.Intent]handlerFunc{
		models.IntentWaterEfficiency: r.waterEfficiency,
		models.IntentEmissions:       r.emissions,
	}
	return r
}

// WithTriggers replaces the trigger table. Terms are matched case-insensitively.
func (r *Router) WithTriggers(triggers []Trigger) *Router {
	normalized := make([]Trigger, 0, len(triggers))
	for _, t := range triggers {
		normalized = append(normalized, Trigger{Term: strings.ToLower(t.Term), Intent: t.Intent})
	}
	r.triggers = normalized
	return r
}

// Classify selects the intent of question.
func (r *Router) Classify(question string) models.Intent {
	normalized := strings.ToLower(question)
	for _, t := range r.triggers {
		if t.Term != "" && strings.Contains(normalized, t.Term) {
			return t.Intent
		}
	}
	return models.IntentUnknown
}

// Answer runs the analysis selected by question over records. Every answer carries the
// legal reference section. When records cannot support the analysis the answer is
// flagged InsufficientData and the error wrapping models.ErrInsufficientData is returned
// alongside it.
func (r *Router) Answer(question string, records []models.OperationalRecord) (models.StructuredAnswer, error) {
	intent := r.Classify(question)
	answer := models.StructuredAnswer{
		Question: question,
		Intent:   intent,
		Legal:    r.references,
	}

	handler, ok := r.handlers[intent]
	if !ok {
		return answer, nil
	}

	if err := handler(records, &answer); err != nil {
		if errors.Is(err, models.ErrInsufficientData) {
			r.logger.Debug("not enough records for intent", zap.String("intent", string(intent)), zap.Int("records", len(records)))
			answer.InsufficientData = true
			answer.Water = nil
			answer.Emissions = nil
		}
		return answer, fmt.Errorf("answer %s question: %w", intent, err)
	}

	return answer, nil
}

func (r *Router) waterEfficiency(records []models.OperationalRecord, answer *models.StructuredAnswer) error {
	if len(records) == 0 {
		return fmt.Errorf("%w: no operational records", models.ErrInsufficientData)
	}

	ranking := metrics.GroupedRatio(records, metrics.GroupByProcess, metrics.FieldProduction, metrics.FieldWater)
	best, err := metrics.BestGroup(ranking)
	if err != nil {
		return err
	}

	dailyRate, err := metrics.DailyRate(records, metrics.FieldWater, r.periodDays)
	if err != nil {
		return err
	}

	verdict, err := r.evaluator.EvaluateKey(models.ThresholdWaterDailyLimit, dailyRate)
	if err != nil {
		return err
	}

	answer.Water = &models.WaterEfficiencyAnalysis{
		Ranking:        ranking,
		BestProcess:    best,
		BestRatio:      ranking[0].Ratio,
		TotalWaterM3:   metrics.TotalByField(records, metrics.FieldWater),
		DailyRate:      dailyRate,
		PeriodDays:     r.periodDays,
		Compliance:     verdict,
		Recommendation: waterRecommendation,
	}
	return nil
}

func (r *Router) emissions(records []models.OperationalRecord, answer *models.StructuredAnswer) error {
	if len(records) == 0 {
		return fmt.Errorf("%w: no operational records", models.ErrInsufficientData)
	}

	byProcess := metrics.GroupedTotal(records, metrics.GroupByProcess, metrics.FieldCO2)
	keyProcess, err := metrics.BestGroup(byProcess)
	if err != nil {
		return err
	}

	dailyRate, err := metrics.DailyRate(records, metrics.FieldCO2, r.periodDays)
	if err != nil {
		return err
	}

	verdict, err := r.evaluator.EvaluateKey(models.ThresholdCO2DailyLimit, dailyRate)
	if err != nil {
		return err
	}

	answer.Emissions = &models.EmissionsAnalysis{
		TotalCO2Ton:   metrics.TotalByField(records, metrics.FieldCO2),
		KeyProcess:    keyProcess,
		KeyProcessCO2: byProcess[0].Ratio,
		DailyRate:     dailyRate,
		PeriodDays:    r.periodDays,
		Compliance:    verdict,
	}
	return nil
}
