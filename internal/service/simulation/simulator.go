// Package simulation projects savings for a hypothetical sustainability investment.
// Outputs come from fixed heuristic multipliers, not from recorded data; they are
// illustrative and flagged as such.
package simulation

import (
	"fmt"
	"math"

	"github.com/Fridaxdnt/EcoFinance-Pro/internal/domain/models"
)

const (
	minTermYears = 1
	maxTermYears = 10
)

// Simulator holds the heuristic multipliers.
type Simulator struct {
	savingsRate   float64
	reductionBand string
}

// NewSimulator builds a simulator saving savingsRate of the investment each year.
func NewSimulator(savingsRate float64, reductionBand string) *Simulator {
	return &Simulator{savingsRate: savingsRate, reductionBand: reductionBand}
}

// Simulate projects a scenario. ROIYears echoes termYears and ComplianceAfter is always
// true; both are known weak heuristics kept for parity with the capture tool.
func (s *Simulator) Simulate(investmentAmount float64, termYears int, technology models.Technology) (models.SimulationResult, error) {
	if math.IsNaN(investmentAmount) || math.IsInf(investmentAmount, 0) {
		return models.SimulationResult{}, fmt.Errorf("%w: investment amount must be finite", models.ErrValidation)
	}
	if investmentAmount < 0 {
		return models.SimulationResult{}, fmt.Errorf("%w: investment amount must not be negative", models.ErrValidation)
	}
	if termYears < minTermYears || termYears > maxTermYears {
		return models.SimulationResult{}, fmt.Errorf("%w: term must be between %d and %d years, got %d", models.ErrValidation, minTermYears, maxTermYears, termYears)
	}
	if !validTechnology(technology) {
		return models.SimulationResult{}, fmt.Errorf("%w: unknown technology %q", models.ErrValidation, technology)
	}

	return models.SimulationResult{
		InvestmentAmount:      investmentAmount,
		TermYears:             termYears,
		Technology:            technology,
		AnnualSavings:         investmentAmount * s.savingsRate,
		ReductionRangePercent: s.reductionBand,
		ROIYears:              termYears,
		ComplianceAfter:       true,
		Illustrative:          true,
	}, nil
}

func validTechnology(t models.Technology) bool {
	for _, candidate := range models.Technologies {
		if t == candidate {
			return true
		}
	}
	return false
}
