// Package metrics computes aggregates over operational records. Every function is pure;
// ratios and means fail with models.ErrInsufficientData instead of yielding NaN or Inf.
package metrics

import (
	"fmt"
	"sort"

	"github.com/Fridaxdnt/EcoFinance-Pro/internal/domain/models"
)

// Field names a numeric column of an operational record.
type Field string

const (
	FieldWater                   Field = "water_m3"
	FieldEnergy                  Field = "energy_kwh"
	FieldCO2                     Field = "co2_ton"
	FieldWaste                   Field = "waste_ton"
	FieldProduction              Field = "production_ton"
	FieldRevenue                 Field = "revenue"
	FieldCost                    Field = "cost"
	FieldEnvironmentalInvestment Field = "environmental_investment"
)

// GroupKey names the record attribute used to partition records.
type GroupKey string

const (
	GroupByProcess  GroupKey = "process"
	GroupByMaterial GroupKey = "material"
)

// Value extracts field from rec. Unknown fields read as zero.
func Value(rec models.OperationalRecord, field Field) float64 {
	switch field {
	case FieldWater:
		return rec.WaterM3
	case FieldEnergy:
		return rec.EnergyKwh
	case FieldCO2:
		return rec.CO2Ton
	case FieldWaste:
		return rec.WasteTon
	case FieldProduction:
		return rec.ProductionTon
	case FieldRevenue:
		return rec.Revenue
	case FieldCost:
		return rec.Cost
	case FieldEnvironmentalInvestment:
		return rec.EnvironmentalInvestment
	default:
		return 0
	}
}

func groupValue(rec models.OperationalRecord, key GroupKey) string {
	switch key {
	case GroupByMaterial:
		return rec.Material
	default:
		return string(rec.Process)
	}
}

// TotalByField sums field across records. Empty input yields 0.
func TotalByField(records []models.OperationalRecord, field Field) float64 {
	var total float64
	for _, rec := range records {
		total += Value(rec, field)
	}
	return total
}

// MeanByField averages field across records.
func MeanByField(records []models.OperationalRecord, field Field) (float64, error) {
	if len(records) == 0 {
		return 0, fmt.Errorf("%w: mean of %s over zero records", models.ErrInsufficientData, field)
	}
	return TotalByField(records, field) / float64(len(records)), nil
}

// Ratio divides num by den, refusing a zero denominator.
func Ratio(num, den float64) (float64, error) {
	if den == 0 {
		return 0, fmt.Errorf("%w: zero denominator", models.ErrInsufficientData)
	}
	return num / den, nil
}

type groupSums struct {
	key string
	num float64
	den float64
}

// partition sums num and den per group, preserving first-seen group order.
func partition(records []models.OperationalRecord, key GroupKey, num, den Field) []*groupSums {
	index := make(map[string]*groupSums)
	order := make([]*groupSums, 0)

	for _, rec := range records {
		k := groupValue(rec, key)
		g, ok := index[k]
		if !ok {
			g = &groupSums{key: k}
			index[k] = g
			order = append(order, g)
		}
		g.num += Value(rec, num)
		g.den += Value(rec, den)
	}

	return order
}

// GroupedRatio computes sum(num)/sum(den) per distinct group value, sorted descending by
// ratio. Groups whose denominator sums to zero are excluded. Ties keep first-seen order.
func GroupedRatio(records []models.OperationalRecord, key GroupKey, num, den Field) []models.GroupRatio {
	ranking := make([]models.GroupRatio, 0)
	for _, g := range partition(records, key, num, den) {
		ratio, err := Ratio(g.num, g.den)
		if err != nil {
			continue
		}
		ranking = append(ranking, models.GroupRatio{Group: g.key, Ratio: ratio})
	}

	sortDescending(ranking)
	return ranking
}

// GroupedTotal sums field per distinct group value, sorted descending by total.
func GroupedTotal(records []models.OperationalRecord, key GroupKey, field Field) []models.GroupRatio {
	groups := partition(records, key, field, field)
	totals := make([]models.GroupRatio, 0, len(groups))
	for _, g := range groups {
		totals = append(totals, models.GroupRatio{Group: g.key, Ratio: g.num})
	}

	sortDescending(totals)
	return totals
}

// BestGroup returns the highest-ranked group of a ranking produced by GroupedRatio or GroupedTotal.
func BestGroup(ranking []models.GroupRatio) (string, error) {
	if len(ranking) == 0 {
		return "", fmt.Errorf("%w: empty ranking", models.ErrInsufficientData)
	}
	return ranking[0].Group, nil
}

// DailyRate spreads the total of field evenly over periodDays.
func DailyRate(records []models.OperationalRecord, field Field, periodDays int) (float64, error) {
	if periodDays <= 0 {
		return 0, fmt.Errorf("%w: period must be positive, got %d days", models.ErrValidation, periodDays)
	}
	if len(records) == 0 {
		return 0, fmt.Errorf("%w: daily rate of %s over zero records", models.ErrInsufficientData, field)
	}
	return TotalByField(records, field) / float64(periodDays), nil
}

func sortDescending(ranking []models.GroupRatio) {
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Ratio > ranking[j].Ratio
	})
}
