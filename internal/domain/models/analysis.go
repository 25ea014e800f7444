package models

// GroupRatio pairs a group value with its computed ratio (or total).
type GroupRatio struct {
	Group string  `bson:"group" json:"group"`
	Ratio float64 `bson:"ratio" json:"ratio"`
}

// Intent is the analysis selected for a free-text question.
type Intent string

const (
	IntentWaterEfficiency Intent = "water_efficiency"
	IntentEmissions       Intent = "emissions"
	IntentUnknown         Intent = "unknown"
)

// Recommendation is an illustrative investment suggestion. Heuristic is always true:
// the figures are static, not computed from records.
type Recommendation struct {
	Summary       string  `json:"summary"`
	InvestmentUSD float64 `json:"investment_usd"`
	ROIYears      float64 `json:"roi_years"`
	Heuristic     bool    `json:"heuristic"`
}

// WaterEfficiencyAnalysis is the payload of the water-efficiency intent.
type WaterEfficiencyAnalysis struct {
	Ranking        []GroupRatio      `json:"ranking"`
	BestProcess    string            `json:"best_process"`
	BestRatio      float64           `json:"best_ratio"`
	TotalWaterM3   float64           `json:"total_water_m3"`
	DailyRate      float64           `json:"daily_rate"`
	PeriodDays     int               `json:"period_days"`
	Compliance     ComplianceVerdict `json:"compliance"`
	Recommendation Recommendation    `json:"recommendation"`
}

// EmissionsAnalysis is the payload of the emissions intent.
type EmissionsAnalysis struct {
	TotalCO2Ton   float64           `json:"total_co2_ton"`
	KeyProcess    string            `json:"key_process"`
	KeyProcessCO2 float64           `json:"key_process_co2"`
	DailyRate     float64           `json:"daily_rate"`
	PeriodDays    int               `json:"period_days"`
	Compliance    ComplianceVerdict `json:"compliance"`
}

// StructuredAnswer is what the advisor returns for a question.
type StructuredAnswer struct {
	Question         string                   `json:"question"`
	Intent           Intent                   `json:"intent"`
	InsufficientData bool                     `json:"insufficient_data"`
	Water            *WaterEfficiencyAnalysis `json:"water,omitempty"`
	Emissions        *EmissionsAnalysis       `json:"emissions,omitempty"`
	Legal            []LegalReference         `json:"legal"`
}
