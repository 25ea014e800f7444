package models

import "time"

// Trend is the categorical energy trend of an executive report.
type Trend string

const (
	TrendImproved Trend = "improved"
	TrendWorsened Trend = "worsened"
)

// ExecutiveReport is the structured executive summary. It is archived in MongoDB when enabled.
type ExecutiveReport struct {
	Period              string            `bson:"period" json:"period"`
	RecordCount         int               `bson:"record_count" json:"record_count"`
	TotalProductionTon  float64           `bson:"total_production_ton" json:"total_production_ton"`
	WaterIntensity      float64           `bson:"water_intensity" json:"water_intensity"`
	EmissionsPerRevenue float64           `bson:"emissions_per_revenue" json:"emissions_per_revenue"`
	EnergyMeanKwh       float64           `bson:"energy_mean_kwh" json:"energy_mean_kwh"`
	BaselineEnergyMean  float64           `bson:"baseline_energy_mean" json:"baseline_energy_mean"`
	EnergyTrend         Trend             `bson:"energy_trend" json:"energy_trend"`
	CO2MeanTon          float64           `bson:"co2_mean_ton" json:"co2_mean_ton"`
	CO2Compliance       ComplianceVerdict `bson:"co2_compliance" json:"co2_compliance"`
	WaterDailyRate      float64           `bson:"water_daily_rate" json:"water_daily_rate"`
	WaterCompliance     ComplianceVerdict `bson:"water_compliance" json:"water_compliance"`
	EmissionsByProcess  []GroupRatio      `bson:"emissions_by_process" json:"emissions_by_process"`
	GeneratedAt         time.Time         `bson:"generated_at" json:"generated_at"`
}
