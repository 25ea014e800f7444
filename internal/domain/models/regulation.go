package models

// Threshold keys looked up by the analysis engine.
const (
	ThresholdCO2DailyLimit      = "co2DailyLimit"
	ThresholdWaterDailyLimit    = "waterDailyLimit"
	ThresholdCO2RecordMeanLimit = "co2RecordMeanLimit"
)

// RegulatoryThreshold is one entry of the static legal dataset.
type RegulatoryThreshold struct {
	Key        string  `yaml:"key" json:"key"`
	Name       string  `yaml:"name" json:"name"`
	LimitValue float64 `yaml:"limit" json:"limit_value"`
	Unit       string  `yaml:"unit" json:"unit"`
	Citation   string  `yaml:"citation" json:"citation"`
}

// LegalReference is a citation shown alongside every advisor answer.
type LegalReference struct {
	Title    string `yaml:"title" json:"title"`
	Citation string `yaml:"citation" json:"citation"`
}

// ComplianceVerdict is the transient outcome of comparing an observed value with a threshold.
type ComplianceVerdict struct {
	MetricName string  `bson:"metric_name" json:"metric_name"`
	Observed   float64 `bson:"observed" json:"observed"`
	Threshold  float64 `bson:"threshold" json:"threshold"`
	Unit       string  `bson:"unit" json:"unit"`
	Citation   string  `bson:"citation" json:"citation"`
	Passed     bool    `bson:"passed" json:"passed"`
}
