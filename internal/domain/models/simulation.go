package models

// Technology enumerates the sustainability investments the simulator accepts.
type Technology string

const (
	TechnologyCO2Filters         Technology = "CO2Filters"
	TechnologyWaterRecirculation Technology = "WaterRecirculation"
	TechnologySolarEnergy        Technology = "SolarEnergy"
	TechnologyTailingsManagement Technology = "TailingsManagement"
)

// Technologies lists the accepted investment technologies.
var Technologies = []Technology{
	TechnologyCO2Filters,
	TechnologyWaterRecirculation,
	TechnologySolarEnergy,
	TechnologyTailingsManagement,
}

// SimulationRequest is the scenario submitted to the simulator.
type SimulationRequest struct {
	InvestmentAmount float64    `json:"investment_amount"`
	TermYears        int        `json:"term_years"`
	Technology       Technology `json:"technology"`
}

// SimulationResult is an illustrative projection; none of its fields are measured.
type SimulationResult struct {
	InvestmentAmount      float64    `json:"investment_amount"`
	TermYears             int        `json:"term_years"`
	Technology            Technology `json:"technology"`
	AnnualSavings         float64    `json:"annual_savings"`
	ReductionRangePercent string     `json:"reduction_range_percent"`
	ROIYears              int        `json:"roi_years"`
	ComplianceAfter       bool       `json:"compliance_after"`
	Illustrative          bool       `json:"illustrative"`
}
