package models

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for record dates.
const DateLayout = "2006-01-02"

// Process enumerates the mining process stages an observation belongs to.
type Process string

const (
	ProcessExtraction         Process = "Extraction"
	ProcessProcessing         Process = "Processing"
	ProcessTransport          Process = "Transport"
	ProcessTailingsManagement Process = "TailingsManagement"
)

// Processes lists every supported stage in capture-form order.
var Processes = []Process{
	ProcessExtraction,
	ProcessProcessing,
	ProcessTransport,
	ProcessTailingsManagement,
}

// Valid reports whether p is one of the fixed process stages.
func (p Process) Valid() bool {
	for _, candidate := range Processes {
		if p == candidate {
			return true
		}
	}
	return false
}

// ParseProcess converts a free-form value into a Process.
func ParseProcess(value string) (Process, error) {
	p := Process(value)
	if !p.Valid() {
		return "", fmt.Errorf("%w: unknown process %q", ErrValidation, value)
	}
	return p, nil
}

// OperationalRecord is one observation for a given date and process stage.
// Revenue, Cost and EnvironmentalInvestment are derived at capture time and never edited.
// Every measure must be finite and non-negative.
type OperationalRecord struct {
	ID                      int64     `bson:"_id" json:"id"`
	Date                    time.Time `bson:"date" json:"date" validate:"required"`
	Process                 Process   `bson:"process" json:"process" validate:"required,process"`
	Material                string    `bson:"material" json:"material"`
	WaterM3                 float64   `bson:"water_m3" json:"water_m3" validate:"finite,gte=0"`
	EnergyKwh               float64   `bson:"energy_kwh" json:"energy_kwh" validate:"finite,gte=0"`
	CO2Ton                  float64   `bson:"co2_ton" json:"co2_ton" validate:"finite,gte=0"`
	WasteTon                float64   `bson:"waste_ton" json:"waste_ton" validate:"finite,gte=0"`
	ProductionTon           float64   `bson:"production_ton" json:"production_ton" validate:"finite,gte=0"`
	Revenue                 float64   `bson:"revenue" json:"revenue" validate:"finite,gte=0"`
	Cost                    float64   `bson:"cost" json:"cost" validate:"finite,gte=0"`
	EnvironmentalInvestment float64   `bson:"environmental_investment" json:"environmental_investment" validate:"finite,gte=0"`
}

// CaptureInput is the tuple supplied by the record capture form.
type CaptureInput struct {
	Date          string  `json:"date" binding:"required"`
	Process       string  `json:"process" binding:"required"`
	WaterM3       float64 `json:"water_m3"`
	EnergyKwh     float64 `json:"energy_kwh"`
	CO2Ton        float64 `json:"co2_ton"`
	ProductionTon float64 `json:"production_ton"`
}
