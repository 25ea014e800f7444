// Package regulation holds the static regulatory dataset: threshold limits and the
// legal references quoted by the advisor. The table is read once and never mutated.
package regulation

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Fridaxdnt/EcoFinance-Pro/internal/domain/models"
)

//go:embed peru.yaml
var defaultDataset []byte

// requiredKeys are looked up by the analysis engine and must always be present.
var requiredKeys = []string{
	models.ThresholdCO2DailyLimit,
	models.ThresholdWaterDailyLimit,
	models.ThresholdCO2RecordMeanLimit,
}

// Dataset is the parsed regulatory table.
type Dataset struct {
	Thresholds []models.RegulatoryThreshold `yaml:"thresholds"`
	References []models.LegalReference      `yaml:"references"`
}

// Load parses the dataset at path, or the embedded Peruvian dataset when path is empty.
func Load(path string) (*Dataset, error) {
	data := defaultDataset
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read regulation file %s: %w", path, err)
		}
		data = raw
	}
	return Parse(data)
}

// Parse decodes and validates a YAML dataset.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("%w: decode regulation dataset: %v", models.ErrConfiguration, err)
	}

	seen := make(map[string]bool, len(ds.Thresholds))
	for _, th := range ds.Thresholds {
		if th.Key == "" {
			return nil, fmt.Errorf("%w: threshold without key", models.ErrConfiguration)
		}
		if seen[th.Key] {
			return nil, fmt.Errorf("%w: duplicate threshold %q", models.ErrConfiguration, th.Key)
		}
		if th.LimitValue < 0 {
			return nil, fmt.Errorf("%w: threshold %q has negative limit", models.ErrConfiguration, th.Key)
		}
		seen[th.Key] = true
	}

	for _, key := range requiredKeys {
		if !seen[key] {
			return nil, fmt.Errorf("%w: missing threshold %q", models.ErrConfiguration, key)
		}
	}

	return &ds, nil
}

// Table indexes thresholds by key. The returned map is a fresh copy.
func (d *Dataset) Table() map[string]models.RegulatoryThreshold {
	table := make(map[string]models.RegulatoryThreshold, len(d.Thresholds))
	for _, th := range d.Thresholds {
		table[th.Key] = th
	}
	return table
}
