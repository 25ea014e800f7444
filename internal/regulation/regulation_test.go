package regulation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fridaxdnt/EcoFinance-Pro/internal/domain/models"
)

func TestLoadEmbeddedDataset(t *testing.T) {
	ds, err := Load("")
	require.NoError(t, err)

	table := ds.Table()
	assert.Equal(t, 50.0, table[models.ThresholdCO2DailyLimit].LimitValue)
	assert.Equal(t, 5000.0, table[models.ThresholdWaterDailyLimit].LimitValue)
	assert.Equal(t, 1.5, table[models.ThresholdCO2RecordMeanLimit].LimitValue)
	assert.Equal(t, "DS N° 003-2014-MINAM", table[models.ThresholdCO2DailyLimit].Citation)
	assert.NotEmpty(t, ds.References)
}

func TestLoadOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strict.yaml")
	content := `
thresholds:
  - {key: co2DailyLimit, name: CO2, limit: 30, unit: ton/day, citation: test}
  - {key: waterDailyLimit, name: Water, limit: 3000, unit: m3/day, citation: test}
  - {key: co2RecordMeanLimit, name: CO2 mean, limit: 1, unit: ton/record, citation: test}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30.0, ds.Table()[models.ThresholdCO2DailyLimit].LimitValue)
	assert.Empty(t, ds.References)
}

func TestParseRejectsIncompleteDataset(t *testing.T) {
	tests := map[string]string{
		"missing key":    "thresholds:\n  - {key: co2DailyLimit, limit: 50}\n",
		"negative limit": "thresholds:\n  - {key: co2DailyLimit, limit: -1}\n",
		"duplicate":      "thresholds:\n  - {key: co2DailyLimit, limit: 1}\n  - {key: co2DailyLimit, limit: 2}\n",
		"not yaml":       "thresholds: [",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(content))
			assert.ErrorIs(t, err, models.ErrConfiguration)
		})
	}
}
