package whatsapp

import (
	"fmt"
	"strings"

	"github.com/Fridaxdnt/EcoFinance-Pro/internal/domain/models"
)

// FormatAnswer renders an advisor answer as plain text for a chat message.
func FormatAnswer(a models.StructuredAnswer) string {
	var b strings.Builder

	switch {
	case a.InsufficientData:
		b.WriteString("Not enough operational data to answer yet. Capture some records first.\n")
	case a.Water != nil:
		w := a.Water
		b.WriteString("Water efficiency\n")
		fmt.Fprintf(&b, "- Most efficient process: %s (%.2f ton/m3)\n", w.BestProcess, w.BestRatio)
		fmt.Fprintf(&b, "- Recommendation: %s (investment $%.1fM, ROI %.0f years, estimate)\n",
			w.Recommendation.Summary, w.Recommendation.InvestmentUSD/1_000_000, w.Recommendation.ROIYears)
		fmt.Fprintf(&b, "- Usage %.0f m3/day over %d days vs limit %.0f %s: %s\n",
			w.DailyRate, w.PeriodDays, w.Compliance.Threshold, w.Compliance.Unit, verdictLabel(w.Compliance))
	case a.Emissions != nil:
		e := a.Emissions
		b.WriteString("Emissions\n")
		fmt.Fprintf(&b, "- Total CO2: %.1f ton\n", e.TotalCO2Ton)
		fmt.Fprintf(&b, "- Key process: %s (%.1f ton)\n", e.KeyProcess, e.KeyProcessCO2)
		fmt.Fprintf(&b, "- %.1f ton/day vs limit %.0f %s: %s\n",
			e.DailyRate, e.Compliance.Threshold, e.Compliance.Unit, verdictLabel(e.Compliance))
	default:
		b.WriteString("Ask about water (agua) or emissions (emisiones).\n")
	}

	if len(a.Legal) > 0 {
		b.WriteString("\nLegal basis:\n")
		for _, ref := range a.Legal {
			fmt.Fprintf(&b, "- %s: %s\n", ref.Title, ref.Citation)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// FormatReport renders an executive report as plain text for a chat message.
func FormatReport(r models.ExecutiveReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Executive report - %s\n", r.Period)
	fmt.Fprintf(&b, "- Total production: %.0f ton\n", r.TotalProductionTon)
	fmt.Fprintf(&b, "- Water intensity: %.1f m3/ton\n", r.WaterIntensity)
	fmt.Fprintf(&b, "- Emissions per revenue: %.6f ton\n", r.EmissionsPerRevenue)
	fmt.Fprintf(&b, "- Energy efficiency %s (mean %.1f kWh vs baseline %.1f)\n", r.EnergyTrend, r.EnergyMeanKwh, r.BaselineEnergyMean)
	fmt.Fprintf(&b, "- CO2 levels: %s (mean %.2f vs %.2f %s)\n", verdictLabel(r.CO2Compliance), r.CO2MeanTon, r.CO2Compliance.Threshold, r.CO2Compliance.Unit)
	fmt.Fprintf(&b, "- Water: %.0f m3/day vs limit %.0f %s (%s)", r.WaterDailyRate, r.WaterCompliance.Threshold, r.WaterCompliance.Unit, verdictLabel(r.WaterCompliance))

	return b.String()
}

func verdictLabel(v models.ComplianceVerdict) string {
	if v.Passed {
		return "compliant"
	}
	return "non-compliant"
}
