package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Fridaxdnt/EcoFinance-Pro/internal/domain/models"
	"github.com/Fridaxdnt/EcoFinance-Pro/internal/service/metrics"
)

// RecordStore is the record capture and scan surface used by the API.
type RecordStore interface {
	Capture(ctx context.Context, in models.CaptureInput) (models.OperationalRecord, error)
	All(ctx context.Context) ([]models.OperationalRecord, error)
}

// Advisor answers free-text questions.
type Advisor interface {
	Answer(question string, records []models.OperationalRecord) (models.StructuredAnswer, error)
}

// ReportGenerator produces executive reports.
type ReportGenerator interface {
	GenerateReport(ctx context.Context, baseline float64) (models.ExecutiveReport, error)
	Baseline() float64
}

// Simulator projects investment scenarios.
type Simulator interface {
	Simulate(investmentAmount float64, termYears int, technology models.Technology) (models.SimulationResult, error)
}

// ThresholdCatalog lists the regulatory thresholds in force.
type ThresholdCatalog interface {
	Thresholds() []models.RegulatoryThreshold
}

// AnalyticsHandler exposes the analysis engine over HTTP.
type AnalyticsHandler struct {
	records    RecordStore
	advisor    Advisor
	reports    ReportGenerator
	simulator  Simulator
	thresholds ThresholdCatalog
	references []models.LegalReference
	logger     *zap.Logger
}

// NewAnalyticsHandler constructs the HTTP handler adapter.
func NewAnalyticsHandler(records RecordStore, advisor Advisor, reports ReportGenerator, simulator Simulator, thresholds ThresholdCatalog, references []models.LegalReference, logger *zap.Logger) *AnalyticsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsHandler{
		records:    records,
		advisor:    advisor,
		reports:    reports,
		simulator:  simulator,
		thresholds: thresholds,
		references: references,
		logger:     logger,
	}
}

// CaptureRecord stores one operational record submitted by the capture form.
func (h *AnalyticsHandler) CaptureRecord(c *gin.Context) {
	var in models.CaptureInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.Warn("invalid record payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	record, err := h.records.Capture(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, "capture record", err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// ListRecords returns every stored record in insertion order.
func (h *AnalyticsHandler) ListRecords(c *gin.Context) {
	records, err := h.records.All(c.Request.Context())
	if err != nil {
		h.respondError(c, "list records", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": records, "count": len(records)})
}

// WaterRanking returns the production-per-water ranking by process.
func (h *AnalyticsHandler) WaterRanking(c *gin.Context) {
	records, err := h.records.All(c.Request.Context())
	if err != nil {
		h.respondError(c, "water ranking", err)
		return
	}

	ranking := metrics.GroupedRatio(records, metrics.GroupByProcess, metrics.FieldProduction, metrics.FieldWater)
	c.JSON(http.StatusOK, gin.H{"ranking": ranking, "unit": "ton/m3"})
}

// Query answers an advisor question.
func (h *AnalyticsHandler) Query(c *gin.Context) {
	var req models.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid query payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
		return
	}

	records, err := h.records.All(c.Request.Context())
	if err != nil {
		h.respondError(c, "load records", err)
		return
	}

	answer, err := h.advisor.Answer(req.Question, records)
	if err != nil {
		if errors.Is(err, models.ErrInsufficientData) {
			c.JSON(http.StatusUnprocessableEntity, answer)
			return
		}
		h.respondError(c, "answer question", err)
		return
	}

	c.JSON(http.StatusOK, answer)
}

// Report generates the executive report. The optional baseline query parameter overrides
// the configured energy baseline.
func (h *AnalyticsHandler) Report(c *gin.Context) {
	baseline := h.reports.Baseline()
	if raw := c.Query("baseline"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "baseline must be a non-negative number"})
			return
		}
		baseline = v
	}

	report, err := h.reports.GenerateReport(c.Request.Context(), baseline)
	if err != nil {
		h.respondError(c, "generate report", err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// Simulate runs the investment simulator.
func (h *AnalyticsHandler) Simulate(c *gin.Context) {
	var req models.SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid simulation payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.simulator.Simulate(req.InvestmentAmount, req.TermYears, req.Technology)
	if err != nil {
		h.respondError(c, "simulate", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Regulations lists thresholds and legal references.
func (h *AnalyticsHandler) Regulations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"thresholds": h.thresholds.Thresholds(),
		"references": h.references,
	})
}

func (h *AnalyticsHandler) respondError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrInsufficientData):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "not enough operational data for this analysis"})
	default:
		h.logger.Error("request failed", zap.String("operation", op), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
