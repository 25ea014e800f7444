package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fridaxdnt/EcoFinance-Pro/internal/config"
	"github.com/Fridaxdnt/EcoFinance-Pro/internal/regulation"
	"github.com/Fridaxdnt/EcoFinance-Pro/internal/repository/memory"
	"github.com/Fridaxdnt/EcoFinance-Pro/internal/server/handlers"
	"github.com/Fridaxdnt/EcoFinance-Pro/internal/service/compliance"
	"github.com/Fridaxdnt/EcoFinance-Pro/internal/service/query"
	recordsvc "github.com/Fridaxdnt/EcoFinance-Pro/internal/service/records"
	reportingsvc "github.com/Fridaxdnt/EcoFinance-Pro/internal/service/reporting"
	"github.com/Fridaxdnt/EcoFinance-Pro/internal/service/simulation"
)

func analyticsHandler(t *testing.T) *handlers.AnalyticsHandler {
	t.Helper()
	ds, err := regulation.Load("")
	require.NoError(t, err)

	regime := config.DefaultRegime()
	records := recordsvc.NewService(memory.NewStore(), regime, nil)
	evaluator := compliance.NewEvaluator(ds.Table())
	reports := reportingsvc.NewService(records, reportingsvc.NewGenerator(evaluator, regime.PeriodDays), nil, regime.BaselineEnergyMean, nil)

	return handlers.NewAnalyticsHandler(
		records,
		query.NewRouter(evaluator, ds.References, regime.PeriodDays, nil),
		reports,
		simulation.NewSimulator(regime.SavingsRate, regime.ReductionBand),
		evaluator,
		ds.References,
		nil,
	)
}

func TestRoutesWithoutWhatsApp(t *testing.T) {
	engine := New(analyticsHandler(t), nil, nil)

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/api/v1/records", http.StatusOK},
		{http.MethodGet, "/api/v1/rankings/water", http.StatusOK},
		{http.MethodGet, "/api/v1/regulations", http.StatusOK},
		{http.MethodGet, "/api/v1/report", http.StatusUnprocessableEntity},
		{http.MethodGet, "/webhook", http.StatusNotFound},
		{http.MethodPost, "/send-message", http.StatusNotFound},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		assert.Equal(t, tc.want, w.Code, "%s %s", tc.method, tc.path)
	}
}
