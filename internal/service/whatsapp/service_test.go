package whatsapp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fridaxdnt/EcoFinance-Pro/internal/config"
	"github.com/Fridaxdnt/EcoFinance-Pro/internal/domain/models"
	"github.com/Fridaxdnt/EcoFinance-Pro/internal/regulation"
	"github.com/Fridaxdnt/EcoFinance-Pro/internal/service/compliance"
	"github.com/Fridaxdnt/EcoFinance-Pro/internal/service/query"
	client "github.com/Fridaxdnt/EcoFinance-Pro/pkg/clients/whatsapp"
)

type fakeClient struct {
	sent []client.SendTextMessageRequest
	err  error
}

func (f *fakeClient) SendTextMessage(_ context.Context, req client.SendTextMessageRequest) (*client.SendTextMessageResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, req)
	return &client.SendTextMessageResponse{}, nil
}

type staticRecords []models.OperationalRecord

func (s staticRecords) All(context.Context) ([]models.OperationalRecord, error) {
	return s, nil
}

func newTestService(t *testing.T, records staticRecords, c client.Client) *MetaWhatsAppService {
	t.Helper()
	ds, err := regulation.Load("")
	require.NoError(t, err)
	router := query.NewRouter(compliance.NewEvaluator(ds.Table()), ds.References, 30, nil)
	return NewMetaWhatsAppService(config.WhatsAppConfig{VerifyToken: "verify"}, c, records, router, nil)
}

func textPayload(from, body string) models.WebhookPayload {
	return models.WebhookPayload{Entry: []models.WebhookEntry{{
		Changes: []models.WebhookChange{{
			Value: models.WebhookValue{Messages: []models.InboundMessage{{
				From: from,
				ID:   "wamid.in",
				Type: "text",
				Text: &models.TextContent{Body: body},
			}}},
		}},
	}}}
}

func TestVerifyWebhookToken(t *testing.T) {
	svc := newTestService(t, nil, &fakeClient{})

	challenge, err := svc.VerifyWebhookToken("subscribe", "verify", "42")
	require.NoError(t, err)
	assert.Equal(t, "42", challenge)

	_, err = svc.VerifyWebhookToken("subscribe", "wrong", "42")
	assert.Error(t, err)

	_, err = svc.VerifyWebhookToken("unsubscribe", "verify", "42")
	assert.Error(t, err)

	_, err = svc.VerifyWebhookToken("", "", "42")
	assert.Error(t, err)
}

func TestHandleWebhookAnswersEmissionsQuestion(t *testing.T) {
	c := &fakeClient{}
	records := staticRecords{
		{Process: models.ProcessExtraction, CO2Ton: 1000},
		{Process: models.ProcessTransport, CO2Ton: 600},
	}
	svc := newTestService(t, records, c)

	err := svc.HandleWebhook(context.Background(), textPayload("51999", "¿Cuáles son nuestras emisiones?"))
	require.NoError(t, err)

	require.Len(t, c.sent, 1)
	assert.Equal(t, "51999", c.sent[0].To)
	assert.Contains(t, c.sent[0].Body, "Total CO2: 1600.0 ton")
	assert.Contains(t, c.sent[0].Body, "Key process: Extraction")
	assert.Contains(t, c.sent[0].Body, "non-compliant")
	assert.Contains(t, c.sent[0].Body, "Ley N° 28611")
}

func TestHandleWebhookInsufficientData(t *testing.T) {
	c := &fakeClient{}
	svc := newTestService(t, nil, c)

	err := svc.HandleWebhook(context.Background(), textPayload("51999", "agua"))
	require.NoError(t, err)

	require.Len(t, c.sent, 1)
	assert.Contains(t, c.sent[0].Body, "Not enough operational data")
}

func TestHandleWebhookReportsFirstError(t *testing.T) {
	c := &fakeClient{err: errors.New("rate limited")}
	svc := newTestService(t, nil, c)

	err := svc.HandleWebhook(context.Background(), textPayload("51999", "hola"))
	assert.ErrorContains(t, err, "rate limited")

	err = svc.HandleWebhook(context.Background(), textPayload("51999", "   "))
	assert.ErrorContains(t, err, "empty message body")
}

func TestSendReport(t *testing.T) {
	c := &fakeClient{}
	svc := newTestService(t, nil, c)

	report := models.ExecutiveReport{
		Period:             "March 2026",
		TotalProductionTon: 150,
		EnergyTrend:        models.TrendImproved,
		WaterDailyRate:     150,
		WaterCompliance:    models.ComplianceVerdict{Threshold: 5000, Unit: "m3/day", Passed: true},
	}

	require.NoError(t, svc.SendReport(context.Background(), "51888", report))
	require.Len(t, c.sent, 1)
	assert.Equal(t, "51888", c.sent[0].To)
	assert.Contains(t, c.sent[0].Body, "Executive report - March 2026")
	assert.Contains(t, c.sent[0].Body, "Energy efficiency improved")
	assert.Contains(t, c.sent[0].Body, "150 m3/day vs limit 5000 m3/day (compliant)")
}
