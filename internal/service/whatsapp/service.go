package whatsapp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Fridaxdnt/EcoFinance-Pro/internal/config"
	"github.com/Fridaxdnt/EcoFinance-Pro/internal/domain/models"
	client "github.com/Fridaxdnt/EcoFinance-Pro/pkg/clients/whatsapp"
)

// MessagingService describes the operations the HTTP layer and scheduler can perform.
type MessagingService interface {
	VerifyWebhookToken(mode, verifyToken, challenge string) (string, error)
	HandleWebhook(ctx context.Context, payload models.WebhookPayload) error
	SendOutbound(ctx context.Context, req models.OutboundMessageRequest) error
	SendReport(ctx context.Context, to string, report models.ExecutiveReport) error
}

// RecordReader is the read side of the record store.
type RecordReader interface {
	All(ctx context.Context) ([]models.OperationalRecord, error)
}

// Answerer routes a question to an analysis.
type Answerer interface {
	Answer(question string, records []models.OperationalRecord) (models.StructuredAnswer, error)
}

// MetaWhatsAppService answers operator questions received through the WhatsApp Cloud API.
type MetaWhatsAppService struct {
	cfg     config.WhatsAppConfig
	client  client.Client
	records RecordReader
	advisor Answerer
	logger  *zap.Logger
}

// NewMetaWhatsAppService wires a new service instance.
func NewMetaWhatsAppService(cfg config.WhatsAppConfig, client client.Client, records RecordReader, advisor Answerer, logger *zap.Logger) *MetaWhatsAppService {
	svc := &MetaWhatsAppService{
		cfg:     cfg,
		client:  client,
		records: records,
		advisor: advisor,
		logger:  logger,
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}
	return svc
}

// VerifyWebhookToken validates the callback verification token.
func (s *MetaWhatsAppService) VerifyWebhookToken(mode, verifyToken, challenge string) (string, error) {
	if mode == "" || verifyToken == "" {
		return "", errors.New("missing mode or verify token")
	}

	if !strings.EqualFold(mode, "subscribe") {
		return "", fmt.Errorf("unsupported hub.mode %s", mode)
	}

	if verifyToken != s.cfg.VerifyToken {
		return "", errors.New("invalid verify token")
	}

	return challenge, nil
}

// HandleWebhook answers every inbound message and returns the first failure.
func (s *MetaWhatsAppService) HandleWebhook(ctx context.Context, payload models.WebhookPayload) error {
	var firstErr error

	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			for _, msg := range change.Value.Messages {
				if err := s.handleInboundMessage(ctx, msg); err != nil {
					s.logger.Error("failed to handle inbound message", zap.Error(err), zap.String("message_id", msg.ID))
					if firstErr == nil {
						firstErr = err
					}
				}
			}
		}
	}

	return firstErr
}

func (s *MetaWhatsAppService) handleInboundMessage(ctx context.Context, msg models.InboundMessage) error {
	question := extractMessageText(msg)
	if question == "" {
		return errors.New("empty message body")
	}

	records, err := s.records.All(ctx)
	if err != nil {
		return fmt.Errorf("load records: %w", err)
	}

	answer, err := s.advisor.Answer(question, records)
	if err != nil && !errors.Is(err, models.ErrInsufficientData) {
		return err
	}

	s.logger.Info("answered advisor question",
		zap.String("from", msg.From),
		zap.String("intent", string(answer.Intent)),
		zap.Bool("insufficient_data", answer.InsufficientData))

	return s.send(ctx, msg.From, FormatAnswer(answer), false)
}

// SendOutbound lets internal operators push quick notifications via HTTP.
func (s *MetaWhatsAppService) SendOutbound(ctx context.Context, req models.OutboundMessageRequest) error {
	return s.send(ctx, req.To, req.Message, req.PreviewURL)
}

// SendReport delivers a text rendering of report.
func (s *MetaWhatsAppService) SendReport(ctx context.Context, to string, report models.ExecutiveReport) error {
	return s.send(ctx, to, FormatReport(report), false)
}

func (s *MetaWhatsAppService) send(ctx context.Context, to, body string, preview bool) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := s.client.SendTextMessage(ctxWithTimeout, client.SendTextMessageRequest{
		To:         to,
		Body:       body,
		PreviewURL: preview,
	})
	return err
}

func extractMessageText(msg models.InboundMessage) string {
	if msg.Text != nil {
		return strings.TrimSpace(msg.Text.Body)
	}

	if msg.Interactive != nil {
		if msg.Interactive.ButtonReply != nil {
			return msg.Interactive.ButtonReply.Title
		}
		if msg.Interactive.ListReply != nil {
			return msg.Interactive.ListReply.Title
		}
	}

	return ""
}
