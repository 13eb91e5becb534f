package ledger_reconciler

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/Shopify/sarama"
	"github.com/google/uuid"

	"github.com/viglianco/go-sales-ledger/internal/common/kafka"
	"github.com/viglianco/go-sales-ledger/internal/common/log"
	"github.com/viglianco/go-sales-ledger/internal/common/metrics"
	"github.com/viglianco/go-sales-ledger/internal/models"
	"github.com/viglianco/go-sales-ledger/internal/services"
)

type Handler struct {
	kafka.BaseHandler
	sls services.SalesLedgerService
}

func NewHandler(clientID string, sls services.SalesLedgerService, consumerMetrics *metrics.ConsumerMetrics) *Handler {
	return &Handler{
		BaseHandler: kafka.BaseHandler{
			ClientID:        clientID,
			ConsumerMetrics: consumerMetrics,
			LogPrefix:       logMessage,
		},
		sls: sls,
	}
}

// Setup is run at the beginning of a new session, before ConsumeClaim
func (h *Handler) Setup(_ sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited
func (h *Handler) Cleanup(_ sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim must start a consumer loop of ConsumerGroupClaim's Messages().
func (h *Handler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			correlationID := h.CorrelationID(message)
			if correlationID == "" {
				correlationID = uuid.New().String()
			}
			ctx := log.SetCorrelationID(session.Context(), correlationID)

			start := time.Now()
			err := h.processMessage(ctx, message)
			h.RecordMetrics(start, message, err)

			if err != nil {
				h.Nack(ctx, session, message, err)
				continue
			}
			h.Ack(session, message)
		case <-session.Context().Done():
			return nil
		}
	}
}

// processMessage re-projects the rest of the month after the changed row: the edit only rewrote that
// row, so totals further down the chain may still hold the old carried balance.
func (h *Handler) processMessage(ctx context.Context, message *sarama.ConsumerMessage) error {
	var event models.ManualEntryChangedEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		return fmt.Errorf("error unmarshal json: %w", err)
	}

	date, err := civil.ParseDate(event.Date)
	if err != nil {
		return fmt.Errorf("invalid event date %q: %w", event.Date, err)
	}

	out, err := h.sls.ReconcileFollowing(ctx, models.ManualEntryKey{BatchID: event.BatchID, Date: date})
	if err != nil {
		return fmt.Errorf("unable to reconcile totals after %s: %w", date, err)
	}

	log.Info(ctx, logMessage+"[PROCESS-MESSAGE]",
		log.String("eventId", event.EventID),
		log.Int64("batchId", event.BatchID),
		log.String("date", event.Date),
		log.Bool("openingIncluded", event.OpeningIncluded),
		log.Int("checked", out.Checked),
		log.Int("updated", out.Updated),
		log.String("dates", strings.Join(out.Dates, ",")))
	return nil
}
