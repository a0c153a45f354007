package notify

import (
	"context"
	"strings"

	"github.com/LavaJover/shvark-storefront-bot/internal/domain"
	"github.com/LavaJover/shvark-storefront-bot/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-storefront-bot/internal/infrastructure/telegram"
	"github.com/rs/zerolog/log"
)

// FanOut delivers operator notifications. Delivery is best-effort: failures
// are logged and counted, never returned to the caller's control flow.
type FanOut struct {
	notifier  domain.Notifier
	operators domain.OperatorRepository
	metrics   *metrics.StorefrontMetrics
}

func NewFanOut(notifier domain.Notifier, operators domain.OperatorRepository, m *metrics.StorefrontMetrics) *FanOut {
	return &FanOut{notifier: notifier, operators: operators, metrics: m}
}

// Notify sends text to ownerID with the order's tag line appended and returns
// the sent message id, or 0 when delivery failed.
func (f *FanOut) Notify(ctx context.Context, ownerID int64, text, orderID string, replyTo int) int {
	silent := false
	if op, err := f.operators.GetOperatorByID(ctx, ownerID); err == nil {
		silent = !op.NotificationsEnabled
	}

	body := strings.TrimRight(text, "\n")
	if orderID != "" {
		body += "\n\n" + telegram.TagLine(orderID)
	}

	id, err := f.notifier.Send(ctx, domain.OutboundMessage{
		ChatID:  ownerID,
		Text:    body,
		ReplyTo: replyTo,
		Silent:  silent,
	})
	if err != nil {
		f.metrics.NotificationsTotal.WithLabelValues("failed").Inc()
		log.Warn().Err(err).Int64("owner_id", ownerID).Str("order_id", orderID).Msg("notification dropped")
		return 0
	}
	f.metrics.NotificationsTotal.WithLabelValues("sent").Inc()
	return id
}
