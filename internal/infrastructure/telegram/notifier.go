package telegram

import (
	"context"

	"github.com/LavaJover/shvark-storefront-bot/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender is the subset of *tgbotapi.BotAPI the service uses.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Notifier struct {
	api Sender
}

func NewNotifier(api Sender) *Notifier {
	return &Notifier{api: api}
}

func (n *Notifier) Send(ctx context.Context, msg domain.OutboundMessage) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	cfg := tgbotapi.NewMessage(msg.ChatID, msg.Text)
	cfg.ReplyToMessageID = msg.ReplyTo
	cfg.DisableNotification = msg.Silent
	cfg.DisableWebPagePreview = true

	sent, err := n.api.Send(cfg)
	if err != nil {
		return 0, err
	}
	return sent.MessageID, nil
}
