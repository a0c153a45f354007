package bot

import (
	"context"

	"github.com/LavaJover/shvark-storefront-bot/internal/infrastructure/telegram"
	"github.com/LavaJover/shvark-storefront-bot/internal/wizard"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"
)

// chatPresenter renders wizard prompts, editing the previous prompt in place.
type chatPresenter struct {
	api telegram.Sender
}

func (p *chatPresenter) ShowPrompt(_ context.Context, actorID int64, prompt wizard.Prompt, replaceID int) (int, error) {
	markup := keyboard(prompt.Buttons)

	if replaceID != 0 {
		var edit tgbotapi.EditMessageTextConfig
		if markup != nil {
			edit = tgbotapi.NewEditMessageTextAndMarkup(actorID, replaceID, prompt.Text, *markup)
		} else {
			edit = tgbotapi.NewEditMessageText(actorID, replaceID, prompt.Text)
		}
		_, err := p.api.Send(edit)
		if err == nil {
			return replaceID, nil
		}
		log.Debug().Err(err).Int64("actor_id", actorID).Msg("prompt edit failed, sending new message")
	}

	msg := tgbotapi.NewMessage(actorID, prompt.Text)
	if markup != nil {
		msg.ReplyMarkup = *markup
	}
	sent, err := p.api.Send(msg)
	if err != nil {
		return 0, err
	}
	return sent.MessageID, nil
}

func (p *chatPresenter) Notice(_ context.Context, actorID int64, text string) error {
	_, err := p.api.Send(tgbotapi.NewMessage(actorID, text))
	return err
}

func keyboard(rows [][]wizard.Button) *tgbotapi.InlineKeyboardMarkup {
	if len(rows) == 0 {
		return nil
	}
	kbRows := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		kbRow := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			kbRow = append(kbRow, tgbotapi.NewInlineKeyboardButtonData(b.Text, b.Data))
		}
		kbRows = append(kbRows, kbRow)
	}
	markup := tgbotapi.NewInlineKeyboardMarkup(kbRows...)
	return &markup
}
