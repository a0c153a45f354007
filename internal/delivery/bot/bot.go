package bot

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/LavaJover/shvark-storefront-bot/internal/domain"
	"github.com/LavaJover/shvark-storefront-bot/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-storefront-bot/internal/infrastructure/telegram"
	"github.com/LavaJover/shvark-storefront-bot/internal/usecase/order"
	"github.com/LavaJover/shvark-storefront-bot/internal/usecase/support"
	"github.com/LavaJover/shvark-storefront-bot/internal/wizard"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type OperatorNotifier interface {
	Notify(ctx context.Context, ownerID int64, text, orderID string, replyTo int) int
}

type Deps struct {
	API          telegram.Sender
	Sessions     wizard.SessionStore
	Orders       order.OrderUsecase
	Support      support.SupportUsecase
	Operators    domain.OperatorRepository
	Storefronts  domain.StorefrontRepository
	SettingsRepo domain.SettingsRepository
	FanOut       OperatorNotifier
	Metrics      *metrics.StorefrontMetrics
}

// Bot is the operator-facing control panel.
type Bot struct {
	api         telegram.Sender
	engine      *wizard.Engine
	orders      order.OrderUsecase
	support     support.SupportUsecase
	operators   domain.OperatorRepository
	storefronts domain.StorefrontRepository
	settings    domain.SettingsRepository
	fan         OperatorNotifier

	locks sync.Map
}

func New(deps Deps) *Bot {
	b := &Bot{
		api:         deps.API,
		orders:      deps.Orders,
		support:     deps.Support,
		operators:   deps.Operators,
		storefronts: deps.Storefronts,
		settings:    deps.SettingsRepo,
		fan:         deps.FanOut,
	}
	b.engine = wizard.NewEngine(deps.Sessions, &chatPresenter{api: deps.API},
		b.createOrderScene(),
		b.editPriceScene(),
	)
	if deps.Metrics != nil {
		b.engine.OnOutcome(func(scene string, outcome wizard.Outcome) {
			deps.Metrics.WizardOutcomesTotal.WithLabelValues(scene, string(outcome)).Inc()
		})
	}
	return b
}

// Run consumes updates until ctx is done. Updates of one actor are handled
// in order; different actors are handled concurrently.
func (b *Bot) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			actorID := actorOf(update)
			if actorID == 0 {
				continue
			}
			mu := b.lockFor(actorID)
			wg.Add(1)
			go func() {
				defer wg.Done()
				mu.Lock()
				defer mu.Unlock()
				b.HandleUpdate(ctx, update)
			}()
		}
	}
}

func (b *Bot) lockFor(actorID int64) *sync.Mutex {
	mu, _ := b.locks.LoadOrStore(actorID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func actorOf(update tgbotapi.Update) int64 {
	switch {
	case update.Message != nil && update.Message.From != nil:
		return update.Message.From.ID
	case update.CallbackQuery != nil && update.CallbackQuery.From != nil:
		return update.CallbackQuery.From.ID
	}
	return 0
}

func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Int("update_id", update.UpdateID).Msg("update handler panicked")
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	actorID := msg.From.ID
	text := strings.TrimSpace(msg.Text)

	if strings.HasPrefix(text, "/") {
		b.handleCommand(ctx, msg, text)
		return
	}

	active, err := b.engine.Active(ctx, actorID)
	if err != nil {
		b.logger(actorID).Error().Err(err).Msg("session lookup failed")
	}
	if active {
		b.feedWizard(ctx, wizard.Event{ActorID: actorID, Text: msg.Text, MessageID: msg.MessageID})
		return
	}

	if msg.ReplyToMessage != nil {
		b.handleReply(ctx, actorID, msg)
		return
	}

	b.showMainMenu(ctx, actorID)
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message, text string) {
	actorID := msg.From.ID
	cmd := strings.Fields(text)[0]
	if i := strings.Index(cmd, "@"); i > 0 {
		cmd = cmd[:i]
	}

	switch cmd {
	case "/start":
		if _, err := b.ensureOperator(ctx, msg.From); err != nil {
			b.logger(actorID).Error().Err(err).Msg("operator registration failed")
			b.sendError(actorID)
			return
		}
		b.showMainMenu(ctx, actorID)
	case "/cancel":
		if err := b.engine.Cancel(ctx, actorID); err != nil {
			b.logger(actorID).Error().Err(err).Msg("cancel failed")
		}
		_ = b.send(actorID, "Cancelled.", nil)
	default:
		_ = b.send(actorID, "Unknown command. Use /start.", nil)
	}
}

func (b *Bot) handleReply(ctx context.Context, actorID int64, msg *tgbotapi.Message) {
	orderID, err := b.support.OperatorReply(ctx, actorID, msg.ReplyToMessage.Text, msg.Text)
	switch {
	case errors.Is(err, domain.ErrNoCorrelation):
		_ = b.send(actorID, "⚠️ This message is not linked to an order. Reply to a notification that has a \"🆔 Track\" line.", nil)
	case errors.Is(err, domain.ErrNotFound):
		_ = b.send(actorID, "⚠️ Order not found.", nil)
	case errors.Is(err, domain.ErrInvalidInput):
		_ = b.send(actorID, "⚠️ The reply is empty or too long.", nil)
	case err != nil:
		b.logger(actorID).Error().Err(err).Msg("operator reply failed")
		b.sendError(actorID)
	default:
		_ = b.send(actorID, "✉️ Reply saved for order "+orderID, nil)
	}
}

func (b *Bot) feedWizard(ctx context.Context, ev wizard.Event) {
	outcome, err := b.engine.HandleEvent(ctx, ev)
	if errors.Is(err, wizard.ErrNoConversation) {
		b.showMainMenu(ctx, ev.ActorID)
		return
	}
	if err != nil && !wizard.IsValidation(err) {
		b.logger(ev.ActorID).Error().Err(err).Str("outcome", string(outcome)).Msg("wizard step failed")
		return
	}
	if outcome == wizard.OutcomeCancelled {
		b.showMainMenu(ctx, ev.ActorID)
	}
}

func (b *Bot) ensureOperator(ctx context.Context, user *tgbotapi.User) (*domain.Operator, error) {
	op, err := b.operators.GetOperatorByID(ctx, user.ID)
	if err == nil {
		return op, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	op = &domain.Operator{
		ID:                   user.ID,
		Tag:                  user.UserName,
		NotificationsEnabled: true,
		SiteEnabled:          true,
	}
	if err := b.operators.CreateOperator(ctx, op); err != nil {
		return nil, err
	}
	b.logger(user.ID).Info().Str("tag", op.Tag).Msg("operator registered")
	return op, nil
}

func (b *Bot) send(chatID int64, text string, markup *tgbotapi.InlineKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.DisableWebPagePreview = true
	if markup != nil {
		msg.ReplyMarkup = *markup
	}
	_, err := b.api.Send(msg)
	if err != nil {
		b.logger(chatID).Warn().Err(err).Msg("send failed")
	}
	return err
}

func (b *Bot) sendError(chatID int64) {
	_ = b.send(chatID, "❌ Something went wrong, try again later.", nil)
}

func (b *Bot) logger(actorID int64) *zerolog.Logger {
	l := log.With().Int64("actor_id", actorID).Logger()
	return &l
}
