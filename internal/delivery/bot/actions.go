package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/LavaJover/shvark-storefront-bot/internal/domain"
	"github.com/LavaJover/shvark-storefront-bot/internal/wizard"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	actionStorefronts  = "storefronts"
	actionOrders       = "orders"
	actionSettings     = "settings"
	actionStats        = "stats"
	actionMenu         = "menu"
	actionDeleteAll    = "delete_all"
	actionToggleNotify = "toggle_notify"
	actionToggleSite   = "toggle_site"
	actionAdminWork    = "admin_work"

	prefixCreate    = "create_"
	prefixEye       = "eye_"
	prefixPrice     = "price_"
	prefixChatOpen  = "chatOpen_"
	prefixChatClose = "chatClose_"
	prefixStatus    = "status_"
	prefixDelete    = "delete_"
)

func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if cq.From == nil {
		return
	}
	if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		b.logger(cq.From.ID).Debug().Err(err).Msg("callback answer failed")
	}

	actorID := cq.From.ID
	data := cq.Data
	ev := wizard.Event{ActorID: actorID, Data: data, IsButton: true}
	if cq.Message != nil {
		ev.MessageID = cq.Message.MessageID
	}

	if data == wizard.CancelData || strings.HasPrefix(data, "wz_") {
		b.feedWizard(ctx, ev)
		return
	}

	if err := b.dispatch(ctx, actorID, data); err != nil {
		b.reportActionError(actorID, data, err)
	}
}

func (b *Bot) dispatch(ctx context.Context, actorID int64, data string) error {
	switch data {
	case actionMenu:
		b.showMainMenu(ctx, actorID)
		return nil
	case actionStorefronts:
		return b.showStorefronts(ctx, actorID)
	case actionOrders:
		return b.showOrders(ctx, actorID)
	case actionSettings:
		return b.showSettings(ctx, actorID)
	case actionStats:
		return b.showStats(ctx, actorID)
	case actionDeleteAll:
		n, err := b.orders.DeleteAllForOwner(ctx, actorID)
		if err != nil {
			return err
		}
		return b.send(actorID, fmt.Sprintf("🗑 Deleted %d orders", n), backMenu())
	case actionToggleNotify:
		return b.toggleOperator(ctx, actorID, func(op *domain.Operator, p *domain.UpdateOperatorParams) {
			v := !op.NotificationsEnabled
			p.NotificationsEnabled = &v
		})
	case actionToggleSite:
		return b.toggleOperator(ctx, actorID, func(op *domain.Operator, p *domain.UpdateOperatorParams) {
			v := !op.SiteEnabled
			p.SiteEnabled = &v
		})
	case actionAdminWork:
		return b.toggleWork(ctx, actorID)
	}

	switch {
	case strings.HasPrefix(data, prefixCreate):
		return b.startCreateOrder(ctx, actorID, strings.TrimPrefix(data, prefixCreate))
	case strings.HasPrefix(data, prefixEye):
		return b.showOrder(ctx, actorID, strings.TrimPrefix(data, prefixEye))
	case strings.HasPrefix(data, prefixPrice):
		id := strings.TrimPrefix(data, prefixPrice)
		if _, err := b.ownedOrder(ctx, actorID, id); err != nil {
			return err
		}
		return b.engine.Start(ctx, actorID, SceneEditPrice, wizard.State{"order": id})
	case strings.HasPrefix(data, prefixChatOpen):
		return b.setChat(ctx, actorID, strings.TrimPrefix(data, prefixChatOpen), true)
	case strings.HasPrefix(data, prefixChatClose):
		return b.setChat(ctx, actorID, strings.TrimPrefix(data, prefixChatClose), false)
	case strings.HasPrefix(data, prefixStatus):
		rest := strings.TrimPrefix(data, prefixStatus)
		i := strings.LastIndex(rest, "_")
		if i <= 0 {
			return fmt.Errorf("%w: malformed status action", domain.ErrInvalidInput)
		}
		return b.setStatus(ctx, actorID, rest[i+1:], domain.OrderStatus(rest[:i]))
	case strings.HasPrefix(data, prefixDelete):
		id := strings.TrimPrefix(data, prefixDelete)
		if _, err := b.ownedOrder(ctx, actorID, id); err != nil {
			return err
		}
		if err := b.orders.DeleteOrder(ctx, id); err != nil {
			return err
		}
		return b.send(actorID, "🗑 Order "+id+" deleted", backMenu())
	}

	return fmt.Errorf("%w: unknown action %q", domain.ErrInvalidInput, data)
}

func (b *Bot) reportActionError(actorID int64, data string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		_ = b.send(actorID, "⚠️ Not found.", backMenu())
	case errors.Is(err, domain.ErrStorefrontDisabled):
		_ = b.send(actorID, "⚠️ This storefront is disabled.", backMenu())
	case errors.Is(err, domain.ErrForbidden):
		_ = b.send(actorID, "⛔️ Not allowed.", backMenu())
	case errors.Is(err, domain.ErrInvalidInput):
		_ = b.send(actorID, "⚠️ Unknown action.", backMenu())
	default:
		b.logger(actorID).Error().Err(err).Str("action", data).Msg("action failed")
		b.sendError(actorID)
	}
}

func (b *Bot) startCreateOrder(ctx context.Context, actorID int64, code string) error {
	storefront, err := b.storefronts.GetStorefrontByCode(ctx, code)
	if err != nil {
		return err
	}
	if !storefront.Enabled {
		return domain.ErrStorefrontDisabled
	}
	op, err := b.operators.GetOperatorByID(ctx, actorID)
	if err != nil {
		return err
	}
	return b.engine.Start(ctx, actorID, SceneCreateOrder, wizard.State{
		"storefront": storefront.Code,
		"saved_name": op.SavedName,
	})
}

// ownedOrder hides orders of other operators behind ErrNotFound.
func (b *Bot) ownedOrder(ctx context.Context, actorID int64, orderID string) (*domain.Order, error) {
	order, err := b.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.OwnerID != actorID {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

func (b *Bot) setChat(ctx context.Context, actorID int64, orderID string, open bool) error {
	if _, err := b.ownedOrder(ctx, actorID, orderID); err != nil {
		return err
	}
	if err := b.orders.SetChatOpen(ctx, orderID, open); err != nil {
		return err
	}
	return b.showOrder(ctx, actorID, orderID)
}

func (b *Bot) setStatus(ctx context.Context, actorID int64, orderID string, status domain.OrderStatus) error {
	if _, err := b.ownedOrder(ctx, actorID, orderID); err != nil {
		return err
	}
	if err := b.orders.SetStatus(ctx, orderID, status); err != nil {
		return err
	}
	return b.showOrder(ctx, actorID, orderID)
}

func (b *Bot) toggleOperator(ctx context.Context, actorID int64, apply func(*domain.Operator, *domain.UpdateOperatorParams)) error {
	op, err := b.operators.GetOperatorByID(ctx, actorID)
	if err != nil {
		return err
	}
	var params domain.UpdateOperatorParams
	apply(op, &params)
	if err := b.operators.UpdateOperator(ctx, actorID, params); err != nil {
		return err
	}
	return b.showSettings(ctx, actorID)
}

func (b *Bot) toggleWork(ctx context.Context, actorID int64) error {
	op, err := b.operators.GetOperatorByID(ctx, actorID)
	if err != nil {
		return err
	}
	if !op.IsAdmin {
		return domain.ErrForbidden
	}
	settings, err := b.settings.GetSettings(ctx)
	if err != nil {
		return err
	}
	if err := b.settings.SetWork(ctx, !settings.Work); err != nil {
		return err
	}
	b.logger(actorID).Info().Bool("work", !settings.Work).Msg("global work switch toggled")
	return b.send(actorID, fmt.Sprintf("🔌 Sites are now %s", onOff(!settings.Work)), backMenu())
}
