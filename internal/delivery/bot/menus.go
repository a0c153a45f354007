package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/LavaJover/shvark-storefront-bot/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func button(text, data string) tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardButtonData(text, data)
}

func backMenu() *tgbotapi.InlineKeyboardMarkup {
	m := tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(button("⬅️ Menu", actionMenu)))
	return &m
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}

func (b *Bot) showMainMenu(ctx context.Context, actorID int64) {
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(button("🛍 Create link", actionStorefronts)),
		tgbotapi.NewInlineKeyboardRow(button("📦 My orders", actionOrders), button("📊 Stats", actionStats)),
		tgbotapi.NewInlineKeyboardRow(button("⚙️ Settings", actionSettings)),
	}
	if op, err := b.operators.GetOperatorByID(ctx, actorID); err == nil && op.IsAdmin {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(button("🔌 Sites on/off", actionAdminWork)))
	}
	markup := tgbotapi.NewInlineKeyboardMarkup(rows...)
	_ = b.send(actorID, "🏠 Main menu", &markup)
}

func (b *Bot) showStorefronts(ctx context.Context, actorID int64) error {
	storefronts, err := b.storefronts.ListStorefronts(ctx, true)
	if err != nil {
		return err
	}
	if len(storefronts) == 0 {
		return b.send(actorID, "No storefronts are available.", backMenu())
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(storefronts)+1)
	for _, sf := range storefronts {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			button(fmt.Sprintf("%s (%s)", sf.Title, sf.Currency), prefixCreate+sf.Code)))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(button("⬅️ Menu", actionMenu)))
	markup := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return b.send(actorID, "🛍 Choose a storefront", &markup)
}

func (b *Bot) showOrders(ctx context.Context, actorID int64) error {
	orders, err := b.orders.ListForOwner(ctx, actorID)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		return b.send(actorID, "You have no orders yet.", backMenu())
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(orders)+1)
	for _, o := range orders {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			button(fmt.Sprintf("%s · %s %s", o.Title, o.FormattedPrice(), o.Currency), prefixEye+o.ID)))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		button("🗑 Delete all", actionDeleteAll),
		button("⬅️ Menu", actionMenu),
	))
	markup := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return b.send(actorID, fmt.Sprintf("📦 Your orders (%d)", len(orders)), &markup)
}

func (b *Bot) showOrder(ctx context.Context, actorID int64, orderID string) error {
	if _, err := b.ownedOrder(ctx, actorID, orderID); err != nil {
		return err
	}
	resolved, err := b.orders.ResolveOrder(ctx, orderID)
	if err != nil {
		return err
	}
	o := resolved.Order

	var sb strings.Builder
	fmt.Fprintf(&sb, "📦 %s\n", o.Title)
	fmt.Fprintf(&sb, "💰 %s %s\n", o.FormattedPrice(), o.Currency)
	fmt.Fprintf(&sb, "🏬 %s\n", resolved.Storefront.Title)
	fmt.Fprintf(&sb, "📌 Status: %s\n", o.Status)
	if o.ReceiverName != "" {
		fmt.Fprintf(&sb, "👤 %s\n", o.ReceiverName)
	}
	if o.PickupPoint != "" {
		fmt.Fprintf(&sb, "📍 %s\n", o.PickupPoint)
	}
	fmt.Fprintf(&sb, "💬 Chat: %s · 🟢 Online: %s\n", onOff(o.ChatOpen), onOff(o.Online))
	fmt.Fprintf(&sb, "🔗 %s\n\nOrder ID: %s", b.orders.OrderURL(resolved.Storefront, o.ID), o.ID)

	chatButton := button("💬 Close chat", prefixChatClose+o.ID)
	if !o.ChatOpen {
		chatButton = button("💬 Open chat", prefixChatOpen+o.ID)
	}
	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(button("✏️ Price", prefixPrice+o.ID), chatButton),
		tgbotapi.NewInlineKeyboardRow(
			button("🚚 Shipped", prefixStatus+string(domain.StatusShipped)+"_"+o.ID),
			button("✅ Delivered", prefixStatus+string(domain.StatusDelivered)+"_"+o.ID),
			button("✖️ Cancelled", prefixStatus+string(domain.StatusCanceled)+"_"+o.ID),
		),
		tgbotapi.NewInlineKeyboardRow(button("🗑 Delete", prefixDelete+o.ID), button("⬅️ Orders", actionOrders)),
	)
	return b.send(actorID, sb.String(), &markup)
}

func (b *Bot) showSettings(ctx context.Context, actorID int64) error {
	op, err := b.operators.GetOperatorByID(ctx, actorID)
	if err != nil {
		return err
	}
	text := fmt.Sprintf("⚙️ Settings\n\n🔔 Notifications: %s\n🌐 Sites: %s",
		onOff(op.NotificationsEnabled), onOff(op.SiteEnabled))
	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(button("🔔 Toggle notifications", actionToggleNotify)),
		tgbotapi.NewInlineKeyboardRow(button("🌐 Toggle sites", actionToggleSite)),
		tgbotapi.NewInlineKeyboardRow(button("⬅️ Menu", actionMenu)),
	)
	return b.send(actorID, text, &markup)
}

func (b *Bot) showStats(ctx context.Context, actorID int64) error {
	st, err := b.orders.Stats(ctx, actorID)
	if err != nil {
		return err
	}
	text := fmt.Sprintf("📊 Orders\n\nToday: %d · %.2f\nWeek: %d · %.2f\nAll time: %d · %.2f",
		st.Day.Count, st.Day.Sum, st.Week.Count, st.Week.Sum, st.AllTime.Count, st.AllTime.Sum)
	return b.send(actorID, text, backMenu())
}
