package bot

import (
	"context"
	"fmt"
	"strconv"

	"github.com/LavaJover/shvark-storefront-bot/internal/domain"
	"github.com/LavaJover/shvark-storefront-bot/internal/wizard"
	orderdto "github.com/LavaJover/shvark-storefront-bot/internal/usecase/dto/order"
)

const (
	SceneCreateOrder = "create_order"
	SceneEditPrice   = "edit_price"

	dataSkip      = "wz_skip"
	dataSavedName = "wz_saved"
)

var cancelRow = []wizard.Button{{Text: "✖️ Cancel", Data: wizard.CancelData}}

func textPrompt(text string) func(wizard.State) wizard.Prompt {
	return func(wizard.State) wizard.Prompt {
		return wizard.Prompt{Text: text, Buttons: [][]wizard.Button{cancelRow}}
	}
}

func titleStep() wizard.Step {
	return wizard.Step{
		Name:   "title",
		Prompt: textPrompt("📝 Send the item title"),
		Handle: func(st wizard.State, ev wizard.Event) error {
			title, err := wizard.RequireText(ev, 128)
			if err != nil {
				return wizard.Invalid("title", err.Error())
			}
			st["title"] = title
			return nil
		},
	}
}

func priceStep() wizard.Step {
	return wizard.Step{
		Name:   "price",
		Prompt: textPrompt("💰 Send the price, e.g. 199.99"),
		Handle: func(st wizard.State, ev wizard.Event) error {
			if ev.IsButton {
				return wizard.Invalid("price", "send the price as a message")
			}
			price, err := wizard.ParsePositiveDecimal(ev.Text)
			if err != nil {
				return wizard.Invalid("price", err.Error())
			}
			st["price"] = fmt.Sprintf("%.2f", price)
			return nil
		},
	}
}

func photoStep() wizard.Step {
	return wizard.Step{
		Name:   "photo",
		Prompt: textPrompt("🖼 Send a link to the item photo"),
		Handle: func(st wizard.State, ev wizard.Event) error {
			if ev.IsButton {
				return wizard.Invalid("photo", "send the photo link as a message")
			}
			u, err := wizard.ParseAbsoluteURL(ev.Text)
			if err != nil {
				return wizard.Invalid("photo", err.Error())
			}
			st["photo"] = u
			return nil
		},
	}
}

func receiverStep() wizard.Step {
	return wizard.Step{
		Name: "receiver",
		Prompt: func(st wizard.State) wizard.Prompt {
			rows := [][]wizard.Button{}
			if saved := st["saved_name"]; saved != "" {
				rows = append(rows, []wizard.Button{{Text: "👤 " + saved, Data: dataSavedName}})
			}
			rows = append(rows, []wizard.Button{{Text: "⏭ Skip", Data: dataSkip}}, cancelRow)
			return wizard.Prompt{Text: "👤 Send the receiver name or skip", Buttons: rows}
		},
		Handle: func(st wizard.State, ev wizard.Event) error {
			if ev.IsButton {
				switch ev.Data {
				case dataSkip:
					st["receiver"] = ""
					return nil
				case dataSavedName:
					st["receiver"] = st["saved_name"]
					return nil
				}
				return wizard.Invalid("receiver", "unknown choice")
			}
			name, err := wizard.RequireText(ev, 128)
			if err != nil {
				return wizard.Invalid("receiver", err.Error())
			}
			st["receiver"] = name
			return nil
		},
	}
}

func (b *Bot) createOrderScene() *wizard.Scene {
	return &wizard.Scene{
		Key:      SceneCreateOrder,
		Steps:    []wizard.Step{titleStep(), priceStep(), photoStep(), receiverStep()},
		Complete: b.completeCreateOrder,
	}
}

func (b *Bot) completeCreateOrder(ctx context.Context, actorID int64, st wizard.State) error {
	price, err := strconv.ParseFloat(st["price"], 64)
	if err != nil {
		return fmt.Errorf("price: %w", err)
	}

	out, err := b.orders.CreateOrder(ctx, &orderdto.CreateOrderInput{
		StorefrontCode: st["storefront"],
		OwnerID:        actorID,
		Title:          st["title"],
		Price:          price,
		PhotoURL:       st["photo"],
		ReceiverName:   st["receiver"],
	})
	if err != nil {
		return err
	}
	if name := st["receiver"]; name != "" && name != st["saved_name"] {
		if err := b.operators.UpdateOperator(ctx, actorID, domain.UpdateOperatorParams{SavedName: &name}); err != nil {
			b.logger(actorID).Warn().Err(err).Msg("failed to remember receiver name")
		}
	}

	text := fmt.Sprintf("✅ Link created\n📦 %s · %s %s\n🔗 %s",
		out.Order.Title, out.Order.FormattedPrice(), out.Order.Currency, out.URL)
	if msgID := b.fan.Notify(ctx, actorID, text, out.Order.ID, 0); msgID != 0 {
		if err := b.orders.SetMessageID(ctx, out.Order.ID, msgID); err != nil {
			b.logger(actorID).Warn().Err(err).Str("order_id", out.Order.ID).Msg("failed to store order message id")
		}
	}
	return nil
}

func (b *Bot) editPriceScene() *wizard.Scene {
	return &wizard.Scene{
		Key:        SceneEditPrice,
		Steps:      []wizard.Step{priceStep()},
		MaxRetries: 2,
		Complete: func(ctx context.Context, actorID int64, st wizard.State) error {
			price, err := strconv.ParseFloat(st["price"], 64)
			if err != nil {
				return fmt.Errorf("price: %w", err)
			}
			order, err := b.orders.SetPrice(ctx, st["order"], price)
			if err != nil {
				return err
			}
			return b.send(actorID, fmt.Sprintf("✅ New price for %s: %s %s", order.ID, order.FormattedPrice(), order.Currency), nil)
		},
	}
}
