package page

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/LavaJover/shvark-storefront-bot/internal/domain"
	"github.com/LavaJover/shvark-storefront-bot/internal/infrastructure/metrics"
	orderdto "github.com/LavaJover/shvark-storefront-bot/internal/usecase/dto/order"
	"github.com/rs/zerolog/log"
)

type ViewKind string

const (
	ViewOrder      ViewKind = "order"
	ViewPickup     ViewKind = "pickup"
	ViewPickupDone ViewKind = "pickup_done"
	ViewWait       ViewKind = "wait"
)

type RequestMeta struct {
	UserAgent string
}

// View is everything a template needs to render one public page.
type View struct {
	Kind       ViewKind
	Locale     Locale
	Order      *domain.Order
	Storefront *domain.Storefront
	Country    *domain.Country
	Settings   *domain.Settings
}

type OrderResolver interface {
	ResolveOrder(ctx context.Context, orderID string) (*orderdto.ResolvedOrder, error)
}

type OperatorNotifier interface {
	Notify(ctx context.Context, ownerID int64, text, orderID string, replyTo int) int
}

type PageUsecase interface {
	RenderEntry(ctx context.Context, orderID string, meta RequestMeta) (*View, error)
	RenderPickup(ctx context.Context, orderID, point string, meta RequestMeta) (*View, error)
}

type DefaultPageUsecase struct {
	Orders       OrderResolver
	OrderRepo    domain.OrderRepository
	SettingsRepo domain.SettingsRepository
	Notifier     OperatorNotifier
	Publisher    domain.EventPublisher
	Metrics      *metrics.StorefrontMetrics
}

func NewDefaultPageUsecase(
	orders OrderResolver,
	orderRepo domain.OrderRepository,
	settingsRepo domain.SettingsRepository,
	notifier OperatorNotifier,
	eventPublisher domain.EventPublisher,
	storefrontMetrics *metrics.StorefrontMetrics,
) *DefaultPageUsecase {
	return &DefaultPageUsecase{
		Orders:       orders,
		OrderRepo:    orderRepo,
		SettingsRepo: settingsRepo,
		Notifier:     notifier,
		Publisher:    eventPublisher,
		Metrics:      storefrontMetrics,
	}
}

func (uc *DefaultPageUsecase) RenderEntry(ctx context.Context, orderID string, meta RequestMeta) (*View, error) {
	view, err := uc.prepare(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if view.Kind != ViewWait {
		if usesPickup(view) {
			view.Kind = ViewPickup
		} else {
			view.Kind = ViewOrder
		}
		online := true
		if err := uc.OrderRepo.UpdateOrder(ctx, orderID, domain.UpdateOrderParams{Online: &online}); err != nil {
			log.Warn().Err(err).Str("order_id", orderID).Msg("failed to mark order online")
		}
		view.Order.Online = true
	}

	uc.Metrics.PageViewsTotal.WithLabelValues(view.Storefront.Code, string(view.Kind)).Inc()
	uc.publishViewed(ctx, view.Order)
	uc.Notifier.Notify(ctx, view.Order.OwnerID, visitText(view, meta), view.Order.ID, 0)
	return view, nil
}

func (uc *DefaultPageUsecase) RenderPickup(ctx context.Context, orderID, point string, meta RequestMeta) (*View, error) {
	view, err := uc.prepare(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if view.Kind == ViewWait {
		uc.Notifier.Notify(ctx, view.Order.OwnerID, visitText(view, meta), view.Order.ID, 0)
		return view, nil
	}

	point = strings.TrimSpace(point)
	if !usesPickup(view) || !view.Country.HasPickupPoint(point) {
		return nil, fmt.Errorf("%w: unknown pickup point %q", domain.ErrInvalidInput, point)
	}

	if err := uc.OrderRepo.UpdateOrder(ctx, orderID, domain.UpdateOrderParams{PickupPoint: &point}); err != nil {
		return nil, fmt.Errorf("order %s: %w", orderID, err)
	}
	view.Order.PickupPoint = point
	view.Kind = ViewPickupDone

	uc.Metrics.PageViewsTotal.WithLabelValues(view.Storefront.Code, string(view.Kind)).Inc()
	text := fmt.Sprintf("📍 Pickup point chosen: %s\n📦 %s · %s %s\n📱 Device: %s",
		point, view.Order.Title, view.Order.FormattedPrice(), view.Order.Currency, DetectDevice(meta.UserAgent))
	uc.Notifier.Notify(ctx, view.Order.OwnerID, text, view.Order.ID, view.Order.MessageID)
	return view, nil
}

// prepare resolves the order chain and applies the availability guards.
func (uc *DefaultPageUsecase) prepare(ctx context.Context, orderID string) (*View, error) {
	resolved, err := uc.Orders.ResolveOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	settings, err := uc.SettingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}

	view := &View{
		Locale:     LocaleFor(resolved.Country.Code),
		Order:      resolved.Order,
		Storefront: resolved.Storefront,
		Country:    resolved.Country,
		Settings:   settings,
	}
	if !settings.Work || !resolved.Operator.SiteEnabled {
		view.Kind = ViewWait
	}
	return view, nil
}

func usesPickup(v *View) bool {
	return len(v.Country.PickupPoints) > 0 && (v.Country.PickupFlow || v.Settings.PickupFlow)
}

func (uc *DefaultPageUsecase) publishViewed(ctx context.Context, order *domain.Order) {
	err := uc.Publisher.PublishOrderEvent(ctx, domain.OrderEvent{
		Type:           domain.EventOrderViewed,
		OrderID:        order.ID,
		OwnerID:        order.OwnerID,
		StorefrontCode: order.StorefrontCode,
		Price:          order.Price,
		Currency:       order.Currency,
		Status:         order.Status,
		OccurredAt:     time.Now(),
	})
	if err != nil {
		uc.Metrics.EventPublishErrorsTotal.Inc()
		log.Warn().Err(err).Str("order_id", order.ID).Msg("viewed event not published")
	}
}

func visitText(v *View, meta RequestMeta) string {
	var b strings.Builder
	b.WriteString("👁 Order page opened")
	if v.Kind == ViewWait {
		b.WriteString(" (wait mode)")
	}
	fmt.Fprintf(&b, "\n📦 %s · %s %s", v.Order.Title, v.Order.FormattedPrice(), v.Order.Currency)
	fmt.Fprintf(&b, "\n🏬 %s", v.Storefront.Title)
	fmt.Fprintf(&b, "\n📱 Device: %s", DetectDevice(meta.UserAgent))
	return b.String()
}
