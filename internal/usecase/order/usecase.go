package order

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/LavaJover/shvark-storefront-bot/internal/domain"
	"github.com/LavaJover/shvark-storefront-bot/internal/infrastructure/metrics"
	orderdto "github.com/LavaJover/shvark-storefront-bot/internal/usecase/dto/order"
	"github.com/jaevor/go-nanoid"
	"github.com/rs/zerolog/log"
)

// IDAlphabet is the 52-letter alphabet order ids are drawn from.
const IDAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

const IDLength = 8

type OrderUsecase interface {
	CreateOrder(ctx context.Context, input *orderdto.CreateOrderInput) (*orderdto.CreateOrderOutput, error)
	ResolveOrder(ctx context.Context, orderID string) (*orderdto.ResolvedOrder, error)
	OrderURL(storefront *domain.Storefront, orderID string) string

	SetPrice(ctx context.Context, orderID string, price float64) (*domain.Order, error)
	SetStatus(ctx context.Context, orderID string, status domain.OrderStatus) error
	SetChatOpen(ctx context.Context, orderID string, open bool) error
	SetMessageID(ctx context.Context, orderID string, messageID int) error
	DeleteOrder(ctx context.Context, orderID string) error
	DeleteAllForOwner(ctx context.Context, ownerID int64) (int64, error)

	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	ListForOwner(ctx context.Context, ownerID int64) ([]*domain.Order, error)
	Stats(ctx context.Context, ownerID int64) (*orderdto.OwnerStats, error)
}

type DefaultOrderUsecase struct {
	OrderRepo      domain.OrderRepository
	StorefrontRepo domain.StorefrontRepository
	CountryRepo    domain.CountryRepository
	OperatorRepo   domain.OperatorRepository
	Publisher      domain.EventPublisher
	Metrics        *metrics.StorefrontMetrics

	linkScheme string
	newID      func() string
	now        func() time.Time
}

func NewDefaultOrderUsecase(
	orderRepo domain.OrderRepository,
	storefrontRepo domain.StorefrontRepository,
	countryRepo domain.CountryRepository,
	operatorRepo domain.OperatorRepository,
	eventPublisher domain.EventPublisher,
	storefrontMetrics *metrics.StorefrontMetrics,
	linkScheme string,
) (*DefaultOrderUsecase, error) {
	idGenerator, err := nanoid.CustomASCII(IDAlphabet, IDLength)
	if err != nil {
		return nil, fmt.Errorf("order id generator: %w", err)
	}
	if linkScheme == "" {
		linkScheme = "https"
	}

	return &DefaultOrderUsecase{
		OrderRepo:      orderRepo,
		StorefrontRepo: storefrontRepo,
		CountryRepo:    countryRepo,
		OperatorRepo:   operatorRepo,
		Publisher:      eventPublisher,
		Metrics:        storefrontMetrics,
		linkScheme:     linkScheme,
		newID:          idGenerator,
		now:            time.Now,
	}, nil
}

func (uc *DefaultOrderUsecase) CreateOrder(ctx context.Context, input *orderdto.CreateOrderInput) (*orderdto.CreateOrderOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: empty title", domain.ErrInvalidInput)
	}
	if math.IsNaN(input.Price) || math.IsInf(input.Price, 0) || input.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", domain.ErrInvalidInput)
	}

	storefront, err := uc.StorefrontRepo.GetStorefrontByCode(ctx, input.StorefrontCode)
	if err != nil {
		return nil, fmt.Errorf("storefront %s: %w", input.StorefrontCode, err)
	}
	if !storefront.Enabled {
		return nil, fmt.Errorf("storefront %s: %w", storefront.Code, domain.ErrStorefrontDisabled)
	}

	// Ids are best-effort unique; a collision surfaces as an insert error.
	order := &domain.Order{
		ID:              uc.newID(),
		OwnerID:         input.OwnerID,
		StorefrontCode:  storefront.Code,
		Title:           title,
		PhotoURL:        input.PhotoURL,
		Price:           RoundPrice(input.Price),
		Currency:        storefront.Currency,
		Status:          storefront.Status,
		ReceiverName:    input.ReceiverName,
		ReceiverPhone:   input.ReceiverPhone,
		ReceiverAddress: input.ReceiverAddress,
		ChatOpen:        true,
		CreatedAt:       uc.now(),
	}
	if order.Status == "" {
		order.Status = domain.StatusCreated
	}

	if err := uc.OrderRepo.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	uc.Metrics.OrdersCreatedTotal.WithLabelValues(storefront.Code).Inc()
	uc.Metrics.OrdersCreatedAmount.WithLabelValues(storefront.Code, storefront.Currency).Add(order.Price)
	uc.publish(ctx, domain.EventOrderCreated, order)

	return &orderdto.CreateOrderOutput{
		Order: order,
		URL:   uc.OrderURL(storefront, order.ID),
	}, nil
}

func (uc *DefaultOrderUsecase) OrderURL(storefront *domain.Storefront, orderID string) string {
	return fmt.Sprintf("%s://%s/order/%s", uc.linkScheme, storefront.Domain, orderID)
}

// ResolveOrder walks order, storefront, country and operator one after another.
// The lookups are not transactional; a catalog edit between them is tolerated.
func (uc *DefaultOrderUsecase) ResolveOrder(ctx context.Context, orderID string) (*orderdto.ResolvedOrder, error) {
	order, err := uc.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", orderID, err)
	}
	storefront, err := uc.StorefrontRepo.GetStorefrontByCode(ctx, order.StorefrontCode)
	if err != nil {
		return nil, fmt.Errorf("storefront %s: %w", order.StorefrontCode, err)
	}
	country, err := uc.CountryRepo.GetCountryByCode(ctx, storefront.CountryCode)
	if err != nil {
		return nil, fmt.Errorf("country %s: %w", storefront.CountryCode, err)
	}
	operator, err := uc.OperatorRepo.GetOperatorByID(ctx, order.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("operator %d: %w", order.OwnerID, err)
	}

	return &orderdto.ResolvedOrder{
		Order:      order,
		Storefront: storefront,
		Country:    country,
		Operator:   operator,
	}, nil
}

func (uc *DefaultOrderUsecase) publish(ctx context.Context, typ domain.OrderEventType, order *domain.Order) {
	err := uc.Publisher.PublishOrderEvent(ctx, domain.OrderEvent{
		Type:           typ,
		OrderID:        order.ID,
		OwnerID:        order.OwnerID,
		StorefrontCode: order.StorefrontCode,
		Price:          order.Price,
		Currency:       order.Currency,
		Status:         order.Status,
		OccurredAt:     uc.now(),
	})
	if err != nil {
		uc.Metrics.EventPublishErrorsTotal.Inc()
		log.Warn().Err(err).Str("order_id", order.ID).Str("event", string(typ)).Msg("order event not published")
	}
}

// RoundPrice rounds to cents.
func RoundPrice(price float64) float64 {
	return math.Round(price*100) / 100
}
