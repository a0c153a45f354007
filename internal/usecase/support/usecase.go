package support

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/LavaJover/shvark-storefront-bot/internal/domain"
	"github.com/LavaJover/shvark-storefront-bot/internal/infrastructure/telegram"
	"github.com/google/uuid"
)

const MaxMessageRunes = 1000

type OperatorNotifier interface {
	Notify(ctx context.Context, ownerID int64, text, orderID string, replyTo int) int
}

type SupportUsecase interface {
	CustomerMessage(ctx context.Context, orderID string, ownerID int64, text string) error
	OperatorReply(ctx context.Context, operatorID int64, repliedText, text string) (string, error)
	Thread(ctx context.Context, orderID string) ([]*domain.SupportLog, error)
}

type DefaultSupportUsecase struct {
	OrderRepo domain.OrderRepository
	LogRepo   domain.SupportLogRepository
	Notifier  OperatorNotifier
}

func NewDefaultSupportUsecase(orderRepo domain.OrderRepository, logRepo domain.SupportLogRepository, notifier OperatorNotifier) *DefaultSupportUsecase {
	return &DefaultSupportUsecase{
		OrderRepo: orderRepo,
		LogRepo:   logRepo,
		Notifier:  notifier,
	}
}

// CustomerMessage stores a message written on the order page and forwards it
// to the order's owner. A non-zero ownerID must match the order.
func (uc *DefaultSupportUsecase) CustomerMessage(ctx context.Context, orderID string, ownerID int64, text string) error {
	text, err := cleanMessage(text)
	if err != nil {
		return err
	}

	order, err := uc.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("order %s: %w", orderID, err)
	}
	if ownerID != 0 && ownerID != order.OwnerID {
		return fmt.Errorf("%w: owner does not match order", domain.ErrInvalidInput)
	}
	if !order.ChatOpen {
		return domain.ErrChatClosed
	}

	if err := uc.LogRepo.CreateLog(ctx, &domain.SupportLog{
		ID:        uuid.NewString(),
		OrderID:   order.ID,
		Role:      domain.RoleCustomer,
		Message:   text,
		CreatedAt: time.Now(),
	}); err != nil {
		return fmt.Errorf("store support message: %w", err)
	}

	uc.Notifier.Notify(ctx, order.OwnerID,
		fmt.Sprintf("💬 Customer message\n📦 %s\n\n%s\n\nReply to this message to answer.", order.Title, text),
		order.ID, order.MessageID)
	return nil
}

// OperatorReply threads an operator's reply back to the order tagged in the
// message they replied to and returns that order id.
func (uc *DefaultSupportUsecase) OperatorReply(ctx context.Context, operatorID int64, repliedText, text string) (string, error) {
	orderID, ok := telegram.ExtractOrderID(repliedText)
	if !ok {
		return "", domain.ErrNoCorrelation
	}
	text, err := cleanMessage(text)
	if err != nil {
		return "", err
	}

	order, err := uc.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return "", fmt.Errorf("order %s: %w", orderID, err)
	}
	if order.OwnerID != operatorID {
		return "", fmt.Errorf("order %s: %w", orderID, domain.ErrNotFound)
	}

	if err := uc.LogRepo.CreateLog(ctx, &domain.SupportLog{
		ID:        uuid.NewString(),
		OrderID:   order.ID,
		Role:      domain.RoleOperator,
		Message:   text,
		CreatedAt: time.Now(),
	}); err != nil {
		return "", fmt.Errorf("store support reply: %w", err)
	}
	return order.ID, nil
}

func (uc *DefaultSupportUsecase) Thread(ctx context.Context, orderID string) ([]*domain.SupportLog, error) {
	if _, err := uc.OrderRepo.GetOrderByID(ctx, orderID); err != nil {
		return nil, fmt.Errorf("order %s: %w", orderID, err)
	}
	return uc.LogRepo.GetLogsByOrder(ctx, orderID)
}

func cleanMessage(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: empty message", domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(text) > MaxMessageRunes {
		return "", fmt.Errorf("%w: message longer than %d characters", domain.ErrInvalidInput, MaxMessageRunes)
	}
	return text, nil
}
