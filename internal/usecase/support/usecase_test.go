package support_test

import (
	"context"
	"strings"
	"testing"

	"github.com/LavaJover/shvark-storefront-bot/internal/domain"
	"github.com/LavaJover/shvark-storefront-bot/internal/domain/domaintest"
	"github.com/LavaJover/shvark-storefront-bot/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-storefront-bot/internal/usecase/notify"
	"github.com/LavaJover/shvark-storefront-bot/internal/usecase/support"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ownerID = int64(42)

func newSupport(t *testing.T) (*support.DefaultSupportUsecase, *domaintest.Store, *domaintest.Notifier) {
	t.Helper()
	store := domaintest.NewStore()
	store.Seed(ownerID)
	store.Orders["AbCdEfGh"] = &domain.Order{
		ID: "AbCdEfGh", OwnerID: ownerID, StorefrontCode: "books", Title: "Lamp",
		Price: 10, Currency: "EUR", ChatOpen: true, MessageID: 77,
	}
	notifier := &domaintest.Notifier{}
	fan := notify.NewFanOut(notifier, store, metrics.NewStorefrontMetrics(prometheus.NewRegistry()))
	return support.NewDefaultSupportUsecase(store, store, fan), store, notifier
}

func TestCustomerMessage(t *testing.T) {
	uc, store, notifier := newSupport(t)
	ctx := context.Background()

	require.NoError(t, uc.CustomerMessage(ctx, "AbCdEfGh", ownerID, "  When will it ship?  "))

	require.Len(t, store.Logs, 1)
	assert.Equal(t, domain.RoleCustomer, store.Logs[0].Role)
	assert.Equal(t, "When will it ship?", store.Logs[0].Message)

	sent := notifier.Messages()
	require.Len(t, sent, 1)
	assert.Equal(t, 77, sent[0].ReplyTo)
	assert.Contains(t, sent[0].Text, "🆔 Track: AbCdEfGh")
}

func TestCustomerMessage_Rejections(t *testing.T) {
	uc, store, notifier := newSupport(t)
	ctx := context.Background()

	assert.ErrorIs(t, uc.CustomerMessage(ctx, "zzzzzzzz", 0, "hi"), domain.ErrNotFound)
	assert.ErrorIs(t, uc.CustomerMessage(ctx, "AbCdEfGh", 0, "   "), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.CustomerMessage(ctx, "AbCdEfGh", 0, strings.Repeat("a", 1001)), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.CustomerMessage(ctx, "AbCdEfGh", 99, "hi"), domain.ErrInvalidInput)

	store.Orders["AbCdEfGh"].ChatOpen = false
	assert.ErrorIs(t, uc.CustomerMessage(ctx, "AbCdEfGh", 0, "hi"), domain.ErrChatClosed)

	assert.Empty(t, store.Logs)
	assert.Empty(t, notifier.Messages())
}

func TestOperatorReply(t *testing.T) {
	uc, _, _ := newSupport(t)
	ctx := context.Background()

	orderID, err := uc.OperatorReply(ctx, ownerID, "💬 Customer message\n\n🆔 Track: AbCdEfGh", "Tomorrow")
	require.NoError(t, err)
	assert.Equal(t, "AbCdEfGh", orderID)

	thread, err := uc.Thread(ctx, "AbCdEfGh")
	require.NoError(t, err)
	require.Len(t, thread, 1)
	assert.Equal(t, domain.RoleOperator, thread[0].Role)
	assert.Equal(t, "Tomorrow", thread[0].Message)
}

func TestOperatorReply_UnrelatedMessageCreatesNoLog(t *testing.T) {
	uc, store, _ := newSupport(t)

	_, err := uc.OperatorReply(context.Background(), ownerID, "Main menu", "hello")
	assert.ErrorIs(t, err, domain.ErrNoCorrelation)
	assert.Empty(t, store.Logs)
}

func TestOperatorReply_ForeignOrder(t *testing.T) {
	uc, store, _ := newSupport(t)

	_, err := uc.OperatorReply(context.Background(), 7, "🆔 Track: AbCdEfGh", "hello")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, store.Logs)
}

func TestThread_UnknownOrder(t *testing.T) {
	uc, _, _ := newSupport(t)
	_, err := uc.Thread(context.Background(), "missingx")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
