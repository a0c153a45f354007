package order_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/LavaJover/shvark-storefront-bot/internal/domain"
	"github.com/LavaJover/shvark-storefront-bot/internal/domain/domaintest"
	"github.com/LavaJover/shvark-storefront-bot/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-storefront-bot/internal/usecase/order"
	orderdto "github.com/LavaJover/shvark-storefront-bot/internal/usecase/dto/order"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ownerID = int64(42)

func newUsecase(t *testing.T) (*order.DefaultOrderUsecase, *domaintest.Store, *domaintest.Publisher) {
	t.Helper()
	store := domaintest.NewStore()
	store.Seed(ownerID)
	pub := &domaintest.Publisher{}
	uc, err := order.NewDefaultOrderUsecase(store, store, store, store, pub,
		metrics.NewStorefrontMetrics(prometheus.NewRegistry()), "https")
	require.NoError(t, err)
	return uc, store, pub
}

func onlyAlphabet(id string) bool {
	for _, r := range id {
		if !strings.ContainsRune(order.IDAlphabet, r) {
			return false
		}
	}
	return true
}

func TestCreateOrder(t *testing.T) {
	uc, store, pub := newUsecase(t)

	out, err := uc.CreateOrder(context.Background(), &orderdto.CreateOrderInput{
		StorefrontCode: "gadgets",
		OwnerID:        ownerID,
		Title:          "Phone",
		Price:          199.987,
		PhotoURL:       "https://x/y.jpg",
	})
	require.NoError(t, err)

	id := out.Order.ID
	assert.Len(t, id, order.IDLength)
	assert.True(t, onlyAlphabet(id), id)
	assert.Equal(t, "https://gadgets.example.kz/order/"+id, out.URL)

	saved := store.Orders[id]
	require.NotNil(t, saved)
	assert.Equal(t, domain.StatusShipped, saved.Status)
	assert.Equal(t, "KZT", saved.Currency)
	assert.Equal(t, "199.99", saved.FormattedPrice())
	assert.True(t, saved.ChatOpen)
	assert.Equal(t, []domain.OrderEventType{domain.EventOrderCreated}, pub.Types())
}

func TestCreateOrder_IDsUseOnlyAlphabet(t *testing.T) {
	uc, _, _ := newUsecase(t)
	for i := 0; i < 200; i++ {
		out, err := uc.CreateOrder(context.Background(), &orderdto.CreateOrderInput{
			StorefrontCode: "books", OwnerID: ownerID, Title: "Book", Price: 1,
		})
		require.NoError(t, err)
		require.Len(t, out.Order.ID, 8)
		require.True(t, onlyAlphabet(out.Order.ID), out.Order.ID)
		require.Contains(t, out.URL, "books.example.com")
	}
}

func TestCreateOrder_Rejections(t *testing.T) {
	uc, store, _ := newUsecase(t)
	ctx := context.Background()

	_, err := uc.CreateOrder(ctx, &orderdto.CreateOrderInput{StorefrontCode: "missing", OwnerID: ownerID, Title: "x", Price: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.CreateOrder(ctx, &orderdto.CreateOrderInput{StorefrontCode: "closed", OwnerID: ownerID, Title: "x", Price: 1})
	assert.ErrorIs(t, err, domain.ErrStorefrontDisabled)

	_, err = uc.CreateOrder(ctx, &orderdto.CreateOrderInput{StorefrontCode: "books", OwnerID: ownerID, Title: " ", Price: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateOrder(ctx, &orderdto.CreateOrderInput{StorefrontCode: "books", OwnerID: ownerID, Title: "x", Price: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Empty(t, store.Orders)
}

func TestCreateOrder_PublishFailureIsNotFatal(t *testing.T) {
	uc, store, pub := newUsecase(t)
	pub.Err = errors.New("broker down")

	_, err := uc.CreateOrder(context.Background(), &orderdto.CreateOrderInput{
		StorefrontCode: "books", OwnerID: ownerID, Title: "Book", Price: 3,
	})
	require.NoError(t, err)
	assert.Len(t, store.Orders, 1)
}

func TestResolveOrder(t *testing.T) {
	uc, store, _ := newUsecase(t)
	ctx := context.Background()

	_, err := uc.ResolveOrder(ctx, "nOpEnOpE")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	out, err := uc.CreateOrder(ctx, &orderdto.CreateOrderInput{StorefrontCode: "books", OwnerID: ownerID, Title: "Book", Price: 3})
	require.NoError(t, err)

	resolved, err := uc.ResolveOrder(ctx, out.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, "books", resolved.Storefront.Code)
	assert.Equal(t, "de", resolved.Country.Code)
	assert.Equal(t, ownerID, resolved.Operator.ID)

	// dangling references resolve as not found
	delete(store.Countries, "de")
	_, err = uc.ResolveOrder(ctx, out.Order.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	store.Countries["de"] = &domain.Country{Code: "de", Enabled: true}
	delete(store.Operators, ownerID)
	_, err = uc.ResolveOrder(ctx, out.Order.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMutations(t *testing.T) {
	uc, store, pub := newUsecase(t)
	ctx := context.Background()

	out, err := uc.CreateOrder(ctx, &orderdto.CreateOrderInput{StorefrontCode: "books", OwnerID: ownerID, Title: "Book", Price: 3})
	require.NoError(t, err)
	id := out.Order.ID

	updated, err := uc.SetPrice(ctx, id, 10.006)
	require.NoError(t, err)
	assert.Equal(t, "10.01", updated.FormattedPrice())

	_, err = uc.SetPrice(ctx, id, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	require.NoError(t, uc.SetStatus(ctx, id, domain.StatusDelivered))
	assert.Equal(t, domain.StatusDelivered, store.Orders[id].Status)
	assert.ErrorIs(t, uc.SetStatus(ctx, id, "paid"), domain.ErrInvalidInput)

	require.NoError(t, uc.SetChatOpen(ctx, id, false))
	assert.False(t, store.Orders[id].ChatOpen)

	require.NoError(t, uc.DeleteOrder(ctx, id))
	assert.ErrorIs(t, uc.DeleteOrder(ctx, id), domain.ErrNotFound)
	assert.ErrorIs(t, uc.SetChatOpen(ctx, id, true), domain.ErrNotFound)

	assert.Equal(t, []domain.OrderEventType{
		domain.EventOrderCreated,
		domain.EventOrderPriceChanged,
		domain.EventOrderStatus,
		domain.EventOrderDeleted,
	}, pub.Types())
}

func TestDeleteAllForOwnerAndStats(t *testing.T) {
	uc, store, _ := newUsecase(t)
	ctx := context.Background()

	for _, price := range []float64{1, 2.5} {
		_, err := uc.CreateOrder(ctx, &orderdto.CreateOrderInput{StorefrontCode: "books", OwnerID: ownerID, Title: "Book", Price: price})
		require.NoError(t, err)
	}
	store.Orders["oldOrder"] = &domain.Order{ID: "oldOrder", OwnerID: ownerID, Price: 100, CreatedAt: time.Now().Add(-72 * time.Hour)}
	store.Orders["otherOwn"] = &domain.Order{ID: "otherOwn", OwnerID: 7, Price: 5, CreatedAt: time.Now()}

	st, err := uc.Stats(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), st.Day.Count)
	assert.InDelta(t, 3.5, st.Day.Sum, 1e-9)
	assert.Equal(t, int64(3), st.Week.Count)
	assert.Equal(t, int64(3), st.AllTime.Count)

	n, err := uc.DeleteAllForOwner(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.Len(t, store.Orders, 1)
}
