package router_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/LavaJover/shvark-storefront-bot/internal/delivery/http/handlers"
	"github.com/LavaJover/shvark-storefront-bot/internal/delivery/http/router"
	"github.com/LavaJover/shvark-storefront-bot/internal/domain"
	"github.com/LavaJover/shvark-storefront-bot/internal/domain/domaintest"
	"github.com/LavaJover/shvark-storefront-bot/internal/infrastructure/metrics"
	orderdto "github.com/LavaJover/shvark-storefront-bot/internal/usecase/dto/order"
	"github.com/LavaJover/shvark-storefront-bot/internal/usecase/notify"
	"github.com/LavaJover/shvark-storefront-bot/internal/usecase/order"
	"github.com/LavaJover/shvark-storefront-bot/internal/usecase/page"
	"github.com/LavaJover/shvark-storefront-bot/internal/usecase/support"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ownerID = int64(42)

type fixture struct {
	store    *domaintest.Store
	notifier *domaintest.Notifier
	orders   *order.DefaultOrderUsecase
	engine   *gin.Engine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := domaintest.NewStore()
	store.Seed(ownerID)
	reg := prometheus.NewRegistry()
	m := metrics.NewStorefrontMetrics(reg)
	pub := &domaintest.Publisher{}
	notifier := &domaintest.Notifier{}

	orders, err := order.NewDefaultOrderUsecase(store, store, store, store, pub, m, "https")
	require.NoError(t, err)
	fan := notify.NewFanOut(notifier, store, m)
	pages := page.NewDefaultPageUsecase(orders, store, store, fan, pub, m)
	supportUsecase := support.NewDefaultSupportUsecase(store, store, fan)

	engine := router.New(router.Handlers{
		Page:     handlers.NewPageHandler(pages),
		API:      handlers.NewAPIHandler(orders, supportUsecase),
		Gatherer: reg,
	})
	return &fixture{store: store, notifier: notifier, orders: orders, engine: engine}
}

func (f *fixture) createOrder(t *testing.T, storefront string) string {
	t.Helper()
	out, err := f.orders.CreateOrder(context.Background(), &orderdto.CreateOrderInput{
		StorefrontCode: storefront, OwnerID: ownerID, Title: "Desk Lamp", Price: 25,
		ReceiverName: "Jane Roe", ReceiverPhone: "+100200300",
	})
	require.NoError(t, err)
	return out.Order.ID
}

func (f *fixture) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func TestOrderPage(t *testing.T) {
	f := newFixture(t)
	id := f.createOrder(t, "books")

	req := httptest.NewRequest(http.MethodGet, "/order/"+id, nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)")
	w := f.do(req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Ihre Bestellung")
	assert.Contains(t, body, "Desk Lamp")
	assert.Contains(t, body, "25.00 EUR")
	assert.NotContains(t, body, "<input")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Len(t, f.notifier.Messages(), 1)
}

func TestOrderPage_Unknown(t *testing.T) {
	f := newFixture(t)

	w := f.do(httptest.NewRequest(http.MethodGet, "/order/Missing1", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, f.notifier.Messages())
}

func TestOrderPage_WaitMode(t *testing.T) {
	f := newFixture(t)
	id := f.createOrder(t, "books")
	f.store.Settings.Work = false

	w := f.do(httptest.NewRequest(http.MethodGet, "/order/"+id, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Gleich wieder da")
	assert.NotContains(t, w.Body.String(), "Desk Lamp")
}

func TestPickupFlow(t *testing.T) {
	f := newFixture(t)
	id := f.createOrder(t, "gadgets")

	w := f.do(httptest.NewRequest(http.MethodGet, "/pickup/"+id, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Almaty Central")

	form := url.Values{"point": {"Astana Mall"}}
	req := httptest.NewRequest(http.MethodPost, "/pickup/"+id, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = f.do(req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Astana Mall")
	assert.Equal(t, "Astana Mall", f.store.Orders[id].PickupPoint)
}

func TestPickupFlow_UnknownPoint(t *testing.T) {
	f := newFixture(t)
	id := f.createOrder(t, "gadgets")

	form := url.Values{"point": {"Nowhere"}}
	req := httptest.NewRequest(http.MethodPost, "/pickup/"+id, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := f.do(req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, f.store.Orders[id].PickupPoint)
}

func TestGetItem(t *testing.T) {
	f := newFixture(t)
	id := f.createOrder(t, "gadgets")

	w := f.do(httptest.NewRequest(http.MethodGet, "/api/items/"+id, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var item map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, id, item["id"])
	assert.Equal(t, "25.00", item["price"])
	assert.Equal(t, "KZT", item["currency"])
	assert.Equal(t, "kz", item["country"])
	assert.NotContains(t, w.Body.String(), "Jane Roe")
	assert.NotContains(t, w.Body.String(), "+100200300")
}

func TestGetItem_Unknown(t *testing.T) {
	f := newFixture(t)

	w := f.do(httptest.NewRequest(http.MethodGet, "/api/items/Missing1", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSupportMessage(t *testing.T) {
	f := newFixture(t)
	id := f.createOrder(t, "books")
	f.store.Orders[id].ChatOpen = true

	w := f.do(postJSON("/api/support/message", `{"orderId":"`+id+`","ownerId":42,"message":"Is it in stock?"}`))
	require.Equal(t, http.StatusOK, w.Code)

	w = f.do(httptest.NewRequest(http.MethodGet, "/api/support/"+id, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var thread struct {
		OrderID  string `json:"orderId"`
		Messages []struct {
			Role    string `json:"role"`
			Message string `json:"message"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &thread))
	assert.Equal(t, id, thread.OrderID)
	require.Len(t, thread.Messages, 1)
	assert.Equal(t, string(domain.RoleCustomer), thread.Messages[0].Role)
	assert.Equal(t, "Is it in stock?", thread.Messages[0].Message)
}

func TestSupportMessage_Statuses(t *testing.T) {
	f := newFixture(t)
	closed := f.createOrder(t, "books")
	f.store.Orders[closed].ChatOpen = false
	open := f.createOrder(t, "books")
	f.store.Orders[open].ChatOpen = true

	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed json", `{"orderId":`, http.StatusBadRequest},
		{"missing message", `{"orderId":"` + open + `"}`, http.StatusBadRequest},
		{"blank message", `{"orderId":"` + open + `","message":"   "}`, http.StatusBadRequest},
		{"chat closed", `{"orderId":"` + closed + `","message":"hi"}`, http.StatusForbidden},
		{"unknown order", `{"orderId":"Missing1","message":"hi"}`, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.do(postJSON("/api/support/message", tt.body))
			assert.Equal(t, tt.want, w.Code)
		})
	}
	assert.Empty(t, f.store.Logs)
}

func TestHealthAndMetrics(t *testing.T) {
	f := newFixture(t)
	f.createOrder(t, "books")

	w := f.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "storefront_orders_created_total")
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, handlers.StatusFor(domain.ErrNotFound))
	assert.Equal(t, http.StatusForbidden, handlers.StatusFor(domain.ErrChatClosed))
	assert.Equal(t, http.StatusBadRequest, handlers.StatusFor(domain.ErrInvalidInput))
	assert.Equal(t, http.StatusInternalServerError, handlers.StatusFor(assert.AnError))
}
