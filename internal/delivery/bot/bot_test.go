package bot_test

import (
	"context"
	"sync"
	"testing"

	"github.com/LavaJover/shvark-storefront-bot/internal/delivery/bot"
	"github.com/LavaJover/shvark-storefront-bot/internal/domain"
	"github.com/LavaJover/shvark-storefront-bot/internal/domain/domaintest"
	"github.com/LavaJover/shvark-storefront-bot/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-storefront-bot/internal/usecase/notify"
	"github.com/LavaJover/shvark-storefront-bot/internal/usecase/order"
	"github.com/LavaJover/shvark-storefront-bot/internal/usecase/support"
	"github.com/LavaJover/shvark-storefront-bot/internal/wizard"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const operatorID = int64(42)

type fakeSender struct {
	mu     sync.Mutex
	nextID int
	texts  []string
}

func (s *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch m := c.(type) {
	case tgbotapi.MessageConfig:
		s.texts = append(s.texts, m.Text)
	case tgbotapi.EditMessageTextConfig:
		s.texts = append(s.texts, m.Text)
	}
	s.nextID++
	return tgbotapi.Message{MessageID: s.nextID}, nil
}

func (s *fakeSender) Request(tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (s *fakeSender) last() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.texts) == 0 {
		return ""
	}
	return s.texts[len(s.texts)-1]
}

type fixture struct {
	bot      *bot.Bot
	sender   *fakeSender
	store    *domaintest.Store
	notifier *domaintest.Notifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := domaintest.NewStore()
	store.Seed(operatorID)
	m := metrics.NewStorefrontMetrics(prometheus.NewRegistry())
	notifier := &domaintest.Notifier{}
	fan := notify.NewFanOut(notifier, store, m)

	orders, err := order.NewDefaultOrderUsecase(store, store, store, store, &domaintest.Publisher{}, m, "https")
	require.NoError(t, err)

	sender := &fakeSender{}
	b := bot.New(bot.Deps{
		API:          sender,
		Sessions:     wizard.NewMemoryStore(),
		Orders:       orders,
		Support:      support.NewDefaultSupportUsecase(store, store, fan),
		Operators:    store,
		Storefronts:  store,
		SettingsRepo: store,
		FanOut:       fan,
		Metrics:      m,
	})
	return &fixture{bot: b, sender: sender, store: store, notifier: notifier}
}

func (f *fixture) text(actor int64, text string) {
	f.bot.HandleUpdate(context.Background(), tgbotapi.Update{Message: &tgbotapi.Message{
		MessageID: 1,
		From:      &tgbotapi.User{ID: actor, UserName: "op"},
		Chat:      &tgbotapi.Chat{ID: actor},
		Text:      text,
	}})
}

func (f *fixture) reply(actor int64, repliedText, text string) {
	f.bot.HandleUpdate(context.Background(), tgbotapi.Update{Message: &tgbotapi.Message{
		MessageID:      2,
		From:           &tgbotapi.User{ID: actor},
		Chat:           &tgbotapi.Chat{ID: actor},
		Text:           text,
		ReplyToMessage: &tgbotapi.Message{MessageID: 1, Text: repliedText},
	}})
}

func (f *fixture) press(actor int64, data string) {
	f.bot.HandleUpdate(context.Background(), tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:      "cb",
		From:    &tgbotapi.User{ID: actor},
		Message: &tgbotapi.Message{MessageID: 1, Chat: &tgbotapi.Chat{ID: actor}},
		Data:    data,
	}})
}

func (f *fixture) onlyOrder(t *testing.T) *domain.Order {
	t.Helper()
	require.Len(t, f.store.Orders, 1)
	for _, o := range f.store.Orders {
		return o
	}
	return nil
}

func TestCreateOrderWizard(t *testing.T) {
	f := newFixture(t)

	f.press(operatorID, "create_gadgets")
	f.text(operatorID, "Phone")
	f.text(operatorID, "199.99")
	f.text(operatorID, "https://x/y.jpg")
	f.press(operatorID, "wz_skip")

	o := f.onlyOrder(t)
	assert.Equal(t, "Phone", o.Title)
	assert.Equal(t, domain.StatusShipped, o.Status)
	assert.Equal(t, "199.99", o.FormattedPrice())
	assert.Equal(t, "https://x/y.jpg", o.PhotoURL)
	assert.Equal(t, operatorID, o.OwnerID)

	sent := f.notifier.Messages()
	require.Len(t, sent, 1)
	assert.Equal(t, operatorID, sent[0].ChatID)
	assert.Contains(t, sent[0].Text, o.ID)
	assert.Contains(t, sent[0].Text, "https://gadgets.example.kz/order/"+o.ID)
	assert.NotZero(t, o.MessageID)
}

func TestCreateOrderWizard_RemembersTypedReceiver(t *testing.T) {
	f := newFixture(t)

	f.press(operatorID, "create_books")
	f.text(operatorID, "Lamp")
	f.text(operatorID, "12")
	f.text(operatorID, "https://x/lamp.jpg")
	f.text(operatorID, "Jane Roe")

	assert.Equal(t, "Jane Roe", f.onlyOrder(t).ReceiverName)
	assert.Equal(t, "Jane Roe", f.store.Operators[operatorID].SavedName)
}

func TestCreateOrderWizard_BadPriceCreatesNothing(t *testing.T) {
	f := newFixture(t)

	f.press(operatorID, "create_books")
	f.text(operatorID, "Phone")
	f.text(operatorID, "abc")

	assert.Contains(t, f.sender.last(), "start again")

	// the conversation is gone, so further input no longer reaches the wizard
	f.text(operatorID, "https://x/y.jpg")
	assert.Empty(t, f.store.Orders)
	assert.Empty(t, f.notifier.Messages())
}

func TestCreateOrderWizard_UsesSavedReceiverName(t *testing.T) {
	f := newFixture(t)
	f.store.Operators[operatorID].SavedName = "Anna"

	f.press(operatorID, "create_books")
	f.text(operatorID, "Lamp")
	f.text(operatorID, "12")
	f.text(operatorID, "https://x/lamp.jpg")
	f.press(operatorID, "wz_saved")

	assert.Equal(t, "Anna", f.onlyOrder(t).ReceiverName)
}

func TestCreateOrderWizard_CancelThenRestart(t *testing.T) {
	f := newFixture(t)

	f.press(operatorID, "create_books")
	f.text(operatorID, "Lamp")
	f.press(operatorID, wizard.CancelData)

	f.press(operatorID, "create_books")
	f.text(operatorID, "Chair")
	f.text(operatorID, "30")
	f.text(operatorID, "https://x/chair.jpg")
	f.text(operatorID, "Bob")

	o := f.onlyOrder(t)
	assert.Equal(t, "Chair", o.Title)
	assert.Equal(t, "Bob", o.ReceiverName)
}

func TestCreateOrderWizard_DisabledStorefront(t *testing.T) {
	f := newFixture(t)

	f.press(operatorID, "create_closed")
	assert.Contains(t, f.sender.last(), "disabled")
	f.text(operatorID, "Lamp")
	assert.Empty(t, f.store.Orders)
}

func TestEditPriceAllowsRetries(t *testing.T) {
	f := newFixture(t)
	f.store.Orders["AbCdEfGh"] = &domain.Order{ID: "AbCdEfGh", OwnerID: operatorID, StorefrontCode: "books", Price: 5, Currency: "EUR"}

	f.press(operatorID, "price_AbCdEfGh")
	f.text(operatorID, "oops")
	f.text(operatorID, "7.5")

	assert.Equal(t, "7.50", f.store.Orders["AbCdEfGh"].FormattedPrice())
	assert.Contains(t, f.sender.last(), "7.50")
}

func TestOrderActionsAreOwnerScoped(t *testing.T) {
	f := newFixture(t)
	f.store.Orders["AbCdEfGh"] = &domain.Order{ID: "AbCdEfGh", OwnerID: 7, StorefrontCode: "books", ChatOpen: true}

	f.press(operatorID, "chatClose_AbCdEfGh")
	assert.True(t, f.store.Orders["AbCdEfGh"].ChatOpen)

	f.press(operatorID, "delete_AbCdEfGh")
	assert.Contains(t, f.store.Orders, "AbCdEfGh")
}

func TestOrderActions(t *testing.T) {
	f := newFixture(t)
	f.store.Orders["AbCdEfGh"] = &domain.Order{ID: "AbCdEfGh", OwnerID: operatorID, StorefrontCode: "books", ChatOpen: true, Status: domain.StatusCreated}

	f.press(operatorID, "eye_AbCdEfGh")
	assert.Contains(t, f.sender.last(), "Order ID: AbCdEfGh")

	f.press(operatorID, "chatClose_AbCdEfGh")
	assert.False(t, f.store.Orders["AbCdEfGh"].ChatOpen)

	f.press(operatorID, "status_delivered_AbCdEfGh")
	assert.Equal(t, domain.StatusDelivered, f.store.Orders["AbCdEfGh"].Status)

	f.press(operatorID, "delete_AbCdEfGh")
	assert.NotContains(t, f.store.Orders, "AbCdEfGh")
}

func TestReplyCorrelation(t *testing.T) {
	f := newFixture(t)
	f.store.Orders["AB12CD34"] = &domain.Order{ID: "AB12CD34", OwnerID: operatorID, StorefrontCode: "books"}

	f.reply(operatorID, "💬 Customer message\n\n🆔 Track: AB12CD34", "It ships tomorrow")
	require.Len(t, f.store.Logs, 1)
	assert.Equal(t, "AB12CD34", f.store.Logs[0].OrderID)
	assert.Equal(t, domain.RoleOperator, f.store.Logs[0].Role)

	f.reply(operatorID, "🏠 Main menu", "hello?")
	assert.Len(t, f.store.Logs, 1)
	assert.Contains(t, f.sender.last(), "not linked to an order")
}

func TestStartRegistersOperator(t *testing.T) {
	f := newFixture(t)

	f.text(555, "/start")
	op, ok := f.store.Operators[555]
	require.True(t, ok)
	assert.True(t, op.NotificationsEnabled)
	assert.True(t, op.SiteEnabled)
	assert.Equal(t, "🏠 Main menu", f.sender.last())
}

func TestSettingsToggles(t *testing.T) {
	f := newFixture(t)

	f.press(operatorID, "toggle_notify")
	assert.False(t, f.store.Operators[operatorID].NotificationsEnabled)
	f.press(operatorID, "toggle_site")
	assert.False(t, f.store.Operators[operatorID].SiteEnabled)

	f.press(operatorID, "admin_work")
	assert.True(t, f.store.Settings.Work)
	assert.Contains(t, f.sender.last(), "Not allowed")

	f.store.Operators[operatorID].IsAdmin = true
	f.press(operatorID, "admin_work")
	assert.False(t, f.store.Settings.Work)
}
