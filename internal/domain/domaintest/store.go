// Package domaintest provides in-memory implementations of the domain ports
// for use in tests.
package domaintest

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/LavaJover/shvark-storefront-bot/internal/domain"
)

type Store struct {
	mu          sync.Mutex
	Orders      map[string]*domain.Order
	Operators   map[int64]*domain.Operator
	Storefronts map[string]*domain.Storefront
	Countries   map[string]*domain.Country
	Settings    domain.Settings
	Logs        []*domain.SupportLog
}

func NewStore() *Store {
	return &Store{
		Orders:      map[string]*domain.Order{},
		Operators:   map[int64]*domain.Operator{},
		Storefronts: map[string]*domain.Storefront{},
		Countries:   map[string]*domain.Country{},
		Settings:    domain.Settings{ID: domain.SettingsID, Work: true},
	}
}

// Seed installs a storefront, its country and an operator with ordinary defaults.
func (s *Store) Seed(ownerID int64) {
	s.Countries["de"] = &domain.Country{Code: "de", Title: "Germany", Enabled: true}
	s.Countries["kz"] = &domain.Country{
		Code: "kz", Title: "Kazakhstan", Enabled: true,
		PickupFlow: true, PickupPoints: []string{"Almaty Central", "Astana Mall"},
	}
	s.Storefronts["books"] = &domain.Storefront{
		Code: "books", Title: "Book Corner", Currency: "EUR",
		Domain: "books.example.com", Status: domain.StatusCreated, CountryCode: "de", Enabled: true,
	}
	s.Storefronts["gadgets"] = &domain.Storefront{
		Code: "gadgets", Title: "Gadget Hub", Currency: "KZT",
		Domain: "gadgets.example.kz", Status: domain.StatusShipped, CountryCode: "kz", Enabled: true,
	}
	s.Storefronts["closed"] = &domain.Storefront{
		Code: "closed", Title: "Closed Shop", Currency: "EUR",
		Domain: "closed.example.com", Status: domain.StatusCreated, CountryCode: "de", Enabled: false,
	}
	s.Operators[ownerID] = &domain.Operator{
		ID: ownerID, Tag: "op",
		NotificationsEnabled: true, SiteEnabled: true, CreatedAt: time.Now(),
	}
}

func (s *Store) CreateOrder(_ context.Context, order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Orders[order.ID]; ok {
		return errors.New("duplicate order id")
	}
	cp := *order
	s.Orders[order.ID] = &cp
	return nil
}

func (s *Store) GetOrderByID(_ context.Context, orderID string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.Orders[orderID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (s *Store) GetOrdersByOwner(_ context.Context, ownerID int64) ([]*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Order
	for _, o := range s.Orders {
		if o.OwnerID == ownerID {
			cp := *o
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) UpdateOrder(_ context.Context, orderID string, p domain.UpdateOrderParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.Orders[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Price != nil {
		o.Price = *p.Price
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.ChatOpen != nil {
		o.ChatOpen = *p.ChatOpen
	}
	if p.Online != nil {
		o.Online = *p.Online
	}
	if p.PickupPoint != nil {
		o.PickupPoint = *p.PickupPoint
	}
	if p.MessageID != nil {
		o.MessageID = *p.MessageID
	}
	return nil
}

func (s *Store) DeleteOrder(_ context.Context, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Orders[orderID]; !ok {
		return domain.ErrNotFound
	}
	delete(s.Orders, orderID)
	return nil
}

func (s *Store) DeleteOrdersByOwner(_ context.Context, ownerID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, o := range s.Orders {
		if o.OwnerID == ownerID {
			delete(s.Orders, id)
			n++
		}
	}
	return n, nil
}

func (s *Store) Stats(_ context.Context, ownerID int64, since time.Time) (*domain.OrderStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := &domain.OrderStats{}
	for _, o := range s.Orders {
		if o.OwnerID == ownerID && !o.CreatedAt.Before(since) {
			st.Count++
			st.Sum += o.Price
		}
	}
	return st, nil
}

func (s *Store) CreateOperator(_ context.Context, op *domain.Operator) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *op
	s.Operators[op.ID] = &cp
	return nil
}

func (s *Store) GetOperatorByID(_ context.Context, id int64) (*domain.Operator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	op, ok := s.Operators[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *op
	return &cp, nil
}

func (s *Store) UpdateOperator(_ context.Context, id int64, p domain.UpdateOperatorParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	op, ok := s.Operators[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.NotificationsEnabled != nil {
		op.NotificationsEnabled = *p.NotificationsEnabled
	}
	if p.SiteEnabled != nil {
		op.SiteEnabled = *p.SiteEnabled
	}
	if p.SavedName != nil {
		op.SavedName = *p.SavedName
	}
	if p.SavedAddress != nil {
		op.SavedAddress = *p.SavedAddress
	}
	return nil
}

func (s *Store) GetStorefrontByCode(_ context.Context, code string) (*domain.Storefront, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sf, ok := s.Storefronts[code]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *sf
	return &cp, nil
}

func (s *Store) ListStorefronts(_ context.Context, onlyEnabled bool) ([]*domain.Storefront, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Storefront
	for _, sf := range s.Storefronts {
		if onlyEnabled && !sf.Enabled {
			continue
		}
		cp := *sf
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (s *Store) GetCountryByCode(_ context.Context, code string) (*domain.Country, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.Countries[code]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *Store) GetSettings(context.Context) (*domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := s.Settings
	return &cp, nil
}

func (s *Store) SetWork(_ context.Context, work bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Settings.Work = work
	return nil
}

func (s *Store) CreateLog(_ context.Context, l *domain.SupportLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *l
	s.Logs = append(s.Logs, &cp)
	return nil
}

func (s *Store) GetLogsByOrder(_ context.Context, orderID string) ([]*domain.SupportLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.SupportLog
	for _, l := range s.Logs {
		if l.OrderID == orderID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}
