package domaintest

import (
	"context"
	"sync"

	"github.com/LavaJover/shvark-storefront-bot/internal/domain"
)

type Notifier struct {
	mu   sync.Mutex
	Sent []domain.OutboundMessage
	Err  error
}

func (n *Notifier) Send(_ context.Context, msg domain.OutboundMessage) (int, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.Err != nil {
		return 0, n.Err
	}
	n.Sent = append(n.Sent, msg)
	return 1000 + len(n.Sent), nil
}

func (n *Notifier) Messages() []domain.OutboundMessage {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]domain.OutboundMessage(nil), n.Sent...)
}

type Publisher struct {
	mu     sync.Mutex
	Events []domain.OrderEvent
	Err    error
}

func (p *Publisher) PublishOrderEvent(_ context.Context, ev domain.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.Events = append(p.Events, ev)
	return nil
}

func (p *Publisher) Types() []domain.OrderEventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.OrderEventType, len(p.Events))
	for i, ev := range p.Events {
		out[i] = ev.Type
	}
	return out
}
