package wizard

import (
	"context"
	"sync"
	"time"
)

// Conversation is the per-actor wizard state.
type Conversation struct {
	SceneKey        string `json:"scene"`
	Step            int    `json:"step"`
	State           State  `json:"state"`
	PromptMessageID int    `json:"prompt_message_id"`
	Retries         int    `json:"retries"`
}

type SessionStore interface {
	Load(ctx context.Context, actorID int64) (*Conversation, bool, error)
	Save(ctx context.Context, actorID int64, conv *Conversation) error
	Delete(ctx context.Context, actorID int64) error
}

type MemoryStore struct {
	mu      sync.Mutex
	convs   map[int64]*Conversation
	touched map[int64]time.Time
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		convs:   make(map[int64]*Conversation),
		touched: make(map[int64]time.Time),
		now:     time.Now,
	}
}

func (s *MemoryStore) Load(_ context.Context, actorID int64) (*Conversation, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv, ok := s.convs[actorID]
	if !ok {
		return nil, false, nil
	}
	cp := *conv
	cp.State = conv.State.clone()
	return &cp, true, nil
}

func (s *MemoryStore) Save(_ context.Context, actorID int64, conv *Conversation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *conv
	cp.State = conv.State.clone()
	s.convs[actorID] = &cp
	s.touched[actorID] = s.now()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, actorID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.convs, actorID)
	delete(s.touched, actorID)
	return nil
}

// Sweep drops conversations not saved since the cutoff and reports how many.
func (s *MemoryStore) Sweep(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for actorID, at := range s.touched {
		if at.Before(cutoff) {
			delete(s.convs, actorID)
			delete(s.touched, actorID)
			n++
		}
	}
	return n
}
