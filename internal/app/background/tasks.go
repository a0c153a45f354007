package background

import (
	"context"
	"time"

	"github.com/LavaJover/shvark-storefront-bot/internal/delivery/grpcapi"
	"github.com/LavaJover/shvark-storefront-bot/internal/wizard"
	"github.com/rs/zerolog/log"
)

type BackgroundTasks struct {
	Health *grpcapi.HealthReporter
	// Sessions is swept only when it is the in-memory store.
	Sessions wizard.SessionStore
	IdleTTL  time.Duration
}

func NewBackgroundTasks(health *grpcapi.HealthReporter, sessions wizard.SessionStore, idleTTL time.Duration) *BackgroundTasks {
	return &BackgroundTasks{
		Health:   health,
		Sessions: sessions,
		IdleTTL:  idleTTL,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.Health.Run(ctx)
	if memory, ok := bt.Sessions.(*wizard.MemoryStore); ok && bt.IdleTTL > 0 {
		go bt.startSessionSweep(ctx, memory)
	}
}

func (bt *BackgroundTasks) startSessionSweep(ctx context.Context, store *wizard.MemoryStore) {
	ticker := time.NewTicker(bt.IdleTTL / 4)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := store.Sweep(time.Now().Add(-bt.IdleTTL)); n > 0 {
				log.Info().Int("expired", n).Msg("idle wizard conversations dropped")
			}
		}
	}
}
