package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/LavaJover/shvark-storefront-bot/internal/config"
	"github.com/LavaJover/shvark-storefront-bot/internal/wizard"
	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "storefront:wizard:"

// SessionStore keeps wizard conversations in Redis. Idle conversations
// expire after the configured TTL.
type SessionStore struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewSessionStore(cfg *config.Sessions) (*SessionStore, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &SessionStore{client: client, ttl: cfg.IdleTTL}, nil
}

func key(actorID int64) string {
	return keyPrefix + strconv.FormatInt(actorID, 10)
}

func (s *SessionStore) Load(ctx context.Context, actorID int64) (*wizard.Conversation, bool, error) {
	raw, err := s.client.Get(ctx, key(actorID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var conv wizard.Conversation
	if err := json.Unmarshal(raw, &conv); err != nil {
		return nil, false, fmt.Errorf("decode conversation: %w", err)
	}
	return &conv, true, nil
}

func (s *SessionStore) Save(ctx context.Context, actorID int64, conv *wizard.Conversation) error {
	raw, err := json.Marshal(conv)
	if err != nil {
		return fmt.Errorf("encode conversation: %w", err)
	}
	return s.client.Set(ctx, key(actorID), raw, s.ttl).Err()
}

func (s *SessionStore) Delete(ctx context.Context, actorID int64) error {
	return s.client.Del(ctx, key(actorID)).Err()
}

func (s *SessionStore) Close() error {
	return s.client.Close()
}
