package setup

import (
	"context"
	"fmt"

	"github.com/LavaJover/shvark-storefront-bot/internal/config"
	"github.com/LavaJover/shvark-storefront-bot/internal/domain"
	publisher "github.com/LavaJover/shvark-storefront-bot/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-storefront-bot/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-storefront-bot/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-storefront-bot/internal/infrastructure/postgres/repository"
	"github.com/LavaJover/shvark-storefront-bot/internal/infrastructure/redis"
	"github.com/LavaJover/shvark-storefront-bot/internal/wizard"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config       *config.StorefrontConfig
	DB           *gorm.DB
	BotAPI       *tgbotapi.BotAPI
	Publisher    domain.EventPublisher
	Sessions     wizard.SessionStore
	Registry     *prometheus.Registry
	Metrics      *metrics.StorefrontMetrics
	Repositories *Repositories

	closers []func() error
}

type Repositories struct {
	OrderRepo      domain.OrderRepository
	OperatorRepo   domain.OperatorRepository
	StorefrontRepo domain.StorefrontRepository
	CountryRepo    domain.CountryRepository
	SettingsRepo   domain.SettingsRepository
	SupportLogRepo domain.SupportLogRepository
}

func InitializeDependencies(cfg *config.StorefrontConfig) (*Dependencies, error) {
	db := postgres.MustInitDB(cfg)

	botAPI, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot api: %w", err)
	}
	botAPI.Debug = cfg.Telegram.Debug
	log.Info().Str("bot", botAPI.Self.UserName).Msg("authorized on telegram")

	deps := &Dependencies{
		Config: cfg,
		DB:     db,
		BotAPI: botAPI,
	}

	deps.Publisher, err = initPublisher(cfg, deps)
	if err != nil {
		return nil, fmt.Errorf("order publisher: %w", err)
	}

	deps.Sessions, err = initSessions(cfg, deps)
	if err != nil {
		return nil, fmt.Errorf("wizard sessions: %w", err)
	}

	deps.Registry = prometheus.NewRegistry()
	deps.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	deps.Metrics = metrics.NewStorefrontMetrics(deps.Registry)

	catalogRepo := repository.NewDefaultCatalogRepository(db)
	deps.Repositories = &Repositories{
		OrderRepo:      repository.NewDefaultOrderRepository(db),
		OperatorRepo:   repository.NewDefaultOperatorRepository(db),
		StorefrontRepo: catalogRepo,
		CountryRepo:    catalogRepo,
		SettingsRepo:   repository.NewDefaultSettingsRepository(db),
		SupportLogRepo: repository.NewDefaultSupportLogRepository(db),
	}

	// Settings row id=1 must exist before the first page is served.
	if _, err := deps.Repositories.SettingsRepo.GetSettings(context.Background()); err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}

	return deps, nil
}

func initPublisher(cfg *config.StorefrontConfig, deps *Dependencies) (domain.EventPublisher, error) {
	if len(cfg.KafkaService.Brokers) == 0 {
		log.Info().Msg("no kafka brokers configured, order events are not published")
		return publisher.NoopPublisher{}, nil
	}
	kafkaPublisher, err := publisher.NewKafkaPublisher(publisher.KafkaConfig{
		Brokers: cfg.KafkaService.Brokers,
		Topic:   cfg.KafkaService.Topic,
	})
	if err != nil {
		return nil, err
	}
	deps.closers = append(deps.closers, kafkaPublisher.Close)
	return kafkaPublisher, nil
}

func initSessions(cfg *config.StorefrontConfig, deps *Dependencies) (wizard.SessionStore, error) {
	switch cfg.Sessions.Backend {
	case "", "memory":
		return wizard.NewMemoryStore(), nil
	case "redis":
		store, err := redis.NewSessionStore(&cfg.Sessions)
		if err != nil {
			return nil, err
		}
		deps.closers = append(deps.closers, store.Close)
		return store, nil
	default:
		return nil, fmt.Errorf("unknown sessions backend %q", cfg.Sessions.Backend)
	}
}

// Close releases the publisher, the session store and the database pool.
func (d *Dependencies) Close() {
	for _, closeFn := range d.closers {
		if err := closeFn(); err != nil {
			log.Warn().Err(err).Msg("failed to close dependency")
		}
	}
	if sqlDB, err := d.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close database")
		}
	}
}
