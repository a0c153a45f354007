package setup

import (
	"fmt"

	"github.com/LavaJover/shvark-storefront-bot/internal/delivery/bot"
	"github.com/LavaJover/shvark-storefront-bot/internal/infrastructure/telegram"
	"github.com/LavaJover/shvark-storefront-bot/internal/usecase/notify"
	"github.com/LavaJover/shvark-storefront-bot/internal/usecase/order"
	"github.com/LavaJover/shvark-storefront-bot/internal/usecase/page"
	"github.com/LavaJover/shvark-storefront-bot/internal/usecase/support"
)

type UseCases struct {
	OrderUsecase   *order.DefaultOrderUsecase
	PageUsecase    *page.DefaultPageUsecase
	SupportUsecase *support.DefaultSupportUsecase
	FanOut         *notify.FanOut
	Bot            *bot.Bot
}

func InitializeUseCases(deps *Dependencies) (*UseCases, error) {
	repos := deps.Repositories

	orderUsecase, err := order.NewDefaultOrderUsecase(
		repos.OrderRepo,
		repos.StorefrontRepo,
		repos.CountryRepo,
		repos.OperatorRepo,
		deps.Publisher,
		deps.Metrics,
		deps.Config.HTTPServer.LinkScheme,
	)
	if err != nil {
		return nil, fmt.Errorf("order usecase: %w", err)
	}

	fanOut := notify.NewFanOut(telegram.NewNotifier(deps.BotAPI), repos.OperatorRepo, deps.Metrics)

	pageUsecase := page.NewDefaultPageUsecase(
		orderUsecase,
		repos.OrderRepo,
		repos.SettingsRepo,
		fanOut,
		deps.Publisher,
		deps.Metrics,
	)

	supportUsecase := support.NewDefaultSupportUsecase(repos.OrderRepo, repos.SupportLogRepo, fanOut)

	controlBot := bot.New(bot.Deps{
		API:          deps.BotAPI,
		Sessions:     deps.Sessions,
		Orders:       orderUsecase,
		Support:      supportUsecase,
		Operators:    repos.OperatorRepo,
		Storefronts:  repos.StorefrontRepo,
		SettingsRepo: repos.SettingsRepo,
		FanOut:       fanOut,
		Metrics:      deps.Metrics,
	})

	return &UseCases{
		OrderUsecase:   orderUsecase,
		PageUsecase:    pageUsecase,
		SupportUsecase: supportUsecase,
		FanOut:         fanOut,
		Bot:            controlBot,
	}, nil
}
