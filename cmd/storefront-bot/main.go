package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/LavaJover/shvark-storefront-bot/internal/app/background"
	"github.com/LavaJover/shvark-storefront-bot/internal/app/setup"
	"github.com/LavaJover/shvark-storefront-bot/internal/config"
	"github.com/LavaJover/shvark-storefront-bot/internal/delivery/grpcapi"
	"github.com/LavaJover/shvark-storefront-bot/internal/delivery/http/handlers"
	"github.com/LavaJover/shvark-storefront-bot/internal/delivery/http/router"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	setupLogger(cfg.Env)

	deps, err := setup.InitializeDependencies(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init dependencies")
	}
	defer deps.Close()

	ucs, err := setup.InitializeUseCases(deps)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init usecases")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Health
	sqlDB, err := deps.DB.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql db")
	}
	health := grpcapi.NewHealthReporter(sqlDB, 15*time.Second)
	background.NewBackgroundTasks(health, deps.Sessions, cfg.Sessions.IdleTTL).StartAll(ctx)

	// gRPC
	grpcServer := grpc.NewServer()
	healthpb.RegisterHealthServer(grpcServer, health.Server())
	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.GRPCServer.Host, cfg.GRPCServer.Port))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to listen")
	}
	go func() {
		log.Info().Str("addr", lis.Addr().String()).Msg("gRPC health server started")
		if err := grpcServer.Serve(lis); err != nil {
			log.Error().Err(err).Msg("gRPC server stopped")
		}
	}()

	// HTTP
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := router.New(router.Handlers{
		Page:     handlers.NewPageHandler(ucs.PageUsecase),
		API:      handlers.NewAPIHandler(ucs.OrderUsecase, ucs.SupportUsecase),
		Gatherer: deps.Registry,
	})
	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Telegram
	updateCfg := tgbotapi.NewUpdate(0)
	updateCfg.Timeout = cfg.Telegram.Timeout
	updates := deps.BotAPI.GetUpdatesChan(updateCfg)
	botDone := make(chan struct{})
	go func() {
		ucs.Bot.Run(ctx, updates)
		close(botDone)
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	deps.BotAPI.StopReceivingUpdates()
	<-botDone

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown failed")
	}
	grpcServer.GracefulStop()
	log.Info().Msg("stopped")
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
