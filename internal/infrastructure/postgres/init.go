package postgres

import (
	"github.com/LavaJover/shvark-storefront-bot/internal/config"
	"github.com/LavaJover/shvark-storefront-bot/internal/infrastructure/migrate"
	"github.com/LavaJover/shvark-storefront-bot/internal/infrastructure/postgres/models"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func MustInitDB(cfg *config.StorefrontConfig) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.StorefrontDB.Dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init db")
	}

	if cfg.StorefrontDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.StorefrontDB.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("failed to apply migrations")
		}
		return db
	}

	if err := db.AutoMigrate(
		&models.OrderModel{},
		&models.OperatorModel{},
		&models.StorefrontModel{},
		&models.CountryModel{},
		&models.SettingsModel{},
		&models.SupportLogModel{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to auto-migrate")
	}

	return db
}
