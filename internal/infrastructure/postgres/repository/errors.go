package repository

import (
	"errors"

	"github.com/LavaJover/shvark-storefront-bot/internal/domain"
	"gorm.io/gorm"
)

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
