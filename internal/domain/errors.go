package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrStorefrontDisabled = errors.New("storefront disabled")
	ErrChatClosed         = errors.New("support chat closed")
	ErrNoCorrelation      = errors.New("reply does not reference an order")
	ErrInvalidInput       = errors.New("invalid input")
	ErrForbidden          = errors.New("forbidden")
)
