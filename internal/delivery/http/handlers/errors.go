package handlers

import (
	"errors"
	"net/http"

	"github.com/LavaJover/shvark-storefront-bot/internal/domain"
	"github.com/LavaJover/shvark-storefront-bot/internal/delivery/http/dto/common"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// StatusFor maps a usecase error onto an HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrChatClosed), errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrStorefrontDisabled):
		return http.StatusGone
	default:
		return http.StatusInternalServerError
	}
}

func publicMessage(status int) string {
	switch status {
	case http.StatusInternalServerError:
		return "internal error"
	default:
		return http.StatusText(status)
	}
}

func abortJSON(c *gin.Context, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("route", c.FullPath()).Msg("request failed")
	}
	message := publicMessage(status)
	if status == http.StatusBadRequest || status == http.StatusForbidden {
		message = err.Error()
	}
	c.AbortWithStatusJSON(status, common.ErrorResponse{Error: message})
}

func abortHTML(c *gin.Context, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("route", c.FullPath()).Msg("page render failed")
	}
	c.HTML(status, "error.html", gin.H{"Status": status, "Message": publicMessage(status)})
	c.Abort()
}
