package handler

import (
	"errors"

	"planora/internal/apperr"
	"planora/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// respondError is the single translation point from the error taxonomy to an
// HTTP response. Internal causes are logged, never exposed.
func respondError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	message := "Server error"

	var e *apperr.Error
	if errors.As(err, &e) {
		message = e.Message
	}

	if status >= 500 {
		log.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
	}

	c.JSON(status, model.NewErrorResponse(message, ""))
}
