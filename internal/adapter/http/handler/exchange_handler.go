package handler

import (
	"errors"
	"io"
	"net/http"

	"brit-matcher/internal/core/ports"
	"brit-matcher/pkg/apperror"
	"brit-matcher/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ExchangeHandler carries BRIT exchanges over HTTP.
type ExchangeHandler struct {
	matcher ports.MatcherService
	log     zerolog.Logger
}

// NewExchangeHandler creates a new ExchangeHandler.
func NewExchangeHandler(matcher ports.MatcherService, log zerolog.Logger) *ExchangeHandler {
	return &ExchangeHandler{matcher: matcher, log: log}
}

// Exchange handles POST /api/v1/brit/exchange.
// The body is an EncryptedPayerRequest and the answer an EncryptedMatcherResponse.
func (h *ExchangeHandler) Exchange(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, apperror.ErrBodyTooLarge(tooLarge.Limit))
			return
		}
		response.Error(c, apperror.Validation("cannot read request body"))
		return
	}
	if len(payload) == 0 {
		response.Error(c, apperror.Validation("empty request body"))
		return
	}

	encrypted, _, err := h.matcher.Exchange(c.Request.Context(), payload)
	if err != nil {
		event := h.log.Warn()
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) || appErr.HTTPStatus >= http.StatusInternalServerError {
			event = h.log.Error()
		}
		event.Err(err).Str("request_id", c.GetString(response.RequestIDKey)).Msg("exchange failed")
		response.Error(c, err)
		return
	}

	response.Encrypted(c, encrypted)
}
