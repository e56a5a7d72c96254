package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cardapio/storefront-service/internal/domain/dto"
	"github.com/cardapio/storefront-service/internal/i18n"
	"github.com/cardapio/storefront-service/internal/logger"
)

// ErrorHandler is the last-resort handler for gin context errors.
// Handlers that already wrote a response keep it; anything else turns
// into a translated 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			requestID := GetRequestID(c)
			locale := i18n.GetLocale(c)

			log := logger.Logger()
			log.Error().
				Str("request_id", requestID).
				Str("error", err.Error()).
				Str("path", c.Request.URL.Path).
				Str("method", c.Request.Method).
				Msg("Request error")

			if !c.Writer.Written() {
				message := i18n.GetTranslator().Translate(locale, i18n.ErrKeyInternal)
				errorResp := dto.NewError(dto.ErrCodeInternal, message).
					WithRequestID(requestID)
				c.JSON(http.StatusInternalServerError, errorResp)
			}
		}
	}
}
