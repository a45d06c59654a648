package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/truckload-service/internal/domain/dto"
	"github.com/guttosm/truckload-service/internal/i18n"
	"github.com/guttosm/truckload-service/internal/logger"
)

// ErrorHandler returns a middleware that logs errors attached with c.Error
// and answers 500 when the handler did not write a response itself.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)
		log := logger.WithRequestID(requestID)
		log.Error().
			Err(err.Err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Int("errors", len(c.Errors)).
			Msg("Request error")

		if !c.Writer.Written() {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
			c.JSON(http.StatusInternalServerError, dto.NewError(dto.ErrCodeInternal, message).
				WithRequestID(requestID))
		}
	}
}
