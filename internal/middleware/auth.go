package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/truckload-service/internal/domain/dto"
	"github.com/guttosm/truckload-service/internal/i18n"
	"github.com/guttosm/truckload-service/internal/logger"
	"github.com/guttosm/truckload-service/internal/service"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter name for API key authentication.
	APIKeyQuery = "api_key"
	// AuthorizationHeader carries bearer tokens.
	AuthorizationHeader = "Authorization"

	bearerPrefix = "Bearer "
)

// Auth returns a middleware that accepts either a bearer token or an API key.
// A present Authorization header wins over the API key. A nil authenticator
// disables authentication.
func Auth(authenticator service.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authenticator == nil {
			c.Next()
			return
		}

		var (
			principal service.Principal
			err       error
			errKey    string
		)

		switch header := c.GetHeader(AuthorizationHeader); {
		case header != "":
			token, ok := strings.CutPrefix(header, bearerPrefix)
			if !ok || strings.TrimSpace(token) == "" {
				abortUnauthorized(c, i18n.ErrKeyInvalidToken)
				return
			}
			principal, err = authenticator.VerifyToken(strings.TrimSpace(token))
			errKey = i18n.ErrKeyInvalidToken
		default:
			key := c.GetHeader(APIKeyHeader)
			if key == "" {
				key = c.Query(APIKeyQuery)
			}
			if key == "" {
				abortUnauthorized(c, i18n.ErrKeyAPIKeyRequired)
				return
			}
			principal, err = authenticator.VerifyAPIKey(key)
			errKey = i18n.ErrKeyInvalidAPIKey
		}

		if err != nil {
			log := logger.WithRequestID(GetRequestID(c))
			log.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("Authentication failed")
			abortUnauthorized(c, errKey)
			return
		}

		c.Set(string(SubjectKey), principal.Subject)
		c.Set(string(AuthMethodKey), principal.Method)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, key string) {
	message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
	errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
		WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
}
