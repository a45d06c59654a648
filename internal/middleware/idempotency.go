package middleware

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/gin-gonic/gin"
	"github.com/guttosm/truckload-service/internal/domain/dto"
	"github.com/guttosm/truckload-service/internal/i18n"
)

const (
	// IdempotencyKeyHeader is the HTTP header name for idempotency key.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks replayed responses.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is how long a response is kept for replay.
	IdempotencyKeyTTL = 24 * time.Hour
	// DefaultIdempotencyMaxEntries bounds the store.
	DefaultIdempotencyMaxEntries = 10000

	maxIdempotencyKeyLength = 255
)

// replayedHeaders are the response headers stored with a response.
var replayedHeaders = []string{"Content-Type", "Location"}

// Idempotency returns a middleware that replays the first 2xx response for a
// repeated POST with the same Idempotency-Key and body. Keys are scoped to
// the authenticated subject. Reusing a key with a different body is answered
// with 422. A nil store disables the middleware.
func Idempotency(store *IdempotencyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if store == nil || key == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		if len(key) > maxIdempotencyKeyLength {
			abortIdempotency(c, http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyInvalidRequest)
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			abortIdempotency(c, http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyInvalidRequestBody)
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		storeKey := GetSubject(c) + "\x00" + c.Request.URL.Path + "\x00" + key
		bodyHash := xxhash.Sum64(body)

		if cached, ok := store.Get(storeKey); ok {
			if cached.BodyHash != bodyHash {
				abortIdempotency(c, http.StatusUnprocessableEntity, dto.ErrCodeUnprocessable, i18n.ErrKeyIdempotencyMismatch)
				return
			}
			for k, v := range cached.Headers {
				c.Header(k, v)
			}
			c.Header(IdempotencyReplayedHeader, "true")
			c.Data(cached.StatusCode, cached.Headers["Content-Type"], cached.Body)
			c.Abort()
			return
		}

		writer := &capturingWriter{ResponseWriter: c.Writer}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			return
		}

		headers := make(map[string]string, len(replayedHeaders))
		for _, h := range replayedHeaders {
			if v := writer.Header().Get(h); v != "" {
				headers[h] = v
			}
		}
		store.Set(storeKey, &cachedResponse{
			BodyHash:   bodyHash,
			StatusCode: status,
			Headers:    headers,
			Body:       writer.body.Bytes(),
		})
	}
}

func abortIdempotency(c *gin.Context, status int, code, key string) {
	message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
	c.AbortWithStatusJSON(status, dto.NewError(code, message).WithRequestID(GetRequestID(c)))
}

// capturingWriter copies the response body while writing it through.
type capturingWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *capturingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *capturingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
