package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/truckload-service/internal/domain/model"
	"github.com/guttosm/truckload-service/internal/logger"
)

// RequestLogger returns a middleware that logs every request to the console
// and, when sink is not nil, persists it through the async logger.
func RequestLogger(sink *AsyncLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		level := getLogLevel(statusCode)

		log := logger.WithRequestID(GetRequestID(c)).With().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status_code", statusCode).
			Int64("duration_ms", latency.Milliseconds()).
			Str("ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Logger()

		switch level {
		case model.LevelError:
			log.Error().Msg("HTTP request")
		case model.LevelWarn:
			log.Warn().Msg("HTTP request")
		default:
			log.Info().Msg("HTTP request")
		}

		sink.Log(&model.LogEntry{
			Timestamp:  start.UTC(),
			Level:      level,
			Message:    "HTTP request",
			RequestID:  GetRequestID(c),
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: statusCode,
			DurationMS: latency.Milliseconds(),
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
			Subject:    GetSubject(c),
		})
	}
}

// getLogLevel returns the log level based on HTTP status code.
func getLogLevel(statusCode int) string {
	switch {
	case statusCode >= 500:
		return model.LevelError
	case statusCode >= 400:
		return model.LevelWarn
	default:
		return model.LevelInfo
	}
}
