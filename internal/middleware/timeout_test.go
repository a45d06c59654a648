package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTimeout(t *testing.T) {
	tests := []struct {
		name       string
		timeout    time.Duration
		handler    gin.HandlerFunc
		wantStatus int
		wantBody   string
	}{
		{
			name:    "fast request completes",
			timeout: time.Second,
			handler: func(c *gin.Context) {
				c.String(http.StatusOK, "ok")
			},
			wantStatus: http.StatusOK,
			wantBody:   "ok",
		},
		{
			name:    "handler honouring the deadline gets 504",
			timeout: 20 * time.Millisecond,
			handler: func(c *gin.Context) {
				<-c.Request.Context().Done()
			},
			wantStatus: http.StatusGatewayTimeout,
			wantBody:   "timeout",
		},
		{
			name:    "late response written by the handler is kept",
			timeout: 20 * time.Millisecond,
			handler: func(c *gin.Context) {
				<-c.Request.Context().Done()
				c.String(http.StatusServiceUnavailable, "busy")
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "busy",
		},
		{
			name:    "zero timeout uses default",
			timeout: 0,
			handler: func(c *gin.Context) {
				deadline, ok := c.Request.Context().Deadline()
				if ok && time.Until(deadline) > DefaultRequestTimeout-time.Second {
					c.String(http.StatusOK, "default")
					return
				}
				c.String(http.StatusInternalServerError, "no default deadline")
			},
			wantStatus: http.StatusOK,
			wantBody:   "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.Use(Timeout(tt.timeout))
			router.GET("/test", tt.handler)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestTimeout_LocalizedMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Timeout(10 * time.Millisecond))
	router.GET("/test", func(c *gin.Context) {
		<-c.Request.Context().Done()
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Accept-Language", "nl")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.Contains(t, w.Body.String(), "De optimalisatie is niet op tijd klaar")
}
