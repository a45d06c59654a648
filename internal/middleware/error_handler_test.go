package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/truckload-service/internal/domain/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		handler    gin.HandlerFunc
		wantStatus int
		wantBody   string
		wantLogged string
		wantErrors float64
	}{
		{
			name: "unwritten error becomes 500",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("engine returned no plan"))
			},
			wantStatus: http.StatusInternalServerError,
			wantLogged: "engine returned no plan",
			wantErrors: 1,
		},
		{
			name: "last error is logged",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("first"))
				_ = c.Error(errors.New("mongo write timeout"))
			},
			wantStatus: http.StatusInternalServerError,
			wantLogged: "mongo write timeout",
			wantErrors: 2,
		},
		{
			name: "written response is kept",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("plan history save failed"))
				c.String(http.StatusOK, "plan")
			},
			wantStatus: http.StatusOK,
			wantBody:   "plan",
			wantLogged: "plan history save failed",
			wantErrors: 1,
		},
		{
			name: "no errors",
			handler: func(c *gin.Context) {
				c.Status(http.StatusNoContent)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := captureLogs(t)

			router := gin.New()
			router.Use(RequestID(), ErrorHandler())
			router.PUT("/api/plans", tt.handler)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/plans", nil))

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
			if tt.wantStatus == http.StatusInternalServerError {
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, dto.ErrCodeInternal, resp.Error)
				assert.Equal(t, w.Header().Get(RequestIDHeader), resp.RequestID)
			}

			if tt.wantLogged == "" {
				assert.Zero(t, logs.Len())
				return
			}
			var line map[string]interface{}
			require.NoError(t, json.NewDecoder(strings.NewReader(logs.String())).Decode(&line))
			assert.Equal(t, tt.wantLogged, line["error"])
			assert.Equal(t, http.MethodPut, line["method"])
			assert.Equal(t, tt.wantErrors, line["errors"])
		})
	}
}
