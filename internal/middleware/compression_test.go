package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompression(t *testing.T) {
	gin.SetMode(gin.TestMode)
	plan := `{"placed":[` + strings.Repeat(`{"box_type_id":"european","x":0,"y":0},`, 40) + `{}]}`

	router := gin.New()
	router.Use(Compression())
	for _, path := range []string{"/api/optimize", "/metrics"} {
		router.GET(path, func(c *gin.Context) {
			c.Data(http.StatusOK, "application/json", []byte(plan))
		})
	}

	tests := []struct {
		name     string
		path     string
		encoding string
		wantGzip bool
	}{
		{name: "gzip accepted", path: "/api/optimize", encoding: "gzip", wantGzip: true},
		{name: "gzip among others", path: "/api/optimize", encoding: "br;q=1.0, gzip;q=0.8", wantGzip: true},
		{name: "identity only", path: "/api/optimize"},
		{name: "metrics excluded", path: "/metrics", encoding: "gzip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.encoding != "" {
				req.Header.Set("Accept-Encoding", tt.encoding)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			require.Equal(t, http.StatusOK, w.Code)

			body := w.Body.String()
			if tt.wantGzip {
				assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
				zr, err := gzip.NewReader(w.Body)
				require.NoError(t, err)
				raw, err := io.ReadAll(zr)
				require.NoError(t, err)
				body = string(raw)
			} else {
				assert.Empty(t, w.Header().Get("Content-Encoding"))
			}
			assert.Equal(t, plan, body)
		})
	}
}
