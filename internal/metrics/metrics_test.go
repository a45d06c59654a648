package metrics

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(PrometheusMiddleware())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/error", func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "error")
	})

	tests := []struct {
		name           string
		path           string
		label          string
		expectedStatus int
	}{
		{
			name:           "records metrics for successful request",
			path:           "/test",
			label:          "/test",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "records metrics for error request",
			path:           "/error",
			label:          "/error",
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "unmatched paths share one label",
			path:           "/random/123",
			label:          "unmatched",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues(http.MethodGet, tt.label, strconv.Itoa(tt.expectedStatus)))
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			after := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues(http.MethodGet, tt.label, strconv.Itoa(tt.expectedStatus)))
			assert.Equal(t, before+1, after)
		})
	}
}

func TestRecordOptimization(t *testing.T) {
	winsBefore := testutil.ToFloat64(StrategyWinsTotal.WithLabelValues("area_desc"))
	failsBefore := testutil.ToFloat64(StrategyFailuresTotal.WithLabelValues("input_order"))
	stackedBefore := testutil.ToFloat64(BoxesTotal.WithLabelValues("stacked"))
	successBefore := testutil.ToFloat64(OptimizationsTotal.WithLabelValues("success"))

	RecordOptimization(10*time.Millisecond, "success", &PlanOutcome{
		Strategy:    "area_desc",
		Failed:      []string{"input_order"},
		Utilization: 83.3,
		Floor:       22,
		Stacked:     18,
	})

	assert.Equal(t, winsBefore+1, testutil.ToFloat64(StrategyWinsTotal.WithLabelValues("area_desc")))
	assert.Equal(t, failsBefore+1, testutil.ToFloat64(StrategyFailuresTotal.WithLabelValues("input_order")))
	assert.Equal(t, stackedBefore+18, testutil.ToFloat64(BoxesTotal.WithLabelValues("stacked")))
	assert.Equal(t, successBefore+1, testutil.ToFloat64(OptimizationsTotal.WithLabelValues("success")))
}

func TestRecordOptimization_WithoutOutcome(t *testing.T) {
	before := testutil.ToFloat64(OptimizationsTotal.WithLabelValues("error"))

	RecordOptimization(time.Millisecond, "error", nil)

	assert.Equal(t, before+1, testutil.ToFloat64(OptimizationsTotal.WithLabelValues("error")))
}

func TestRecordCacheOperation(t *testing.T) {
	before := testutil.ToFloat64(CacheOperationsTotal.WithLabelValues("get", "hit"))

	RecordCacheOperation("get", "hit")
	RecordCacheOperation("get", "hit")

	assert.Equal(t, before+2, testutil.ToFloat64(CacheOperationsTotal.WithLabelValues("get", "hit")))
}

func TestUpdateCacheMetrics(t *testing.T) {
	UpdateCacheMetrics(75, 100)

	assert.Equal(t, 75.0, testutil.ToFloat64(CacheSize))
	assert.Equal(t, 100.0, testutil.ToFloat64(CacheCapacity))
}

func TestRecordPlanHistory(t *testing.T) {
	before := testutil.ToFloat64(PlanHistoryTotal.WithLabelValues("success"))

	RecordPlanHistory("success")

	assert.Equal(t, before+1, testutil.ToFloat64(PlanHistoryTotal.WithLabelValues("success")))
}

func TestSetCircuitBreakerState(t *testing.T) {
	SetCircuitBreakerState("load_plans", 2)

	assert.Equal(t, 2.0, testutil.ToFloat64(CircuitBreakerState.WithLabelValues("load_plans")))
}
