//go:build integration

package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/truckload-service/internal/circuitbreaker"
	"github.com/guttosm/truckload-service/internal/domain/model"
	"github.com/guttosm/truckload-service/internal/middleware"
	"github.com/guttosm/truckload-service/internal/repository"
	"github.com/guttosm/truckload-service/internal/service"
	"github.com/guttosm/truckload-service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type integrationEnv struct {
	router *gin.Engine
	db     *repository.MongoDB
	logs   *middleware.AsyncLogger
	logSvc service.LoggingService
}

func setupIntegrationRouter(t *testing.T) *integrationEnv {
	t.Helper()
	ctx := context.Background()

	db, err := repository.NewMongoDB(testutil.GetSharedContainerURI(), testutil.SanitizeDBName(t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(ctx) })

	plansRepo := repository.NewLoadPlansRepositoryWithCircuitBreaker(
		repository.NewLoadPlansRepository(db),
		circuitbreaker.New(circuitbreaker.DefaultConfig()),
	)
	logSvc := service.NewLoggingService(repository.NewLogsRepository(db))
	audit := middleware.NewAsyncLogger(logSvc, middleware.AsyncLoggerConfig{FlushInterval: 10 * time.Millisecond})
	t.Cleanup(audit.Stop)

	optimizer := service.NewLoadOptimizerService(service.WithCache(100, 5*time.Minute))
	t.Cleanup(optimizer.Stop)

	handler := NewHandler(optimizer,
		WithPlanHistory(service.NewPlanHistoryService(plansRepo)),
		WithAuditLogger(audit),
	)
	health := NewHealthHandler()
	health.AddChecker("mongodb", db)
	health.RegisterCircuitBreaker("mongodb_plans", plansRepo.GetCircuitBreaker())

	cfg := DefaultRouterConfig()
	cfg.AuditLogger = audit
	return &integrationEnv{
		router: NewRouter(handler, health, cfg),
		db:     db,
		logs:   audit,
		logSvc: logSvc,
	}
}

func TestIntegration_OptimizeAndRetrievePlan(t *testing.T) {
	env := setupIntegrationRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/optimize",
		bytes.NewBufferString(`{"american_stackable": 10, "european_non_stackable": 6}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	plan, _ := decodeData[model.LoadPlan](t, w)
	assert.Equal(t, 16, plan.Stats.TotalRequested)

	location := w.Header().Get("Location")
	require.NotEmpty(t, location)

	t.Run("get stored plan", func(t *testing.T) {
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, location, nil))

		require.Equal(t, http.StatusOK, w.Code)
		stored, _ := decodeData[model.StoredPlan](t, w)
		assert.Equal(t, plan.Stats, stored.Plan.Stats)
		assert.Len(t, stored.Request.Lines, 2)
		assert.Len(t, stored.Fingerprint, 16)
	})

	t.Run("list plans", func(t *testing.T) {
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/plans?limit=5", nil))

		require.Equal(t, http.StatusOK, w.Code)
		summaries, _ := decodeData[[]model.PlanSummary](t, w)
		require.Len(t, summaries, 1)
		assert.Equal(t, plan.Stats.UtilizationPercent, summaries[0].UtilizationPercent)
	})

	t.Run("unknown plan", func(t *testing.T) {
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/plans/65b7f0c2e4b0a1a2b3c4d5e6", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("audit entries reach mongodb", func(t *testing.T) {
		assert.Eventually(t, func() bool {
			n, err := env.logSvc.Count(context.Background(), model.LogQuery{ActionType: model.ActionOptimize})
			return err == nil && n >= 1
		}, 5*time.Second, 50*time.Millisecond)
	})
}

func TestIntegration_Readiness(t *testing.T) {
	env := setupIntegrationRouter(t)

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"mongodb":"ok"`)
	assert.Contains(t, w.Body.String(), `"mongodb_plans_circuit":"closed"`)
}
