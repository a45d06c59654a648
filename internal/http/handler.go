package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/truckload-service/internal/circuitbreaker"
	"github.com/guttosm/truckload-service/internal/domain/dto"
	"github.com/guttosm/truckload-service/internal/domain/model"
	"github.com/guttosm/truckload-service/internal/engine"
	"github.com/guttosm/truckload-service/internal/i18n"
	"github.com/guttosm/truckload-service/internal/logger"
	"github.com/guttosm/truckload-service/internal/middleware"
	"github.com/guttosm/truckload-service/internal/service"
	"golang.org/x/sync/errgroup"
)

// defaultSaveTimeout bounds the plan history write done after a plan is computed.
const defaultSaveTimeout = 2 * time.Second

// Handler provides the HTTP handlers of the load planning API.
type Handler struct {
	optimizer   service.LoadOptimizer
	history     service.PlanHistory
	audit       *middleware.AsyncLogger
	trail       service.LoggingService
	saveTimeout time.Duration
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithPlanHistory stores computed plans and serves the /plans routes.
func WithPlanHistory(history service.PlanHistory) HandlerOption {
	return func(h *Handler) {
		h.history = history
	}
}

// WithAuditLogger records audit entries for domain actions.
func WithAuditLogger(audit *middleware.AsyncLogger) HandlerOption {
	return func(h *Handler) {
		h.audit = audit
	}
}

// WithAuditTrail serves the stored audit entries on /logs.
func WithAuditTrail(trail service.LoggingService) HandlerOption {
	return func(h *Handler) {
		h.trail = trail
	}
}

// WithSaveTimeout sets the plan history write timeout.
func WithSaveTimeout(d time.Duration) HandlerOption {
	return func(h *Handler) {
		if d > 0 {
			h.saveTimeout = d
		}
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(optimizer service.LoadOptimizer, opts ...HandlerOption) *Handler {
	h := &Handler{
		optimizer:   optimizer,
		saveTimeout: defaultSaveTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) historyEnabled() bool {
	return h.history != nil && h.history.Enabled()
}

// Optimize handles POST /api/optimize requests.
//
// @Summary      Plan a truck load
// @Description  Places the requested boxes on the truck floor, stacks stackable boxes of the same type on a second layer and reports utilization and shortfall. Six box orderings are tried and the best layout wins. Supports idempotency via the Idempotency-Key header.
// @Tags         Load plans
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.OptimizeRequest true "Truck and boxes to load"
// @Success      200 {object} dto.SuccessResponse{data=model.LoadPlan} "Computed load plan"
// @Header       200 {string} Location "Stored plan, when plan history is enabled"
// @Failure      400 {object} dto.ErrorResponse "Invalid request, truck or box counts"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key or token"
// @Failure      422 {object} dto.ErrorResponse "Idempotency key reused with a different body"
// @Failure      429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      504 {object} dto.ErrorResponse "Optimization did not finish in time"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/optimize [post]
func (h *Handler) Optimize(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BindJSON[dto.OptimizeRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	loadReq, err := req.ToLoadRequest(h.optimizer.DefaultTruck())
	if err != nil {
		builder.ValidationError(err)
		return
	}

	plan, err := h.optimizer.Optimize(c.Request.Context(), loadReq)
	if err != nil {
		status, key := optimizeErrorStatus(err)
		middleware.AuditError(h.audit, c, model.ActionOptimize, "Load plan failed", err, map[string]interface{}{
			"requested": loadReq.TotalRequested(),
		})
		builder.Error(status, key, err)
		return
	}

	if id := h.savePlan(c, loadReq, plan); id != "" {
		c.Header("Location", "/api/plans/"+id)
	}

	middleware.Audit(h.audit, c, model.ActionOptimize, "Load plan computed", map[string]interface{}{
		"strategy":    plan.Strategy,
		"requested":   plan.Stats.TotalRequested,
		"placed":      plan.Stats.TotalPlaced,
		"utilization": plan.Stats.UtilizationPercent,
	})
	builder.Success(http.StatusOK, plan, i18n.SuccessKeyPlanComputed)
}

// optimizeErrorStatus maps optimizer errors to a status and message key.
func optimizeErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, engine.ErrInvalidTruckDimensions):
		return http.StatusBadRequest, i18n.ErrKeyInvalidTruck
	case errors.Is(err, engine.ErrNegativeCount):
		return http.StatusBadRequest, i18n.ErrKeyNegativeCount
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusGatewayTimeout, i18n.ErrKeyTimeout
	case errors.Is(err, engine.ErrAllStrategiesFailed):
		return http.StatusInternalServerError, i18n.ErrKeyOptimizationFailed
	default:
		return http.StatusInternalServerError, i18n.ErrKeyInternalError
	}
}

// savePlan stores the plan in the history and returns its id. Failures are
// logged and otherwise ignored: the caller already has the plan.
func (h *Handler) savePlan(c *gin.Context, req model.LoadRequest, plan model.LoadPlan) string {
	if !h.historyEnabled() {
		return ""
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), h.saveTimeout)
	defer cancel()

	stored := &model.StoredPlan{
		RequestID:   middleware.GetRequestID(c),
		Subject:     middleware.GetSubject(c),
		Fingerprint: service.FingerprintString(service.Fingerprint(req)),
		Request:     req,
		Plan:        plan,
	}
	if err := h.history.Save(ctx, stored); err != nil {
		log := logger.WithRequestID(stored.RequestID)
		log.Warn().Err(err).Msg("Failed to store load plan")
		return ""
	}
	return stored.ID.Hex()
}

// BoxTypes handles GET /api/box-types requests.
//
// @Summary      List built-in box types
// @Description  Returns the box types that can be requested by id without dimensions.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.BoxType} "Built-in box types"
// @Router       /api/box-types [get]
func (h *Handler) BoxTypes(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(model.BuiltinBoxTypes())
}

// Truck handles GET /api/truck requests.
//
// @Summary      Default truck
// @Description  Returns the truck floor used when a request does not name one.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=model.Truck} "Default truck"
// @Router       /api/truck [get]
func (h *Handler) Truck(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.optimizer.DefaultTruck())
}

// GetPlan handles GET /api/plans/:id requests.
//
// @Summary      Get a stored load plan
// @Description  Returns a previously computed plan together with its request.
// @Tags         Load plans
// @Produce      json
// @Param        id path string true "Plan id"
// @Success      200 {object} dto.SuccessResponse{data=model.StoredPlan} "Stored plan"
// @Failure      404 {object} dto.ErrorResponse "Plan not found"
// @Failure      503 {object} dto.ErrorResponse "Plan history unavailable"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/plans/{id} [get]
func (h *Handler) GetPlan(c *gin.Context) {
	builder := NewResponseBuilder(c)
	if !h.historyEnabled() {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyHistoryUnavailable, nil)
		return
	}

	id := c.Param("id")
	plan, err := h.history.Get(c.Request.Context(), id)
	if err != nil {
		status, key := historyErrorStatus(err)
		if status != http.StatusNotFound {
			middleware.AuditError(h.audit, c, model.ActionViewPlan, "Plan lookup failed", err, map[string]interface{}{"plan_id": id})
		}
		builder.Error(status, key, err)
		return
	}

	middleware.Audit(h.audit, c, model.ActionViewPlan, "Plan viewed", map[string]interface{}{"plan_id": id})
	builder.SuccessOK(plan)
}

// ListPlans handles GET /api/plans requests.
//
// @Summary      List recent load plans
// @Description  Returns summaries of the most recent plans, newest first.
// @Tags         Load plans
// @Produce      json
// @Param        limit query int false "Maximum number of plans (default 20, max 100)"
// @Success      200 {object} dto.SuccessResponse{data=[]model.PlanSummary} "Plan summaries"
// @Failure      400 {object} dto.ErrorResponse "Invalid limit"
// @Failure      503 {object} dto.ErrorResponse "Plan history unavailable"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/plans [get]
func (h *Handler) ListPlans(c *gin.Context) {
	builder := NewResponseBuilder(c)
	if !h.historyEnabled() {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyHistoryUnavailable, nil)
		return
	}

	var query struct {
		Limit int `form:"limit" binding:"omitempty,min=1"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	summaries, err := h.history.List(c.Request.Context(), query.Limit)
	if err != nil {
		status, key := historyErrorStatus(err)
		middleware.AuditError(h.audit, c, model.ActionListPlans, "Plan listing failed", err, nil)
		builder.Error(status, key, err)
		return
	}

	middleware.Audit(h.audit, c, model.ActionListPlans, "Plans listed", map[string]interface{}{"count": len(summaries)})
	builder.SuccessOK(summaries)
}

// ListLogs handles GET /api/logs requests.
//
// @Summary      Query the audit trail
// @Description  Returns stored audit entries matching every given filter, newest first, with the total number of matches. The window is half-open: since is inclusive, until exclusive.
// @Tags         Audit
// @Produce      json
// @Param        request_id query string false "Request id"
// @Param        subject    query string false "Authenticated subject"
// @Param        level      query string false "Level" Enums(info, warn, error)
// @Param        action     query string false "Action type" Enums(optimize, view_plan, list_plans)
// @Param        path       query string false "Request path"
// @Param        since      query string false "RFC 3339 lower bound, inclusive"
// @Param        until      query string false "RFC 3339 upper bound, exclusive"
// @Param        limit      query int    false "Page size (default 100, max 1000)"
// @Param        skip       query int    false "Entries to skip"
// @Success      200 {object} dto.SuccessResponse{data=dto.LogPage} "Audit entries"
// @Failure      400 {object} dto.ErrorResponse "Invalid query"
// @Failure      503 {object} dto.ErrorResponse "Audit trail unavailable"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/logs [get]
func (h *Handler) ListLogs(c *gin.Context) {
	builder := NewResponseBuilder(c)
	if h.trail == nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyAuditUnavailable, nil)
		return
	}

	var req dto.LogQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}
	q, err := req.ToLogQuery()
	if err != nil {
		builder.ValidationError(err)
		return
	}
	if q, err = q.Normalized(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	ctx := c.Request.Context()
	var page dto.LogPage
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		entries, err := h.trail.Query(gctx, q)
		page.Entries = entries
		return err
	})
	g.Go(func() error {
		total, err := h.trail.Count(gctx, q)
		page.Total = total
		return err
	})
	if err := g.Wait(); err != nil {
		status, key := auditErrorStatus(err)
		builder.Error(status, key, err)
		return
	}

	page.Limit, page.Skip = q.Limit, q.Skip
	builder.SuccessOK(page)
}

func auditErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		return http.StatusServiceUnavailable, i18n.ErrKeyAuditUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, i18n.ErrKeyTimeout
	default:
		return http.StatusInternalServerError, i18n.ErrKeyInternalError
	}
}

func historyErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrPlanNotFound):
		return http.StatusNotFound, i18n.ErrKeyPlanNotFound
	case errors.Is(err, service.ErrHistoryDisabled), errors.Is(err, circuitbreaker.ErrCircuitOpen):
		return http.StatusServiceUnavailable, i18n.ErrKeyHistoryUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, i18n.ErrKeyTimeout
	default:
		return http.StatusInternalServerError, i18n.ErrKeyInternalError
	}
}
