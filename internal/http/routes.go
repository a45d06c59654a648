package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup is a set of routes registered on a router group.
type RouteGroup interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// CatalogRoutes serves read-only reference data. These routes never require
// authentication.
type CatalogRoutes struct {
	handler *Handler
}

// NewCatalogRoutes creates the catalog route group.
func NewCatalogRoutes(handler *Handler) *CatalogRoutes {
	return &CatalogRoutes{handler: handler}
}

// RegisterRoutes registers GET /box-types and GET /truck.
func (r *CatalogRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/box-types", r.handler.BoxTypes)
	rg.GET("/truck", r.handler.Truck)
}

// PlanRoutes serves load planning and plan history.
type PlanRoutes struct {
	handler *Handler
}

// NewPlanRoutes creates the plan route group.
func NewPlanRoutes(handler *Handler) *PlanRoutes {
	return &PlanRoutes{handler: handler}
}

// RegisterRoutes registers the optimize, plan history and audit routes.
func (r *PlanRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/optimize", r.handler.Optimize)
	rg.GET("/plans", r.handler.ListPlans)
	rg.GET("/plans/:id", r.handler.GetPlan)
	rg.GET("/logs", r.handler.ListLogs)
}

var (
	_ RouteGroup = (*CatalogRoutes)(nil)
	_ RouteGroup = (*PlanRoutes)(nil)
)
