package report

import (
	"go-fieldtrack/internal/middleware"
	"go-fieldtrack/internal/rbac"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts /reports and the /dashboard/summary alias. All routes are manager-only.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc, rbacSvc rbac.Service) {
	canRead := middleware.RBACAuthorize(rbacSvc, rbac.ResourceReport, rbac.ActionRead)

	reports := r.Group("/reports")
	reports.Use(authMW, canRead)
	{
		reports.GET("/daily-summary", handler.DailySummary)
		reports.GET("/daily-summary/export", handler.ExportDailySummary)
	}

	r.GET("/dashboard/summary", authMW, canRead, handler.DailySummary)
}
