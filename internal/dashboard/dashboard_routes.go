package dashboard

import (
	"go-fieldtrack/internal/middleware"
	"go-fieldtrack/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc, rbacSvc rbac.Service) {
	dashboards := r.Group("/dashboard")
	dashboards.Use(authMW)
	{
		dashboards.GET("/stats", middleware.RBACAuthorize(rbacSvc, rbac.ResourceDashboard, rbac.ActionReadTeam), handler.Stats)
		dashboards.GET("/employee", middleware.RBACAuthorize(rbacSvc, rbac.ResourceDashboard, rbac.ActionReadSelf), handler.Employee)
	}
}
