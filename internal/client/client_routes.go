package client

import (
	"go-fieldtrack/internal/middleware"
	"go-fieldtrack/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc, rbacSvc rbac.Service) {
	clients := r.Group("/checkin/clients")
	clients.Use(authMW)
	{
		clients.GET("", middleware.RBACAuthorize(rbacSvc, rbac.ResourceClient, rbac.ActionRead), handler.GetAssigned)
	}
}
