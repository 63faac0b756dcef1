package auth

import (
	"go-fieldtrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.2, 5), handler.Login)
		auth.GET("/me", authMW, handler.Me)
		auth.POST("/logout", authMW, handler.Logout)
		auth.POST("/refresh", authMW, middleware.RateLimitByUser(1, 3), handler.Refresh)
	}
}
