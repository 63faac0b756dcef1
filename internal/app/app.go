package app

import (
	"net/http"
	"time"

	"go-fieldtrack/internal/middleware"
	"go-fieldtrack/internal/shared/config"
	"go-fieldtrack/internal/shared/connection"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure, installs the global middleware and mounts
// every module on router. The returned cleanup closes the connections.
func BuildApp(router *gin.Engine, cfg *config.Config) (func(), error) {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, 5)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established")

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	logger.Info("redis connection established")

	installMiddleware(router, cfg)
	registerSystemRoutes(router)

	if err := registerModules(router, cfg, sqlDB, gormDB, redisClient); err != nil {
		_ = redisClient.Close()
		_ = sqlDB.Close()
		return nil, err
	}

	cleanup := func() {
		_ = redisClient.Close()
		_ = sqlDB.Close()
	}
	return cleanup, nil
}

func installMiddleware(router *gin.Engine, cfg *config.Config) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:     []string{"Authorization", "Content-Type", middleware.HeaderRequestID, middleware.HeaderIdempotencyKey},
		ExposeHeaders:    []string{middleware.HeaderRequestID, middleware.HeaderIdempotentHit, "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(zap.L().Named("http")),
		middleware.Metrics(),
	)
}

func registerSystemRoutes(router *gin.Engine) {
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
