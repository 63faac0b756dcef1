package app

import (
	"database/sql"

	"go-fieldtrack/internal/auth"
	"go-fieldtrack/internal/checkin"
	"go-fieldtrack/internal/client"
	"go-fieldtrack/internal/dashboard"
	"go-fieldtrack/internal/messaging/kafka"
	"go-fieldtrack/internal/middleware"
	"go-fieldtrack/internal/rbac"
	"go-fieldtrack/internal/rbac/infra"
	"go-fieldtrack/internal/report"
	"go-fieldtrack/internal/shared/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	loc := cfg.Location()

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	checkinRepo := checkin.NewRepository(gormDB)
	clientRepo := client.NewRepository(gormDB)
	dashboardRepo := dashboard.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	reportRepo := report.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer)
	if err := rbacService.LoadPolicies(rbac.DefaultPolicies()); err != nil {
		return err
	}

	// --- Services ---
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	authService := auth.NewService(authRepo, tokens)
	clientService := client.NewService(clientRepo, rdb)
	checkinService := checkin.NewService(db, checkinRepo, clientRepo, outboxRepo, loc)
	dashboardService := dashboard.NewService(dashboardRepo, clientService, loc)
	reportService := report.NewService(reportRepo, rdb, loc)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	checkinHandler := checkin.NewHandler(checkinService)
	clientHandler := client.NewHandler(clientService)
	dashboardHandler := dashboard.NewHandler(dashboardService)
	reportHandler := report.NewHandler(reportService)

	authMW := middleware.AuthMiddleware(tokens)

	// --- Routes Registration ---
	api := router.Group("/api")
	api.Use(middleware.NoCache())
	{
		auth.RegisterRoutes(api, authHandler, authMW)
		client.RegisterRoutes(api, clientHandler, authMW, rbacService)
		checkin.RegisterRoutes(api, checkinHandler, authMW, rbacService, rdb)
		dashboard.RegisterRoutes(api, dashboardHandler, authMW, rbacService)
		report.RegisterRoutes(api, reportHandler, authMW, rbacService)
	}

	return nil
}
