package main

import (
	"go-fieldtrack/internal/app"
	"go-fieldtrack/internal/bootstrap"
	"go-fieldtrack/internal/shared/apperror"
	"go-fieldtrack/internal/shared/config"
	applogger "go-fieldtrack/internal/shared/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := applogger.New(cfg.IsProduction())
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// build dependency + routes
	cleanup, err := app.BuildApp(r, cfg)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	auditLogger := bootstrap.NewStdoutAuditLogger("fieldtrack-api", cfg.AppEnv)
	bootstrap.StartHTTPServer(r, bootstrap.NewServerConfig(cfg), auditLogger, cleanup)
}
