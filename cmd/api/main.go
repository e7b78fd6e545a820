package main

import (
	"talentflow/internal/app"
	"talentflow/internal/bootstrap"
	"talentflow/internal/config"
	"talentflow/internal/diagnostics"
	"talentflow/internal/logging"
	"talentflow/internal/middleware"
	"talentflow/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger, err := logging.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	apperror.Init()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	diag := diagnostics.New(logger, diagnostics.Config{
		LoopWindow:    cfg.Diagnostics.LoopWindow,
		LoopThreshold: cfg.Diagnostics.LoopThreshold,
	})
	defer diag.Close()

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RateLimitByIP(20, 40))

	// build dependency + routes
	cleanup, err := app.BuildApp(r, cfg, logger, diag)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer cleanup()

	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:         cfg.HTTP.Port,
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
			IdleTimeout:  cfg.HTTP.IdleTimeout,
		},
		bootstrap.NewStdoutAuditLogger(logger),
		logger,
	)
}
