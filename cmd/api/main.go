package main

import (
	"github.com/riooastfu/pastimobile-be/internal/app"
	"github.com/riooastfu/pastimobile-be/internal/bootstrap"
	"github.com/riooastfu/pastimobile-be/internal/config"
	"github.com/riooastfu/pastimobile-be/internal/middleware"
	"github.com/riooastfu/pastimobile-be/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	logger := newLogger(cfg)
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	apperror.Init()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID())

	cleanup, err := app.BuildApp(r, cfg)
	defer cleanup()
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	if err := bootstrap.StartHTTPServer(r, bootstrap.DefaultServerConfig(cfg.Port), bootstrap.NewStdoutAuditLogger()); err != nil {
		logger.Error("http server stopped", zap.Error(err))
	}
}

func newLogger(cfg config.Config) *zap.Logger {
	build := zap.NewDevelopment
	if cfg.IsProduction() {
		build = zap.NewProduction
	}
	logger, err := build()
	if err != nil {
		panic(err)
	}
	return logger
}
