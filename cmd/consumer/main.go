package main

import (
	"github.com/riooastfu/pastimobile-be/internal/app"
	"github.com/riooastfu/pastimobile-be/internal/config"
	"github.com/riooastfu/pastimobile-be/internal/shared/apperror"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()

	build := zap.NewDevelopment
	if cfg.IsProduction() {
		build = zap.NewProduction
	}
	logger, lerr := build()
	if lerr != nil {
		panic(lerr)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	apperror.Init()

	if err := app.RunConsumer(cfg); err != nil {
		logger.Fatal("run consumer failed", zap.Error(err))
	}
}
