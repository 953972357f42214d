package app

import (
	"database/sql"

	"github.com/riooastfu/pastimobile-be/internal/attendance"
	"github.com/riooastfu/pastimobile-be/internal/config"
	"github.com/riooastfu/pastimobile-be/internal/dailyreport"
	"github.com/riooastfu/pastimobile-be/internal/healthreport"
	"github.com/riooastfu/pastimobile-be/internal/location"
	"github.com/riooastfu/pastimobile-be/internal/messaging/kafka"
	"github.com/riooastfu/pastimobile-be/internal/middleware"
	"github.com/riooastfu/pastimobile-be/internal/photo"
	"github.com/riooastfu/pastimobile-be/internal/rbac/infra"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	store photo.Store,
	publisher kafka.Publisher,
) error {
	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(cfg.RBACModelPath, cfg.RBACPolicyPath)
	if err != nil {
		return err
	}

	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	locationRepo := location.NewRepository(gormDB)
	dailyReportRepo := dailyreport.NewRepository(gormDB)
	healthReportRepo := healthreport.NewRepository(gormDB)

	// --- Services ---
	attendanceService := attendance.NewService(attendanceRepo, store, publisher, rdb, attendance.Config{
		MaxUploadBytes: cfg.UploadMaxBytes,
		MaxImageDim:    cfg.UploadMaxDim,
	})
	locationService := location.NewService(locationRepo, rdb)
	dailyReportService := dailyreport.NewService(db, dailyReportRepo)
	healthReportService := healthreport.NewService(healthReportRepo)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService)
	locationHandler := location.NewHandler(locationService)
	dailyReportHandler := dailyreport.NewHandler(dailyReportService)
	healthReportHandler := healthreport.NewHandler(healthReportService)

	// --- Shared middleware ---
	submitLimiter := middleware.RateLimitByPIN(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	idempotency := middleware.Idempotency(rdb)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.ContextLogger(zap.L().Named("http")),
	)
	{
		attendance.RegisterRoutes(api, attendanceHandler, enforcer, submitLimiter)
		location.RegisterRoutes(api, locationHandler, enforcer)
		dailyreport.RegisterRoutes(api, dailyReportHandler, enforcer, idempotency)
		healthreport.RegisterRoutes(api, healthReportHandler, enforcer, idempotency)
	}

	return nil
}
