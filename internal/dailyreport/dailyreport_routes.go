package dailyreport

import (
	"github.com/riooastfu/pastimobile-be/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer middleware.Enforcer, idempotency gin.HandlerFunc) {
	reports := r.Group("/daily-reports")
	{
		reports.GET("/:id_laporan", middleware.Authorize(enforcer, "daily_report", "read"), h.GetByID)
		reports.POST("", middleware.Authorize(enforcer, "daily_report", "create"), idempotency, h.Create)
		reports.DELETE("", middleware.Authorize(enforcer, "daily_report", "delete"), h.DeleteItem)
		reports.DELETE("/:id_laporan", middleware.Authorize(enforcer, "daily_report", "delete"), h.DeleteByID)
	}
}
