package healthreport

import (
	"github.com/riooastfu/pastimobile-be/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer middleware.Enforcer, idempotency gin.HandlerFunc) {
	r.GET("/employees/:nik/health-reports", middleware.Authorize(enforcer, "health_report", "read"), h.GetByNIK)

	reports := r.Group("/health-reports")
	{
		reports.GET("/:id_laporan", middleware.Authorize(enforcer, "health_report", "read"), h.GetByID)
		reports.POST("/search", middleware.Authorize(enforcer, "health_report", "read"), h.Search)
		reports.POST("", middleware.Authorize(enforcer, "health_report", "create"), idempotency, h.Create)
		reports.DELETE("/:id_laporan", middleware.Authorize(enforcer, "health_report", "delete"), h.DeleteByID)
	}
}
