package attendance

import (
	"github.com/riooastfu/pastimobile-be/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer middleware.Enforcer, submitLimiter gin.HandlerFunc) {
	attendances := r.Group("/attendances")
	{
		attendances.POST("/check-in", submitLimiter, middleware.Authorize(enforcer, "attendance", "create"), h.CheckIn)
		attendances.POST("/check-out", submitLimiter, middleware.Authorize(enforcer, "attendance", "create"), h.CheckOut)
		attendances.GET("/history/:pin", middleware.Authorize(enforcer, "attendance", "read"), h.GetHistory)
	}
}
