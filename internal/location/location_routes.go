package location

import (
	"github.com/riooastfu/pastimobile-be/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer middleware.Enforcer) {
	locations := r.Group("/locations")
	{
		locations.GET("", middleware.Authorize(enforcer, "location", "read"), h.ListActive)
		locations.GET("/radius", middleware.Authorize(enforcer, "location", "read"), h.GetRadius)
	}
}
