package middleware

import (
	"github.com/riooastfu/pastimobile-be/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger menempelkan logger per-request ke context standar.
// Dipasang setelah RequestID; dipanggil lagi setelah AuthMiddleware agar pin ikut tercatat.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		rid := contextutil.GetRequestID(ctx)
		pin := contextutil.GetPIN(ctx)

		reqLogger := logger.With(zap.String("request_id", rid))
		if pin != "" {
			reqLogger = reqLogger.With(zap.String("pin", pin))
		}

		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
