package middleware

import (
	"bloom_daily_backend/internal/util"
	"bloom_daily_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Log.Error("panic_recovered",
					zap.Any("panic", r),
					zap.String("request_id", GetRequestID(c)))
				util.InternalServerError(c)
				c.Abort()
			}
		}()
		c.Next()
	}
}
