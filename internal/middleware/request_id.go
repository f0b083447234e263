package middleware

import (
	"bloom_daily_backend/internal/model"
	"bloom_daily_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const requestIDKey = "requestID"

// RequestID 透传或生成 X-Request-ID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(util.RequestIDHeader)
		if id == "" {
			id = model.GenerateUUID()
		}
		c.Set(requestIDKey, id)
		c.Header(util.RequestIDHeader, id)
		c.Next()
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
