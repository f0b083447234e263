package util

import "github.com/gin-gonic/gin"

const userEmailKey = "userEmail"

func SetUserEmail(c *gin.Context, email string) {
	c.Set(userEmailKey, email)
}

// GetUserEmailFromContext 返回身份中间件写入的邮箱
func GetUserEmailFromContext(c *gin.Context) string {
	return c.GetString(userEmailKey)
}
