package util

import (
	"bloom_daily_backend/pkg/logger"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Unauthorized")
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error", zap.Error(err))
	InternalServerError(c)
}

func ServiceUnavailable(c *gin.Context) {
	Error(c, http.StatusServiceUnavailable, "Service unavailable")
}

// RespondError 将领域错误映射为 HTTP 状态码
func RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidRange):
		BadRequest(c, err.Error())
	case errors.Is(err, ErrReferenceNotFound):
		Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrStoreUnavailable):
		logger.Log.Error("Store unavailable", zap.Error(err))
		ServiceUnavailable(c)
	default:
		LogInternalError(c, err)
	}
}
