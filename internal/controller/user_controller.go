package controller

import (
	"bloom_daily_backend/internal/model"
	"bloom_daily_backend/internal/service"
	"bloom_daily_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// currentUser 解析身份中间件写入的邮箱；失败时已写出响应
func currentUser(ctx *gin.Context, users *service.UserService) (*model.User, bool) {
	email := util.GetUserEmailFromContext(ctx)
	if email == "" {
		util.Unauthorized(ctx)
		return nil, false
	}

	user, err := users.Resolve(ctx.Request.Context(), email)
	if err != nil {
		util.RespondError(ctx, err)
		return nil, false
	}
	return user, true
}

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// @Summary 获取当前用户
// @Description 返回当前用户资料及累计积分
// @Tags 用户
// @Produce json
// @Param X-User-Email header string false "用户邮箱，缺省使用默认用户"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response
// @Router /profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	user, ok := currentUser(ctx, c.UserService)
	if !ok {
		return
	}
	util.Success(ctx, user)
}
