package controller

import (
	"bloom_daily_backend/internal/model"
	"bloom_daily_backend/internal/service"
	"bloom_daily_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CompletionController struct {
	CompletionService *service.CompletionService
	UserService       *service.UserService
}

func NewCompletionController(completionService *service.CompletionService, userService *service.UserService) *CompletionController {
	return &CompletionController{
		CompletionService: completionService,
		UserService:       userService,
	}
}

// RoutineDoneResponse 打卡结果；当天已完成时 created 为 false
type RoutineDoneResponse struct {
	Created bool                        `json:"created"`
	Log     *model.RoutineCompletionLog `json:"log,omitempty"`
}

func pathID(ctx *gin.Context) (uint, bool) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "Invalid ID")
		return 0, false
	}
	return id, true
}

// @Summary 例程打卡
// @Description 每个例程每天最多记录一次完成
// @Tags 例程
// @Produce json
// @Param X-User-Email header string false "用户邮箱"
// @Param id path int true "例程ID"
// @Success 200 {object} util.Response{data=RoutineDoneResponse}
// @Failure 404 {object} util.Response
// @Router /routines/{id}/done [post]
func (c *CompletionController) MarkRoutineDone(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	user, ok := currentUser(ctx, c.UserService)
	if !ok {
		return
	}

	entry, created, err := c.CompletionService.MarkRoutineDone(ctx.Request.Context(), user.ID, id)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, RoutineDoneResponse{Created: created, Log: entry})
}

// @Summary 完成目标
// @Description 记录完成、累加积分并移除该目标
// @Tags 目标
// @Produce json
// @Param X-User-Email header string false "用户邮箱"
// @Param id path int true "目标ID"
// @Success 200 {object} util.Response{data=model.GoalCompletionLog}
// @Failure 404 {object} util.Response
// @Router /goals/{id}/complete [post]
func (c *CompletionController) CompleteGoal(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	user, ok := currentUser(ctx, c.UserService)
	if !ok {
		return
	}

	entry, err := c.CompletionService.CompleteGoal(ctx.Request.Context(), user.ID, id)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, entry)
}

// @Summary 实现心愿
// @Tags 心愿
// @Produce json
// @Param X-User-Email header string false "用户邮箱"
// @Param id path int true "心愿ID"
// @Success 200 {object} util.Response{data=model.Wish}
// @Failure 404 {object} util.Response
// @Router /wishes/{id}/fulfill [post]
func (c *CompletionController) FulfillWish(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	user, ok := currentUser(ctx, c.UserService)
	if !ok {
		return
	}

	wish, err := c.CompletionService.FulfillWish(ctx.Request.Context(), user.ID, id)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, wish)
}

// @Summary 例程今日完成状态
// @Description 返回每个例程最近一次完成时间以及今天是否已完成
// @Tags 例程
// @Produce json
// @Param X-User-Email header string false "用户邮箱"
// @Success 200 {object} util.Response{data=[]model.RoutineCompletionStatus}
// @Failure 404 {object} util.Response
// @Router /routines/completion-status [get]
func (c *CompletionController) GetCompletionStatus(ctx *gin.Context) {
	user, ok := currentUser(ctx, c.UserService)
	if !ok {
		return
	}

	statuses, err := c.CompletionService.TodayStatus(ctx.Request.Context(), user.ID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, statuses)
}
