package controller

import (
	"bloom_daily_backend/internal/model"
	"bloom_daily_backend/internal/service"
	"bloom_daily_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

const maxCompletedLimit = 500

type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
	UserService      *service.UserService
	CompletedLimit   int
}

func NewAnalyticsController(analyticsService *service.AnalyticsService, userService *service.UserService, completedLimit int) *AnalyticsController {
	if completedLimit <= 0 {
		completedLimit = 100
	}
	return &AnalyticsController{
		AnalyticsService: analyticsService,
		UserService:      userService,
		CompletedLimit:   completedLimit,
	}
}

func rangeParam(ctx *gin.Context) model.TimeRange {
	return model.TimeRange(ctx.DefaultQuery("range", string(model.RangeMonthly)))
}

// @Summary 获取分析页数据
// @Description 返回分桶序列、目标状态分布、最近完成的目标与累计积分
// @Tags 分析
// @Produce json
// @Param X-User-Email header string false "用户邮箱"
// @Param range query string false "weekly | monthly | yearly" default(monthly)
// @Success 200 {object} util.Response{data=model.AnalyticsData}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /analytics [get]
func (c *AnalyticsController) GetAnalytics(ctx *gin.Context) {
	user, ok := currentUser(ctx, c.UserService)
	if !ok {
		return
	}

	data, err := c.AnalyticsService.GetAnalytics(ctx.Request.Context(), user.ID, rangeParam(ctx), c.CompletedLimit)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, data)
}

// @Summary 获取分桶序列
// @Tags 分析
// @Produce json
// @Param X-User-Email header string false "用户邮箱"
// @Param range query string false "weekly | monthly | yearly" default(monthly)
// @Success 200 {object} util.Response{data=model.AnalyticsSeries}
// @Failure 400 {object} util.Response
// @Router /analytics/series [get]
func (c *AnalyticsController) GetSeries(ctx *gin.Context) {
	user, ok := currentUser(ctx, c.UserService)
	if !ok {
		return
	}

	series, err := c.AnalyticsService.ResolveAndAggregate(ctx.Request.Context(), user.ID, rangeParam(ctx))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, series)
}

// @Summary 获取目标状态分布
// @Tags 分析
// @Produce json
// @Param X-User-Email header string false "用户邮箱"
// @Success 200 {object} util.Response{data=model.GoalStatusDistribution}
// @Router /analytics/goal-status [get]
func (c *AnalyticsController) GetGoalStatus(ctx *gin.Context) {
	user, ok := currentUser(ctx, c.UserService)
	if !ok {
		return
	}

	dist, err := c.AnalyticsService.ClassifyGoalStatus(ctx.Request.Context(), user.ID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, dist)
}

// @Summary 获取已完成目标列表
// @Description 最近完成的目标，新的在前
// @Tags 目标
// @Produce json
// @Param X-User-Email header string false "用户邮箱"
// @Param limit query int false "数量上限" default(100)
// @Success 200 {object} util.Response{data=[]model.CompletedGoalEntry}
// @Router /goals/completed [get]
func (c *AnalyticsController) GetCompletedGoals(ctx *gin.Context) {
	user, ok := currentUser(ctx, c.UserService)
	if !ok {
		return
	}

	limit := util.ParseLimit(ctx.DefaultQuery("limit", strconv.Itoa(c.CompletedLimit)), c.CompletedLimit, maxCompletedLimit)

	entries, err := c.AnalyticsService.CompletedGoals(ctx.Request.Context(), user.ID, limit)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, entries)
}
