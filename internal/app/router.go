package app

import (
	"bloom_daily_backend/docs"

	"bloom_daily_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
	}

	// 2. 需要调用方身份的路由
	api := router.Group("/api")
	api.Use(a.identity.Middleware())
	{
		api.GET("/profile", c.user.GetProfile)

		analytics := api.Group("/analytics")
		{
			analytics.GET("", c.analytics.GetAnalytics)
			analytics.GET("/series", c.analytics.GetSeries)
			analytics.GET("/goal-status", c.analytics.GetGoalStatus)
		}

		api.GET("/goals/completed", c.analytics.GetCompletedGoals)
		api.POST("/goals/:id/complete", c.completion.CompleteGoal)
		api.POST("/routines/:id/done", c.completion.MarkRoutineDone)
		api.GET("/routines/completion-status", c.completion.GetCompletionStatus)
		api.POST("/wishes/:id/fulfill", c.completion.FulfillWish)
	}
}
