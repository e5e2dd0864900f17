package app

import (
	"promptmaster_backend/internal/config"
	"promptmaster_backend/internal/middleware"
	"promptmaster_backend/internal/model"
	"promptmaster_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)
		api.POST("/register", c.auth.Register)
		api.POST("/login", c.auth.Login)
	}

	authorized := api.Group("")
	authorized.Use(middleware.AuthMiddleware(cfg))
	authorized.Use(middleware.ActivityMiddleware(repos.user))
	{
		authorized.GET("/profile", c.user.GetProfile)
		authorized.PUT("/profile", c.user.UpdateProfile)

		authorized.GET("/scenarios", c.scenario.List)
		authorized.GET("/scenarios/:id", c.scenario.Get)
		authorized.POST("/scenarios/:id/attempts", c.scenario.SubmitAttempt)

		authorized.GET("/dashboard", c.dashboard.GetDashboard)
		authorized.GET("/achievements", c.achievement.GetAchievements)
		authorized.GET("/achievements/leaderboard", c.achievement.GetLeaderboard)

		authorized.GET("/streak", c.user.GetStreak)
		authorized.POST("/streak/checkin", c.user.Checkin)

		authorized.GET("/certificates", c.certificate.List)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg))
	admin.Use(middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/scenarios", c.scenario.ListAll)
		admin.POST("/scenarios", c.scenario.Create)
		admin.PUT("/scenarios/:id", c.scenario.Update)
		admin.PATCH("/scenarios/:id/active", c.scenario.SetActive)
	}
}
