package api

import (
	"Clipsight/internal/api/middleware"
	"Clipsight/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			// 无需登录即可访问的接口
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.POST("/login", group.UserHandler.Login)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/info", group.UserHandler.GetUserInfo)
				authGroup.PUT("/password", group.UserHandler.ChangePassword)
			}
		}

		tiktokGroup := apiGroup.Group("/tiktok")
		{
			// 授权跳转和回跳由浏览器直接访问，不带登录态
			tiktokGroup.GET("/connect", group.TikTokHandler.Connect)
			tiktokGroup.GET("/callback", group.TikTokHandler.Callback)

			authGroup := tiktokGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/disconnect", group.TikTokHandler.Disconnect)
				authGroup.GET("/analytics", group.AnalyticsHandler.GetAnalytics)
				authGroup.POST("/snapshot", group.SnapshotHandler.Create)
				authGroup.GET("/snapshots", group.SnapshotHandler.List)
			}
		}

		settingsGroup := apiGroup.Group("/settings")
		{
			settingsGroup.Use(middleware.AuthMiddleware())
			{
				settingsGroup.GET("", group.SettingsHandler.Get)
				settingsGroup.PUT("", group.SettingsHandler.Save)
			}
		}

		agentGroup := apiGroup.Group("/agent")
		{
			agentGroup.Use(middleware.AuthMiddleware())
			{
				agentGroup.POST("/estimate", group.AgentHandler.Estimate)
			}
		}
	}

	return r
}
