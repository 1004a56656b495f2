package api

import (
	"Pulseboard/internal/api/middleware"
	"Pulseboard/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    "pong",
		})
	})

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", group.AuthHandler.Login)
		authGroup.POST("/signup", group.AuthHandler.Signup)
		authGroup.POST("/logout", group.AuthHandler.Logout)
		authGroup.GET("/confirm", group.AuthHandler.ConfirmEmail)
		authGroup.GET("/me", middleware.AuthMiddleware(), group.AuthHandler.Me)
	}

	// 所有数据接口都要求先解析出合法会话
	dataGroup := r.Group("")
	dataGroup.Use(middleware.AuthMiddleware())
	{
		dataGroup.GET("/posts", group.PostHandler.ListPosts)
		dataGroup.GET("/analytics/summary", group.AnalyticsHandler.GetSummary)
		dataGroup.GET("/daily-metrics", group.DailyMetricHandler.ListDailyMetrics)
	}

	return r
}
