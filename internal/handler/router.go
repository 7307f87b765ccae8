package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"prepository/internal/middleware"
	"prepository/internal/pkg/response"
)

type RouterDeps struct {
	Auth          *AuthHandler
	Stories       *StoryHandler
	JWTSecret     []byte
	AuthRateLimit time.Duration
}

func RegisterRoutes(api *gin.RouterGroup, deps RouterDeps) {
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, gin.H{"status": "ok"})
	})

	authGroup := api.Group("/auth")
	if deps.AuthRateLimit > 0 {
		authGroup.Use(middleware.RateLimit(deps.AuthRateLimit))
	}
	authGroup.POST("/signup", deps.Auth.Signup)
	authGroup.POST("/login", deps.Auth.Login)
	authGroup.POST("/logout", deps.Auth.Logout)

	storyGroup := api.Group("/stories")
	storyGroup.Use(middleware.JWTAuth(deps.JWTSecret))
	storyGroup.POST("", deps.Stories.Create)
	storyGroup.GET("", deps.Stories.List)
	storyGroup.GET("/:id", deps.Stories.Get)
	storyGroup.PUT("/:id", deps.Stories.Update)
	storyGroup.DELETE("/:id", deps.Stories.Delete)
}
