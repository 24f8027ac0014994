package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jay99268/VideoPlatform.Api/internal/handler"
	"github.com/jay99268/VideoPlatform.Api/internal/middleware"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// ==================== 认证 ====================
	auth := api.Group("/auth")
	{
		auth.POST("/send-verification-code", h.SendVerificationCode)
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/registration-settings", h.RegistrationSettings)
	}

	// ==================== 影片 ====================
	movies := api.Group("/movies")
	{
		movies.GET("", h.ListMovies)
		movies.GET("/:id", h.GetMovie)
		movies.GET("/:id/play", middleware.OptionalAuth(h.Config), h.GetPlayData)
		movies.GET("/:id/related", h.GetRelatedMovies)
		movies.GET("/:id/comments", h.ListComments)
		movies.POST("/:id/comments", middleware.RequireAuth(h.Config), h.CreateComment)

		// 影片管理（需要登录）
		manage := movies.Group("", middleware.RequireAuth(h.Config))
		{
			manage.POST("", h.CreateMovie)
			manage.PUT("/:id", h.UpdateMovie)
			manage.DELETE("/:id", h.DeleteMovie)
			manage.POST("/batch", h.CreateMoviesBatch)
			manage.DELETE("/batch", h.DeleteMoviesBatch)
		}
	}

	// ==================== 个人中心（需要登录）====================
	profile := api.Group("/profile", middleware.RequireAuth(h.Config))
	{
		profile.GET("/history", h.GetWatchHistory)
		profile.POST("/history/:movieId", h.SyncWatchHistory)
		profile.GET("/favorites", h.GetFavorites)
		profile.GET("/favorites/ids", h.GetFavoriteIds)
		profile.POST("/favorites/:movieId", h.AddFavorite)
		profile.DELETE("/favorites/:movieId", h.RemoveFavorite)
	}

	// ==================== 吃瓜中心（需要登录，VIP 专属）====================
	gossip := api.Group("/gossip", middleware.RequireAuth(h.Config))
	{
		gossip.GET("/posts", h.GetGossipPosts)
		gossip.POST("/progress", h.UpdateGossipProgress)
	}

	// ==================== 订阅 ====================
	subscription := api.Group("/subscription")
	{
		subscription.GET("/plans", h.GetSubscriptionPlans)
		subscription.POST("/redeem", middleware.RequireAuth(h.Config), h.RedeemCode)
	}

	// ==================== 其他公开数据 ====================
	api.GET("/banners", h.GetBanners)
	api.GET("/categories", h.GetCategories)
	api.GET("/tags", h.GetTags)
}
