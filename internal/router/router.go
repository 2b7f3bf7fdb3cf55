package router

import (
	"foodreel/internal/handlers"
	"foodreel/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	foodHandler := handlers.NewFoodHandler()
	commentHandler := handlers.NewCommentHandler()
	partnerHandler := handlers.NewPartnerHandler()

	// Auth (public)
	auth := r.Group("/auth")
	{
		auth.POST("/user/register", authHandler.RegisterUser)
		auth.POST("/user/login", authHandler.LoginUser)
		auth.POST("/user/logout", authHandler.LogoutUser)
		auth.POST("/foodpartner/register", authHandler.RegisterPartner)
		auth.POST("/foodpartner/login", authHandler.LoginPartner)
		auth.POST("/foodpartner/logout", authHandler.LogoutPartner)
	}

	// Food partner profiles
	partner := r.Group("/foodpartner")
	{
		partner.GET("/auth/check", middleware.AuthPartner(), partnerHandler.AuthCheck)
		partner.GET("/:id", middleware.AuthUser(), partnerHandler.Profile)
	}

	// Food items and engagement
	food := r.Group("/food")
	{
		food.POST("", middleware.AuthPartner(), foodHandler.Create)
		food.GET("", middleware.AuthUser(), foodHandler.List)

		food.POST("/like", middleware.AuthUser(), foodHandler.ToggleLike)
		food.POST("/save", middleware.AuthUser(), foodHandler.ToggleSave)
		food.GET("/liked", middleware.AuthUser(), foodHandler.ListLiked)
		food.GET("/saved", middleware.AuthUser(), foodHandler.ListSaved)

		food.POST("/comments", middleware.AuthUser(), commentHandler.Add)
		// Both GET routes share the :id name so gin's tree accepts them
		food.GET("/comments/:id", middleware.AuthUser(), commentHandler.List)
		food.GET("/comments/:id/replies", middleware.AuthUser(), commentHandler.Replies)
		food.PUT("/comments/:commentId", middleware.AuthUser(), commentHandler.Update)
		food.DELETE("/comments/:commentId", middleware.AuthUser(), commentHandler.Delete)
	}
}
