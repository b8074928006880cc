package main

import (
	"github.com/gin-gonic/gin"

	"github.com/thereayou/microblog/internal/database"
	"github.com/thereayou/microblog/internal/handlers"
	"github.com/thereayou/microblog/internal/middleware"
)

func APIEndpoints(r *gin.Engine, db *database.Database, authH *handlers.AuthHandler, postH *handlers.PostHandler, userH *handlers.UserHandler) {
	// Auth endpoints
	auth := r.Group("/auth")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/login", authH.Login)
		auth.POST("/logout", middleware.AuthMiddleware(db), authH.Logout)
	}

	// API endpoints
	api := r.Group("/api/v1")
	{
		api.GET("/timeline", postH.Timeline)
		api.GET("/users", userH.NewUsers)
		api.GET("/users/:name", userH.Profile)
		api.GET("/users/:name/posts", postH.UserPosts)
		api.GET("/users/:name/followers", userH.Followers)
		api.GET("/users/:name/following", userH.Following)

		authed := api.Group("", middleware.AuthMiddleware(db))
		{
			authed.POST("/posts", postH.Create)
			authed.GET("/mentions", postH.Mentions)
			authed.POST("/users/:name/follow", userH.Follow)
			authed.DELETE("/users/:name/follow", userH.Unfollow)
			authed.GET("/users/:name/common-followers", userH.CommonFollowers)
			authed.GET("/users/:name/also-followed", userH.AlsoFollowed)
		}
	}
}
