package main

import (
	"github.com/gin-gonic/gin"

	"newsforum-backend/internal/shared/apperror"
	"newsforum-backend/internal/shared/middleware"
	"newsforum-backend/internal/shared/response"
	"newsforum-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowOrigins),
	)

	api := router.Group("/api")
	{
		api.GET("", c.APIHandler.Endpoints)
		api.GET("/health", c.APIHandler.Health)

		setupTopicRoutes(api, c)
		setupArticleRoutes(api, c)
		setupCommentRoutes(api, c)
		setupUserRoutes(api, c)
	}

	router.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, apperror.NotFound(apperror.EntityEndpoint).Message)
	})

	return router
}

// ========================================
// TOPIC ROUTES
// ========================================
func setupTopicRoutes(api *gin.RouterGroup, c *container.Container) {
	api.GET("/topics", c.TopicHandler.ListTopics)
}

// ========================================
// ARTICLE ROUTES
// ========================================
func setupArticleRoutes(api *gin.RouterGroup, c *container.Container) {
	articles := api.Group("/articles")
	{
		articles.GET("", c.ArticleHandler.ListArticles)
		articles.POST("", c.ArticleHandler.CreateArticle)
		articles.GET("/:article_id", c.ArticleHandler.GetArticle)
		articles.PATCH("/:article_id", c.ArticleHandler.VoteArticle)

		articles.GET("/:article_id/comments", c.CommentHandler.ListComments)
		articles.POST("/:article_id/comments", c.CommentHandler.CreateComment)
	}
}

// ========================================
// COMMENT ROUTES
// ========================================
func setupCommentRoutes(api *gin.RouterGroup, c *container.Container) {
	comments := api.Group("/comments")
	{
		comments.GET("/:comment_id", c.CommentHandler.GetComment)
		comments.PATCH("/:comment_id", c.CommentHandler.VoteComment)
		comments.DELETE("/:comment_id", c.CommentHandler.DeleteComment)
	}
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(api *gin.RouterGroup, c *container.Container) {
	users := api.Group("/users")
	{
		users.GET("", c.UserHandler.ListUsers)
		users.GET("/:username", c.UserHandler.GetUser)
	}
}
