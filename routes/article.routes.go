package routes

import (
	"blogforge/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterArticleRoutes(router *gin.Engine, controller *controllers.ArticleController) {
	article := router.Group("/article")
	{
		article.GET("", controller.GetAllArticles)
		article.GET("/:id", controller.GetArticleByID)
		article.GET("/slug/:slug", controller.GetArticleBySlug)
		article.DELETE("/:id", controller.DeleteArticle)
	}
}
