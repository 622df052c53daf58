package routes

import (
	"blogforge/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterGenerationRoutes(router *gin.Engine, controller *controllers.GenerationController) {
	generation := router.Group("/generation")
	{
		generation.POST("/topics", controller.GenerateTopicIdeas)
		generation.POST("/topics/confirm", controller.ConfirmTopicIdeas)
		generation.POST("/article/:id", controller.GenerateArticle)
		generation.POST("/article/:id/seo", controller.ScoreArticleSEO)
	}
}
