package routes

import (
	"blogforge/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterTopicRoutes(router *gin.Engine, controller *controllers.TopicController) {
	topic := router.Group("/topic")
	{
		topic.POST("", controller.CreateTopic)
		topic.GET("", controller.GetAllTopics)
		topic.GET("/:id", controller.GetTopicByID)
		topic.GET("/slug/:slug", controller.GetTopicBySlug)
		topic.PUT("/:id", controller.UpdateTopic)
		topic.DELETE("/:id", controller.DeleteTopic)
	}
}
