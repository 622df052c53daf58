package routes

import (
	"blogforge/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterWordPressRoutes(router *gin.Engine, controller *controllers.WordPressController) {
	wp := router.Group("/wordpress")
	{
		wp.POST("/sync", controller.SyncPosts)
		wp.GET("/posts", controller.GetPosts)
	}
}
