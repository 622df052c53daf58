package routes

import (
	"blogforge/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterCategoryRoutes(router *gin.Engine, controller *controllers.CategoryController) {
	category := router.Group("/category")
	{
		category.POST("", controller.CreateCategory)
		category.GET("", controller.GetAllCategories)
		category.GET("/:id", controller.GetCategoryByID)
		category.GET("/:id/topics", controller.GetCategoryTopics)
		category.PUT("/:id", controller.UpdateCategory)
		category.DELETE("/:id", controller.DeleteCategory)
	}
}
