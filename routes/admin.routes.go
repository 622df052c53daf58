package routes

import (
	"blogforge/internal/controllers"
	"blogforge/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterAdminRoutes(router *gin.Engine, controller *controllers.AdminController) {
	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.POST("/reset", controller.ResetDatabase)
		admin.POST("/seed", controller.SeedDatabase)
	}
}
