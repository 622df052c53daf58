package routes

import (
	"blogforge/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterParametersRoutes(router *gin.Engine, controller *controllers.ParametersController) {
	parameters := router.Group("/parameters")
	{
		parameters.POST("", controller.CreateParameters)
		parameters.GET("", controller.GetAllParameters)
		parameters.GET("/:id", controller.GetParametersByID)
		parameters.PUT("/:id", controller.UpdateParameters)
		parameters.PUT("/:id/default", controller.SetDefaultParameters)
		parameters.DELETE("/:id", controller.DeleteParameters)
	}
}
