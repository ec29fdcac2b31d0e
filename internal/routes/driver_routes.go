package routes

import (
	"github.com/gin-gonic/gin"

	"taxi_admin/internal/controllers"
	"taxi_admin/internal/middleware"
)

func DriverRoutes(r *gin.Engine) {
	drivers := r.Group("/drivers")
	drivers.Use(middleware.RequireAuth())
	{
		drivers.GET("", controllers.ListDrivers)
		drivers.POST("", controllers.CreateDriver)
		drivers.GET("/:id", controllers.GetDriver)
		drivers.PUT("/:id", controllers.UpdateDriver)
		drivers.DELETE("/:id", controllers.DeleteDriver)
	}
}
