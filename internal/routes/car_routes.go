package routes

import (
	"github.com/gin-gonic/gin"

	"taxi_admin/internal/controllers"
	"taxi_admin/internal/middleware"
)

func CarRoutes(r *gin.Engine) {
	cars := r.Group("/cars")
	cars.Use(middleware.RequireAuth())
	{
		cars.GET("", controllers.ListCars)
		cars.POST("", controllers.CreateCar)
		cars.GET("/:id", controllers.GetCar)
		cars.PUT("/:id", controllers.UpdateCar)
		cars.DELETE("/:id", controllers.DeleteCar)
	}
}
