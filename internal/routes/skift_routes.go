package routes

import (
	"github.com/gin-gonic/gin"

	"taxi_admin/internal/controllers"
	"taxi_admin/internal/middleware"
)

func SkiftRoutes(r *gin.Engine) {
	skifts := r.Group("/skifts")
	skifts.Use(middleware.RequireAuth())
	{
		skifts.GET("", controllers.ListSkifts)
		skifts.POST("", controllers.CreateSkift)
		skifts.GET("/:id", controllers.GetSkift)
		skifts.PUT("/:id", controllers.UpdateSkift)
		skifts.DELETE("/:id", controllers.DeleteSkift)
	}
}
