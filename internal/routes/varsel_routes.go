package routes

import (
	"github.com/gin-gonic/gin"

	"taxi_admin/internal/controllers"
	"taxi_admin/internal/middleware"
)

func VarselRoutes(r *gin.Engine) {
	varsler := r.Group("/varsler")
	varsler.Use(middleware.RequireAuth())
	{
		varsler.GET("", controllers.ListVarsler)
		varsler.POST("/check-all", controllers.CheckAllSkifts)
	}
}
