package routes

import (
	"github.com/gin-gonic/gin"

	"taxi_admin/internal/controllers"
	"taxi_admin/internal/middleware"
)

func ExpenseRoutes(r *gin.Engine) {
	utgifter := r.Group("/utgifter")
	utgifter.Use(middleware.RequireAuth())
	{
		utgifter.GET("", controllers.ListExpenses)
		utgifter.POST("", controllers.CreateExpense)
		utgifter.GET("/by-car/:id", controllers.ListExpensesByCar)
		utgifter.GET("/by-driver/:id", controllers.ListExpensesByDriver)
	}
	// clearing the whole table is admin only
	utgifter.DELETE("", middleware.RequireAuthWithRole("admin"), controllers.DeleteExpenses)
}
