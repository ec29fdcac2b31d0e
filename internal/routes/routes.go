package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	AuthRoutes(r)
	DriverRoutes(r)
	CarRoutes(r)
	SkiftRoutes(r)
	VarselRoutes(r)
	ExpenseRoutes(r)

	return r
}
