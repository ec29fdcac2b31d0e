package main

import (
	"log"
	"net/http"

	"taxi_admin/internal/config"
	"taxi_admin/internal/logger"
	"taxi_admin/internal/middleware"
	"taxi_admin/internal/routes"
)

func main() {
	// Structured logging to a rotating file
	logger.Setup()

	// Connect to the database and migrate the schema
	config.InitDB()

	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	addr := config.ServerAddr()
	log.Printf("Server running at %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
