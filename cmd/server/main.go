package main

import (
	"fmt"
	"log"

	"github.com/LucasLevingston/AneisDePoder/internal/config"
	"github.com/LucasLevingston/AneisDePoder/internal/database"
	"github.com/LucasLevingston/AneisDePoder/internal/router"

	// Swagger imports
	_ "github.com/LucasLevingston/AneisDePoder/docs" // This is important for swag to find the generated docs
)

func init() {
	config.LoadConfig()
}

// @title           Anéis de Poder API
// @version         1.0
// @description     REST API for managing rings of power and their bearers.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	r := router.New()

	fmt.Printf("Server is running on %s\n", config.AppConfig.ServerAddress)
	fmt.Println("Swagger UI is available at http://localhost:8080/swagger/index.html")
	log.Fatal(r.Run(config.AppConfig.ServerAddress))
}
