package main

import (
	"fmt"
	"log"
	"os"
	"tradepro-backend/config"
	"tradepro-backend/models"
	"tradepro-backend/routes"
	"tradepro-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Company{},
		&models.User{},
		&models.Customer{},
		&models.Estimate{},
		&models.EstimateItem{},
		&models.Invoice{},
		&models.InvoiceItem{},
		&models.Project{},
		&models.Todo{},
		&models.Material{},
		&models.Service{},
		&models.ServiceCall{},
		&models.RFI{},
		&models.Payment{},
		&models.NotificationLog{},
	)
}

func main() {
	reminders := services.NewReminderService(config.DB)
	reminders.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
