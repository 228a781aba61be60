package main

import (
	"fmt"
	"log"
	"os"

	"carwash-backend/config"
	"carwash-backend/models"
	"carwash-backend/routes"
	"carwash-backend/services"

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
		&models.User{},
		&models.Customer{},
		&models.Sale{},
		&models.Account{},
		&models.PriceListItem{},
		&models.PaymentReminderLog{},
	)

	config.SeedPriceList()
}

func main() {

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	reminders := services.NewOverdueReminderService(config.DB)
	reminders.StartScheduler()

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
