package routes

import (
	"os"
	"strings"

	"carwash-backend/config"
	"carwash-backend/controllers"
	"carwash-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := allowedOrigins()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
		auth.POST("/logout", controllers.Logout)

		// Settings routes
		profile := auth.Group("/profile")
		{
			profile.GET("", controllers.GetProfile)
			profile.PUT("", controllers.UpdateProfile)
			profile.PUT("/password", controllers.ChangePassword)
		}
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Sale routes
		sales := api.Group("/sales")
		{
			sales.POST("", controllers.CreateSale)
			sales.GET("", controllers.GetSales)
			sales.GET("/export", controllers.ExportSales)
			sales.GET("/paylater", controllers.GetPayLaterSales)
			sales.GET("/summary/daily", controllers.GetDailySummary)
			sales.GET("/:id", controllers.GetSale)
			sales.PUT("/:id", controllers.UpdateSale)
			sales.PUT("/:id/mark-paid", controllers.MarkSalePaid)
			sales.DELETE("/:id", controllers.DeleteSale)
			sales.DELETE("", controllers.DeleteAllSales)
		}

		// 30-day account routes
		accounts := api.Group("/accounts")
		{
			accounts.GET("", controllers.GetAccounts)
			accounts.GET("/customers", controllers.GetAccountCustomerNames)
			accounts.GET("/customer/:name", controllers.GetCustomerAccounts)
			accounts.GET("/balances", controllers.GetAccountBalances)
			accounts.GET("/overdue", controllers.GetOverdueAccounts)
			accounts.PUT("/:id/mark-paid", controllers.MarkAccountPaid)
			accounts.DELETE("/:id", controllers.DeleteAccount)
		}

		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", controllers.CreateCustomer)
			customers.POST("/get-or-create", controllers.GetOrCreateCustomer)
			customers.GET("", controllers.GetCustomers)
			customers.GET("/:id", controllers.GetCustomer)
			customers.PUT("/:id", controllers.UpdateCustomer)
			customers.DELETE("/:id", controllers.DeleteCustomer)
		}

		// Price list routes
		pricelist := api.Group("/pricelist")
		{
			pricelist.GET("", controllers.GetPriceList)
			pricelist.GET("/categories", controllers.GetPriceListCategories)
			pricelist.POST("", controllers.CreatePriceListItem)
			pricelist.PUT("/:id", controllers.UpdatePriceListItem)
			pricelist.PUT("/:id/deactivate", controllers.DeactivatePriceListItem)
			pricelist.DELETE("/:id", controllers.DeletePriceListItem)
		}

		// Reports routes
		reportController := controllers.ReportController{}
		api.GET("/reports", reportController.GetRevenueReport)

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)
	}

	return r
}

func allowedOrigins() []string {
	if env := os.Getenv("CORS_ALLOW_ORIGINS"); env != "" {
		return strings.Split(env, ",")
	}
	return []string{"http://localhost:3000"}
}
