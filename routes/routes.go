package routes

import (
	"os"
	"strings"
	"tradepro-backend/config"
	"tradepro-backend/controllers"
	"tradepro-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func allowedOrigins() []string {
	if env := os.Getenv("CORS_ALLOWED_ORIGINS"); env != "" {
		return strings.Split(env, ",")
	}
	return []string{"http://localhost:3000", "http://localhost:5173"}
}

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := allowedOrigins()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) bool {
			for _, o := range origins {
				if origin == o {
					return true
				}
			}
			return false
		},
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", controllers.CreateCustomer)
			customers.GET("", controllers.GetCustomers)
			customers.GET("/simple", controllers.GetSimpleCustomers)
			customers.GET("/:id", controllers.GetCustomer)
			customers.PUT("/:id", controllers.UpdateCustomer)
			customers.DELETE("/:id", controllers.DeleteCustomer)
		}

		// Estimate routes
		estimates := api.Group("/estimates")
		{
			estimates.POST("", controllers.CreateEstimate)
			estimates.GET("", controllers.GetEstimates)
			estimates.GET("/:id", controllers.GetEstimate)
			estimates.PUT("/:id", controllers.UpdateEstimate)
			estimates.PUT("/:id/status", controllers.UpdateEstimateStatus)
			estimates.POST("/:id/create-project", controllers.CreateProjectFromEstimate)
			estimates.DELETE("/:id", controllers.DeleteEstimate)
		}

		// Invoice routes
		invoices := api.Group("/invoices")
		{
			invoices.POST("", controllers.CreateInvoice)
			invoices.POST("/from-estimate/:id", controllers.CreateInvoiceFromEstimate)
			invoices.GET("", controllers.GetInvoices)
			invoices.GET("/:id", controllers.GetInvoice)
			invoices.PUT("/:id", controllers.UpdateInvoice)
			invoices.PUT("/:id/status", controllers.UpdateInvoiceStatus)
			invoices.PUT("/:id/mark-paid", controllers.MarkInvoicePaid)
			invoices.POST("/:id/send", controllers.SendInvoiceEmail)
			invoices.GET("/:id/pdf", controllers.ViewInvoicePDF)
			invoices.GET("/:id/pdf/download", controllers.DownloadInvoicePDF)
			invoices.POST("/:id/pdf/regenerate", controllers.RegenerateInvoicePDF)
			invoices.DELETE("/:id", controllers.DeleteInvoice)
		}

		// Payment routes
		payments := api.Group("/payments")
		{
			payments.GET("/public-key", controllers.GetPublicKey)
			payments.POST("/intent", controllers.CreatePaymentIntent)
			payments.POST("/checkout", controllers.CreateCheckoutSession)
			payments.GET("", controllers.GetPayments)
			payments.GET("/:id/status", controllers.GetPaymentStatus)
		}

		// Project routes
		projects := api.Group("/projects")
		{
			projects.POST("", controllers.CreateProject)
			projects.GET("", controllers.GetProjects)
			projects.GET("/:id", controllers.GetProject)
			projects.PUT("/:id", controllers.UpdateProject)
			projects.DELETE("/:id", controllers.DeleteProject)
		}

		// Todo routes
		todos := api.Group("/todos")
		{
			todos.POST("", controllers.CreateTodo)
			todos.GET("", controllers.GetTodos)
			todos.PATCH("/:id/toggle", controllers.ToggleTodo)
			todos.PUT("/:id", controllers.UpdateTodo)
			todos.DELETE("/:id", controllers.DeleteTodo)
		}

		// Material catalog routes
		materials := api.Group("/materials")
		{
			materials.POST("", controllers.CreateMaterial)
			materials.GET("", controllers.GetMaterials)
			materials.GET("/:id", controllers.GetMaterial)
			materials.PUT("/:id", controllers.UpdateMaterial)
			materials.DELETE("/:id", controllers.DeleteMaterial)
		}

		// Service catalog routes
		services := api.Group("/services")
		{
			services.POST("", controllers.CreateService)
			services.GET("", controllers.GetServices)
			services.GET("/:id", controllers.GetService)
			services.PUT("/:id", controllers.UpdateService)
			services.DELETE("/:id", controllers.DeleteService)
		}

		// Service call routes
		serviceCalls := api.Group("/service-calls")
		{
			serviceCalls.POST("", controllers.CreateServiceCall)
			serviceCalls.GET("", controllers.GetServiceCalls)
			serviceCalls.GET("/:id", controllers.GetServiceCall)
			serviceCalls.PUT("/:id", controllers.UpdateServiceCall)
			serviceCalls.DELETE("/:id", controllers.DeleteServiceCall)
		}

		// RFI routes
		rfis := api.Group("/rfis")
		{
			rfis.POST("", controllers.CreateRFI)
			rfis.GET("", controllers.GetRFIs)
			rfis.GET("/:id", controllers.GetRFI)
			rfis.PUT("/:id", controllers.UpdateRFI)
			rfis.DELETE("/:id", controllers.DeleteRFI)
		}

		// Company routes
		company := api.Group("/company")
		{
			company.GET("", controllers.GetCompany)
			company.PUT("", controllers.UpdateCompany)
			company.PUT("/settings", controllers.UpdateCompanySettings)
			company.GET("/team", controllers.GetTeamMembers)
		}

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)
		api.GET("/dashboard/revenue", controllers.GetRevenueByMonth)
	}

	return r
}
