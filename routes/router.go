package routes

import (
	"ecom-ledger/controllers"
	"ecom-ledger/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {

	r.POST("/login", controllers.Login)

	// Public order tracking (guests follow their order by number, no auth)
	r.GET("/public/orders/track/:orderNumber", controllers.TrackOrder)

	// Orders
	orders := r.Group("/orders")
	orders.Use(middlewares.AuthMiddleware())
	{
		orders.POST("/", middlewares.RoleMiddleware("admin", "cashier"), controllers.CreateOrder)
		orders.GET("/", controllers.GetOrders)
		orders.GET("/:id", controllers.GetOrderByID)
		orders.PATCH("/:id", middlewares.RoleMiddleware("admin", "cashier"), controllers.UpdateOrderStatus)
		orders.DELETE("/", middlewares.RoleMiddleware("admin"), controllers.BulkDeleteOrders)

		orders.POST("/:id/invoice", middlewares.RoleMiddleware("admin", "cashier"), controllers.GenerateInvoice)
		orders.GET("/:id/invoices", controllers.GetOrderInvoices)
	}

	// Invoices
	invoices := r.Group("/invoices")
	invoices.Use(middlewares.AuthMiddleware())
	{
		invoices.GET("/", controllers.GetInvoices)
		invoices.GET("/:id", controllers.GetInvoiceByID)
	}

	// Dealers & settlement
	dealers := r.Group("/dealers")
	dealers.Use(middlewares.AuthMiddleware(), middlewares.RoleMiddleware("admin", "cashier"))
	{
		dealers.POST("/", controllers.CreateDealer)
		dealers.GET("/", controllers.GetDealers)
		dealers.GET("/:id", controllers.GetDealerByID)
		dealers.DELETE("/:id", middlewares.RoleMiddleware("admin"), controllers.DeleteDealer)

		dealers.GET("/:id/balance", controllers.GetDealerBalance)
		dealers.POST("/:id/payments", controllers.RecordDealerPayment)
		dealers.GET("/:id/payments", controllers.GetDealerPayments)
		dealers.POST("/:id/checks", controllers.CreateDealerCheck)
		dealers.GET("/:id/checks", controllers.GetDealerChecks)
	}

	// Check status transitions
	checks := r.Group("/checks")
	checks.Use(middlewares.AuthMiddleware(), middlewares.RoleMiddleware("admin", "cashier"))
	{
		checks.GET("/:id", controllers.GetCheckByID)
		checks.POST("/:id/deposit", controllers.DepositCheck)
		checks.POST("/:id/clear", controllers.ClearCheck)
		checks.POST("/:id/bounce", controllers.BounceCheck)
		checks.POST("/:id/cancel", controllers.CancelCheck)
	}

	// Settings (tax rates live here)
	settings := r.Group("/settings")
	settings.Use(middlewares.AuthMiddleware())
	{
		settings.GET("/", controllers.GetSettings)
		settings.GET("/tax-rates", controllers.GetTaxRates)
		settings.PUT("/", middlewares.RoleMiddleware("admin"), controllers.UpdateSetting)
	}
}
