// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/scraptrade/backend/internal/integration/entrypoint/controller"
	"github.com/scraptrade/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	buyerController       *controller.BuyerController
	productTypeController *controller.ProductTypeController
	purchaseController    *controller.PurchaseController
	saleController        *controller.SaleController
	expenseController     *controller.ExpenseController
	analyticsController   *controller.AnalyticsController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	buyerController *controller.BuyerController,
	productTypeController *controller.ProductTypeController,
	purchaseController *controller.PurchaseController,
	saleController *controller.SaleController,
	expenseController *controller.ExpenseController,
	analyticsController *controller.AnalyticsController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		buyerController:       buyerController,
		productTypeController: productTypeController,
		purchaseController:    purchaseController,
		saleController:        saleController,
		expenseController:     expenseController,
		analyticsController:   analyticsController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	api := r.engine.Group("/api")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := api.Group("/auth")
			{
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			}

			if r.authMiddleware != nil {
				authed := api.Group("/auth")
				authed.Use(r.authMiddleware.Authenticate())
				{
					authed.GET("/me", r.authController.Me)
					authed.POST("/change-password", r.authController.ChangePassword)
				}
			}
		}

		// Buyer routes (require authentication)
		if r.buyerController != nil && r.authMiddleware != nil {
			buyers := api.Group("/buyers")
			buyers.Use(r.authMiddleware.Authenticate())
			{
				buyers.GET("", r.buyerController.List)
				buyers.POST("", r.buyerController.Create)
				buyers.GET("/list", r.buyerController.ListSimple)
				buyers.GET("/:id", r.buyerController.Get)
				buyers.PATCH("/:id", r.buyerController.Update)
				buyers.DELETE("/:id", r.buyerController.Delete)
				buyers.GET("/:id/ledger", r.buyerController.GetLedger)
				buyers.GET("/:id/payments", r.buyerController.ListPayments)
				buyers.POST("/:id/payments", r.buyerController.AddPayment)
			}
		}

		// Product type routes (require authentication)
		if r.productTypeController != nil && r.authMiddleware != nil {
			productTypes := api.Group("/product-types")
			productTypes.Use(r.authMiddleware.Authenticate())
			{
				productTypes.GET("", r.productTypeController.List)
				productTypes.POST("", r.productTypeController.Create)
				productTypes.GET("/:id", r.productTypeController.Get)
				productTypes.PATCH("/:id", r.productTypeController.Update)
				productTypes.DELETE("/:id", r.productTypeController.Delete)
			}
		}

		// Purchase routes (require authentication)
		if r.purchaseController != nil && r.authMiddleware != nil {
			purchases := api.Group("/purchases")
			purchases.Use(r.authMiddleware.Authenticate())
			{
				purchases.GET("", r.purchaseController.List)
				purchases.POST("", r.purchaseController.Create)
				purchases.GET("/stats/today", r.purchaseController.TodayStats)
				purchases.GET("/:id", r.purchaseController.Get)
				purchases.PATCH("/:id", r.purchaseController.Update)
				purchases.DELETE("/:id", r.purchaseController.Delete)
			}
		}

		// Sale routes (require authentication)
		if r.saleController != nil && r.authMiddleware != nil {
			sales := api.Group("/sales")
			sales.Use(r.authMiddleware.Authenticate())
			{
				sales.GET("", r.saleController.List)
				sales.POST("", r.saleController.Create)
				sales.GET("/stats/today", r.saleController.TodayStats)
				sales.GET("/:id", r.saleController.Get)
				sales.PATCH("/:id", r.saleController.Update)
				sales.DELETE("/:id", r.saleController.Delete)
			}
		}

		// Expense routes (require authentication)
		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := api.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Create)
				expenses.GET("/stats/by-category", r.expenseController.CategoryStats)
				expenses.GET("/stats/today", r.expenseController.TodayStats)
				expenses.GET("/:id", r.expenseController.Get)
				expenses.PATCH("/:id", r.expenseController.Update)
				expenses.DELETE("/:id", r.expenseController.Delete)
			}
		}

		// Analytics routes (require authentication)
		if r.analyticsController != nil && r.authMiddleware != nil {
			analytics := api.Group("/analytics")
			analytics.Use(r.authMiddleware.Authenticate())
			{
				analytics.GET("/dashboard-summary", r.analyticsController.DashboardSummary)
				analytics.GET("/monthly-stats", r.analyticsController.MonthlyStats)
				analytics.GET("/product-sales", r.analyticsController.ProductSales)
				analytics.GET("/top-buyers", r.analyticsController.TopBuyers)
				analytics.GET("/full-report", r.analyticsController.FullReport)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
