// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/budgetwise/backend/internal/integration/entrypoint/controller"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	utilityController     *controller.UtilityController
	billController        *controller.BillController
	budgetController      *controller.BudgetController
	transactionController *controller.TransactionController
	reminderController    *controller.ReminderController
	dashboardController   *controller.DashboardController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	utilityController *controller.UtilityController,
	billController *controller.BillController,
	budgetController *controller.BudgetController,
	transactionController *controller.TransactionController,
	reminderController *controller.ReminderController,
	dashboardController *controller.DashboardController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		utilityController:     utilityController,
		billController:        billController,
		budgetController:      budgetController,
		transactionController: transactionController,
		reminderController:    reminderController,
		dashboardController:   dashboardController,
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
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Utility routes (require authentication)
		if r.utilityController != nil && r.authMiddleware != nil {
			utilities := v1.Group("/utilities")
			utilities.Use(r.authMiddleware.Authenticate())
			{
				utilities.GET("", r.utilityController.List)
				utilities.POST("", r.utilityController.Create)
				utilities.GET("/:id", r.utilityController.Get)
				utilities.PUT("/:id", r.utilityController.Update)
				utilities.PATCH("/:id/toggle", r.utilityController.ToggleActive)
				utilities.DELETE("/:id", r.utilityController.Delete)
			}
		}

		// Bill routes (require authentication)
		if r.billController != nil && r.authMiddleware != nil {
			bills := v1.Group("/bills")
			bills.Use(r.authMiddleware.Authenticate())
			{
				bills.GET("", r.billController.List)
				bills.POST("", r.billController.Create)
				// The literal segment must be registered before the :id routes
				// are matched against it.
				bills.GET("/history", r.billController.History)
				bills.GET("/:id", r.billController.Get)
				bills.PUT("/:id", r.billController.Update)
				bills.PATCH("/:id/pay", r.billController.MarkPaid)
				bills.DELETE("/:id", r.billController.Delete)
			}
		}

		// Budget routes (require authentication)
		if r.budgetController != nil && r.authMiddleware != nil {
			budgets := v1.Group("/budgets")
			budgets.Use(r.authMiddleware.Authenticate())
			{
				budgets.GET("", r.budgetController.List)
				budgets.POST("", r.budgetController.Create)
				budgets.DELETE("/:id", r.budgetController.Delete)
			}
		}

		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.GET("/:id", r.transactionController.Get)
				transactions.PUT("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		// Reminder routes (require authentication)
		if r.reminderController != nil && r.authMiddleware != nil {
			reminders := v1.Group("/reminders")
			reminders.Use(r.authMiddleware.Authenticate())
			{
				reminders.GET("/due", r.reminderController.ListDue)
				reminders.POST("/mark-sent", r.reminderController.MarkSent)
			}
		}

		// Dashboard route (requires authentication)
		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("", r.dashboardController.Overview)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
