// Package router sets up the HTTP routing for the application.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/cohetebrands/backoffice/internal/integration/entrypoint/controller"
	"github.com/cohetebrands/backoffice/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	transactionController *controller.TransactionController
	recurringController   *controller.RecurringController
	financeController     *controller.FinanceController
	clientController      *controller.ClientController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
	allowedOrigins        []string
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	transactionController *controller.TransactionController,
	recurringController *controller.RecurringController,
	financeController *controller.FinanceController,
	clientController *controller.ClientController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	allowedOrigins []string,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		transactionController: transactionController,
		recurringController:   recurringController,
		financeController:     financeController,
		clientController:      clientController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
		allowedOrigins:        allowedOrigins,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.engine.Use(cors.New(cors.Config{
		AllowOrigins:     r.allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

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
		// Auth routes stay public; login is rate limited.
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			auth.POST("/refresh", r.authController.Refresh)
		}

		transactions := v1.Group("/transactions")
		transactions.Use(r.authMiddleware.Authenticate())
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Create)
			transactions.PATCH("/:id", r.transactionController.Update)
			transactions.DELETE("/:id", r.transactionController.Delete)
		}

		recurring := v1.Group("/recurring-transactions")
		recurring.Use(r.authMiddleware.Authenticate())
		{
			recurring.GET("", r.recurringController.List)
			recurring.POST("", r.recurringController.Create)
			recurring.PATCH("/:id", r.recurringController.Update)
			recurring.DELETE("/:id", r.recurringController.Delete)
			recurring.POST("/:id/execute", r.recurringController.Execute)
			recurring.POST("/execute-pending", r.recurringController.ExecutePending)
		}

		finance := v1.Group("/finance")
		finance.Use(r.authMiddleware.Authenticate())
		{
			finance.GET("/summary", r.financeController.Summary)
			finance.GET("/obligations/payables", r.financeController.Payables)
			finance.GET("/obligations/receivables", r.financeController.Receivables)
			finance.POST("/obligations/:id/pay", r.recurringController.Pay)
			finance.POST("/obligations/:id/unpay", r.recurringController.Unpay)
		}

		clients := v1.Group("/clients")
		clients.Use(r.authMiddleware.Authenticate())
		{
			clients.GET("", r.clientController.List)
			clients.POST("", r.clientController.Create)
			clients.PATCH("/:id", r.clientController.Update)
			clients.DELETE("/:id", r.clientController.Delete)
		}
	}
}
