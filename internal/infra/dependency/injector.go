// Package dependency provides dependency injection for the application.
package dependency

import (
	"gorm.io/gorm"

	"github.com/cohetebrands/backoffice/config"
	"github.com/cohetebrands/backoffice/internal/application/usecase/auth"
	"github.com/cohetebrands/backoffice/internal/application/usecase/client"
	"github.com/cohetebrands/backoffice/internal/application/usecase/finance"
	"github.com/cohetebrands/backoffice/internal/application/usecase/recurring"
	"github.com/cohetebrands/backoffice/internal/application/usecase/transaction"
	"github.com/cohetebrands/backoffice/internal/infra/server/router"
	"github.com/cohetebrands/backoffice/internal/integration/adapters"
	"github.com/cohetebrands/backoffice/internal/integration/entrypoint/controller"
	"github.com/cohetebrands/backoffice/internal/integration/entrypoint/middleware"
	"github.com/cohetebrands/backoffice/internal/integration/persistence"
	"github.com/cohetebrands/backoffice/internal/integration/scheduler"
)

// Injector holds all application dependencies.
type Injector struct {
	Config          *config.Config
	DB              *gorm.DB
	Router          *router.Router
	SchedulerWorker *scheduler.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) *Injector {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	clientRepo := persistence.NewClientRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	templateRepo := persistence.NewRecurringTemplateRepository(db)

	// Adapters/services
	clock := adapters.NewSystemClock()
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService, clock)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshUseCase := auth.NewRefreshTokenUseCase(tokenService)

	// Ledger use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, clientRepo, clock)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, clientRepo, clock)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Recurring scheduler use cases
	listTemplatesUseCase := recurring.NewListTemplatesUseCase(templateRepo)
	createTemplateUseCase := recurring.NewCreateTemplateUseCase(templateRepo, clientRepo, clock)
	updateTemplateUseCase := recurring.NewUpdateTemplateUseCase(templateRepo, clientRepo, clock)
	deleteTemplateUseCase := recurring.NewDeleteTemplateUseCase(templateRepo)
	executeTemplateUseCase := recurring.NewExecuteTemplateUseCase(templateRepo, clock)
	executePendingUseCase := recurring.NewExecutePendingUseCase(templateRepo, clock)
	markPaidUseCase := recurring.NewMarkPaidUseCase(templateRepo, clock)
	unpayUseCase := recurring.NewUnpayUseCase(templateRepo)

	// Finance use cases
	summaryUseCase := finance.NewGetSummaryUseCase(transactionRepo, clock)
	obligationsUseCase := finance.NewListObligationsUseCase(templateRepo, clock)

	// Client registry use cases
	listClientsUseCase := client.NewListClientsUseCase(clientRepo)
	createClientUseCase := client.NewCreateClientUseCase(clientRepo, clock)
	updateClientUseCase := client.NewUpdateClientUseCase(clientRepo, clock)
	deleteClientUseCase := client.NewDeleteClientUseCase(clientRepo)

	// Controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})
	authController := controller.NewAuthController(registerUseCase, loginUseCase, refreshUseCase)
	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)
	recurringController := controller.NewRecurringController(
		listTemplatesUseCase,
		createTemplateUseCase,
		updateTemplateUseCase,
		deleteTemplateUseCase,
		executeTemplateUseCase,
		executePendingUseCase,
		markPaidUseCase,
		unpayUseCase,
	)
	financeController := controller.NewFinanceController(summaryUseCase, obligationsUseCase)
	clientController := controller.NewClientController(
		listClientsUseCase,
		createClientUseCase,
		updateClientUseCase,
		deleteClientUseCase,
	)

	// Middleware
	loginRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	appRouter := router.NewRouter(
		healthController,
		authController,
		transactionController,
		recurringController,
		financeController,
		clientController,
		loginRateLimiter,
		authMiddleware,
		cfg.CORS.AllowedOrigins,
	)

	schedulerWorker := scheduler.NewWorker(executePendingUseCase, scheduler.WorkerConfig{
		PollInterval: cfg.Scheduler.PollInterval,
	})

	return &Injector{
		Config:          cfg,
		DB:              db,
		Router:          appRouter,
		SchedulerWorker: schedulerWorker,
	}
}
