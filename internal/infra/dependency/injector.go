// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/budgetwise/backend/config"
	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/application/usecase/auth"
	"github.com/budgetwise/backend/internal/application/usecase/bill"
	"github.com/budgetwise/backend/internal/application/usecase/budget"
	"github.com/budgetwise/backend/internal/application/usecase/dashboard"
	"github.com/budgetwise/backend/internal/application/usecase/reminder"
	"github.com/budgetwise/backend/internal/application/usecase/transaction"
	"github.com/budgetwise/backend/internal/application/usecase/utility"
	"github.com/budgetwise/backend/internal/infra/server/router"
	"github.com/budgetwise/backend/internal/integration/adapters"
	"github.com/budgetwise/backend/internal/integration/entrypoint/controller"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
	"github.com/budgetwise/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The clock is a parameter so tests can drive time.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, clock adapter.Clock) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	utilityRepo := persistence.NewUtilityRepository(db)
	billRepo := persistence.NewBillRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	reminderRepo := persistence.NewReminderRepository(db)
	sessionStore := persistence.NewSessionStore(redisClient)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, sessionStore)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create reminder use cases
	createBillRemindersUseCase := reminder.NewCreateBillRemindersUseCase(reminderRepo)
	listDueRemindersUseCase := reminder.NewListDueRemindersUseCase(reminderRepo, billRepo, utilityRepo, clock)
	markRemindersSentUseCase := reminder.NewMarkRemindersSentUseCase(reminderRepo, clock)

	// Bill lifecycle shared by utility and bill use cases
	lifecycle := bill.NewLifecycle(billRepo, reminderRepo, createBillRemindersUseCase, clock)

	// Create utility use cases
	createUtilityUseCase := utility.NewCreateUtilityUseCase(utilityRepo, lifecycle)
	updateUtilityUseCase := utility.NewUpdateUtilityUseCase(utilityRepo, lifecycle)
	toggleActiveUseCase := utility.NewToggleActiveUseCase(utilityRepo, lifecycle)
	getUtilityUseCase := utility.NewGetUtilityUseCase(utilityRepo)
	listUtilitiesUseCase := utility.NewListUtilitiesUseCase(utilityRepo)
	deleteUtilityUseCase := utility.NewDeleteUtilityUseCase(utilityRepo)

	// Create bill use cases
	createBillUseCase := bill.NewCreateBillUseCase(billRepo, utilityRepo, createBillRemindersUseCase, clock)
	getBillUseCase := bill.NewGetBillUseCase(billRepo, clock)
	listBillsUseCase := bill.NewListBillsUseCase(billRepo, clock)
	updateBillUseCase := bill.NewUpdateBillUseCase(billRepo)
	markBillPaidUseCase := bill.NewMarkBillPaidUseCase(billRepo, clock)
	deleteBillUseCase := bill.NewDeleteBillUseCase(billRepo, reminderRepo)
	billHistoryUseCase := bill.NewBillHistoryUseCase(billRepo, clock)

	// Create budget use cases
	summarizeBudgetUseCase := budget.NewSummarizeBudgetUseCase(transactionRepo)
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo, summarizeBudgetUseCase)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)

	// Create transaction use cases
	addTransactionUseCase := transaction.NewAddTransactionUseCase(transactionRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Create dashboard use case
	overviewUseCase := dashboard.NewGetOverviewUseCase(billRepo, listBudgetsUseCase, listDueRemindersUseCase, clock)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	utilityController := controller.NewUtilityController(
		createUtilityUseCase,
		updateUtilityUseCase,
		toggleActiveUseCase,
		getUtilityUseCase,
		listUtilitiesUseCase,
		deleteUtilityUseCase,
		lifecycle,
	)

	billController := controller.NewBillController(
		createBillUseCase,
		getBillUseCase,
		listBillsUseCase,
		updateBillUseCase,
		markBillPaidUseCase,
		deleteBillUseCase,
		billHistoryUseCase,
	)

	budgetController := controller.NewBudgetController(
		createBudgetUseCase,
		listBudgetsUseCase,
		deleteBudgetUseCase,
		summarizeBudgetUseCase,
	)

	transactionController := controller.NewTransactionController(
		addTransactionUseCase,
		listTransactionsUseCase,
		getTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	reminderController := controller.NewReminderController(
		listDueRemindersUseCase,
		markRemindersSentUseCase,
	)

	dashboardController := controller.NewDashboardController(overviewUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		utilityController,
		billController,
		budgetController,
		transactionController,
		reminderController,
		dashboardController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
