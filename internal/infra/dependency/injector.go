// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/scraptrade/backend/config"
	"github.com/scraptrade/backend/internal/application/adapter"
	"github.com/scraptrade/backend/internal/application/usecase/analytics"
	"github.com/scraptrade/backend/internal/application/usecase/auth"
	"github.com/scraptrade/backend/internal/application/usecase/buyer"
	"github.com/scraptrade/backend/internal/application/usecase/expense"
	"github.com/scraptrade/backend/internal/application/usecase/producttype"
	"github.com/scraptrade/backend/internal/application/usecase/purchase"
	"github.com/scraptrade/backend/internal/application/usecase/sale"
	"github.com/scraptrade/backend/internal/domain/entity"
	domainerror "github.com/scraptrade/backend/internal/domain/error"
	"github.com/scraptrade/backend/internal/infra/server/router"
	"github.com/scraptrade/backend/internal/integration/adapters"
	"github.com/scraptrade/backend/internal/integration/entrypoint/controller"
	"github.com/scraptrade/backend/internal/integration/entrypoint/middleware"
	"github.com/scraptrade/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router

	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	buyerRepo := persistence.NewBuyerRepository(db)
	productTypeRepo := persistence.NewProductTypeRepository(db)
	purchaseRepo := persistence.NewPurchaseRepository(db)
	saleRepo := persistence.NewSaleRepository(db)
	paymentRepo := persistence.NewPaymentRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Create auth use cases
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	getMeUseCase := auth.NewGetMeUseCase(userRepo)
	changePasswordUseCase := auth.NewChangePasswordUseCase(userRepo, passwordService)

	// Create buyer use cases
	createBuyerUseCase := buyer.NewCreateBuyerUseCase(buyerRepo)
	listBuyersUseCase := buyer.NewListBuyersUseCase(buyerRepo, saleRepo, paymentRepo)
	getBuyerUseCase := buyer.NewGetBuyerUseCase(buyerRepo, saleRepo, paymentRepo)
	updateBuyerUseCase := buyer.NewUpdateBuyerUseCase(buyerRepo)
	deleteBuyerUseCase := buyer.NewDeleteBuyerUseCase(buyerRepo, saleRepo, paymentRepo)
	getLedgerUseCase := buyer.NewGetLedgerUseCase(buyerRepo, saleRepo, paymentRepo)
	addPaymentUseCase := buyer.NewAddPaymentUseCase(buyerRepo, paymentRepo)
	listPaymentsUseCase := buyer.NewListPaymentsUseCase(buyerRepo, paymentRepo)

	// Create product type use cases
	createProductTypeUseCase := producttype.NewCreateProductTypeUseCase(productTypeRepo)
	listProductTypesUseCase := producttype.NewListProductTypesUseCase(productTypeRepo)
	getProductTypeUseCase := producttype.NewGetProductTypeUseCase(productTypeRepo)
	updateProductTypeUseCase := producttype.NewUpdateProductTypeUseCase(productTypeRepo)
	deleteProductTypeUseCase := producttype.NewDeleteProductTypeUseCase(productTypeRepo)

	// Create purchase use cases
	createPurchaseUseCase := purchase.NewCreatePurchaseUseCase(purchaseRepo)
	listPurchasesUseCase := purchase.NewListPurchasesUseCase(purchaseRepo)
	getPurchaseUseCase := purchase.NewGetPurchaseUseCase(purchaseRepo)
	updatePurchaseUseCase := purchase.NewUpdatePurchaseUseCase(purchaseRepo, expenseRepo)
	deletePurchaseUseCase := purchase.NewDeletePurchaseUseCase(purchaseRepo, expenseRepo)
	purchaseTodayStatsUseCase := purchase.NewTodayStatsUseCase(purchaseRepo)

	// Create sale use cases
	createSaleUseCase := sale.NewCreateSaleUseCase(saleRepo, buyerRepo, productTypeRepo)
	listSalesUseCase := sale.NewListSalesUseCase(saleRepo)
	getSaleUseCase := sale.NewGetSaleUseCase(saleRepo)
	updateSaleUseCase := sale.NewUpdateSaleUseCase(saleRepo)
	deleteSaleUseCase := sale.NewDeleteSaleUseCase(saleRepo)
	saleTodayStatsUseCase := sale.NewTodayStatsUseCase(saleRepo)

	// Create expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	getExpenseUseCase := expense.NewGetExpenseUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)
	expenseCategoryStatsUseCase := expense.NewCategoryStatsUseCase(expenseRepo)
	expenseTodayStatsUseCase := expense.NewTodayStatsUseCase(expenseRepo)

	// Create analytics use cases
	dashboardSummaryUseCase := analytics.NewDashboardSummaryUseCase(purchaseRepo, saleRepo, expenseRepo, buyerRepo, paymentRepo)
	monthlyStatsUseCase := analytics.NewMonthlyStatsUseCase(purchaseRepo, saleRepo, expenseRepo)
	productSalesUseCase := analytics.NewProductSalesUseCase(saleRepo)
	topBuyersUseCase := analytics.NewTopBuyersUseCase(buyerRepo, saleRepo, paymentRepo)
	fullReportUseCase := analytics.NewFullReportUseCase(monthlyStatsUseCase, productSalesUseCase, topBuyersUseCase)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		loginUseCase,
		getMeUseCase,
		changePasswordUseCase,
	)

	buyerController := controller.NewBuyerController(
		createBuyerUseCase,
		listBuyersUseCase,
		getBuyerUseCase,
		updateBuyerUseCase,
		deleteBuyerUseCase,
		getLedgerUseCase,
		addPaymentUseCase,
		listPaymentsUseCase,
	)

	productTypeController := controller.NewProductTypeController(
		createProductTypeUseCase,
		listProductTypesUseCase,
		getProductTypeUseCase,
		updateProductTypeUseCase,
		deleteProductTypeUseCase,
	)

	purchaseController := controller.NewPurchaseController(
		createPurchaseUseCase,
		listPurchasesUseCase,
		getPurchaseUseCase,
		updatePurchaseUseCase,
		deletePurchaseUseCase,
		purchaseTodayStatsUseCase,
	)

	saleController := controller.NewSaleController(
		createSaleUseCase,
		listSalesUseCase,
		getSaleUseCase,
		updateSaleUseCase,
		deleteSaleUseCase,
		saleTodayStatsUseCase,
	)

	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		listExpensesUseCase,
		getExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
		expenseCategoryStatsUseCase,
		expenseTodayStatsUseCase,
	)

	analyticsController := controller.NewAnalyticsController(
		dashboardSummaryUseCase,
		monthlyStatsUseCase,
		productSalesUseCase,
		topBuyersUseCase,
		fullReportUseCase,
	)

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
		buyerController,
		productTypeController,
		purchaseController,
		saleController,
		expenseController,
		analyticsController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:          cfg,
		DB:              db,
		Router:          r,
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// SeedAdminUser creates the bootstrap admin account when no user with the
// configured email exists yet.
func (i *Injector) SeedAdminUser(ctx context.Context) error {
	existing, err := i.userRepo.FindByEmail(ctx, i.Config.Admin.Email)
	if err != nil && !errors.Is(err, domainerror.ErrUserNotFound) {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}
	if existing != nil {
		return nil
	}

	hashed, err := i.passwordService.HashPassword(i.Config.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := entity.NewUser(i.Config.Admin.Email, i.Config.Admin.FullName, hashed, true)
	if err := i.userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	slog.Info("Admin user created", "email", admin.Email)
	return nil
}
