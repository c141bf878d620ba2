package analytics

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/scraptrade/backend/internal/application/adapter"
	"github.com/scraptrade/backend/internal/domain/entity"
	"github.com/scraptrade/backend/internal/integration/persistence"
	"github.com/scraptrade/backend/internal/integration/persistence/model"
)

type analyticsFixture struct {
	db              *gorm.DB
	purchaseRepo    adapter.PurchaseRepository
	saleRepo        adapter.SaleRepository
	expenseRepo     adapter.ExpenseRepository
	buyerRepo       adapter.BuyerRepository
	paymentRepo     adapter.PaymentRepository
	productTypeRepo adapter.ProductTypeRepository
}

func newAnalyticsFixture(t *testing.T) *analyticsFixture {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	conn.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{Conn: conn}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	if err := db.AutoMigrate(
		&model.BuyerModel{},
		&model.ProductTypeModel{},
		&model.PurchaseModel{},
		&model.SaleModel{},
		&model.SaleItemModel{},
		&model.PaymentModel{},
		&model.ExpenseModel{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return &analyticsFixture{
		db:              db,
		purchaseRepo:    persistence.NewPurchaseRepository(db),
		saleRepo:        persistence.NewSaleRepository(db),
		expenseRepo:     persistence.NewExpenseRepository(db),
		buyerRepo:       persistence.NewBuyerRepository(db),
		paymentRepo:     persistence.NewPaymentRepository(db),
		productTypeRepo: persistence.NewProductTypeRepository(db),
	}
}

func (f *analyticsFixture) createBuyer(t *testing.T, name string, openingBalance decimal.Decimal) *entity.Buyer {
	t.Helper()

	buyer := entity.NewBuyer(name, "", "", "", openingBalance)
	if err := f.buyerRepo.Create(context.Background(), buyer); err != nil {
		t.Fatalf("failed to create buyer: %v", err)
	}
	return buyer
}

func (f *analyticsFixture) createPurchase(t *testing.T, date time.Time, quantity float64, price decimal.Decimal) {
	t.Helper()

	purchase := entity.NewPurchase(date, "Kumar Scrap", "", "", "Iron", "", decimal.Zero, quantity, "kg", price, "")
	if err := f.purchaseRepo.Create(context.Background(), purchase, nil); err != nil {
		t.Fatalf("failed to create purchase: %v", err)
	}
}

func (f *analyticsFixture) createSale(t *testing.T, buyer *entity.Buyer, productType *entity.ProductType, date time.Time, quantity float64, price decimal.Decimal) {
	t.Helper()

	sale := entity.NewSale(date, buyer.ID, entity.PaymentTypeCredit, decimal.Zero, "")
	sale.SetItems([]*entity.SaleItem{
		entity.NewSaleItem(sale.ID, productType.ID, quantity, "kg", price),
	})
	if err := f.saleRepo.Create(context.Background(), sale, nil); err != nil {
		t.Fatalf("failed to create sale: %v", err)
	}
}

func (f *analyticsFixture) createProductType(t *testing.T, name string) *entity.ProductType {
	t.Helper()

	productType := entity.NewProductType(name, "")
	if err := f.productTypeRepo.Create(context.Background(), productType); err != nil {
		t.Fatalf("failed to create product type: %v", err)
	}
	return productType
}

func (f *analyticsFixture) createExpense(t *testing.T, date time.Time, amount decimal.Decimal) {
	t.Helper()

	expense := entity.NewExpense(date, entity.ExpenseCategoryRent, amount, "Shop rent")
	if err := f.expenseRepo.Create(context.Background(), expense); err != nil {
		t.Fatalf("failed to create expense: %v", err)
	}
}

func TestMonthlyStats(t *testing.T) {
	ctx := context.Background()
	today := entity.NormalizeDate(time.Now())

	t.Run("months without activity appear with zero values", func(t *testing.T) {
		f := newAnalyticsFixture(t)
		useCase := NewMonthlyStatsUseCase(f.purchaseRepo, f.saleRepo, f.expenseRepo)

		output, err := useCase.Execute(ctx, MonthlyStatsInput{Months: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Stats) != 3 {
			t.Fatalf("expected 3 months, got %d", len(output.Stats))
		}
		for _, stat := range output.Stats {
			if !stat.Purchases.Equal(decimal.Zero) || !stat.Sales.Equal(decimal.Zero) || !stat.Expenses.Equal(decimal.Zero) {
				t.Errorf("expected zero values for %s", stat.Month)
			}
		}
	})

	t.Run("the current month carries its totals and profit", func(t *testing.T) {
		f := newAnalyticsFixture(t)
		buyer := f.createBuyer(t, "Patel Metals", decimal.Zero)
		productType := f.createProductType(t, "Copper Wire")
		f.createPurchase(t, today, 100, decimal.NewFromInt(25))
		f.createSale(t, buyer, productType, today, 100, decimal.NewFromInt(45))
		f.createExpense(t, today, decimal.NewFromInt(1000))
		useCase := NewMonthlyStatsUseCase(f.purchaseRepo, f.saleRepo, f.expenseRepo)

		output, err := useCase.Execute(ctx, MonthlyStatsInput{Months: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Stats) != 2 {
			t.Fatalf("expected 2 months, got %d", len(output.Stats))
		}
		current := output.Stats[1]
		if current.Month != today.Format("Jan 2006") {
			t.Errorf("expected last month to be %s, got %s", today.Format("Jan 2006"), current.Month)
		}
		if !current.Purchases.Equal(decimal.NewFromInt(2500)) {
			t.Errorf("expected purchases 2500, got %s", current.Purchases)
		}
		if !current.Sales.Equal(decimal.NewFromInt(4500)) {
			t.Errorf("expected sales 4500, got %s", current.Sales)
		}
		if !current.Expenses.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected expenses 1000, got %s", current.Expenses)
		}
		if !current.Profit.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected profit 1000, got %s", current.Profit)
		}
	})

	t.Run("clamps the month count to its bounds", func(t *testing.T) {
		f := newAnalyticsFixture(t)
		useCase := NewMonthlyStatsUseCase(f.purchaseRepo, f.saleRepo, f.expenseRepo)

		output, err := useCase.Execute(ctx, MonthlyStatsInput{Months: 0})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Stats) != defaultMonths {
			t.Errorf("expected %d months by default, got %d", defaultMonths, len(output.Stats))
		}

		output, err = useCase.Execute(ctx, MonthlyStatsInput{Months: 100})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Stats) != maxMonths {
			t.Errorf("expected cap of %d months, got %d", maxMonths, len(output.Stats))
		}
	})
}

func TestTopBuyers(t *testing.T) {
	ctx := context.Background()

	t.Run("ranks by outstanding balance and skips settled buyers", func(t *testing.T) {
		f := newAnalyticsFixture(t)
		f.createBuyer(t, "Patel Metals", decimal.NewFromInt(900))
		f.createBuyer(t, "Singh Traders", decimal.NewFromInt(300))
		f.createBuyer(t, "Verma Traders", decimal.Zero)
		useCase := NewTopBuyersUseCase(f.buyerRepo, f.saleRepo, f.paymentRepo)

		output, err := useCase.Execute(ctx, TopBuyersInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Buyers) != 2 {
			t.Fatalf("expected 2 ranked buyers, got %d", len(output.Buyers))
		}
		if output.Buyers[0].BuyerName != "Patel Metals" {
			t.Errorf("expected Patel Metals first, got %s", output.Buyers[0].BuyerName)
		}
		if !output.Buyers[0].OutstandingAmount.Equal(decimal.NewFromInt(900)) {
			t.Errorf("expected 900 outstanding, got %s", output.Buyers[0].OutstandingAmount)
		}
		if output.Buyers[1].BuyerName != "Singh Traders" {
			t.Errorf("expected Singh Traders second, got %s", output.Buyers[1].BuyerName)
		}
	})

	t.Run("sales and payments shift the ranking", func(t *testing.T) {
		f := newAnalyticsFixture(t)
		patel := f.createBuyer(t, "Patel Metals", decimal.Zero)
		f.createBuyer(t, "Singh Traders", decimal.NewFromInt(100))
		productType := f.createProductType(t, "Copper Wire")
		date := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
		f.createSale(t, patel, productType, date, 10, decimal.NewFromInt(50))

		payment := entity.NewPayment(patel.ID, date, decimal.NewFromInt(200), "", "")
		if err := f.paymentRepo.Create(ctx, payment); err != nil {
			t.Fatalf("failed to create payment: %v", err)
		}
		useCase := NewTopBuyersUseCase(f.buyerRepo, f.saleRepo, f.paymentRepo)

		output, err := useCase.Execute(ctx, TopBuyersInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Buyers) != 2 {
			t.Fatalf("expected 2 ranked buyers, got %d", len(output.Buyers))
		}
		if output.Buyers[0].BuyerName != "Patel Metals" {
			t.Errorf("expected Patel Metals first, got %s", output.Buyers[0].BuyerName)
		}
		if !output.Buyers[0].OutstandingAmount.Equal(decimal.NewFromInt(300)) {
			t.Errorf("expected 300 outstanding, got %s", output.Buyers[0].OutstandingAmount)
		}
	})

	t.Run("applies the requested limit", func(t *testing.T) {
		f := newAnalyticsFixture(t)
		f.createBuyer(t, "Patel Metals", decimal.NewFromInt(900))
		f.createBuyer(t, "Singh Traders", decimal.NewFromInt(300))
		f.createBuyer(t, "Verma Traders", decimal.NewFromInt(100))
		useCase := NewTopBuyersUseCase(f.buyerRepo, f.saleRepo, f.paymentRepo)

		output, err := useCase.Execute(ctx, TopBuyersInput{Limit: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Buyers) != 2 {
			t.Errorf("expected 2 buyers, got %d", len(output.Buyers))
		}
	})
}

func TestDashboardSummary(t *testing.T) {
	ctx := context.Background()
	today := entity.NormalizeDate(time.Now())

	f := newAnalyticsFixture(t)
	buyer := f.createBuyer(t, "Patel Metals", decimal.Zero)
	productType := f.createProductType(t, "Copper Wire")
	f.createPurchase(t, today, 100, decimal.NewFromInt(25))
	f.createSale(t, buyer, productType, today, 100, decimal.NewFromInt(45))
	f.createExpense(t, today, decimal.NewFromInt(1000))
	useCase := NewDashboardSummaryUseCase(f.purchaseRepo, f.saleRepo, f.expenseRepo, f.buyerRepo, f.paymentRepo)

	output, err := useCase.Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.TotalPurchases.Equal(decimal.NewFromInt(2500)) {
		t.Errorf("expected total purchases 2500, got %s", output.TotalPurchases)
	}
	if !output.TotalSales.Equal(decimal.NewFromInt(4500)) {
		t.Errorf("expected total sales 4500, got %s", output.TotalSales)
	}
	if !output.TotalExpenses.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected total expenses 1000, got %s", output.TotalExpenses)
	}
	if !output.TotalProfit.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected total profit 1000, got %s", output.TotalProfit)
	}
	if !output.TotalReceivable.Equal(decimal.NewFromInt(4500)) {
		t.Errorf("expected total receivable 4500, got %s", output.TotalReceivable)
	}
	if !output.TodaySales.Equal(decimal.NewFromInt(4500)) {
		t.Errorf("expected today sales 4500, got %s", output.TodaySales)
	}

	t.Run("product sales aggregates per product", func(t *testing.T) {
		productSales := NewProductSalesUseCase(f.saleRepo)
		output, err := productSales.Execute(ctx, ProductSalesInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Products) != 1 {
			t.Fatalf("expected 1 product row, got %d", len(output.Products))
		}
		row := output.Products[0]
		if row.ProductName != "Copper Wire" {
			t.Errorf("expected Copper Wire, got %s", row.ProductName)
		}
		if row.TotalQuantity != 100 {
			t.Errorf("expected quantity 100, got %v", row.TotalQuantity)
		}
		if !row.TotalAmount.Equal(decimal.NewFromInt(4500)) {
			t.Errorf("expected amount 4500, got %s", row.TotalAmount)
		}
	})
}
