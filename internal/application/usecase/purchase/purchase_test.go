// Package purchase contains purchase use cases, including the automatic
// transport expense derivation.
package purchase

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/scraptrade/backend/internal/application/adapter"
	"github.com/scraptrade/backend/internal/domain/entity"
	domainerror "github.com/scraptrade/backend/internal/domain/error"
	"github.com/scraptrade/backend/internal/integration/persistence"
	"github.com/scraptrade/backend/internal/integration/persistence/model"
)

type purchaseFixture struct {
	db           *gorm.DB
	purchaseRepo adapter.PurchaseRepository
	expenseRepo  adapter.ExpenseRepository
	create       *CreatePurchaseUseCase
	update       *UpdatePurchaseUseCase
	remove       *DeletePurchaseUseCase
}

func newPurchaseFixture(t *testing.T) *purchaseFixture {
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
	if err := db.AutoMigrate(&model.PurchaseModel{}, &model.ExpenseModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	purchaseRepo := persistence.NewPurchaseRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)

	return &purchaseFixture{
		db:           db,
		purchaseRepo: purchaseRepo,
		expenseRepo:  expenseRepo,
		create:       NewCreatePurchaseUseCase(purchaseRepo),
		update:       NewUpdatePurchaseUseCase(purchaseRepo, expenseRepo),
		remove:       NewDeletePurchaseUseCase(purchaseRepo, expenseRepo),
	}
}

func (f *purchaseFixture) expenseCount(t *testing.T) int64 {
	t.Helper()

	var count int64
	if err := f.db.Model(&model.ExpenseModel{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count expenses: %v", err)
	}
	return count
}

func baseInput() CreatePurchaseInput {
	return CreatePurchaseInput{
		Date:         time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		SellerName:   "Kumar Scrap",
		ScrapType:    "Iron",
		Quantity:     100,
		PricePerUnit: decimal.NewFromInt(25),
	}
}

func TestCreatePurchase(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the derived total without transport", func(t *testing.T) {
		f := newPurchaseFixture(t)

		output, err := f.create.Execute(ctx, baseInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Purchase.TotalPurchaseCost.Equal(decimal.NewFromInt(2500)) {
			t.Errorf("expected total 2500, got %s", output.Purchase.TotalPurchaseCost)
		}
		if count := f.expenseCount(t); count != 0 {
			t.Errorf("expected no expenses, got %d", count)
		}
	})

	t.Run("a positive transport cost creates the linked expense", func(t *testing.T) {
		f := newPurchaseFixture(t)
		input := baseInput()
		input.TransportService = "Sharma Transport"
		input.TransportCost = decimal.NewFromInt(150)

		output, err := f.create.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Purchase.TotalPurchaseCost.Equal(decimal.NewFromInt(2650)) {
			t.Errorf("expected total 2650, got %s", output.Purchase.TotalPurchaseCost)
		}

		expense, err := f.expenseRepo.FindTransportForPurchase(ctx, output.Purchase.Date, output.Purchase.SellerName)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if expense == nil {
			t.Fatal("expected a transport expense")
		}
		if expense.Category != entity.ExpenseCategoryTransport {
			t.Errorf("expected Transport category, got %s", expense.Category)
		}
		if !expense.Amount.Equal(decimal.NewFromInt(150)) {
			t.Errorf("expected amount 150, got %s", expense.Amount)
		}
		expectedDescription := "Transport cost for purchase from Kumar Scrap (Sharma Transport)"
		if expense.Description != expectedDescription {
			t.Errorf("expected description %q, got %q", expectedDescription, expense.Description)
		}
	})

	t.Run("rejects a missing seller name", func(t *testing.T) {
		f := newPurchaseFixture(t)
		input := baseInput()
		input.SellerName = "   "

		_, err := f.create.Execute(ctx, input)

		var purchaseErr *domainerror.PurchaseError
		if !errors.As(err, &purchaseErr) {
			t.Fatalf("expected PurchaseError, got %v", err)
		}
		if purchaseErr.Code != domainerror.ErrCodeMissingPurchaseFields {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeMissingPurchaseFields, purchaseErr.Code)
		}
	})

	t.Run("rejects a non-positive quantity", func(t *testing.T) {
		f := newPurchaseFixture(t)
		input := baseInput()
		input.Quantity = 0

		_, err := f.create.Execute(ctx, input)

		var purchaseErr *domainerror.PurchaseError
		if !errors.As(err, &purchaseErr) {
			t.Fatalf("expected PurchaseError, got %v", err)
		}
		if purchaseErr.Code != domainerror.ErrCodeInvalidPurchaseQuantity {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidPurchaseQuantity, purchaseErr.Code)
		}
	})
}

func TestUpdatePurchase(t *testing.T) {
	ctx := context.Background()

	t.Run("raising the transport cost updates the linked expense", func(t *testing.T) {
		f := newPurchaseFixture(t)
		input := baseInput()
		input.TransportCost = decimal.NewFromInt(150)
		created, err := f.create.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		newCost := decimal.NewFromInt(200)
		updated, err := f.update.Execute(ctx, UpdatePurchaseInput{ID: created.Purchase.ID, TransportCost: &newCost})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !updated.Purchase.TotalPurchaseCost.Equal(decimal.NewFromInt(2700)) {
			t.Errorf("expected total 2700, got %s", updated.Purchase.TotalPurchaseCost)
		}
		expense, err := f.expenseRepo.FindTransportForPurchase(ctx, updated.Purchase.Date, updated.Purchase.SellerName)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if expense == nil {
			t.Fatal("expected the transport expense to survive")
		}
		if !expense.Amount.Equal(newCost) {
			t.Errorf("expected amount 200, got %s", expense.Amount)
		}
		if count := f.expenseCount(t); count != 1 {
			t.Errorf("expected 1 expense, got %d", count)
		}
	})

	t.Run("zeroing the transport cost deletes the linked expense", func(t *testing.T) {
		f := newPurchaseFixture(t)
		input := baseInput()
		input.TransportCost = decimal.NewFromInt(150)
		created, err := f.create.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		zero := decimal.Zero
		if _, err := f.update.Execute(ctx, UpdatePurchaseInput{ID: created.Purchase.ID, TransportCost: &zero}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if count := f.expenseCount(t); count != 0 {
			t.Errorf("expected no expenses, got %d", count)
		}
	})

	t.Run("adding a transport cost creates the missing expense", func(t *testing.T) {
		f := newPurchaseFixture(t)
		created, err := f.create.Execute(ctx, baseInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cost := decimal.NewFromInt(120)
		if _, err := f.update.Execute(ctx, UpdatePurchaseInput{ID: created.Purchase.ID, TransportCost: &cost}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expense, err := f.expenseRepo.FindTransportForPurchase(ctx, created.Purchase.Date, created.Purchase.SellerName)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if expense == nil {
			t.Fatal("expected a transport expense after the update")
		}
		if !expense.Amount.Equal(cost) {
			t.Errorf("expected amount 120, got %s", expense.Amount)
		}
	})

	t.Run("a date-only update leaves the expense untouched", func(t *testing.T) {
		f := newPurchaseFixture(t)
		input := baseInput()
		input.TransportCost = decimal.NewFromInt(150)
		created, err := f.create.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		newDate := time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC)
		if _, err := f.update.Execute(ctx, UpdatePurchaseInput{ID: created.Purchase.ID, Date: &newDate}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if count := f.expenseCount(t); count != 1 {
			t.Errorf("expected 1 expense, got %d", count)
		}
		// The expense keeps the original purchase date.
		expense, err := f.expenseRepo.FindTransportForPurchase(ctx, created.Purchase.Date, created.Purchase.SellerName)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if expense == nil {
			t.Fatal("expected the transport expense to remain under its original date")
		}
		if !expense.Amount.Equal(decimal.NewFromInt(150)) {
			t.Errorf("expected amount 150, got %s", expense.Amount)
		}
	})

	t.Run("a quantity-only update re-derives the total and skips the expense", func(t *testing.T) {
		f := newPurchaseFixture(t)
		input := baseInput()
		input.TransportCost = decimal.NewFromInt(150)
		created, err := f.create.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		newQuantity := 200.0
		updated, err := f.update.Execute(ctx, UpdatePurchaseInput{ID: created.Purchase.ID, Quantity: &newQuantity})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !updated.Purchase.TotalPurchaseCost.Equal(decimal.NewFromInt(5150)) {
			t.Errorf("expected total 5150, got %s", updated.Purchase.TotalPurchaseCost)
		}
		expense, err := f.expenseRepo.FindTransportForPurchase(ctx, created.Purchase.Date, created.Purchase.SellerName)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if expense == nil {
			t.Fatal("expected the transport expense to remain")
		}
		if !expense.Amount.Equal(decimal.NewFromInt(150)) {
			t.Errorf("expected amount 150, got %s", expense.Amount)
		}
		expectedDescription := "Transport cost for purchase from Kumar Scrap"
		if expense.Description != expectedDescription {
			t.Errorf("expected description %q, got %q", expectedDescription, expense.Description)
		}
	})

	t.Run("changing date and seller with the transport cost orphans the old expense", func(t *testing.T) {
		f := newPurchaseFixture(t)
		input := baseInput()
		input.TransportCost = decimal.NewFromInt(150)
		created, err := f.create.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		newDate := time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC)
		newSeller := "Verma Traders"
		newCost := decimal.NewFromInt(180)
		if _, err := f.update.Execute(ctx, UpdatePurchaseInput{
			ID:            created.Purchase.ID,
			Date:          &newDate,
			SellerName:    &newSeller,
			TransportCost: &newCost,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// The old expense no longer matches the lookup, so a second one is
		// created against the new date and seller.
		if count := f.expenseCount(t); count != 2 {
			t.Errorf("expected 2 expenses, got %d", count)
		}
		expense, err := f.expenseRepo.FindTransportForPurchase(ctx, newDate, newSeller)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if expense == nil {
			t.Fatal("expected a fresh transport expense for the new seller")
		}
		if !expense.Amount.Equal(newCost) {
			t.Errorf("expected amount 180, got %s", expense.Amount)
		}
	})

	t.Run("unknown purchase returns a coded error", func(t *testing.T) {
		f := newPurchaseFixture(t)

		_, err := f.update.Execute(ctx, UpdatePurchaseInput{ID: uuid.New()})

		var purchaseErr *domainerror.PurchaseError
		if !errors.As(err, &purchaseErr) {
			t.Fatalf("expected PurchaseError, got %v", err)
		}
		if purchaseErr.Code != domainerror.ErrCodePurchaseNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodePurchaseNotFound, purchaseErr.Code)
		}
	})
}

func TestDeletePurchase(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the purchase and its linked expense", func(t *testing.T) {
		f := newPurchaseFixture(t)
		input := baseInput()
		input.TransportCost = decimal.NewFromInt(150)
		created, err := f.create.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := f.remove.Execute(ctx, DeletePurchaseInput{ID: created.Purchase.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := f.purchaseRepo.FindByID(ctx, created.Purchase.ID); !errors.Is(err, domainerror.ErrPurchaseNotFound) {
			t.Errorf("expected purchase to be gone, got %v", err)
		}
		if count := f.expenseCount(t); count != 0 {
			t.Errorf("expected no expenses, got %d", count)
		}
	})

	t.Run("leaves unrelated expenses alone", func(t *testing.T) {
		f := newPurchaseFixture(t)
		created, err := f.create.Execute(ctx, baseInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		rent := entity.NewExpense(created.Purchase.Date, entity.ExpenseCategoryRent, decimal.NewFromInt(5000), "Shop rent")
		if err := f.expenseRepo.Create(ctx, rent); err != nil {
			t.Fatalf("failed to create expense: %v", err)
		}

		if err := f.remove.Execute(ctx, DeletePurchaseInput{ID: created.Purchase.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if count := f.expenseCount(t); count != 1 {
			t.Errorf("expected the rent expense to remain, got %d", count)
		}
	})
}
