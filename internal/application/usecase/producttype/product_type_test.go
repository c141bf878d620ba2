// Package producttype contains product type catalog use cases.
package producttype

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

type productTypeFixture struct {
	db              *gorm.DB
	productTypeRepo adapter.ProductTypeRepository
	buyerRepo       adapter.BuyerRepository
	saleRepo        adapter.SaleRepository
	create          *CreateProductTypeUseCase
	remove          *DeleteProductTypeUseCase
}

func newProductTypeFixture(t *testing.T) *productTypeFixture {
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
		&model.SaleModel{},
		&model.SaleItemModel{},
		&model.PaymentModel{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	productTypeRepo := persistence.NewProductTypeRepository(db)

	return &productTypeFixture{
		db:              db,
		productTypeRepo: productTypeRepo,
		buyerRepo:       persistence.NewBuyerRepository(db),
		saleRepo:        persistence.NewSaleRepository(db),
		create:          NewCreateProductTypeUseCase(productTypeRepo),
		remove:          NewDeleteProductTypeUseCase(productTypeRepo),
	}
}

func TestCreateProductType(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a product type with a trimmed name", func(t *testing.T) {
		f := newProductTypeFixture(t)

		output, err := f.create.Execute(ctx, CreateProductTypeInput{Name: "  Copper Wire  ", Description: "stripped"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.ProductType.Name != "Copper Wire" {
			t.Errorf("expected trimmed name, got %q", output.ProductType.Name)
		}
	})

	t.Run("rejects a blank name", func(t *testing.T) {
		f := newProductTypeFixture(t)

		_, err := f.create.Execute(ctx, CreateProductTypeInput{Name: "   "})

		var productTypeErr *domainerror.ProductTypeError
		if !errors.As(err, &productTypeErr) {
			t.Fatalf("expected ProductTypeError, got %v", err)
		}
		if productTypeErr.Code != domainerror.ErrCodeMissingProductFields {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeMissingProductFields, productTypeErr.Code)
		}
	})

	t.Run("rejects a duplicate name regardless of case", func(t *testing.T) {
		f := newProductTypeFixture(t)
		if _, err := f.create.Execute(ctx, CreateProductTypeInput{Name: "Copper Wire"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := f.create.Execute(ctx, CreateProductTypeInput{Name: "copper wire"})

		var productTypeErr *domainerror.ProductTypeError
		if !errors.As(err, &productTypeErr) {
			t.Fatalf("expected ProductTypeError, got %v", err)
		}
		if productTypeErr.Code != domainerror.ErrCodeProductTypeNameExists {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeProductTypeNameExists, productTypeErr.Code)
		}
	})
}

func TestDeleteProductType(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an unreferenced product type", func(t *testing.T) {
		f := newProductTypeFixture(t)
		created, err := f.create.Execute(ctx, CreateProductTypeInput{Name: "Copper Wire"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := f.remove.Execute(ctx, DeleteProductTypeInput{ID: created.ProductType.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := f.productTypeRepo.FindByID(ctx, created.ProductType.ID); !errors.Is(err, domainerror.ErrProductTypeNotFound) {
			t.Errorf("expected product type to be gone, got %v", err)
		}
	})

	t.Run("refuses while sale items reference it", func(t *testing.T) {
		f := newProductTypeFixture(t)
		created, err := f.create.Execute(ctx, CreateProductTypeInput{Name: "Copper Wire"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		buyer := entity.NewBuyer("Patel Metals", "", "", "", decimal.Zero)
		if err := f.buyerRepo.Create(ctx, buyer); err != nil {
			t.Fatalf("failed to create buyer: %v", err)
		}
		sale := entity.NewSale(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), buyer.ID, entity.PaymentTypeCredit, decimal.Zero, "")
		sale.SetItems([]*entity.SaleItem{
			entity.NewSaleItem(sale.ID, created.ProductType.ID, 5, "kg", decimal.NewFromInt(50)),
		})
		if err := f.saleRepo.Create(ctx, sale, nil); err != nil {
			t.Fatalf("failed to create sale: %v", err)
		}

		err = f.remove.Execute(ctx, DeleteProductTypeInput{ID: created.ProductType.ID})

		var productTypeErr *domainerror.ProductTypeError
		if !errors.As(err, &productTypeErr) {
			t.Fatalf("expected ProductTypeError, got %v", err)
		}
		if productTypeErr.Code != domainerror.ErrCodeProductTypeInUse {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeProductTypeInUse, productTypeErr.Code)
		}
	})

	t.Run("unknown product type returns a coded error", func(t *testing.T) {
		f := newProductTypeFixture(t)

		err := f.remove.Execute(ctx, DeleteProductTypeInput{ID: uuid.New()})

		var productTypeErr *domainerror.ProductTypeError
		if !errors.As(err, &productTypeErr) {
			t.Fatalf("expected ProductTypeError, got %v", err)
		}
		if productTypeErr.Code != domainerror.ErrCodeProductTypeNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeProductTypeNotFound, productTypeErr.Code)
		}
	})
}
