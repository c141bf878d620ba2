// Package sale contains sale use cases, including the automatic payment
// recorded when money changes hands at sale time.
package sale

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

type saleFixture struct {
	db              *gorm.DB
	saleRepo        adapter.SaleRepository
	buyerRepo       adapter.BuyerRepository
	productTypeRepo adapter.ProductTypeRepository
	paymentRepo     adapter.PaymentRepository
	create          *CreateSaleUseCase
	buyer           *entity.Buyer
	productType     *entity.ProductType
}

func newSaleFixture(t *testing.T) *saleFixture {
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

	ctx := context.Background()
	saleRepo := persistence.NewSaleRepository(db)
	buyerRepo := persistence.NewBuyerRepository(db)
	productTypeRepo := persistence.NewProductTypeRepository(db)
	paymentRepo := persistence.NewPaymentRepository(db)

	buyer := entity.NewBuyer("Patel Metals", "", "", "", decimal.Zero)
	if err := buyerRepo.Create(ctx, buyer); err != nil {
		t.Fatalf("failed to create buyer: %v", err)
	}
	productType := entity.NewProductType("Copper Wire", "")
	if err := productTypeRepo.Create(ctx, productType); err != nil {
		t.Fatalf("failed to create product type: %v", err)
	}

	return &saleFixture{
		db:              db,
		saleRepo:        saleRepo,
		buyerRepo:       buyerRepo,
		productTypeRepo: productTypeRepo,
		paymentRepo:     paymentRepo,
		create:          NewCreateSaleUseCase(saleRepo, buyerRepo, productTypeRepo),
		buyer:           buyer,
		productType:     productType,
	}
}

func (f *saleFixture) saleInput(paymentType entity.PaymentType, receivedNow decimal.Decimal) CreateSaleInput {
	return CreateSaleInput{
		Date:               time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		BuyerID:            f.buyer.ID,
		PaymentType:        paymentType,
		PaymentReceivedNow: receivedNow,
		Items: []CreateSaleItemInput{
			{ProductTypeID: f.productType.ID, Quantity: 10, Unit: "kg", PricePerUnit: decimal.NewFromInt(50)},
		},
	}
}

func TestCreateSale(t *testing.T) {
	ctx := context.Background()

	t.Run("credit sale stores the derived total and no payment", func(t *testing.T) {
		f := newSaleFixture(t)

		output, err := f.create.Execute(ctx, f.saleInput(entity.PaymentTypeCredit, decimal.Zero))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Sale.TotalAmount.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected total 500, got %s", output.Sale.TotalAmount)
		}
		if len(output.Sale.Items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(output.Sale.Items))
		}
		if !output.Sale.Items[0].TotalPrice.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected item total 500, got %s", output.Sale.Items[0].TotalPrice)
		}

		payments, err := f.paymentRepo.FindByBuyer(ctx, f.buyer.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(payments) != 0 {
			t.Errorf("expected no payments, got %d", len(payments))
		}
	})

	t.Run("money received at sale time becomes a payment", func(t *testing.T) {
		f := newSaleFixture(t)

		_, err := f.create.Execute(ctx, f.saleInput(entity.PaymentTypePartial, decimal.NewFromInt(200)))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		payments, err := f.paymentRepo.FindByBuyer(ctx, f.buyer.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(payments) != 1 {
			t.Fatalf("expected 1 payment, got %d", len(payments))
		}
		if !payments[0].Amount.Equal(decimal.NewFromInt(200)) {
			t.Errorf("expected payment 200, got %s", payments[0].Amount)
		}
		if payments[0].PaymentMethod != entity.DefaultPaymentMethod {
			t.Errorf("expected method %s, got %s", entity.DefaultPaymentMethod, payments[0].PaymentMethod)
		}
	})

	t.Run("rejects an empty item list", func(t *testing.T) {
		f := newSaleFixture(t)
		input := f.saleInput(entity.PaymentTypeCredit, decimal.Zero)
		input.Items = nil

		_, err := f.create.Execute(ctx, input)

		var saleErr *domainerror.SaleError
		if !errors.As(err, &saleErr) {
			t.Fatalf("expected SaleError, got %v", err)
		}
		if saleErr.Code != domainerror.ErrCodeSaleItemsRequired {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeSaleItemsRequired, saleErr.Code)
		}
	})

	t.Run("rejects an unknown payment type", func(t *testing.T) {
		f := newSaleFixture(t)

		_, err := f.create.Execute(ctx, f.saleInput("Instalment", decimal.Zero))

		var saleErr *domainerror.SaleError
		if !errors.As(err, &saleErr) {
			t.Fatalf("expected SaleError, got %v", err)
		}
		if saleErr.Code != domainerror.ErrCodeInvalidPaymentType {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidPaymentType, saleErr.Code)
		}
	})

	t.Run("rejects a non-positive item quantity", func(t *testing.T) {
		f := newSaleFixture(t)
		input := f.saleInput(entity.PaymentTypeCredit, decimal.Zero)
		input.Items[0].Quantity = 0

		_, err := f.create.Execute(ctx, input)

		var saleErr *domainerror.SaleError
		if !errors.As(err, &saleErr) {
			t.Fatalf("expected SaleError, got %v", err)
		}
		if saleErr.Code != domainerror.ErrCodeMissingSaleFields {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeMissingSaleFields, saleErr.Code)
		}
	})

	t.Run("rejects an unknown buyer", func(t *testing.T) {
		f := newSaleFixture(t)
		input := f.saleInput(entity.PaymentTypeCredit, decimal.Zero)
		input.BuyerID = uuid.New()

		_, err := f.create.Execute(ctx, input)

		var buyerErr *domainerror.BuyerError
		if !errors.As(err, &buyerErr) {
			t.Fatalf("expected BuyerError, got %v", err)
		}
		if buyerErr.Code != domainerror.ErrCodeBuyerNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeBuyerNotFound, buyerErr.Code)
		}
	})

	t.Run("rejects an unknown product type", func(t *testing.T) {
		f := newSaleFixture(t)
		input := f.saleInput(entity.PaymentTypeCredit, decimal.Zero)
		input.Items[0].ProductTypeID = uuid.New()

		_, err := f.create.Execute(ctx, input)

		var productTypeErr *domainerror.ProductTypeError
		if !errors.As(err, &productTypeErr) {
			t.Fatalf("expected ProductTypeError, got %v", err)
		}
		if productTypeErr.Code != domainerror.ErrCodeProductTypeNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeProductTypeNotFound, productTypeErr.Code)
		}
	})
}
