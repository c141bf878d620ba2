// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestNewSaleItem(t *testing.T) {
	saleID := uuid.New()
	productTypeID := uuid.New()

	t.Run("derives the line total", func(t *testing.T) {
		item := NewSaleItem(saleID, productTypeID, 10, "kg", decimal.NewFromInt(50))
		if !item.TotalPrice.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected total 500, got %s", item.TotalPrice)
		}
	})

	t.Run("defaults the unit", func(t *testing.T) {
		item := NewSaleItem(saleID, productTypeID, 10, "", decimal.NewFromInt(50))
		if item.Unit != DefaultUnit {
			t.Errorf("expected unit %q, got %q", DefaultUnit, item.Unit)
		}
	})
}

func TestSaleSetItems(t *testing.T) {
	buyerID := uuid.New()
	productTypeID := uuid.New()
	sale := NewSale(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), buyerID, PaymentTypeCredit, decimal.Zero, "")

	t.Run("total starts at zero", func(t *testing.T) {
		if !sale.TotalAmount.Equal(decimal.Zero) {
			t.Errorf("expected zero total, got %s", sale.TotalAmount)
		}
	})

	t.Run("sums line item totals", func(t *testing.T) {
		items := []*SaleItem{
			NewSaleItem(sale.ID, productTypeID, 10, "kg", decimal.NewFromInt(50)),
			NewSaleItem(sale.ID, productTypeID, 3, "kg", decimal.RequireFromString("33.50")),
		}

		sale.SetItems(items)

		if !sale.TotalAmount.Equal(decimal.RequireFromString("600.50")) {
			t.Errorf("expected total 600.50, got %s", sale.TotalAmount)
		}
		if len(sale.Items) != 2 {
			t.Errorf("expected 2 items, got %d", len(sale.Items))
		}
	})

	t.Run("replacing items recomputes the total", func(t *testing.T) {
		sale.SetItems([]*SaleItem{
			NewSaleItem(sale.ID, productTypeID, 1, "kg", decimal.NewFromInt(100)),
		})

		if !sale.TotalAmount.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected total 100, got %s", sale.TotalAmount)
		}
	})
}
