// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scraptrade/backend/internal/domain/entity"
)

// ExpenseFilter holds list filters for expenses.
type ExpenseFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  *entity.ExpenseCategory
	Skip      int
	// Limit of 0 means no limit.
	Limit int
}

// ExpenseCategoryTotal is one aggregated row of the by-category report.
type ExpenseCategoryTotal struct {
	Category entity.ExpenseCategory
	Total    decimal.Decimal
}

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindAll retrieves expenses matching the filter, ordered by date descending.
	FindAll(ctx context.Context, filter ExpenseFilter) ([]*entity.Expense, error)

	// Update updates an existing expense in the database.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// SumAmount sums expense amounts over the inclusive date range.
	// Nil bounds mean unbounded.
	SumAmount(ctx context.Context, startDate, endDate *time.Time) (decimal.Decimal, error)

	// TotalsByCategory sums expense amounts per category over the inclusive
	// date range.
	TotalsByCategory(ctx context.Context, startDate, endDate *time.Time) ([]ExpenseCategoryTotal, error)

	// FindTransportForPurchase locates the Transport expense derived from a
	// purchase, matched by date plus a description containing
	// "purchase from {sellerName}". Returns nil when no match exists.
	FindTransportForPurchase(ctx context.Context, date time.Time, sellerName string) (*entity.Expense, error)
}
