// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategory classifies an operating expense.
type ExpenseCategory string

const (
	ExpenseCategoryRent        ExpenseCategory = "Rent"
	ExpenseCategoryElectricity ExpenseCategory = "Electricity"
	ExpenseCategoryWater       ExpenseCategory = "Water"
	ExpenseCategoryLabour      ExpenseCategory = "Labour"
	ExpenseCategoryTransport   ExpenseCategory = "Transport"
	ExpenseCategoryTax         ExpenseCategory = "Tax"
	ExpenseCategoryOther       ExpenseCategory = "Other"
)

// ExpenseCategories lists every valid expense category.
var ExpenseCategories = []ExpenseCategory{
	ExpenseCategoryRent,
	ExpenseCategoryElectricity,
	ExpenseCategoryWater,
	ExpenseCategoryLabour,
	ExpenseCategoryTransport,
	ExpenseCategoryTax,
	ExpenseCategoryOther,
}

// IsValidExpenseCategory reports whether the category is one of the known values.
func IsValidExpenseCategory(category ExpenseCategory) bool {
	for _, c := range ExpenseCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Expense represents an operating expense. Transport-category expenses may be
// system-derived from a purchase's transport cost.
type Expense struct {
	ID          uuid.UUID
	Date        time.Time
	Category    ExpenseCategory
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(date time.Time, category ExpenseCategory, amount decimal.Decimal, description string) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:          uuid.New(),
		Date:        NormalizeDate(date),
		Category:    category,
		Amount:      amount,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// TransportExpenseDescription builds the description used for expenses derived
// from a purchase's transport cost. The "purchase from {seller}" fragment is
// also what links the expense back to its purchase, so the wording must not
// change independently of the lookup.
func TransportExpenseDescription(sellerName, transportService string) string {
	description := fmt.Sprintf("Transport cost for purchase from %s", sellerName)
	if transportService != "" {
		description += fmt.Sprintf(" (%s)", transportService)
	}
	return description
}
