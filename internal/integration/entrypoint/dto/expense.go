package dto

import (
	"time"

	"github.com/scraptrade/backend/internal/application/usecase/expense"
	"github.com/scraptrade/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for recording an expense.
type CreateExpenseRequest struct {
	Date        string  `json:"date" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description,omitempty"`
}

// UpdateExpenseRequest represents the request body for updating an expense.
type UpdateExpenseRequest struct {
	Date        *string  `json:"date,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Amount      *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Description *string  `json:"description,omitempty"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Category    string    `json:"category"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ExpenseCategoryTotalResponse is one row of the by-category report.
type ExpenseCategoryTotalResponse struct {
	Category string `json:"category"`
	Total    string `json:"total"`
}

// ExpenseCategoryStatsResponse represents the by-category expense report.
type ExpenseCategoryStatsResponse struct {
	Categories []ExpenseCategoryTotalResponse `json:"categories"`
	Total      string                         `json:"total"`
}

// TodayExpenseStatsResponse represents today's expense totals.
type TodayExpenseStatsResponse struct {
	Date        string `json:"date"`
	TotalAmount string `json:"total_amount"`
}

// ToExpenseResponse converts a domain Expense entity to its DTO.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID.String(),
		Date:        e.Date.Format("2006-01-02"),
		Category:    string(e.Category),
		Amount:      e.Amount.String(),
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToExpenseListResponse converts expenses to a list response.
func ToExpenseListResponse(expenses []*entity.Expense) ExpenseListResponse {
	out := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		out[i] = ToExpenseResponse(e)
	}
	return ExpenseListResponse{Expenses: out}
}

// ToExpenseCategoryStatsResponse converts the by-category report to its DTO.
func ToExpenseCategoryStatsResponse(output *expense.CategoryStatsOutput) ExpenseCategoryStatsResponse {
	categories := make([]ExpenseCategoryTotalResponse, len(output.Categories))
	for i, row := range output.Categories {
		categories[i] = ExpenseCategoryTotalResponse{
			Category: string(row.Category),
			Total:    row.Total.String(),
		}
	}
	return ExpenseCategoryStatsResponse{
		Categories: categories,
		Total:      output.Total.String(),
	}
}
