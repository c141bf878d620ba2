// Package entity defines the core business entities for the domain layer.
package entity

import "testing"

func TestIsValidExpenseCategory(t *testing.T) {
	for _, category := range ExpenseCategories {
		if !IsValidExpenseCategory(category) {
			t.Errorf("expected %q to be valid", category)
		}
	}

	t.Run("rejects unknown categories", func(t *testing.T) {
		if IsValidExpenseCategory("Snacks") {
			t.Error("expected Snacks to be invalid")
		}
	})

	t.Run("is case sensitive", func(t *testing.T) {
		if IsValidExpenseCategory("rent") {
			t.Error("expected lowercase rent to be invalid")
		}
	})
}

func TestTransportExpenseDescription(t *testing.T) {
	t.Run("includes the transport service when set", func(t *testing.T) {
		got := TransportExpenseDescription("Kumar Scrap", "Sharma Transport")
		expected := "Transport cost for purchase from Kumar Scrap (Sharma Transport)"
		if got != expected {
			t.Errorf("expected %q, got %q", expected, got)
		}
	})

	t.Run("omits the parenthetical without a service", func(t *testing.T) {
		got := TransportExpenseDescription("Kumar Scrap", "")
		expected := "Transport cost for purchase from Kumar Scrap"
		if got != expected {
			t.Errorf("expected %q, got %q", expected, got)
		}
	})
}
