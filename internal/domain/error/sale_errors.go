// Package error defines domain-specific errors for the application.
package error

import "errors"

// Sale domain errors.
var (
	// ErrSaleNotFound is returned when a sale is not found.
	ErrSaleNotFound = errors.New("sale not found")

	// ErrSaleItemsRequired is returned when a sale is created without line items.
	ErrSaleItemsRequired = errors.New("sale requires at least one item")

	// ErrInvalidPaymentType is returned for an unknown payment type.
	ErrInvalidPaymentType = errors.New("invalid payment type")
)

// SaleErrorCode defines error codes for sale errors.
// Format: SAL-XXYYYY where XX is category and YYYY is specific error.
type SaleErrorCode string

const (
	ErrCodeSaleNotFound       SaleErrorCode = "SAL-010001"
	ErrCodeSaleItemsRequired  SaleErrorCode = "SAL-010002"
	ErrCodeInvalidPaymentType SaleErrorCode = "SAL-010003"
	ErrCodeMissingSaleFields  SaleErrorCode = "SAL-010004"
)

// SaleError represents a sale error with code and message.
type SaleError struct {
	Code    SaleErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SaleError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SaleError) Unwrap() error {
	return e.Err
}

// NewSaleError creates a new SaleError with the given code and message.
func NewSaleError(code SaleErrorCode, message string, err error) *SaleError {
	return &SaleError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
