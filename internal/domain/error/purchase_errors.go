// Package error defines domain-specific errors for the application.
package error

import "errors"

// Purchase domain errors.
var (
	// ErrPurchaseNotFound is returned when a purchase is not found.
	ErrPurchaseNotFound = errors.New("purchase not found")

	// ErrInvalidPurchaseQuantity is returned when quantity is not positive.
	ErrInvalidPurchaseQuantity = errors.New("purchase quantity must be positive")
)

// PurchaseErrorCode defines error codes for purchase errors.
// Format: PUR-XXYYYY where XX is category and YYYY is specific error.
type PurchaseErrorCode string

const (
	ErrCodePurchaseNotFound        PurchaseErrorCode = "PUR-010001"
	ErrCodeInvalidPurchaseQuantity PurchaseErrorCode = "PUR-010002"
	ErrCodeMissingPurchaseFields   PurchaseErrorCode = "PUR-010003"
)

// PurchaseError represents a purchase error with code and message.
type PurchaseError struct {
	Code    PurchaseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PurchaseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PurchaseError) Unwrap() error {
	return e.Err
}

// NewPurchaseError creates a new PurchaseError with the given code and message.
func NewPurchaseError(code PurchaseErrorCode, message string, err error) *PurchaseError {
	return &PurchaseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
