// Package error defines domain-specific errors for the application.
package error

import "errors"

// Buyer domain errors.
var (
	// ErrBuyerNotFound is returned when a buyer is not found in the system.
	ErrBuyerNotFound = errors.New("buyer not found")

	// ErrBuyerHasRecords is returned when attempting to delete a buyer that
	// still has sales or payments.
	ErrBuyerHasRecords = errors.New("buyer has existing sales or payments")

	// ErrBuyerNameRequired is returned when a buyer is created without a name.
	ErrBuyerNameRequired = errors.New("buyer name is required")
)

// BuyerErrorCode defines error codes for buyer errors.
// Format: BYR-XXYYYY where XX is category and YYYY is specific error.
type BuyerErrorCode string

const (
	ErrCodeBuyerNotFound     BuyerErrorCode = "BYR-010001"
	ErrCodeBuyerHasRecords   BuyerErrorCode = "BYR-010002"
	ErrCodeBuyerNameRequired BuyerErrorCode = "BYR-010003"
	ErrCodeMissingBuyerField BuyerErrorCode = "BYR-010004"
)

// BuyerError represents a buyer error with code and message.
type BuyerError struct {
	Code    BuyerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BuyerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BuyerError) Unwrap() error {
	return e.Err
}

// NewBuyerError creates a new BuyerError with the given code and message.
func NewBuyerError(code BuyerErrorCode, message string, err error) *BuyerError {
	return &BuyerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
