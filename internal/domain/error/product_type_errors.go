// Package error defines domain-specific errors for the application.
package error

import "errors"

// Product type domain errors.
var (
	// ErrProductTypeNotFound is returned when a product type is not found.
	ErrProductTypeNotFound = errors.New("product type not found")

	// ErrProductTypeNameExists is returned on create/rename with a duplicate name.
	ErrProductTypeNameExists = errors.New("product type name already exists")

	// ErrProductTypeInUse is returned when deleting a product type that is
	// referenced by sale items.
	ErrProductTypeInUse = errors.New("product type is used in sales")
)

// ProductTypeErrorCode defines error codes for product type errors.
// Format: PT-XXYYYY where XX is category and YYYY is specific error.
type ProductTypeErrorCode string

const (
	ErrCodeProductTypeNotFound   ProductTypeErrorCode = "PT-010001"
	ErrCodeProductTypeNameExists ProductTypeErrorCode = "PT-010002"
	ErrCodeProductTypeInUse      ProductTypeErrorCode = "PT-010003"
	ErrCodeMissingProductFields  ProductTypeErrorCode = "PT-010004"
)

// ProductTypeError represents a product type error with code and message.
type ProductTypeError struct {
	Code    ProductTypeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProductTypeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProductTypeError) Unwrap() error {
	return e.Err
}

// NewProductTypeError creates a new ProductTypeError with the given code and message.
func NewProductTypeError(code ProductTypeErrorCode, message string, err error) *ProductTypeError {
	return &ProductTypeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
