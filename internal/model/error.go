package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeMissingField     = "MISSING_FIELD"
	ErrCodeInvalidID        = "INVALID_ID"
	ErrCodeCategoryNotFound = "CATEGORY_NOT_FOUND"
	ErrCodeProductNotFound  = "PRODUCT_NOT_FOUND"
	ErrCodeCategoryInUse    = "CATEGORY_IN_USE"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrCategoryNameRequired = NewDomainError(ErrCodeMissingField, "Category name required")
	ErrProductNameRequired  = NewDomainError(ErrCodeMissingField, "Product name required")
	ErrCategoryNotFound     = NewDomainError(ErrCodeCategoryNotFound, "Category not found")
	ErrProductNotFound      = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrCategoryInUse        = NewDomainError(ErrCodeCategoryInUse, "Category still has products referencing it")
)
