package utils

import (
	"errors"
	"strings"
)

var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrProductNotFound       = errors.New("product not found")
	ErrOrderAlreadyCancelled = errors.New("order already cancelled")
	ErrOrderNotCancellable   = errors.New("order cannot be cancelled")
	ErrPaymentDeclined       = errors.New("payment declined")
	ErrInvalidPage           = errors.New("invalid page parameter")
	ErrInvalidPageSize       = errors.New("invalid page size parameter")
	ErrDatabaseError         = errors.New("database error")
)

// ValidationErrors aggregates per-item admission failures so the caller
// sees every problem in one response instead of the first one hit.
type ValidationErrors struct {
	Message string
	Errors  []string
}

func (v *ValidationErrors) Error() string {
	return v.Message + ": " + strings.Join(v.Errors, "; ")
}

func NewValidationErrors(message string, errs []string) *ValidationErrors {
	return &ValidationErrors{Message: message, Errors: errs}
}
