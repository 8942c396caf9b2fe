package usecase

import (
	"errors"

	"cinebook/internal/data/repository"
	"cinebook/pkg/utils"
)

// Sentinel errors for the whole engine. ErrNotFound and ErrDuplicate alias
// the repository sentinels so errors.Is works across layers.
var (
	ErrNotFound            = repository.ErrNotFound
	ErrDuplicate           = repository.ErrDuplicate
	ErrInvalidTransition   = errors.New("invalid booking transition")
	ErrIncompleteSelection = errors.New("booking selection incomplete")
	ErrBookingCreation     = errors.New("booking creation failed")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)

// ValidationError reports malformed input, field by field. Never retried
// automatically; the caller fixes the input and tries again.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// validateRequest runs struct-tag validation and converts failures into a
// ValidationError.
func validateRequest(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
