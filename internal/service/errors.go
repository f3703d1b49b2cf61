package service

import (
	"errors"
	"fmt"

	"tasko/internal/models/task"
)

// aquí se tipifican los errores de la lógica de negocio

const (
	CodeNotFound           = "NOT_FOUND"
	CodeValidationError    = "VALIDATION_ERROR"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
)

type BusinessError struct {
	Code    string
	Message string
	Details map[string]any
}

func (b *BusinessError) Error() string {
	return fmt.Sprintf("[%s] %s", b.Code, b.Message)
}

func NewNotFound(resource, id string) *BusinessError {
	return &BusinessError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s %s no encontrado(a)", resource, id),
		Details: map[string]any{
			"resource": resource,
			"id":       id,
		},
	}
}

func NewValidationError(field, reason string) *BusinessError {
	return &BusinessError{
		Code:    CodeValidationError,
		Message: fmt.Sprintf("Valor inválido en el campo '%s': %s", field, reason),
		Details: map[string]any{
			"field":  field,
			"reason": reason,
		},
	}
}

func NewInvalidCredentials() *BusinessError {
	return &BusinessError{
		Code:    CodeInvalidCredentials,
		Message: "Credenciales inválidas",
		Details: map[string]any{},
	}
}

// asValidationError convierte los errores de campo del constructor de
// tareas en errores de negocio; cualquier otra cosa se devuelve tal
// cual para que el handler la trate como fallo interno.
func asValidationError(err error) error {
	var fieldErr *task.FieldError
	if errors.As(err, &fieldErr) {
		return NewValidationError(fieldErr.Field, fieldErr.Reason)
	}
	return err
}
