package insighting

import (
	"errors"
	"fmt"
)

var ErrInvalidFilter = errors.New("filtro inválido")

// FilterError indica qual parâmetro do filtro foi rejeitado
type FilterError struct {
	Err     error
	Field   string
	Details string
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Err.Error(), e.Field, e.Details)
}

func (e *FilterError) Unwrap() error {
	return e.Err
}

func NewFilterError(field, details string) *FilterError {
	return &FilterError{
		Err:     ErrInvalidFilter,
		Field:   field,
		Details: details,
	}
}
