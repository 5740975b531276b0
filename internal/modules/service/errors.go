package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("registro não encontrado")
	// ErrValidation is returned when input is rejected before any storage
	// access happens.
	ErrValidation = errors.New("dados inválidos")
)

// invalid wraps a validation failure so callers can match it with errors.Is.
func invalid(err error) error {
	return fmt.Errorf("%w: %v", ErrValidation, err)
}

// translate maps gorm's record-not-found onto the service-level sentinel and
// passes every other storage error through unchanged.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
