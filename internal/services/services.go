// Package services holds the business rules between the HTTP handlers and
// the repositories: input checks, not-found translation and logging.
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/stwalsh4118/heritage/internal/repository"
)

// Coordinate validation constants
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// Service-level errors
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// ErrDeleteBlocked matches the *repository.DeleteBlockedError returned
	// when dependents still reference a record.
	ErrDeleteBlocked = repository.ErrDeleteBlocked
)

// notFound builds the error returned for a missing record.
func notFound(entity string, id int64) error {
	return fmt.Errorf("%w: %s %d", ErrNotFound, entity, id)
}

// translate maps repository errors onto service errors. Blocked deletes are
// passed through unchanged so callers can read the dependent count.
func translate(err error, entity string, id int64) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return notFound(entity, id)
	default:
		return err
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidInput}, args...)...)
}

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalid("%s is required", field)
	}
	return nil
}

func validateCoordinates(lat, lng *float64) error {
	if lat != nil && (*lat < MinLatitude || *lat > MaxLatitude) {
		return invalid("latitude must be between %.0f and %.0f, got %f", MinLatitude, MaxLatitude, *lat)
	}
	if lng != nil && (*lng < MinLongitude || *lng > MaxLongitude) {
		return invalid("longitude must be between %.0f and %.0f, got %f", MinLongitude, MaxLongitude, *lng)
	}
	return nil
}
