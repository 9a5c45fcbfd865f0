package service

import (
	"context"
	"errors"
	"fmt"

	"steelcatalog/internal/events"
	"steelcatalog/internal/logging"
	"steelcatalog/internal/model"

	"gorm.io/gorm"
)

// Errors callers can classify with errors.Is; anything else is internal.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")

	// admin gate outcomes
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// notFoundOr maps gorm's missing-row error to ErrNotFound and wraps everything else
func notFoundOr(err error, entity string, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, entity)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// publish is called after commit; a failing sink never fails the request
func publish(ctx context.Context, publisher events.Publisher, event model.CatalogEvent) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		logging.FromContext(ctx).Warn("failed to publish catalog event",
			"event", event.Event, "entity_id", event.EntityID, "error", err)
	}
}
