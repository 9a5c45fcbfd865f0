// Package events delivers catalog change notifications to dashboards and other systems.
package events

import (
	"context"
	"errors"
	"time"

	"steelcatalog/internal/model"
)

// Publisher sends a catalog event to one sink
type Publisher interface {
	Publish(ctx context.Context, event model.CatalogEvent) error
}

// New stamps OccurredAt so every sink sees the same time
func New(name string, entityID uint, actorUID string, data interface{}) model.CatalogEvent {
	return model.CatalogEvent{
		Event:      name,
		EntityID:   entityID,
		ActorUID:   actorUID,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}
}

// Noop drops every event
type Noop struct{}

func (Noop) Publish(context.Context, model.CatalogEvent) error { return nil }

// Fanout publishes to every sink and joins their errors
type Fanout []Publisher

func (f Fanout) Publish(ctx context.Context, event model.CatalogEvent) error {
	var errs []error
	for _, p := range f {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
