package model

import "time"

// Catalog event names
const (
	EventProductCreated    = "product.created"
	EventProductUpdated    = "product.updated"
	EventProductDeleted    = "product.deleted"
	EventCategoryCreated   = "category.created"
	EventCategoryUpdated   = "category.updated"
	EventCategoryDeleted   = "category.deleted"
	EventUserStatusChanged = "user.status_changed"
	EventUserRoleChanged   = "user.role_changed"
)

// CatalogEvent is broadcast to admin dashboards and downstream consumers after a commit
type CatalogEvent struct {
	Event      string      `json:"event"`
	EntityID   uint        `json:"entity_id"`
	ActorUID   string      `json:"actor_uid,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
	Data       interface{} `json:"data,omitempty"`
}
