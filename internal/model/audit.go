package model

import (
	"time"
)

const (
	ActionCreateProduct    = "CREATE_PRODUCT"
	ActionUpdateProduct    = "UPDATE_PRODUCT"
	ActionDeleteProduct    = "DELETE_PRODUCT"
	ActionCreateCategory   = "CREATE_CATEGORY"
	ActionUpdateCategory   = "UPDATE_CATEGORY"
	ActionDeleteCategory   = "DELETE_CATEGORY"
	ActionToggleUserStatus = "TOGGLE_USER_STATUS"
	ActionUpdateUserRole   = "UPDATE_USER_ROLE"
)

// Entity types recorded in AuditLog.EntityType
const (
	EntityProduct  = "product"
	EntityCategory = "category"
	EntityUser     = "user"
)

// AuditLog records which admin changed what in the back-office
type AuditLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ActorUID   string    `gorm:"column:actor_uid;type:varchar(128);index" json:"actor_uid"` // empty for system writes
	Action     string    `gorm:"type:varchar(50);not null;index" json:"action"`
	EntityType string    `gorm:"type:varchar(30);not null" json:"entity_type"`
	EntityID   uint      `gorm:"index" json:"entity_id"`
	Details    string    `gorm:"type:text" json:"details"` // serialized JSON payload of the change
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}
