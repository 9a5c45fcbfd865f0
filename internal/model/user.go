package model

import (
	"time"
)

// Roles a user can hold; anything else is rejected at the service boundary
const (
	RoleClient    = "client"
	RoleAdmin     = "admin"
	RoleLogistics = "logistics"
)

// User is an identity row keyed by the external Firebase subject id.
// Users are never hard-deleted; admins deactivate them instead.
type User struct {
	UserID      uint       `gorm:"primaryKey;column:user_id" json:"user_id"`
	FirebaseUID string     `gorm:"column:firebase_uid;type:varchar(128);uniqueIndex;not null" json:"firebase_uid"`
	Email       string     `gorm:"type:varchar(255);not null" json:"email"`
	FullName    string     `gorm:"type:varchar(255)" json:"full_name"`
	Phone       string     `gorm:"type:varchar(20)" json:"phone"`
	CompanyName *string    `gorm:"type:varchar(255)" json:"company_name"`
	GSTNumber   *string    `gorm:"column:gst_number;type:varchar(20)" json:"gst_number"`
	Role        string     `gorm:"type:varchar(20);not null;index" json:"role"` // client, admin, logistics
	IsActive    bool       `gorm:"not null;index" json:"is_active"`
	LastLogin   *time.Time `json:"last_login"`
	CreatedAt   time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// IsValidRole reports whether role is one of the fixed allow-list
func IsValidRole(role string) bool {
	return role == RoleClient || role == RoleAdmin || role == RoleLogistics
}
