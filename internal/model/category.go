package model

import (
	"time"

	"gorm.io/datatypes"
)

// Category groups steel products for display; a product belongs to at most one
type Category struct {
	CategoryID           uint                                     `gorm:"primaryKey;column:category_id" json:"category_id"`
	Name                 string                                   `gorm:"type:varchar(255);not null" json:"name"`
	Slug                 string                                   `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Description          string                                   `gorm:"type:text" json:"description"`
	IsBulkOnly           bool                                     `gorm:"not null" json:"is_bulk_only"`
	SteelCharacteristics datatypes.JSONType[SteelCharacteristics] `json:"steel_characteristics"`
	SortOrder            int                                      `gorm:"not null;index" json:"sort_order"`
	IsActive             bool                                     `gorm:"not null;index" json:"is_active"`
	ProductLinks         []ProductCategory                        `gorm:"foreignKey:CategoryID;references:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt            time.Time                                `json:"created_at"`
	UpdatedAt            time.Time                                `json:"updated_at"`
}

// CategoryWithCount is a category row plus the derived number of linked products
type CategoryWithCount struct {
	Category
	ProductCount int64 `gorm:"column:product_count" json:"product_count"`
}

// ProductCategory is the join row between a product and its category.
// At most one row per product is kept by the product service, not by a constraint.
type ProductCategory struct {
	ProductID  uint `gorm:"primaryKey;autoIncrement:false;column:product_id" json:"product_id"`
	CategoryID uint `gorm:"primaryKey;autoIncrement:false;column:category_id;index" json:"category_id"`
}
