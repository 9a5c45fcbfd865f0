package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Document types attached to a product
const (
	DocTypeMTR             = "mtr"
	DocTypeTestCertificate = "test_certificate"
	DocTypeSafetyDataSheet = "safety_data_sheet"
)

// DefaultImageType is stored when an image is submitted without a type
const DefaultImageType = "product"

// Product is a steel catalog item. Images, documents and the category join row
// are removed by the database when the product row is deleted.
type Product struct {
	ProductID            uint                                     `gorm:"primaryKey;column:product_id" json:"product_id"`
	SKU                  string                                   `gorm:"column:sku;type:varchar(100);uniqueIndex;not null" json:"sku"`
	Name                 string                                   `gorm:"type:varchar(255);not null" json:"name"`
	Description          string                                   `gorm:"type:text" json:"description"`
	Grade                string                                   `gorm:"type:varchar(100)" json:"grade"`
	Dimensions           datatypes.JSONType[Dimensions]           `json:"dimensions"`
	WeightPerUnit        decimal.Decimal                          `gorm:"type:decimal(12,3);not null" json:"weight_per_unit"`
	UnitOfMeasure        string                                   `gorm:"type:varchar(20);not null" json:"unit_of_measure"`
	MinimumOrderQty      int                                      `gorm:"not null" json:"minimum_order_qty"`
	PricePerUnit         decimal.Decimal                          `gorm:"type:decimal(12,2);not null" json:"price_per_unit"`
	HSNCode              string                                   `gorm:"column:hsn_code;type:varchar(20)" json:"hsn_code"`
	HeatNumber           string                                   `gorm:"type:varchar(100)" json:"heat_number"`
	ChemicalComposition  datatypes.JSONType[ChemicalComposition]  `json:"chemical_composition"`
	MechanicalProperties datatypes.JSONType[MechanicalProperties] `json:"mechanical_properties"`
	IsActive             bool                                     `gorm:"not null;index" json:"is_active"`
	CreatedAt            time.Time                                `gorm:"index" json:"created_at"`
	UpdatedAt            time.Time                                `json:"updated_at"`
	Images               []ProductImage                           `gorm:"foreignKey:ProductID;references:ProductID;constraint:OnDelete:CASCADE" json:"images"`
	Documents            []ProductDocument                        `gorm:"foreignKey:ProductID;references:ProductID;constraint:OnDelete:CASCADE" json:"documents"`
	CategoryLinks        []ProductCategory                        `gorm:"foreignKey:ProductID;references:ProductID;constraint:OnDelete:CASCADE" json:"-"`

	// Category is filled by the repository from the join table, never persisted through gorm
	Category *Category `gorm:"-" json:"category"`
}

func (Product) TableName() string { return "steel_products" }

// ProductImage is a picture of a product, shown in ascending SortOrder
type ProductImage struct {
	ImageID   uint   `gorm:"primaryKey;column:image_id" json:"image_id"`
	ProductID uint   `gorm:"not null;index" json:"product_id"`
	ImagePath string `gorm:"type:text;not null" json:"image_path"`
	AltText   string `gorm:"type:varchar(255)" json:"alt_text"`
	SortOrder int    `gorm:"not null" json:"sort_order"`
	ImageType string `gorm:"type:varchar(30);not null" json:"image_type"`
}

// ProductDocument is a certificate or report attached to a product (MTR, test certificate, SDS)
type ProductDocument struct {
	DocumentID      uint       `gorm:"primaryKey;column:document_id" json:"document_id"`
	ProductID       uint       `gorm:"not null;index" json:"product_id"`
	DocumentType    string     `gorm:"type:varchar(30);not null" json:"document_type"`
	FilePath        string     `gorm:"type:text;not null" json:"file_path"`
	ReferenceNumber *string    `gorm:"type:varchar(100)" json:"reference_number"`
	ValidUntil      *time.Time `gorm:"type:date" json:"valid_until"`
	SortOrder       int        `gorm:"not null" json:"sort_order"`
}

// IsValidDocumentType reports whether docType is a known document kind
func IsValidDocumentType(docType string) bool {
	switch docType {
	case DocTypeMTR, DocTypeTestCertificate, DocTypeSafetyDataSheet:
		return true
	}
	return false
}
