package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"steelcatalog/internal/events"
	"steelcatalog/internal/model"
	"steelcatalog/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// --- Child DTOs ---

type ImagePayload struct {
	ImagePath string `json:"image_path" binding:"required"`
	AltText   string `json:"alt_text"`
	SortOrder *int   `json:"sort_order"` // defaults to the position in the list
	ImageType string `json:"image_type"`
}

type DocumentPayload struct {
	DocumentType    string  `json:"document_type" binding:"omitempty,oneof=mtr test_certificate safety_data_sheet"`
	FilePath        string  `json:"file_path" binding:"required"`
	ReferenceNumber *string `json:"reference_number"`
	ValidUntil      *string `json:"valid_until"` // YYYY-MM-DD
	SortOrder       *int    `json:"sort_order"`
}

type ImageResponse struct {
	ImageID   uint   `json:"image_id"`
	ImagePath string `json:"image_path"`
	AltText   string `json:"alt_text"`
	SortOrder int    `json:"sort_order"`
	ImageType string `json:"image_type"`
}

type DocumentResponse struct {
	DocumentID      uint    `json:"document_id"`
	DocumentType    string  `json:"document_type"`
	FilePath        string  `json:"file_path"`
	ReferenceNumber *string `json:"reference_number"`
	ValidUntil      *string `json:"valid_until"`
	SortOrder       int     `json:"sort_order"`
}

type CategorySummary struct {
	CategoryID  uint   `json:"category_id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// --- Product DTOs ---

// ProductRequest is the body of create and update. Update overwrites every scalar
// column; is_active and minimum_order_qty keep their current value when omitted.
type ProductRequest struct {
	SKU                  string                     `json:"sku" binding:"required"`
	Name                 string                     `json:"name" binding:"required"`
	Description          string                     `json:"description"`
	Grade                string                     `json:"grade"`
	Dimensions           model.Dimensions           `json:"dimensions"`
	WeightPerUnit        decimal.Decimal            `json:"weight_per_unit"`
	UnitOfMeasure        string                     `json:"unit_of_measure"`
	MinimumOrderQty      *int                       `json:"minimum_order_qty"`
	PricePerUnit         decimal.Decimal            `json:"price_per_unit"`
	HSNCode              string                     `json:"hsn_code"`
	HeatNumber           string                     `json:"heat_number"`
	ChemicalComposition  model.ChemicalComposition  `json:"chemical_composition"`
	MechanicalProperties model.MechanicalProperties `json:"mechanical_properties"`
	IsActive             *bool                      `json:"is_active"`
	CategoryID           *uint                      `json:"category_id"`
	Images               *[]ImagePayload            `json:"images" binding:"omitempty,dive"` // pointer so nil = not sent, [] = clear all
	Documents            *[]DocumentPayload         `json:"documents" binding:"omitempty,dive"`
}

type ProductResponse struct {
	ProductID            uint                       `json:"product_id"`
	SKU                  string                     `json:"sku"`
	Name                 string                     `json:"name"`
	Description          string                     `json:"description"`
	Grade                string                     `json:"grade"`
	Dimensions           *model.Dimensions          `json:"dimensions"`
	WeightPerUnit        decimal.Decimal            `json:"weight_per_unit"`
	UnitOfMeasure        string                     `json:"unit_of_measure"`
	MinimumOrderQty      int                        `json:"minimum_order_qty"`
	PricePerUnit         decimal.Decimal            `json:"price_per_unit"`
	HSNCode              string                     `json:"hsn_code"`
	HeatNumber           string                     `json:"heat_number"`
	ChemicalComposition  model.ChemicalComposition  `json:"chemical_composition"`
	MechanicalProperties model.MechanicalProperties `json:"mechanical_properties"`
	IsActive             bool                       `json:"is_active"`
	CreatedAt            time.Time                  `json:"created_at"`
	UpdatedAt            time.Time                  `json:"updated_at"`
	Category             *CategorySummary           `json:"category"`
	Images               []ImageResponse            `json:"images"`
	Documents            []DocumentResponse         `json:"documents"`
}

// --- Interface ---

type ProductService interface {
	ListActiveProducts(ctx context.Context) ([]ProductResponse, error)
	ListAllProducts(ctx context.Context) ([]ProductResponse, error)
	GetProduct(ctx context.Context, id uint) (ProductResponse, error)
	CreateProduct(ctx context.Context, actorUID string, req ProductRequest) (ProductResponse, error)
	UpdateProduct(ctx context.Context, actorUID string, id uint, req ProductRequest) (ProductResponse, error)
	DeleteProduct(ctx context.Context, actorUID string, id uint) error
}

// --- Implementation ---

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	auditRepo    repository.AuditRepository
	txManager    repository.TransactionManager
	publisher    events.Publisher
}

func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	publisher events.Publisher,
) ProductService {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		auditRepo:    auditRepo,
		txManager:    txManager,
		publisher:    publisher,
	}
}

// --- Validation helpers ---

func validateProductRequest(req *ProductRequest) error {
	req.SKU = strings.TrimSpace(req.SKU)
	req.Name = strings.TrimSpace(req.Name)
	if req.SKU == "" {
		return invalidf("sku is required")
	}
	if req.Name == "" {
		return invalidf("name is required")
	}
	if req.WeightPerUnit.IsNegative() {
		return invalidf("weight_per_unit must not be negative")
	}
	if req.PricePerUnit.IsNegative() {
		return invalidf("price_per_unit must not be negative")
	}
	if req.MinimumOrderQty != nil && *req.MinimumOrderQty < 1 {
		return invalidf("minimum_order_qty must be at least 1")
	}
	if err := req.Dimensions.Validate(); err != nil {
		return invalidf("%s", err)
	}
	if err := req.ChemicalComposition.Validate(); err != nil {
		return invalidf("%s", err)
	}
	if err := req.MechanicalProperties.Validate(); err != nil {
		return invalidf("%s", err)
	}
	if req.Images != nil {
		for i, img := range *req.Images {
			if strings.TrimSpace(img.ImagePath) == "" {
				return invalidf("images[%d]: image_path is required", i)
			}
		}
	}
	if req.Documents != nil {
		for i, doc := range *req.Documents {
			if strings.TrimSpace(doc.FilePath) == "" {
				return invalidf("documents[%d]: file_path is required", i)
			}
			if doc.DocumentType != "" && !model.IsValidDocumentType(doc.DocumentType) {
				return invalidf("documents[%d]: document_type must be one of: mtr, test_certificate, safety_data_sheet", i)
			}
			if _, err := parseValidUntil(doc.ValidUntil); err != nil {
				return invalidf("documents[%d]: valid_until must be a YYYY-MM-DD date", i)
			}
		}
	}
	return nil
}

func parseValidUntil(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	value := strings.TrimSpace(*raw)
	if t, err := time.Parse(dateLayout, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &day, nil
}

func toImageModels(payloads []ImagePayload) []model.ProductImage {
	images := make([]model.ProductImage, 0, len(payloads))
	for i, p := range payloads {
		img := model.ProductImage{
			ImagePath: strings.TrimSpace(p.ImagePath),
			AltText:   p.AltText,
			SortOrder: i,
			ImageType: p.ImageType,
		}
		if p.SortOrder != nil {
			img.SortOrder = *p.SortOrder
		}
		if img.ImageType == "" {
			img.ImageType = model.DefaultImageType
		}
		images = append(images, img)
	}
	return images
}

func toDocumentModels(payloads []DocumentPayload) []model.ProductDocument {
	documents := make([]model.ProductDocument, 0, len(payloads))
	for i, p := range payloads {
		validUntil, _ := parseValidUntil(p.ValidUntil) // checked by validateProductRequest
		doc := model.ProductDocument{
			DocumentType:    p.DocumentType,
			FilePath:        strings.TrimSpace(p.FilePath),
			ReferenceNumber: p.ReferenceNumber,
			ValidUntil:      validUntil,
			SortOrder:       i,
		}
		if p.SortOrder != nil {
			doc.SortOrder = *p.SortOrder
		}
		if doc.DocumentType == "" {
			doc.DocumentType = model.DocTypeMTR
		}
		documents = append(documents, doc)
	}
	return documents
}

// applyProductRequest copies every scalar column of req onto p
func applyProductRequest(p *model.Product, req ProductRequest) {
	p.SKU = req.SKU
	p.Name = req.Name
	p.Description = req.Description
	p.Grade = req.Grade
	p.Dimensions = datatypes.NewJSONType(req.Dimensions)
	p.WeightPerUnit = req.WeightPerUnit
	p.UnitOfMeasure = req.UnitOfMeasure
	p.PricePerUnit = req.PricePerUnit
	p.HSNCode = req.HSNCode
	p.HeatNumber = req.HeatNumber
	p.ChemicalComposition = datatypes.NewJSONType(req.ChemicalComposition)
	p.MechanicalProperties = datatypes.NewJSONType(req.MechanicalProperties)
	if req.MinimumOrderQty != nil {
		p.MinimumOrderQty = *req.MinimumOrderQty
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
}

// checkCategory rejects a category_id that does not exist
func (s *productService) checkCategory(ctx context.Context, categoryID *uint) error {
	if categoryID == nil {
		return nil
	}
	if _, err := s.categoryRepo.FindByID(ctx, *categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return invalidf("category %d does not exist", *categoryID)
		}
		return fmt.Errorf("failed to look up category: %w", err)
	}
	return nil
}

// checkSKU rejects a SKU used by a product other than selfID
func (s *productService) checkSKU(ctx context.Context, sku string, selfID uint) error {
	existing, err := s.productRepo.FindBySKU(ctx, sku)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up sku: %w", err)
	}
	if existing.ProductID != selfID {
		return fmt.Errorf("%w: sku %q already exists", ErrConflict, sku)
	}
	return nil
}

// --- CRUD ---

func (s *productService) ListActiveProducts(ctx context.Context) ([]ProductResponse, error) {
	return s.list(ctx, true)
}

func (s *productService) ListAllProducts(ctx context.Context) ([]ProductResponse, error) {
	return s.list(ctx, false)
}

func (s *productService) list(ctx context.Context, activeOnly bool) ([]ProductResponse, error) {
	products, err := s.productRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	res := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		res = append(res, toProductResponse(p))
	}
	return res, nil
}

func (s *productService) GetProduct(ctx context.Context, id uint) (ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return ProductResponse{}, notFoundOr(err, "product", "fetch product")
	}
	return toProductResponse(*product), nil
}

func (s *productService) CreateProduct(ctx context.Context, actorUID string, req ProductRequest) (ProductResponse, error) {
	if err := validateProductRequest(&req); err != nil {
		return ProductResponse{}, err
	}

	product := &model.Product{MinimumOrderQty: 1, IsActive: true}
	applyProductRequest(product, req)

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.checkSKU(txCtx, product.SKU, 0); err != nil {
			return err
		}
		if err := s.checkCategory(txCtx, req.CategoryID); err != nil {
			return err
		}

		if err := s.productRepo.Create(txCtx, product); err != nil {
			if isDuplicate(err) {
				return fmt.Errorf("%w: sku %q already exists", ErrConflict, product.SKU)
			}
			return fmt.Errorf("failed to create product: %w", err)
		}
		if err := s.productRepo.ReplaceCategory(txCtx, product.ProductID, req.CategoryID); err != nil {
			return fmt.Errorf("failed to link category: %w", err)
		}
		if req.Images != nil {
			if err := s.productRepo.ReplaceImages(txCtx, product.ProductID, toImageModels(*req.Images)); err != nil {
				return fmt.Errorf("failed to create images: %w", err)
			}
		}
		if req.Documents != nil {
			if err := s.productRepo.ReplaceDocuments(txCtx, product.ProductID, toDocumentModels(*req.Documents)); err != nil {
				return fmt.Errorf("failed to create documents: %w", err)
			}
		}

		return recordAudit(txCtx, s.auditRepo, actorUID, model.ActionCreateProduct, model.EntityProduct, product.ProductID,
			map[string]interface{}{"sku": product.SKU, "name": product.Name, "category_id": req.CategoryID})
	})
	if err != nil {
		return ProductResponse{}, err
	}

	res, err := s.GetProduct(ctx, product.ProductID)
	if err != nil {
		return ProductResponse{}, err
	}
	publish(ctx, s.publisher, events.New(model.EventProductCreated, res.ProductID, actorUID, res))
	return res, nil
}

func (s *productService) UpdateProduct(ctx context.Context, actorUID string, id uint, req ProductRequest) (ProductResponse, error) {
	if err := validateProductRequest(&req); err != nil {
		return ProductResponse{}, err
	}

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		product, err := s.productRepo.FindByID(txCtx, id)
		if err != nil {
			return notFoundOr(err, "product", "fetch product")
		}
		if err := s.checkSKU(txCtx, req.SKU, id); err != nil {
			return err
		}
		if err := s.checkCategory(txCtx, req.CategoryID); err != nil {
			return err
		}

		applyProductRequest(product, req)
		product.Images, product.Documents, product.Category = nil, nil, nil
		if err := s.productRepo.Update(txCtx, product); err != nil {
			if isDuplicate(err) {
				return fmt.Errorf("%w: sku %q already exists", ErrConflict, product.SKU)
			}
			return fmt.Errorf("failed to update product: %w", err)
		}

		// the join row is always rebuilt, so omitting category_id unlinks the product
		if err := s.productRepo.ReplaceCategory(txCtx, id, req.CategoryID); err != nil {
			return fmt.Errorf("failed to replace category: %w", err)
		}
		if req.Images != nil {
			if err := s.productRepo.ReplaceImages(txCtx, id, toImageModels(*req.Images)); err != nil {
				return fmt.Errorf("failed to replace images: %w", err)
			}
		}
		if req.Documents != nil {
			if err := s.productRepo.ReplaceDocuments(txCtx, id, toDocumentModels(*req.Documents)); err != nil {
				return fmt.Errorf("failed to replace documents: %w", err)
			}
		}

		return recordAudit(txCtx, s.auditRepo, actorUID, model.ActionUpdateProduct, model.EntityProduct, id,
			map[string]interface{}{
				"sku":                product.SKU,
				"category_id":        req.CategoryID,
				"images_replaced":    req.Images != nil,
				"documents_replaced": req.Documents != nil,
			})
	})
	if err != nil {
		return ProductResponse{}, err
	}

	res, err := s.GetProduct(ctx, id)
	if err != nil {
		return ProductResponse{}, err
	}
	publish(ctx, s.publisher, events.New(model.EventProductUpdated, id, actorUID, res))
	return res, nil
}

func (s *productService) DeleteProduct(ctx context.Context, actorUID string, id uint) error {
	var sku string
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		product, err := s.productRepo.FindByID(txCtx, id)
		if err != nil {
			return notFoundOr(err, "product", "fetch product")
		}
		sku = product.SKU
		if err := s.productRepo.Delete(txCtx, id); err != nil {
			return notFoundOr(err, "product", "delete product")
		}
		return recordAudit(txCtx, s.auditRepo, actorUID, model.ActionDeleteProduct, model.EntityProduct, id,
			map[string]interface{}{"sku": sku})
	})
	if err != nil {
		return err
	}

	publish(ctx, s.publisher, events.New(model.EventProductDeleted, id, actorUID, map[string]string{"sku": sku}))
	return nil
}

// --- Response mappers ---

func toProductResponse(p model.Product) ProductResponse {
	res := ProductResponse{
		ProductID:            p.ProductID,
		SKU:                  p.SKU,
		Name:                 p.Name,
		Description:          p.Description,
		Grade:                p.Grade,
		WeightPerUnit:        p.WeightPerUnit,
		UnitOfMeasure:        p.UnitOfMeasure,
		MinimumOrderQty:      p.MinimumOrderQty,
		PricePerUnit:         p.PricePerUnit,
		HSNCode:              p.HSNCode,
		HeatNumber:           p.HeatNumber,
		ChemicalComposition:  p.ChemicalComposition.Data(),
		MechanicalProperties: p.MechanicalProperties.Data(),
		IsActive:             p.IsActive,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
		Images:               make([]ImageResponse, 0, len(p.Images)),
		Documents:            make([]DocumentResponse, 0, len(p.Documents)),
	}
	if dims := p.Dimensions.Data(); !dims.IsZero() {
		res.Dimensions = &dims
	}
	if res.ChemicalComposition == nil {
		res.ChemicalComposition = model.ChemicalComposition{}
	}
	if p.Category != nil {
		res.Category = &CategorySummary{
			CategoryID:  p.Category.CategoryID,
			Name:        p.Category.Name,
			Slug:        p.Category.Slug,
			Description: p.Category.Description,
		}
	}
	for _, img := range p.Images {
		res.Images = append(res.Images, ImageResponse{
			ImageID:   img.ImageID,
			ImagePath: img.ImagePath,
			AltText:   img.AltText,
			SortOrder: img.SortOrder,
			ImageType: img.ImageType,
		})
	}
	for _, doc := range p.Documents {
		d := DocumentResponse{
			DocumentID:      doc.DocumentID,
			DocumentType:    doc.DocumentType,
			FilePath:        doc.FilePath,
			ReferenceNumber: doc.ReferenceNumber,
			SortOrder:       doc.SortOrder,
		}
		if doc.ValidUntil != nil {
			day := doc.ValidUntil.Format(dateLayout)
			d.ValidUntil = &day
		}
		res.Documents = append(res.Documents, d)
	}
	return res
}
