package repository

import (
	"context"

	"steelcatalog/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	FindBySKU(ctx context.Context, sku string) (*model.Product, error)
	List(ctx context.Context, activeOnly bool) ([]model.Product, error)
	ReplaceCategory(ctx context.Context, productID uint, categoryID *uint) error
	ReplaceImages(ctx context.Context, productID uint, images []model.ProductImage) error
	ReplaceDocuments(ctx context.Context, productID uint, documents []model.ProductDocument) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

// Create inserts the product row only. Children are written with the Replace* methods.
func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	return GetDB(ctx, r.db).Omit(clause.Associations).Create(product).Error
}

// Update overwrites every column of the product row
func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	return GetDB(ctx, r.db).Omit(clause.Associations).Save(product).Error
}

// Delete removes the product; images, documents and the category join cascade.
func (r *productRepository) Delete(ctx context.Context, id uint) error {
	result := GetDB(ctx, r.db).Where("product_id = ?", id).Delete(&model.Product{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	if err := r.withChildren(GetDB(ctx, r.db)).First(&product, "product_id = ?", id).Error; err != nil {
		return nil, err
	}
	products := []model.Product{product}
	if err := r.attachCategories(ctx, products); err != nil {
		return nil, err
	}
	return &products[0], nil
}

func (r *productRepository) FindBySKU(ctx context.Context, sku string) (*model.Product, error) {
	var product model.Product
	if err := GetDB(ctx, r.db).Where("sku = ?", sku).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// List returns products newest first with images, documents and category loaded
func (r *productRepository) List(ctx context.Context, activeOnly bool) ([]model.Product, error) {
	var products []model.Product

	query := r.withChildren(GetDB(ctx, r.db))
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("created_at DESC").Order("product_id DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	if err := r.attachCategories(ctx, products); err != nil {
		return nil, err
	}
	return products, nil
}

// ReplaceCategory always drops the existing join row and inserts one when categoryID is set
func (r *productRepository) ReplaceCategory(ctx context.Context, productID uint, categoryID *uint) error {
	db := GetDB(ctx, r.db)
	if err := db.Where("product_id = ?", productID).Delete(&model.ProductCategory{}).Error; err != nil {
		return err
	}
	if categoryID == nil {
		return nil
	}
	return db.Create(&model.ProductCategory{ProductID: productID, CategoryID: *categoryID}).Error
}

func (r *productRepository) ReplaceImages(ctx context.Context, productID uint, images []model.ProductImage) error {
	db := GetDB(ctx, r.db)
	if err := db.Where("product_id = ?", productID).Delete(&model.ProductImage{}).Error; err != nil {
		return err
	}
	if len(images) == 0 {
		return nil
	}
	for i := range images {
		images[i].ProductID = productID
	}
	// single multi-row INSERT
	return db.Create(&images).Error
}

func (r *productRepository) ReplaceDocuments(ctx context.Context, productID uint, documents []model.ProductDocument) error {
	db := GetDB(ctx, r.db)
	if err := db.Where("product_id = ?", productID).Delete(&model.ProductDocument{}).Error; err != nil {
		return err
	}
	if len(documents) == 0 {
		return nil
	}
	for i := range documents {
		documents[i].ProductID = productID
	}
	return db.Create(&documents).Error
}

func (r *productRepository) withChildren(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC").Order("image_id ASC")
		}).
		Preload("Documents", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC").Order("document_id ASC")
		})
}

type productCategoryRow struct {
	ProductID   uint
	CategoryID  uint
	Name        string
	Slug        string
	Description string
}

// attachCategories loads the category of every product with one join query
func (r *productRepository) attachCategories(ctx context.Context, products []model.Product) error {
	if len(products) == 0 {
		return nil
	}
	ids := make([]uint, len(products))
	for i := range products {
		ids[i] = products[i].ProductID
	}

	var rows []productCategoryRow
	err := GetDB(ctx, r.db).Table("product_categories AS pc").
		Select("pc.product_id, c.category_id, c.name, c.slug, c.description").
		Joins("JOIN categories c ON c.category_id = pc.category_id").
		Where("pc.product_id IN ?", ids).
		Order("pc.product_id ASC").Order("c.category_id ASC").
		Scan(&rows).Error
	if err != nil {
		return err
	}

	byProduct := make(map[uint]*model.Category, len(rows))
	for _, row := range rows {
		if _, seen := byProduct[row.ProductID]; seen {
			continue
		}
		byProduct[row.ProductID] = &model.Category{
			CategoryID:  row.CategoryID,
			Name:        row.Name,
			Slug:        row.Slug,
			Description: row.Description,
		}
	}
	for i := range products {
		products[i].Category = byProduct[products[i].ProductID]
	}
	return nil
}
