package repository

import (
	"context"

	"steelcatalog/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	Update(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Category, error)
	FindBySlug(ctx context.Context, slug string) (*model.Category, error)
	ListWithCounts(ctx context.Context, activeOnly bool) ([]model.CategoryWithCount, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *model.Category) error {
	return GetDB(ctx, r.db).Omit(clause.Associations).Create(category).Error
}

func (r *categoryRepository) Update(ctx context.Context, category *model.Category) error {
	return GetDB(ctx, r.db).Omit(clause.Associations).Save(category).Error
}

// Delete removes the category; product join rows cascade, products stay.
func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	result := GetDB(ctx, r.db).Where("category_id = ?", id).Delete(&model.Category{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*model.Category, error) {
	var category model.Category
	if err := GetDB(ctx, r.db).First(&category, "category_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindBySlug(ctx context.Context, slug string) (*model.Category, error) {
	var category model.Category
	if err := GetDB(ctx, r.db).Where("slug = ?", slug).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// ListWithCounts orders by sort_order then name; product_count is a correlated count of join rows.
func (r *categoryRepository) ListWithCounts(ctx context.Context, activeOnly bool) ([]model.CategoryWithCount, error) {
	var categories []model.CategoryWithCount

	query := GetDB(ctx, r.db).Table("categories").
		Select("categories.*, (SELECT COUNT(*) FROM product_categories pc WHERE pc.category_id = categories.category_id) AS product_count")
	if activeOnly {
		query = query.Where("categories.is_active = ?", true)
	}
	if err := query.Order("categories.sort_order ASC").Order("categories.name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
