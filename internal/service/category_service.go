package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"steelcatalog/internal/events"
	"steelcatalog/internal/model"
	"steelcatalog/internal/repository"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CategoryRequest struct {
	Name                 string                     `json:"name" binding:"required"`
	Slug                 string                     `json:"slug"` // derived from name when empty
	Description          string                     `json:"description"`
	IsBulkOnly           bool                       `json:"is_bulk_only"`
	SteelCharacteristics model.SteelCharacteristics `json:"steel_characteristics"`
	SortOrder            int                        `json:"sort_order"`
	IsActive             *bool                      `json:"is_active"`
}

type CategoryResponse struct {
	CategoryID           uint                       `json:"category_id"`
	Name                 string                     `json:"name"`
	Slug                 string                     `json:"slug"`
	Description          string                     `json:"description"`
	IsBulkOnly           bool                       `json:"is_bulk_only"`
	SteelCharacteristics model.SteelCharacteristics `json:"steel_characteristics"`
	SortOrder            int                        `json:"sort_order"`
	IsActive             bool                       `json:"is_active"`
	ProductCount         *int64                     `json:"product_count,omitempty"` // listings only
	CreatedAt            time.Time                  `json:"created_at"`
	UpdatedAt            time.Time                  `json:"updated_at"`
}

type CategoryService interface {
	ListActiveCategories(ctx context.Context) ([]CategoryResponse, error)
	ListAllCategories(ctx context.Context) ([]CategoryResponse, error)
	CreateCategory(ctx context.Context, actorUID string, req CategoryRequest) (CategoryResponse, error)
	UpdateCategory(ctx context.Context, actorUID string, id uint, req CategoryRequest) (CategoryResponse, error)
	DeleteCategory(ctx context.Context, actorUID string, id uint) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	auditRepo    repository.AuditRepository
	txManager    repository.TransactionManager
	publisher    events.Publisher
}

func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	publisher events.Publisher,
) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		auditRepo:    auditRepo,
		txManager:    txManager,
		publisher:    publisher,
	}
}

var (
	slugPattern  = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	nonSlugRunes = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify lowercases name and joins its alphanumeric runs with hyphens
func Slugify(name string) string {
	return strings.Trim(nonSlugRunes.ReplaceAllString(strings.ToLower(name), "-"), "-")
}

func validateCategoryRequest(req *CategoryRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Slug = strings.TrimSpace(req.Slug)
	if req.Name == "" {
		return invalidf("name is required")
	}
	if req.Slug == "" {
		req.Slug = Slugify(req.Name)
	}
	if !slugPattern.MatchString(req.Slug) {
		return invalidf("slug must contain only lowercase letters, digits and single hyphens")
	}
	if req.SortOrder < 0 {
		return invalidf("sort_order must not be negative")
	}
	return nil
}

func applyCategoryRequest(c *model.Category, req CategoryRequest) {
	c.Name = req.Name
	c.Slug = req.Slug
	c.Description = req.Description
	c.IsBulkOnly = req.IsBulkOnly
	c.SteelCharacteristics = datatypes.NewJSONType(req.SteelCharacteristics)
	c.SortOrder = req.SortOrder
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
}

// checkSlug rejects a slug used by a category other than selfID
func (s *categoryService) checkSlug(ctx context.Context, slug string, selfID uint) error {
	existing, err := s.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up slug: %w", err)
	}
	if existing.CategoryID != selfID {
		return fmt.Errorf("%w: slug %q already exists", ErrConflict, slug)
	}
	return nil
}

func (s *categoryService) ListActiveCategories(ctx context.Context) ([]CategoryResponse, error) {
	return s.list(ctx, true)
}

func (s *categoryService) ListAllCategories(ctx context.Context) ([]CategoryResponse, error) {
	return s.list(ctx, false)
}

func (s *categoryService) list(ctx context.Context, activeOnly bool) ([]CategoryResponse, error) {
	categories, err := s.categoryRepo.ListWithCounts(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	res := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		item := toCategoryResponse(c.Category)
		count := c.ProductCount
		item.ProductCount = &count
		res = append(res, item)
	}
	return res, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, actorUID string, req CategoryRequest) (CategoryResponse, error) {
	if err := validateCategoryRequest(&req); err != nil {
		return CategoryResponse{}, err
	}

	category := &model.Category{IsActive: true}
	applyCategoryRequest(category, req)

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.checkSlug(txCtx, category.Slug, 0); err != nil {
			return err
		}
		if err := s.categoryRepo.Create(txCtx, category); err != nil {
			if isDuplicate(err) {
				return fmt.Errorf("%w: slug %q already exists", ErrConflict, category.Slug)
			}
			return fmt.Errorf("failed to create category: %w", err)
		}
		return recordAudit(txCtx, s.auditRepo, actorUID, model.ActionCreateCategory, model.EntityCategory, category.CategoryID,
			map[string]string{"name": category.Name, "slug": category.Slug})
	})
	if err != nil {
		return CategoryResponse{}, err
	}

	res := toCategoryResponse(*category)
	publish(ctx, s.publisher, events.New(model.EventCategoryCreated, category.CategoryID, actorUID, res))
	return res, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, actorUID string, id uint, req CategoryRequest) (CategoryResponse, error) {
	if err := validateCategoryRequest(&req); err != nil {
		return CategoryResponse{}, err
	}

	var category *model.Category
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		category, err = s.categoryRepo.FindByID(txCtx, id)
		if err != nil {
			return notFoundOr(err, "category", "fetch category")
		}
		if err := s.checkSlug(txCtx, req.Slug, id); err != nil {
			return err
		}

		applyCategoryRequest(category, req)
		if err := s.categoryRepo.Update(txCtx, category); err != nil {
			if isDuplicate(err) {
				return fmt.Errorf("%w: slug %q already exists", ErrConflict, category.Slug)
			}
			return fmt.Errorf("failed to update category: %w", err)
		}
		return recordAudit(txCtx, s.auditRepo, actorUID, model.ActionUpdateCategory, model.EntityCategory, id,
			map[string]interface{}{"name": category.Name, "slug": category.Slug, "is_active": category.IsActive})
	})
	if err != nil {
		return CategoryResponse{}, err
	}

	res := toCategoryResponse(*category)
	publish(ctx, s.publisher, events.New(model.EventCategoryUpdated, id, actorUID, res))
	return res, nil
}

// DeleteCategory removes the category; linked products lose their category but stay.
func (s *categoryService) DeleteCategory(ctx context.Context, actorUID string, id uint) error {
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.categoryRepo.Delete(txCtx, id); err != nil {
			return notFoundOr(err, "category", "delete category")
		}
		return recordAudit(txCtx, s.auditRepo, actorUID, model.ActionDeleteCategory, model.EntityCategory, id, nil)
	})
	if err != nil {
		return err
	}

	publish(ctx, s.publisher, events.New(model.EventCategoryDeleted, id, actorUID, nil))
	return nil
}

func toCategoryResponse(c model.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:           c.CategoryID,
		Name:                 c.Name,
		Slug:                 c.Slug,
		Description:          c.Description,
		IsBulkOnly:           c.IsBulkOnly,
		SteelCharacteristics: c.SteelCharacteristics.Data(),
		SortOrder:            c.SortOrder,
		IsActive:             c.IsActive,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
}
