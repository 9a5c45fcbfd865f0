package handler

import (
	"net/http"

	"steelcatalog/internal/middleware"
	"steelcatalog/internal/service"
	"steelcatalog/pkg/response"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService service.CategoryService
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.GET("/categories", h.ListCategories)

	categories := admin.Group("/categories")
	{
		categories.GET("", h.ListAdminCategories)
		categories.POST("", h.CreateCategory)
		categories.PATCH("/:id", h.UpdateCategory)
		categories.DELETE("/:id", h.DeleteCategory)
	}
}

// ListCategories handles GET /categories
// @Summary      List active categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}   service.CategoryResponse
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListActiveCategories(c.Request.Context())
	if err != nil {
		respondFetchError(c, err, "Failed to fetch categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

// ListAdminCategories handles GET /admin/categories
// @Summary      List all categories
// @Description  Active and inactive categories with product counts
// @Tags         admin-categories
// @Produce      json
// @Param        firebase-uid  header  string  true  "Admin Firebase UID"
// @Success      200  {array}   service.CategoryResponse
// @Router       /admin/categories [get]
func (h *CategoryHandler) ListAdminCategories(c *gin.Context) {
	categories, err := h.categoryService.ListAllCategories(c.Request.Context())
	if err != nil {
		respondFetchError(c, err, "Failed to fetch categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateCategory handles POST /admin/categories
// @Summary      Create a category
// @Tags         admin-categories
// @Accept       json
// @Produce      json
// @Param        firebase-uid  header  string                   true  "Admin Firebase UID"
// @Param        payload       body    service.CategoryRequest  true  "Category"
// @Success      201  {object}  service.CategoryResponse
// @Failure      400  {object}  response.ErrorBody
// @Failure      409  {object}  response.ErrorBody
// @Router       /admin/categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req service.CategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	category, err := h.categoryService.CreateCategory(c.Request.Context(), middleware.ActorUID(c), req)
	if err != nil {
		respondError(c, err, "Failed to create category")
		return
	}
	c.JSON(http.StatusCreated, category)
}

// UpdateCategory handles PATCH /admin/categories/:id
// @Summary      Update a category
// @Tags         admin-categories
// @Accept       json
// @Produce      json
// @Param        firebase-uid  header  string                   true  "Admin Firebase UID"
// @Param        id            path    int                      true  "Category ID"
// @Param        payload       body    service.CategoryRequest  true  "Category"
// @Success      200  {object}  service.CategoryResponse
// @Failure      404  {object}  response.ErrorBody
// @Router       /admin/categories/{id} [patch]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req service.CategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	category, err := h.categoryService.UpdateCategory(c.Request.Context(), middleware.ActorUID(c), id, req)
	if err != nil {
		respondError(c, err, "Failed to update category")
		return
	}
	c.JSON(http.StatusOK, category)
}

// DeleteCategory handles DELETE /admin/categories/:id
// @Summary      Delete a category
// @Description  Products stay; only their links to the category are removed
// @Tags         admin-categories
// @Produce      json
// @Param        firebase-uid  header  string  true  "Admin Firebase UID"
// @Param        id            path    int     true  "Category ID"
// @Success      200  {object}  response.Success
// @Failure      404  {object}  response.ErrorBody
// @Router       /admin/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.categoryService.DeleteCategory(c.Request.Context(), middleware.ActorUID(c), id); err != nil {
		respondError(c, err, "Failed to delete category")
		return
	}
	c.JSON(http.StatusOK, response.Success{Success: true})
}
