package handler

import (
	"net/http"

	"steelcatalog/internal/middleware"
	"steelcatalog/internal/service"
	"steelcatalog/pkg/response"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// RegisterRoutes binds the public catalog and the gated admin endpoints
func (h *ProductHandler) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.GET("/products", h.ListProducts)

	products := admin.Group("/products")
	{
		products.GET("", h.ListAdminProducts)
		products.GET("/export", h.ExportProducts)
		products.GET("/:id", h.GetProduct)
		products.POST("", h.CreateProduct)
		products.PATCH("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
	}
}

// ListProducts handles GET /products
// @Summary      List catalog products
// @Description  Active products with category, images and documents, newest first
// @Tags         products
// @Produce      json
// @Success      200  {array}   service.ProductResponse
// @Failure      500  {object}  response.ErrorBody
// @Router       /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.productService.ListActiveProducts(c.Request.Context())
	if err != nil {
		respondFetchError(c, err, "Failed to fetch products")
		return
	}
	c.JSON(http.StatusOK, products)
}

// ListAdminProducts handles GET /admin/products
// @Summary      List products (admin)
// @Tags         admin-products
// @Produce      json
// @Param        firebase-uid  header  string  true  "Admin Firebase UID"
// @Success      200  {array}   service.ProductResponse
// @Failure      401  {object}  response.ErrorBody
// @Failure      403  {object}  response.ErrorBody
// @Router       /admin/products [get]
func (h *ProductHandler) ListAdminProducts(c *gin.Context) {
	products, err := h.productService.ListActiveProducts(c.Request.Context())
	if err != nil {
		respondFetchError(c, err, "Failed to fetch products")
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /admin/products/:id
// @Summary      Get a product
// @Tags         admin-products
// @Produce      json
// @Param        firebase-uid  header  string  true  "Admin Firebase UID"
// @Param        id            path    int     true  "Product ID"
// @Success      200  {object}  service.ProductResponse
// @Failure      404  {object}  response.ErrorBody
// @Router       /admin/products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondFetchError(c, err, "Failed to fetch product")
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /admin/products
// @Summary      Create a product
// @Description  Inserts the product, its category link, images and documents in one transaction
// @Tags         admin-products
// @Accept       json
// @Produce      json
// @Param        firebase-uid  header  string                  true  "Admin Firebase UID"
// @Param        payload       body    service.ProductRequest  true  "Product"
// @Success      201  {object}  service.ProductResponse
// @Failure      400  {object}  response.ErrorBody
// @Failure      409  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /admin/products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req service.ProductRequest
	if !bindJSON(c, &req) {
		return
	}
	product, err := h.productService.CreateProduct(c.Request.Context(), middleware.ActorUID(c), req)
	if err != nil {
		respondError(c, err, "Failed to add product")
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PATCH /admin/products/:id
// @Summary      Update a product
// @Description  Overwrites the product row; images and documents are replaced only when sent
// @Tags         admin-products
// @Accept       json
// @Produce      json
// @Param        firebase-uid  header  string                  true  "Admin Firebase UID"
// @Param        id            path    int                     true  "Product ID"
// @Param        payload       body    service.ProductRequest  true  "Product"
// @Success      200  {object}  service.ProductResponse
// @Failure      400  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /admin/products/{id} [patch]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req service.ProductRequest
	if !bindJSON(c, &req) {
		return
	}
	product, err := h.productService.UpdateProduct(c.Request.Context(), middleware.ActorUID(c), id, req)
	if err != nil {
		respondError(c, err, "Failed to update product")
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /admin/products/:id
// @Summary      Delete a product
// @Tags         admin-products
// @Produce      json
// @Param        firebase-uid  header  string  true  "Admin Firebase UID"
// @Param        id            path    int     true  "Product ID"
// @Success      200  {object}  response.Message
// @Failure      404  {object}  response.ErrorBody
// @Router       /admin/products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.productService.DeleteProduct(c.Request.Context(), middleware.ActorUID(c), id); err != nil {
		respondError(c, err, "Failed to delete product")
		return
	}
	c.JSON(http.StatusOK, response.Message{Message: "Product deleted successfully"})
}

// ExportProducts handles GET /admin/products/export
// @Summary      Export products
// @Description  Every product, active or not, as an Excel workbook
// @Tags         admin-products
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        firebase-uid  header  string  true  "Admin Firebase UID"
// @Success      200
// @Router       /admin/products/export [get]
func (h *ProductHandler) ExportProducts(c *gin.Context) {
	products, err := h.productService.ListAllProducts(c.Request.Context())
	if err != nil {
		respondFetchError(c, err, "Failed to fetch products")
		return
	}

	file, err := productWorkbook(products)
	if err != nil {
		respondFetchError(c, err, "Failed to create excel file")
		return
	}

	c.Header("Content-Disposition", "attachment; filename=products.xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Expires", "0")
	c.Status(http.StatusOK)
	if err := file.Write(c.Writer); err != nil {
		_ = c.Error(err)
	}
}
