package handler

import (
	"net/http"

	"steelcatalog/internal/middleware"
	"steelcatalog/internal/service"
	"steelcatalog/pkg/pagination"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
}

// NewUserHandler sets up the routing dependencies for User endpoints
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *UserHandler) RegisterRoutes(public, admin *gin.RouterGroup) {
	// Public routes
	public.POST("/users", h.RegisterUser)
	public.GET("/users/check/:firebaseUid", h.CheckUser)

	users := admin.Group("/users")
	{
		users.GET("", h.ListUsers)
		users.GET("/stats", h.GetStats)
		users.PATCH("/:id/toggle-status", h.ToggleStatus)
		users.PATCH("/:id/role", h.UpdateRole)
	}
}

// RegisterUser handles POST /users after a Firebase sign-up
// @Summary      Register a user
// @Description  Creates the storefront profile for a Firebase account with the client role
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        payload  body      service.RegisterUserRequest  true  "Registration"
// @Success      201      {object}  service.UserResponse
// @Failure      400      {object}  response.ErrorBody
// @Failure      409      {object}  response.ErrorBody
// @Router       /users [post]
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var req service.RegisterUserRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create user")
		return
	}
	c.JSON(http.StatusCreated, user)
}

// CheckUser handles GET /users/check/:firebaseUid
// @Summary      Check a user exists
// @Tags         users
// @Produce      json
// @Param        firebaseUid  path      string  true  "Firebase UID"
// @Success      200          {object}  object{found=bool}
// @Router       /users/check/{firebaseUid} [get]
func (h *UserHandler) CheckUser(c *gin.Context) {
	found, err := h.userService.UserExists(c.Request.Context(), c.Param("firebaseUid"))
	if err != nil {
		respondFetchError(c, err, "Failed to check user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"found": found})
}

// ListUsers handles GET /admin/users
// @Summary      List users
// @Description  Filters compose: status, role and timeframe. Sorting is limited to known columns.
// @Tags         admin-users
// @Produce      json
// @Param        firebase-uid  header  string  true   "Admin Firebase UID"
// @Param        status        query   string  false  "active or inactive"
// @Param        role          query   string  false  "client, admin or logistics"
// @Param        timeframe     query   string  false  "this_month"
// @Param        sortBy        query   string  false  "Sort column (default created_at)"
// @Param        order         query   string  false  "ASC or DESC (default DESC)"
// @Param        limit         query   int     false  "Page size (default 10, max 100)"
// @Param        offset        query   int     false  "Rows to skip"
// @Success      200  {array}   service.UserResponse
// @Failure      400  {object}  response.ErrorBody
// @Router       /admin/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	page := pagination.Parse(c)
	users, err := h.userService.ListUsers(c.Request.Context(), service.ListUsersQuery{
		Status:    c.Query("status"),
		Role:      c.Query("role"),
		Timeframe: c.Query("timeframe"),
		SortBy:    c.Query("sortBy"),
		Order:     c.Query("order"),
		Limit:     page.Limit,
		Offset:    page.Offset,
	})
	if err != nil {
		respondFetchError(c, err, "Failed to fetch users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// ToggleStatus handles PATCH /admin/users/:id/toggle-status
// @Summary      Toggle user status
// @Tags         admin-users
// @Produce      json
// @Param        firebase-uid  header  string  true  "Admin Firebase UID"
// @Param        id            path    int     true  "User ID"
// @Success      200  {object}  service.ToggleStatusResponse
// @Failure      404  {object}  response.ErrorBody
// @Router       /admin/users/{id}/toggle-status [patch]
func (h *UserHandler) ToggleStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	res, err := h.userService.ToggleStatus(c.Request.Context(), middleware.ActorUID(c), id)
	if err != nil {
		respondError(c, err, "Failed to update user status")
		return
	}
	c.JSON(http.StatusOK, res)
}

// UpdateRole handles PATCH /admin/users/:id/role
// @Summary      Change a user's role
// @Tags         admin-users
// @Accept       json
// @Produce      json
// @Param        firebase-uid  header  string                     true  "Admin Firebase UID"
// @Param        id            path    int                        true  "User ID"
// @Param        payload       body    service.UpdateRoleRequest  true  "Role"
// @Success      200  {object}  service.UpdateRoleResponse
// @Failure      400  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /admin/users/{id}/role [patch]
func (h *UserHandler) UpdateRole(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateRoleRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.userService.UpdateRole(c.Request.Context(), middleware.ActorUID(c), id, req.Role)
	if err != nil {
		respondError(c, err, "Failed to update user role")
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetStats handles GET /admin/users/stats
// @Summary      User statistics
// @Tags         admin-users
// @Produce      json
// @Param        firebase-uid  header  string  true  "Admin Firebase UID"
// @Success      200  {object}  model.UserStats
// @Router       /admin/users/stats [get]
func (h *UserHandler) GetStats(c *gin.Context) {
	stats, err := h.userService.Stats(c.Request.Context())
	if err != nil {
		respondFetchError(c, err, "Failed to fetch user statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}
