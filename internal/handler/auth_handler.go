package handler

import (
	"net/http"
	"time"

	"steelcatalog/internal/middleware"
	"steelcatalog/internal/service"
	"steelcatalog/internal/websocket"
	"steelcatalog/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService  service.AuthService
	ticketSecret []byte
	ticketTTL    time.Duration
}

func NewAuthHandler(authService service.AuthService, ticketSecret []byte, ticketTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, ticketSecret: ticketSecret, ticketTTL: ticketTTL}
}

func (h *AuthHandler) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.POST("/auth/check-admin", h.CheckAdmin)
	admin.GET("/ws-ticket", h.IssueWsTicket)
}

// CheckAdmin handles POST /auth/check-admin
// @Summary      Check admin access
// @Description  Unknown users are reported as neither admin nor active
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CheckAdminRequest  true  "Firebase UID"
// @Success      200      {object}  service.CheckAdminResponse
// @Failure      400      {object}  response.ErrorBody
// @Router       /auth/check-admin [post]
func (h *AuthHandler) CheckAdmin(c *gin.Context) {
	var req service.CheckAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Missing required fields"))
		return
	}
	res, err := h.authService.CheckAdmin(c.Request.Context(), req.FirebaseUID)
	if err != nil {
		respondFetchError(c, err, "Failed to check admin status")
		return
	}
	c.JSON(http.StatusOK, res)
}

// IssueWsTicket handles GET /admin/ws-ticket
// @Summary      Issue a live-update ticket
// @Description  Short-lived token for opening /ws?token=<ticket>
// @Tags         auth
// @Produce      json
// @Param        firebase-uid  header  string  true  "Admin Firebase UID"
// @Success      200  {object}  websocket.Ticket
// @Router       /admin/ws-ticket [get]
func (h *AuthHandler) IssueWsTicket(c *gin.Context) {
	admin, _ := middleware.AdminFrom(c)
	ticket, err := websocket.IssueTicket(h.ticketSecret, admin.FirebaseUID, admin.Role, h.ticketTTL, time.Now())
	if err != nil {
		respondFetchError(c, err, "Failed to issue ticket")
		return
	}
	c.JSON(http.StatusOK, ticket)
}
