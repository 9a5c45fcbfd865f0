package handler

import (
	"net/http"
	"strconv"

	"steelcatalog/internal/repository"
	"steelcatalog/internal/service"
	"steelcatalog/pkg/pagination"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	auditService service.AuditService
}

func NewAuditHandler(auditService service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

func (h *AuditHandler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/audit-logs", h.GetAuditLogs)
}

// GetAuditLogs retrieves the admin write history, newest first
// @Summary      Get audit logs
// @Tags         audit
// @Produce      json
// @Param        firebase-uid  header  string  true   "Admin Firebase UID"
// @Param        page          query   int     false  "Page number (default 1)"
// @Param        limit         query   int     false  "Items per page (default 10)"
// @Param        entity_type   query   string  false  "product, category or user"
// @Param        actor_uid     query   string  false  "Admin Firebase UID"
// @Success      200  {object}  service.AuditLogPage
// @Router       /admin/audit-logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(pagination.DefaultLimit)))
	window := pagination.FromPage(page, limit)

	logs, err := h.auditService.GetAuditLogs(c.Request.Context(), repository.AuditFilter{
		EntityType: c.Query("entity_type"),
		ActorUID:   c.Query("actor_uid"),
		Limit:      window.Limit,
		Offset:     window.Offset,
	})
	if err != nil {
		respondFetchError(c, err, "Failed to retrieve audit logs")
		return
	}
	c.JSON(http.StatusOK, logs)
}
