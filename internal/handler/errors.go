package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"steelcatalog/internal/logging"
	"steelcatalog/internal/service"
	"steelcatalog/pkg/response"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto status codes. Unclassified errors become
// a 500 carrying failMsg and the underlying error as details.
func respondError(c *gin.Context, err error, failMsg string) {
	writeError(c, err, failMsg, true)
}

// respondFetchError is respondError for read routes: a 500 carries failMsg only.
func respondFetchError(c *gin.Context, err error, failMsg string) {
	writeError(c, err, failMsg, false)
}

func writeError(c *gin.Context, err error, failMsg string, withDetails bool) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, response.Error(reason(err)))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, response.Error(capitalize(reason(err))+" not found"))
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, response.Error(reason(err)))
	default:
		logging.FromContext(c.Request.Context()).Error(failMsg, "error", err)
		_ = c.Error(err)
		if withDetails {
			c.JSON(http.StatusInternalServerError, response.ErrorWithDetails(failMsg, err))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(failMsg))
	}
}

// reason drops the sentinel prefix, "invalid input: sku is required" -> "sku is required"
func reason(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// parseID reads a positive numeric path parameter, writing a 400 when it is not one
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, response.Error("Invalid "+name))
		return 0, false
	}
	return uint(id), true
}

func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorWithDetails("Invalid request payload", err))
		return false
	}
	return true
}
