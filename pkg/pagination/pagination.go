package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
	MinLimit     = 1
)

// Params holds validated limit/offset window parameters
type Params struct {
	Limit  int
	Offset int
}

// Parse extracts and validates limit/offset from query parameters.
// Garbage values fall back to the defaults rather than failing the request.
func Parse(c *gin.Context) Params {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)))
	if err != nil || limit < MinLimit {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	return Params{Limit: limit, Offset: offset}
}

// FromPage converts page-style parameters into a window, used by the audit log listing
func FromPage(page, limit int) Params {
	if page < 1 {
		page = 1
	}
	if limit < MinLimit {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Params{Limit: limit, Offset: (page - 1) * limit}
}
