package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ListParams carries the optional query parameters accepted by every
// upstream list endpoint.
type ListParams struct {
	Offset int
	Limit  int
	Filter string
}

// GetListParams reads offset/limit/filter from the request query, applying
// defaults and clamping the page size.
func GetListParams(c *gin.Context) ListParams {
	params := ListParams{Limit: DefaultPageSize}

	if v := c.Query("offset"); v != "" {
		if offset, err := strconv.Atoi(v); err == nil && offset >= 0 {
			params.Offset = offset
		}
	}
	if v := c.Query("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			if limit > MaxPageSize {
				limit = MaxPageSize
			}
			params.Limit = limit
		}
	}
	params.Filter = c.Query("filter")
	return params
}

// ParseIDParam parses a path parameter as a positive int64 id.
func ParseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
