package shared

import (
	"strconv"

	"github.com/jusas-smoothie/api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// CurrentUserID reads the authenticated user ID from the context,
// answering 401 when it is missing.
func CurrentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, "authentication required")
		return 0, false
	}
	id, ok := value.(uint)
	if !ok || id == 0 {
		response.Unauthorized(c, "authentication required")
		return 0, false
	}
	return id, true
}

// CurrentUserRole reads the authenticated role, empty when absent.
func CurrentUserRole(c *gin.Context) string {
	if value, ok := c.Get("user_role"); ok {
		if role, ok := value.(string); ok {
			return role
		}
	}
	return ""
}

// ParseUintParam parses a numeric path parameter, answering 400 on
// garbage.
func ParseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(value), true
}

// NormalizePagination clamps page parameters. A zero page size means
// no pagination.
func NormalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 0 {
		pageSize = 0
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}
