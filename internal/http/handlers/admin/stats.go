package admin

import (
	"github.com/jusas-smoothie/api/internal/http/handlers/shared"
	"github.com/jusas-smoothie/api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetStats returns the dashboard overview: revenue, order counts,
// bestsellers and the daily sales series.
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.DashboardService.GetStats(c.Request.Context())
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, stats)
}
