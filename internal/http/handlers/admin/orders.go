package admin

import (
	"github.com/jusas-smoothie/api/internal/http/handlers/shared"
	"github.com/jusas-smoothie/api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// UpdateOrderStatusRequest moves an order along its lifecycle.
type UpdateOrderStatusRequest struct {
	Status        string `json:"status" binding:"required"`
	DeclineReason string `json:"declineReason"`
}

// UpdateOrderStatus transitions an order. Delivery stamps the
// delivery time, cancellation records the reason.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	orderID, ok := shared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}
	order, err := h.OrderService.UpdateStatus(orderID, req.Status, req.DeclineReason)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, order)
}
