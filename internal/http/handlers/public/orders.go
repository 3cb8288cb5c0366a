package public

import (
	"strconv"

	"github.com/jusas-smoothie/api/internal/constants"
	"github.com/jusas-smoothie/api/internal/http/handlers/shared"
	"github.com/jusas-smoothie/api/internal/http/response"
	"github.com/jusas-smoothie/api/internal/repository"
	"github.com/jusas-smoothie/api/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateOrderRequest is the checkout payload.
type CreateOrderRequest struct {
	Items           []service.OrderLineInput `json:"items" binding:"required"`
	PaymentMethod   string                   `json:"paymentMethod" binding:"required"`
	PaymentProof    string                   `json:"paymentProof"`
	ShippingAddress string                   `json:"shippingAddress" binding:"required"`
	ContactNumber   string                   `json:"contactNumber" binding:"required"`
}

// CreateOrder places an order for the caller's items.
func (h *Handler) CreateOrder(c *gin.Context) {
	uid, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	order, err := h.OrderService.CreateOrder(service.CreateOrderInput{
		UserID:          &uid,
		Items:           req.Items,
		PaymentMethod:   req.PaymentMethod,
		PaymentProof:    req.PaymentProof,
		ShippingAddress: req.ShippingAddress,
		ContactNumber:   req.ContactNumber,
	})
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Created(c, order)
}

// ListOrders returns order history. Admins see every order and may
// filter with ?userId=.
func (h *Handler) ListOrders(c *gin.Context) {
	uid, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	role := shared.CurrentUserRole(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "0"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	filter := repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
	}
	if role == constants.RoleAdmin {
		if raw := c.Query("userId"); raw != "" {
			if userID, err := strconv.ParseUint(raw, 10, 32); err == nil {
				filter.UserID = uint(userID)
			}
		}
	}

	orders, total, err := h.OrderService.ListOrders(uid, role, filter)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, gin.H{
		"orders": orders,
		"total":  total,
	})
}

// GetOrder returns one order, owner or admin only.
func (h *Handler) GetOrder(c *gin.Context) {
	uid, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	orderID, ok := shared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	order, err := h.OrderService.GetOrder(orderID, uid, shared.CurrentUserRole(c))
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, order)
}

// UploadPaymentProof stores a payment screenshot and returns its URL.
func (h *Handler) UploadPaymentProof(c *gin.Context) {
	if _, ok := shared.CurrentUserID(c); !ok {
		return
	}
	file, err := c.FormFile("paymentProof")
	if err != nil {
		response.BadRequest(c, "paymentProof file is required")
		return
	}
	fileURL, err := h.UploadService.SaveFile(file)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.OK(c, gin.H{
		"success": true,
		"fileUrl": fileURL,
	})
}
