package public

import (
	"github.com/jusas-smoothie/api/internal/http/handlers/shared"
	"github.com/jusas-smoothie/api/internal/http/response"
	"github.com/jusas-smoothie/api/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest adds units of a product to the cart.
type AddCartItemRequest struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// UpdateCartItemRequest sets a line's quantity. Zero deletes the line,
// so the field must be present but may be zero.
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// MergeCartRequest folds a guest cart into the server cart.
type MergeCartRequest struct {
	GuestCart []service.GuestCartLine `json:"guestCart" binding:"required"`
}

// GetCart returns the caller's cart, creating it on first access.
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	cart, err := h.CartService.GetCart(uid)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, cart)
}

// AddCartItem adds a product line, merging into an existing line.
func (h *Handler) AddCartItem(c *gin.Context) {
	uid, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}
	cart, err := h.CartService.AddItem(uid, req.ProductID, req.Quantity)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Created(c, cart)
}

// UpdateCartItem sets a line's quantity; zero or less removes it.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	uid, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	itemID, ok := shared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
		response.BadRequest(c, "invalid request payload")
		return
	}
	cart, err := h.CartService.UpdateItem(uid, itemID, *req.Quantity)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, cart)
}

// RemoveCartItem deletes a line.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	uid, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	itemID, ok := shared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	cart, err := h.CartService.RemoveItem(uid, itemID)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, cart)
}

// MergeCart folds a guest cart into the server cart, summing shared
// product quantities.
func (h *Handler) MergeCart(c *gin.Context) {
	uid, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	var req MergeCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}
	cart, err := h.CartService.Merge(uid, req.GuestCart)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, cart)
}
