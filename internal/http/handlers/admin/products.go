package admin

import (
	"github.com/jusas-smoothie/api/internal/http/handlers/shared"
	"github.com/jusas-smoothie/api/internal/http/response"
	"github.com/jusas-smoothie/api/internal/models"
	"github.com/jusas-smoothie/api/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductRequest carries the writable product fields.
type ProductRequest struct {
	Name        string       `json:"name" binding:"required"`
	Description string       `json:"description"`
	Price       models.Money `json:"price" binding:"required"`
	Stock       int          `json:"stock"`
	ImageURL    string       `json:"imageUrl"`
	ImageCredit string       `json:"imageCredit"`
	IsFeatured  bool         `json:"isFeatured"`
}

// StockAdjustRequest applies a manual stock operation.
type StockAdjustRequest struct {
	Operation string `json:"operation" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

func (r ProductRequest) toInput() service.ProductInput {
	return service.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
		ImageURL:    r.ImageURL,
		ImageCredit: r.ImageCredit,
		IsFeatured:  r.IsFeatured,
	}
}

// CreateProduct adds a catalog entry.
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}
	product, err := h.ProductService.Create(req.toInput())
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Created(c, product)
}

// UpdateProduct rewrites a catalog entry.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}
	product, err := h.ProductService.Update(id, req.toInput())
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, product)
}

// DeleteProduct removes a catalog entry.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.ProductService.Delete(id); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "product deleted"})
}

// ToggleFeatured flips the featured flag.
func (h *Handler) ToggleFeatured(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	product, err := h.ProductService.ToggleFeatured(id)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, product)
}

// AdjustStock increments or decrements shelf stock.
func (h *Handler) AdjustStock(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	var req StockAdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}
	product, err := h.ProductService.AdjustStock(id, req.Operation, req.Quantity)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, product)
}

// DuplicateProduct clones a product under "<name> (Copy)".
func (h *Handler) DuplicateProduct(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	product, err := h.ProductService.Duplicate(id)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Created(c, product)
}
