package public

import (
	"strconv"

	"github.com/jusas-smoothie/api/internal/http/handlers/shared"
	"github.com/jusas-smoothie/api/internal/http/response"
	"github.com/jusas-smoothie/api/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListProducts returns the catalog. Supports ?featured=true,
// ?bestseller=true and ?search=.
func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "0"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	filter := repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		Search:       c.Query("search"),
		FeaturedOnly: c.Query("featured") == "true",
		Bestsellers:  c.Query("bestseller") == "true",
	}

	products, total, err := h.ProductService.List(filter)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, gin.H{
		"products": products,
		"total":    total,
	})
}

// GetProduct returns one catalog entry.
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	product, err := h.ProductService.Get(id)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, product)
}
