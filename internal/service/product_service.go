package service

import (
	"strings"

	"github.com/jusas-smoothie/api/internal/constants"
	"github.com/jusas-smoothie/api/internal/models"
	"github.com/jusas-smoothie/api/internal/repository"
)

// ProductService handles the catalog.
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates the product service.
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// ProductInput carries the writable product fields.
type ProductInput struct {
	Name        string
	Description string
	Price       models.Money
	Stock       int
	ImageURL    string
	ImageCredit string
	IsFeatured  bool
}

// List returns catalog entries matching the filter.
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.productRepo.List(filter)
}

// Get fetches one product.
func (s *ProductService) Get(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create adds a product to the catalog.
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	product := &models.Product{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		ImageURL:    input.ImageURL,
		ImageCredit: input.ImageCredit,
		IsFeatured:  input.IsFeatured,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update rewrites the writable fields of a product.
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	product.Name = strings.TrimSpace(input.Name)
	product.Description = input.Description
	product.Price = input.Price
	product.Stock = input.Stock
	product.ImageURL = input.ImageURL
	product.ImageCredit = input.ImageCredit
	product.IsFeatured = input.IsFeatured
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product from the catalog.
func (s *ProductService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.productRepo.Delete(id)
}

// ToggleFeatured flips the featured flag.
func (s *ProductService) ToggleFeatured(id uint) (*models.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	product.IsFeatured = !product.IsFeatured
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Duplicate clones a product under "<name> (Copy)" with zeroed sales.
func (s *ProductService) Duplicate(id uint) (*models.Product, error) {
	source, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	clone := &models.Product{
		Name:        source.Name + " (Copy)",
		Description: source.Description,
		Price:       source.Price,
		Stock:       source.Stock,
		ImageURL:    source.ImageURL,
		ImageCredit: source.ImageCredit,
		IsFeatured:  false,
	}
	if err := s.productRepo.Create(clone); err != nil {
		return nil, err
	}
	return clone, nil
}

// AdjustStock applies a manual stock operation. Decrements clamp at
// zero instead of failing.
func (s *ProductService) AdjustStock(id uint, operation string, quantity int) (*models.Product, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	switch operation {
	case constants.StockOperationIncrement:
		if err := s.productRepo.IncrementStock(id, quantity); err != nil {
			return nil, err
		}
	case constants.StockOperationDecrement:
		if err := s.productRepo.DecrementStock(id, quantity); err != nil {
			return nil, err
		}
	default:
		return nil, ErrInvalidStockOp
	}
	return s.Get(id)
}
