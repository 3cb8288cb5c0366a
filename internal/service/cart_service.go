package service

import (
	"github.com/jusas-smoothie/api/internal/models"
	"github.com/jusas-smoothie/api/internal/repository"

	"gorm.io/gorm"
)

// CartService keeps one server-side cart per user with one line per
// product.
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService creates the cart service.
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// GuestCartLine is one line submitted from a local guest cart.
type GuestCartLine struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// GetCart returns the user's cart, creating an empty one on first
// access.
func (s *CartService) GetCart(userID uint) (*models.Cart, error) {
	return s.cartRepo.GetOrCreateByUserID(userID)
}

// AddItem puts quantity units of a product into the cart. An existing
// line for the product absorbs the quantity instead of duplicating.
func (s *CartService) AddItem(userID, productID uint, quantity int) (*models.Cart, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	cart, err := s.cartRepo.GetOrCreateByUserID(userID)
	if err != nil {
		return nil, err
	}

	err = s.cartRepo.Transaction(func(tx *gorm.DB) error {
		repo := s.cartRepo.WithTx(tx)
		existing, err := repo.GetItem(cart.ID, productID)
		if err != nil {
			return err
		}
		if existing != nil {
			return repo.UpdateItemQuantity(existing.ID, existing.Quantity+quantity)
		}
		return repo.CreateItem(&models.CartItem{
			CartID:    cart.ID,
			ProductID: productID,
			Quantity:  quantity,
		})
	})
	if err != nil {
		return nil, err
	}
	return s.cartRepo.GetByUserID(userID)
}

// UpdateItem sets a line's quantity. Zero or less removes the line.
// The line must belong to the user's cart.
func (s *CartService) UpdateItem(userID, itemID uint, quantity int) (*models.Cart, error) {
	item, cart, err := s.ownedItem(userID, itemID)
	if err != nil {
		return nil, err
	}
	if quantity <= 0 {
		if err := s.cartRepo.DeleteItem(item.ID); err != nil {
			return nil, err
		}
	} else {
		if err := s.cartRepo.UpdateItemQuantity(item.ID, quantity); err != nil {
			return nil, err
		}
	}
	return s.cartRepo.GetByUserID(cart.UserID)
}

// RemoveItem deletes a line from the user's cart.
func (s *CartService) RemoveItem(userID, itemID uint) (*models.Cart, error) {
	item, cart, err := s.ownedItem(userID, itemID)
	if err != nil {
		return nil, err
	}
	if err := s.cartRepo.DeleteItem(item.ID); err != nil {
		return nil, err
	}
	return s.cartRepo.GetByUserID(cart.UserID)
}

// Merge folds a guest cart into the user's server cart. Quantities of
// shared products add up, unknown products are skipped.
func (s *CartService) Merge(userID uint, lines []GuestCartLine) (*models.Cart, error) {
	cart, err := s.cartRepo.GetOrCreateByUserID(userID)
	if err != nil {
		return nil, err
	}

	err = s.cartRepo.Transaction(func(tx *gorm.DB) error {
		repo := s.cartRepo.WithTx(tx)
		products := s.productRepo.WithTx(tx)
		for _, line := range lines {
			if line.ProductID == 0 || line.Quantity <= 0 {
				continue
			}
			product, err := products.GetByID(line.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				continue
			}
			existing, err := repo.GetItem(cart.ID, line.ProductID)
			if err != nil {
				return err
			}
			if existing != nil {
				if err := repo.UpdateItemQuantity(existing.ID, existing.Quantity+line.Quantity); err != nil {
					return err
				}
				continue
			}
			if err := repo.CreateItem(&models.CartItem{
				CartID:    cart.ID,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.cartRepo.GetByUserID(userID)
}

// Clear empties the user's cart.
func (s *CartService) Clear(userID uint) error {
	cart, err := s.cartRepo.GetByUserID(userID)
	if err != nil || cart == nil {
		return err
	}
	return s.cartRepo.ClearCart(cart.ID)
}

func (s *CartService) ownedItem(userID, itemID uint) (*models.CartItem, *models.Cart, error) {
	item, err := s.cartRepo.GetItemByID(itemID)
	if err != nil {
		return nil, nil, err
	}
	if item == nil {
		return nil, nil, ErrCartItemNotFound
	}
	cart, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		return nil, nil, err
	}
	if cart == nil || cart.ID != item.CartID {
		return nil, nil, ErrForbidden
	}
	return item, cart, nil
}
