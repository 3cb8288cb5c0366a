package service

import (
	"errors"
	"testing"

	"github.com/jusas-smoothie/api/internal/models"
	"github.com/jusas-smoothie/api/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCartServiceTest(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Cart{}, &models.CartItem{}); err != nil {
		t.Fatalf("migrate tables failed: %v", err)
	}
	return NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db)), db
}

func TestAddItemMergesExistingLine(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedProduct(t, db, "merge-line-smoothie", 149, 50)

	if _, err := svc.AddItem(101, product.ID, 2); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	cart, err := svc.AddItem(101, product.ID, 3)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("same product should stay one line, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 5 {
		t.Fatalf("quantity want 5 got %d", cart.Items[0].Quantity)
	}
}

func TestAddItemRejectsBadInput(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedProduct(t, db, "bad-input-smoothie", 149, 50)

	if _, err := svc.AddItem(102, product.ID, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected invalid quantity, got: %v", err)
	}
	if _, err := svc.AddItem(102, 999999, 1); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected product not found, got: %v", err)
	}
}

func TestUpdateItemZeroQuantityRemovesLine(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedProduct(t, db, "zero-qty-smoothie", 149, 50)

	cart, err := svc.AddItem(103, product.ID, 2)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	itemID := cart.Items[0].ID

	updated, err := svc.UpdateItem(103, itemID, 7)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Items[0].Quantity != 7 {
		t.Fatalf("quantity want 7 got %d", updated.Items[0].Quantity)
	}

	cleared, err := svc.UpdateItem(103, itemID, 0)
	if err != nil {
		t.Fatalf("zero update failed: %v", err)
	}
	if len(cleared.Items) != 0 {
		t.Fatalf("zero quantity should remove the line, got %d items", len(cleared.Items))
	}
}

func TestCartItemOwnershipEnforced(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedProduct(t, db, "foreign-item-smoothie", 149, 50)

	cart, err := svc.AddItem(104, product.ID, 2)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	itemID := cart.Items[0].ID

	if _, err := svc.UpdateItem(105, itemID, 3); !errors.Is(err, ErrForbidden) {
		t.Fatalf("update of a foreign item must be forbidden, got: %v", err)
	}
	if _, err := svc.RemoveItem(105, itemID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("removal of a foreign item must be forbidden, got: %v", err)
	}
	if _, err := svc.UpdateItem(104, 999999, 3); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("expected item not found, got: %v", err)
	}
}

func TestMergeGuestCart(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	mango := seedProduct(t, db, "merge-guest-mango", 149, 50)
	berry := seedProduct(t, db, "merge-guest-berry", 169, 50)

	if _, err := svc.AddItem(106, mango.ID, 2); err != nil {
		t.Fatalf("seed server cart failed: %v", err)
	}

	// unknown products and junk lines are skipped, quantities are summed
	cart, err := svc.Merge(106, []GuestCartLine{
		{ProductID: mango.ID, Quantity: 3},
		{ProductID: berry.ID, Quantity: 1},
		{ProductID: 999999, Quantity: 4},
		{ProductID: berry.ID, Quantity: 0},
	})
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	if len(cart.Items) != 2 {
		t.Fatalf("merged cart want 2 lines got %d", len(cart.Items))
	}

	quantities := map[uint]int{}
	for _, item := range cart.Items {
		quantities[item.ProductID] = item.Quantity
	}
	if quantities[mango.ID] != 5 {
		t.Fatalf("mango quantity want 5 got %d", quantities[mango.ID])
	}
	if quantities[berry.ID] != 1 {
		t.Fatalf("berry quantity want 1 got %d", quantities[berry.ID])
	}
}

func TestClearCart(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedProduct(t, db, "clear-smoothie", 149, 50)

	if _, err := svc.AddItem(107, product.ID, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.Clear(107); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	cart, err := svc.GetCart(107)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("cart should be empty, got %d items", len(cart.Items))
	}
}
