package repository

import (
	"testing"

	"github.com/jusas-smoothie/api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCartRepositoryTest(t *testing.T) (*GormCartRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Cart{}, &models.CartItem{}); err != nil {
		t.Fatalf("migrate cart tables failed: %v", err)
	}
	return NewCartRepository(db), db
}

func TestGetOrCreateByUserIDIsIdempotent(t *testing.T) {
	repo, _ := setupCartRepositoryTest(t)

	first, err := repo.GetOrCreateByUserID(501)
	if err != nil {
		t.Fatalf("first get-or-create failed: %v", err)
	}
	second, err := repo.GetOrCreateByUserID(501)
	if err != nil {
		t.Fatalf("second get-or-create failed: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected the same cart, got %d and %d", first.ID, second.ID)
	}
	if len(second.Items) != 0 {
		t.Fatalf("fresh cart should be empty, got %d items", len(second.Items))
	}
}

func TestCartItemLifecycle(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	product := models.Product{Name: "cart-lifecycle-product", Stock: 10}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	cart, err := repo.GetOrCreateByUserID(502)
	if err != nil {
		t.Fatalf("get-or-create failed: %v", err)
	}

	item := &models.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: 2}
	if err := repo.CreateItem(item); err != nil {
		t.Fatalf("create item failed: %v", err)
	}

	found, err := repo.GetItem(cart.ID, product.ID)
	if err != nil {
		t.Fatalf("get item failed: %v", err)
	}
	if found == nil || found.Quantity != 2 {
		t.Fatalf("unexpected item: %+v", found)
	}

	if err := repo.UpdateItemQuantity(item.ID, 5); err != nil {
		t.Fatalf("update quantity failed: %v", err)
	}
	found, err = repo.GetItemByID(item.ID)
	if err != nil {
		t.Fatalf("get item by id failed: %v", err)
	}
	if found.Quantity != 5 {
		t.Fatalf("quantity want 5 got %d", found.Quantity)
	}

	if err := repo.ClearCart(cart.ID); err != nil {
		t.Fatalf("clear cart failed: %v", err)
	}
	found, err = repo.GetItem(cart.ID, product.ID)
	if err != nil {
		t.Fatalf("get item after clear failed: %v", err)
	}
	if found != nil {
		t.Fatalf("expected empty cart after clear, got %+v", found)
	}
}
