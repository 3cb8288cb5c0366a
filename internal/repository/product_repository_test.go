package repository

import (
	"testing"

	"github.com/jusas-smoothie/api/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupProductRepositoryTest(t *testing.T) (*GormProductRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("migrate product failed: %v", err)
	}
	return NewProductRepository(db), db
}

func createProduct(t *testing.T, repo *GormProductRepository, name string, price int64, stock int, featured bool) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:       name,
		Price:      models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
		Stock:      stock,
		IsFeatured: featured,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestDeductStockGuardsAgainstOversell(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	product := createProduct(t, repo, "deduct-guard", 149, 5, false)

	affected, err := repo.DeductStock(product.ID, 3)
	if err != nil {
		t.Fatalf("deduct stock failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("deduct affected want 1 got %d", affected)
	}

	// only 2 left, asking for 3 must touch no rows
	affected, err = repo.DeductStock(product.ID, 3)
	if err != nil {
		t.Fatalf("second deduct failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("oversell deduct affected want 0 got %d", affected)
	}

	reloaded, err := repo.GetByID(product.ID)
	if err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if reloaded.Stock != 2 {
		t.Fatalf("stock want 2 got %d", reloaded.Stock)
	}
	if reloaded.TotalSold != 3 {
		t.Fatalf("total sold want 3 got %d", reloaded.TotalSold)
	}
}

func TestDeductStockRejectsInvalidParams(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	if _, err := repo.DeductStock(0, 1); err == nil {
		t.Fatalf("expected error for zero product id")
	}
	if _, err := repo.DeductStock(1, 0); err == nil {
		t.Fatalf("expected error for zero quantity")
	}
}

func TestDecrementStockClampsAtZero(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	product := createProduct(t, repo, "decrement-clamp", 149, 3, false)

	if err := repo.DecrementStock(product.ID, 10); err != nil {
		t.Fatalf("decrement failed: %v", err)
	}
	reloaded, err := repo.GetByID(product.ID)
	if err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if reloaded.Stock != 0 {
		t.Fatalf("stock want 0 got %d", reloaded.Stock)
	}

	if err := repo.IncrementStock(product.ID, 7); err != nil {
		t.Fatalf("increment failed: %v", err)
	}
	reloaded, err = repo.GetByID(product.ID)
	if err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if reloaded.Stock != 7 {
		t.Fatalf("stock want 7 got %d", reloaded.Stock)
	}
}

func TestListFeaturedFilter(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	createProduct(t, repo, "featured-filter-plain", 149, 10, false)
	featured := createProduct(t, repo, "featured-filter-starred", 159, 10, true)

	products, _, err := repo.List(ProductListFilter{FeaturedOnly: true, Search: "featured-filter"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("featured list length want 1 got %d", len(products))
	}
	if products[0].ID != featured.ID {
		t.Fatalf("featured list returned product %d, want %d", products[0].ID, featured.ID)
	}
}

func TestListBestsellerOrdering(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)
	slow := createProduct(t, repo, "bestseller-slow", 149, 10, false)
	fast := createProduct(t, repo, "bestseller-fast", 159, 10, false)
	if err := db.Model(&models.Product{}).Where("id = ?", fast.ID).Update("total_sold", 20).Error; err != nil {
		t.Fatalf("seed total_sold failed: %v", err)
	}
	if err := db.Model(&models.Product{}).Where("id = ?", slow.ID).Update("total_sold", 2).Error; err != nil {
		t.Fatalf("seed total_sold failed: %v", err)
	}

	products, _, err := repo.List(ProductListFilter{Bestsellers: true, Search: "bestseller-"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("list length want 2 got %d", len(products))
	}
	if products[0].ID != fast.ID {
		t.Fatalf("bestseller ordering: first product want %d got %d", fast.ID, products[0].ID)
	}
}
