package repository

import (
	"testing"
	"time"

	"github.com/jusas-smoothie/api/internal/constants"
	"github.com/jusas-smoothie/api/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupDashboardRepositoryTest(t *testing.T) (*GormDashboardRepository, *gorm.DB) {
	t.Helper()
	// dedicated in-memory database: the overview counts globally
	db, err := gorm.Open(sqlite.Open("file:dashboard_repo_test?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("migrate dashboard tables failed: %v", err)
	}
	if err := db.Where("1 = 1").Delete(&models.Order{}).Error; err != nil {
		t.Fatalf("reset orders failed: %v", err)
	}
	if err := db.Where("1 = 1").Delete(&models.Product{}).Error; err != nil {
		t.Fatalf("reset products failed: %v", err)
	}
	return NewDashboardRepository(db), db
}

func seedOrder(t *testing.T, db *gorm.DB, status string, total int64) {
	t.Helper()
	order := models.Order{
		Status:          status,
		Total:           models.NewMoneyFromDecimal(decimal.NewFromInt(total)),
		PaymentMethod:   constants.PaymentMethodCOD,
		ShippingAddress: "123 Mango St",
		ContactNumber:   "09170000000",
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order failed: %v", err)
	}
}

func TestOverviewRevenueExcludesCancelled(t *testing.T) {
	repo, db := setupDashboardRepositoryTest(t)
	seedOrder(t, db, constants.OrderStatusPending, 100)
	seedOrder(t, db, constants.OrderStatusDelivered, 200)
	seedOrder(t, db, constants.OrderStatusCancelled, 999)

	overview, err := repo.GetOverview()
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}
	if overview.TotalOrders != 3 {
		t.Fatalf("total orders want 3 got %d", overview.TotalOrders)
	}
	if overview.TotalRevenue != 300 {
		t.Fatalf("revenue want 300 got %v", overview.TotalRevenue)
	}
	if overview.PendingOrders != 1 {
		t.Fatalf("pending orders want 1 got %d", overview.PendingOrders)
	}
	if overview.DeliveredOrders != 1 {
		t.Fatalf("delivered orders want 1 got %d", overview.DeliveredOrders)
	}
}

func TestTopProductsRankedBySold(t *testing.T) {
	repo, db := setupDashboardRepositoryTest(t)
	products := []models.Product{
		{Name: "rank-third", TotalSold: 1},
		{Name: "rank-first", TotalSold: 30},
		{Name: "rank-second", TotalSold: 10},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			t.Fatalf("seed product failed: %v", err)
		}
	}

	rows, err := repo.GetTopProducts(2)
	if err != nil {
		t.Fatalf("top products failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("top products length want 2 got %d", len(rows))
	}
	if rows[0].Name != "rank-first" || rows[1].Name != "rank-second" {
		t.Fatalf("unexpected ranking: %+v", rows)
	}
}

func TestSalesTrendsWindow(t *testing.T) {
	repo, db := setupDashboardRepositoryTest(t)
	seedOrder(t, db, constants.OrderStatusPending, 150)
	seedOrder(t, db, constants.OrderStatusCancelled, 400)

	now := time.Now()
	startAt := now.AddDate(0, 0, -7)
	endAt := now.AddDate(0, 0, 1)
	rows, err := repo.GetSalesTrends(startAt, endAt)
	if err != nil {
		t.Fatalf("sales trends failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("trend rows want 1 got %d", len(rows))
	}
	if rows[0].Orders != 1 {
		t.Fatalf("trend orders want 1 got %d", rows[0].Orders)
	}
	if rows[0].Revenue != 150 {
		t.Fatalf("trend revenue want 150 got %v", rows[0].Revenue)
	}
}
