package repository

import (
	"fmt"
	"time"

	"github.com/jusas-smoothie/api/internal/constants"
	"github.com/jusas-smoothie/api/internal/models"

	"gorm.io/gorm"
)

// DashboardRepository aggregates storefront statistics. Pure
// aggregation, no business rules.
type DashboardRepository interface {
	GetOverview() (DashboardOverviewRow, error)
	GetTopProducts(limit int) ([]DashboardProductRankingRow, error)
	GetSalesTrends(startAt, endAt time.Time) ([]DashboardSalesTrendRow, error)
}

// DashboardOverviewRow holds the raw overview counters.
type DashboardOverviewRow struct {
	TotalOrders     int64
	TotalRevenue    float64
	PendingOrders   int64
	DeliveredOrders int64
}

// DashboardProductRankingRow is one product ranking line.
type DashboardProductRankingRow struct {
	ProductID uint
	Name      string
	TotalSold int64
	Stock     int64
}

// DashboardSalesTrendRow is one day of sales.
type DashboardSalesTrendRow struct {
	Day     string
	Orders  int64
	Revenue float64
}

// GormDashboardRepository is the GORM implementation.
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates the dashboard repository.
func NewDashboardRepository(db *gorm.DB) *GormDashboardRepository {
	return &GormDashboardRepository{db: db}
}

// GetOverview counts orders and sums revenue. Cancelled orders never
// count toward revenue.
func (r *GormDashboardRepository) GetOverview() (DashboardOverviewRow, error) {
	result := DashboardOverviewRow{}

	orderBase := func() *gorm.DB {
		return r.db.Model(&models.Order{})
	}

	if err := orderBase().Count(&result.TotalOrders).Error; err != nil {
		return result, err
	}
	if err := orderBase().Where("status = ?", constants.OrderStatusPending).Count(&result.PendingOrders).Error; err != nil {
		return result, err
	}
	if err := orderBase().Where("status = ?", constants.OrderStatusDelivered).Count(&result.DeliveredOrders).Error; err != nil {
		return result, err
	}

	var revenue struct {
		Amount float64
	}
	if err := orderBase().
		Select("COALESCE(SUM(total), 0) as amount").
		Where("status <> ?", constants.OrderStatusCancelled).
		Scan(&revenue).Error; err != nil {
		return result, err
	}
	result.TotalRevenue = revenue.Amount
	return result, nil
}

// GetTopProducts ranks products by units sold.
func (r *GormDashboardRepository) GetTopProducts(limit int) ([]DashboardProductRankingRow, error) {
	if limit <= 0 {
		limit = 5
	}
	var rows []DashboardProductRankingRow
	if err := r.db.Model(&models.Product{}).
		Select("id as product_id, name, total_sold, stock").
		Order("total_sold DESC, id ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetSalesTrends groups non-cancelled orders per day over the window.
func (r *GormDashboardRepository) GetSalesTrends(startAt, endAt time.Time) ([]DashboardSalesTrendRow, error) {
	var rows []DashboardSalesTrendRow
	dayExpr := "CAST(date(created_at) AS TEXT)"
	if err := r.db.Model(&models.Order{}).
		Select(fmt.Sprintf("%s as day, COUNT(*) as orders, COALESCE(SUM(total), 0) as revenue", dayExpr)).
		Where("created_at >= ? AND created_at < ? AND status <> ?", startAt, endAt, constants.OrderStatusCancelled).
		Group(dayExpr).
		Order("day asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
