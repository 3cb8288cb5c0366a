package service

import (
	"context"
	"time"

	"github.com/jusas-smoothie/api/internal/cache"
	"github.com/jusas-smoothie/api/internal/config"
	"github.com/jusas-smoothie/api/internal/logger"
	"github.com/jusas-smoothie/api/internal/repository"
)

const dashboardStatsCacheKey = "dashboard:stats"

// DashboardService assembles the admin statistics view, cached in
// Redis for a short window.
type DashboardService struct {
	cfg           *config.DashboardConfig
	dashboardRepo repository.DashboardRepository
}

// NewDashboardService creates the dashboard service.
func NewDashboardService(cfg *config.DashboardConfig, dashboardRepo repository.DashboardRepository) *DashboardService {
	return &DashboardService{
		cfg:           cfg,
		dashboardRepo: dashboardRepo,
	}
}

// DashboardTopProduct is one line of the bestseller ranking.
type DashboardTopProduct struct {
	ProductID uint   `json:"productId"`
	Name      string `json:"name"`
	TotalSold int64  `json:"totalSold"`
	Stock     int64  `json:"stock"`
}

// DashboardSalesDay is one day of the sales series.
type DashboardSalesDay struct {
	Date    string  `json:"date"`
	Orders  int64   `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// DashboardStats is the admin overview payload.
type DashboardStats struct {
	TotalRevenue    float64               `json:"totalRevenue"`
	TotalOrders     int64                 `json:"totalOrders"`
	PendingOrders   int64                 `json:"pendingOrders"`
	DeliveredOrders int64                 `json:"deliveredOrders"`
	TopProducts     []DashboardTopProduct `json:"topProducts"`
	SalesByDay      []DashboardSalesDay   `json:"salesByDay"`
}

// GetStats returns the overview, serving from cache when fresh.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	var cached DashboardStats
	hit, err := cache.GetJSON(ctx, dashboardStatsCacheKey, &cached)
	if err != nil {
		logger.Warnw("dashboard_cache_read_failed", "error", err)
	}
	if hit {
		return &cached, nil
	}

	stats, err := s.buildStats()
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(s.cfg.CacheTTLSeconds) * time.Second
	if ttl > 0 {
		if err := cache.SetJSON(ctx, dashboardStatsCacheKey, stats, ttl); err != nil {
			logger.Warnw("dashboard_cache_write_failed", "error", err)
		}
	}
	return stats, nil
}

func (s *DashboardService) buildStats() (*DashboardStats, error) {
	overview, err := s.dashboardRepo.GetOverview()
	if err != nil {
		return nil, err
	}

	ranking, err := s.dashboardRepo.GetTopProducts(s.cfg.TopProductsLimit)
	if err != nil {
		return nil, err
	}
	topProducts := make([]DashboardTopProduct, 0, len(ranking))
	for _, row := range ranking {
		topProducts = append(topProducts, DashboardTopProduct{
			ProductID: row.ProductID,
			Name:      row.Name,
			TotalSold: row.TotalSold,
			Stock:     row.Stock,
		})
	}

	days := s.cfg.SalesWindowDays
	if days <= 0 {
		days = 7
	}
	now := time.Now()
	endAt := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	startAt := endAt.AddDate(0, 0, -days)
	trends, err := s.dashboardRepo.GetSalesTrends(startAt, endAt)
	if err != nil {
		return nil, err
	}

	// dense series: every day of the window appears, missing days as zero
	byDay := make(map[string]repository.DashboardSalesTrendRow, len(trends))
	for _, row := range trends {
		byDay[row.Day] = row
	}
	series := make([]DashboardSalesDay, 0, days)
	for i := 0; i < days; i++ {
		day := startAt.AddDate(0, 0, i).Format("2006-01-02")
		row := byDay[day]
		series = append(series, DashboardSalesDay{
			Date:    day,
			Orders:  row.Orders,
			Revenue: row.Revenue,
		})
	}

	return &DashboardStats{
		TotalRevenue:    overview.TotalRevenue,
		TotalOrders:     overview.TotalOrders,
		PendingOrders:   overview.PendingOrders,
		DeliveredOrders: overview.DeliveredOrders,
		TopProducts:     topProducts,
		SalesByDay:      series,
	}, nil
}
