package service

import (
	"context"
	"strings"
	"time"

	"github.com/jusas-smoothie/api/internal/cache"
	"github.com/jusas-smoothie/api/internal/constants"
	"github.com/jusas-smoothie/api/internal/logger"
	"github.com/jusas-smoothie/api/internal/models"
	"github.com/jusas-smoothie/api/internal/queue"
	"github.com/jusas-smoothie/api/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// allowedTransitions is the order status machine. Anything not listed
// is rejected.
var allowedTransitions = map[string][]string{
	constants.OrderStatusPending:   {constants.OrderStatusApproved, constants.OrderStatusCancelled},
	constants.OrderStatusApproved:  {constants.OrderStatusDelivered},
	constants.OrderStatusDelivered: {},
	constants.OrderStatusCancelled: {},
}

func isKnownStatus(status string) bool {
	_, ok := allowedTransitions[status]
	return ok
}

func canTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// OrderService places orders and drives their lifecycle.
type OrderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	cartRepo    repository.CartRepository
	queueClient *queue.Client
}

// NewOrderService creates the order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	cartRepo repository.CartRepository,
	queueClient *queue.Client,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cartRepo:    cartRepo,
		queueClient: queueClient,
	}
}

// OrderLineInput is one requested line of a new order.
type OrderLineInput struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// CreateOrderInput carries a checkout request.
type CreateOrderInput struct {
	UserID          *uint
	Items           []OrderLineInput
	PaymentMethod   string
	PaymentProof    string
	ShippingAddress string
	ContactNumber   string
}

// CreateOrder places an order in a single transaction: every line's
// stock is deducted with a guarded update, prices are snapshotted
// from the catalog, and the order lands in PENDING. Any shortage
// rolls the whole order back.
func (s *OrderService) CreateOrder(input CreateOrderInput) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	switch input.PaymentMethod {
	case constants.PaymentMethodCOD, constants.PaymentMethodGCash:
	default:
		return nil, ErrInvalidPayment
	}
	for _, line := range input.Items {
		if line.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}

	var created *models.Order
	var lowStock []queue.StockAlertPayload

	productIDs := make([]uint, 0, len(input.Items))
	for _, line := range input.Items {
		productIDs = append(productIDs, line.ProductID)
	}

	err := s.orderRepo.Transaction(func(tx *gorm.DB) error {
		orders := s.orderRepo.WithTx(tx)
		products := s.productRepo.WithTx(tx)

		rows, err := products.ListByIDs(productIDs)
		if err != nil {
			return err
		}
		byID := make(map[uint]models.Product, len(rows))
		for _, row := range rows {
			byID[row.ID] = row
		}

		total := decimal.Zero
		items := make([]models.OrderItem, 0, len(input.Items))
		for _, line := range input.Items {
			product, ok := byID[line.ProductID]
			if !ok {
				return ErrProductNotFound
			}

			affected, err := products.DeductStock(product.ID, line.Quantity)
			if err != nil {
				return err
			}
			if affected == 0 {
				return &InsufficientStockError{ProductID: product.ID, ProductName: product.Name}
			}

			// threshold check reads the row back: the deduction just
			// ran, so this stock is authoritative, not a stale copy
			fresh, err := products.GetByID(product.ID)
			if err != nil {
				return err
			}
			if fresh != nil && fresh.Stock <= constants.LowStockThreshold {
				lowStock = append(lowStock, queue.StockAlertPayload{
					ProductID:   product.ID,
					ProductName: product.Name,
					Stock:       fresh.Stock,
				})
			}

			items = append(items, models.OrderItem{
				ProductID: product.ID,
				Quantity:  line.Quantity,
				Price:     product.Price,
			})
			total = total.Add(product.Price.Decimal.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}

		order := &models.Order{
			UserID:          input.UserID,
			Status:          constants.OrderStatusPending,
			Total:           models.NewMoneyFromDecimal(total),
			PaymentMethod:   input.PaymentMethod,
			PaymentProof:    input.PaymentProof,
			ShippingAddress: input.ShippingAddress,
			ContactNumber:   input.ContactNumber,
			Items:           items,
		}
		if err := orders.Create(order); err != nil {
			return err
		}
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, alert := range lowStock {
		if err := s.queueClient.EnqueueStockAlert(alert); err != nil {
			logger.Warnw("stock_alert_enqueue_failed", "product_id", alert.ProductID, "error", err)
		}
	}

	// remove the ordered lines from the server cart; lines the
	// order did not touch stay put
	if input.UserID != nil {
		if cart, err := s.cartRepo.GetByUserID(*input.UserID); err == nil && cart != nil {
			for _, productID := range productIDs {
				item, err := s.cartRepo.GetItem(cart.ID, productID)
				if err != nil || item == nil {
					continue
				}
				if err := s.cartRepo.DeleteItem(item.ID); err != nil {
					logger.Warnw("cart_line_remove_failed",
						"user_id", *input.UserID,
						"product_id", productID,
						"error", err,
					)
				}
			}
		}
	}

	s.invalidateDashboardCache()

	return s.orderRepo.GetByID(created.ID)
}

// GetOrder fetches one order. Non-admins only see their own.
func (s *OrderService) GetOrder(orderID uint, requesterID uint, requesterRole string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if requesterRole != constants.RoleAdmin {
		if order.UserID == nil || *order.UserID != requesterID {
			return nil, ErrForbidden
		}
	}
	return order, nil
}

// ListOrders returns order history. Admins see everything and may
// filter by user; everyone else gets their own orders only.
func (s *OrderService) ListOrders(requesterID uint, requesterRole string, filter repository.OrderListFilter) ([]models.Order, int64, error) {
	if requesterRole != constants.RoleAdmin {
		filter.UserID = requesterID
	}
	return s.orderRepo.List(filter)
}

// UpdateStatus moves an order along the status machine. Delivery
// stamps the delivery time, cancellation records the reason.
func (s *OrderService) UpdateStatus(orderID uint, status, declineReason string) (*models.Order, error) {
	if !isKnownStatus(status) {
		return nil, ErrInvalidStatus
	}
	if status == constants.OrderStatusCancelled && strings.TrimSpace(declineReason) == "" {
		return nil, ErrMissingReason
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !canTransition(order.Status, status) {
		return nil, ErrInvalidTransition
	}

	order.Status = status
	switch status {
	case constants.OrderStatusDelivered:
		now := time.Now()
		order.DeliveryTime = &now
	case constants.OrderStatusCancelled:
		order.DeclineReason = declineReason
	}
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	s.invalidateDashboardCache()

	return s.orderRepo.GetByID(order.ID)
}

// invalidateDashboardCache drops the cached admin stats so the next
// dashboard read reflects the changed order book.
func (s *OrderService) invalidateDashboardCache() {
	if err := cache.Del(context.Background(), dashboardStatsCacheKey); err != nil {
		logger.Warnw("dashboard_cache_invalidate_failed", "error", err)
	}
}
