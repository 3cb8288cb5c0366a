package worker

import (
	"context"
	"encoding/json"

	"github.com/jusas-smoothie/api/internal/logger"
	"github.com/jusas-smoothie/api/internal/provider"
	"github.com/jusas-smoothie/api/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer handles async tasks.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates the consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register wires the task handlers.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskStockAlert, c.handleStockAlert)
}

// handleStockAlert surfaces a low-stock product to the operator log.
// The payload carries a snapshot; the handler re-reads the product so
// a restock that happened in the meantime quiets the alert.
func (c *Consumer) handleStockAlert(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_stock_alert_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.StockAlertPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_stock_alert_unmarshal_failed", "error", err)
		return err
	}
	if payload.ProductID == 0 {
		logger.Debugw("worker_stock_alert_skip_invalid_payload", "product_id", payload.ProductID)
		return nil
	}

	product, err := c.ProductRepo.GetByID(payload.ProductID)
	if err != nil {
		logger.Warnw("worker_stock_alert_fetch_product_failed", "product_id", payload.ProductID, "error", err)
		return err
	}
	if product == nil {
		logger.Debugw("worker_stock_alert_skip_product_not_found", "product_id", payload.ProductID)
		return nil
	}
	if product.Stock > payload.Stock {
		logger.Debugw("worker_stock_alert_skip_restocked",
			"product_id", product.ID,
			"stock", product.Stock,
		)
		return nil
	}

	logger.Warnw("low_stock_alert",
		"product_id", product.ID,
		"product_name", product.Name,
		"stock", product.Stock,
		"total_sold", product.TotalSold,
	)
	return nil
}
