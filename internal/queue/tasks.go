package queue

import (
	"encoding/json"

	"github.com/jusas-smoothie/api/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskStockAlert notifies staff when a product runs low after checkout.
	TaskStockAlert = constants.TaskStockAlert
)

// StockAlertPayload carries the product snapshot taken at checkout.
type StockAlertPayload struct {
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	Stock       int    `json:"stock"`
}

// NewStockAlertTask builds a low-stock alert task.
func NewStockAlertTask(payload StockAlertPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskStockAlert, body), nil
}
