package constants

// Order status constants
const (
	OrderStatusPending   = "PENDING"
	OrderStatusApproved  = "APPROVED"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

// Payment method constants
const (
	PaymentMethodCOD   = "COD"
	PaymentMethodGCash = "GCASH"
)

// User role constants
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Queue name constants
const (
	QueueDefault = "default"
)

// Async task type constants
const (
	TaskStockAlert = "stock:alert"
)

// LowStockThreshold marks the stock level at which a product is flagged
// for restocking on the admin side.
const LowStockThreshold = 5

// StockOperation constants for the admin stock adjustment endpoint
const (
	StockOperationIncrement = "increment"
	StockOperationDecrement = "decrement"
)
