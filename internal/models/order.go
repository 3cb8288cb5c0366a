package models

import "time"

// Order is a placed order. UserID is nullable so orders survive
// account deletion.
type Order struct {
	ID              uint        `gorm:"primarykey" json:"id"`
	UserID          *uint       `gorm:"index" json:"userId"`
	User            *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Status          string      `gorm:"size:32;not null;default:PENDING;index" json:"status"`
	Total           Money       `gorm:"type:decimal(20,2);not null" json:"total"`
	PaymentMethod   string      `gorm:"size:32;not null" json:"paymentMethod"`
	PaymentProof    string      `gorm:"size:512" json:"paymentProof"`
	ShippingAddress string      `gorm:"type:text;not null" json:"shippingAddress"`
	ContactNumber   string      `gorm:"size:64;not null" json:"contactNumber"`
	DeclineReason   string      `gorm:"size:512" json:"declineReason"`
	DeliveryTime    *time.Time  `json:"deliveryTime"`
	Items           []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is one line of an order. Price is a snapshot taken at
// checkout and never changes with the catalog afterwards.
type OrderItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	OrderID   uint      `gorm:"index;not null" json:"orderId"`
	ProductID uint      `gorm:"index;not null" json:"productId"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Price     Money     `gorm:"type:decimal(20,2);not null" json:"price"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
