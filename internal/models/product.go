package models

import "time"

// Product is a catalog entry. Stock and TotalSold are adjusted
// atomically by the order flow.
type Product struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"size:191;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       Money     `gorm:"type:decimal(20,2);not null" json:"price"`
	Stock       int       `gorm:"not null;default:0" json:"stock"`
	TotalSold   int       `gorm:"not null;default:0" json:"totalSold"`
	ImageURL    string    `gorm:"size:512" json:"imageUrl"`
	ImageCredit string    `gorm:"size:255" json:"imageCredit"`
	IsFeatured  bool      `gorm:"not null;default:false" json:"isFeatured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Product) TableName() string {
	return "products"
}
