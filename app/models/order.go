package models

import "gorm.io/gorm"

// Order links a customer to a product with a quantity. Monetary value is
// never stored on the order; revenue is always derived from the current
// product price at query time.
type Order struct {
	gorm.Model
	ProductID  uint     `gorm:"not null;index" json:"product_id"`
	CustomerID uint     `gorm:"not null;index" json:"customer_id"`
	Quantity   int      `gorm:"not null;default:0" json:"quantity"`
	Product    Product  `json:"product,omitempty"`
	Customer   Customer `json:"customer,omitempty"`
}
