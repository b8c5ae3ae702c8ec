package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Customer is a buyer on record. Phone and billing address are optional
// and stored as empty strings when not given.
type Customer struct {
	gorm.Model
	Name           string  `gorm:"size:255;not null;index" json:"name"`
	Email          string  `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Phone          string  `gorm:"size:255;not null;default:''" json:"phone"`
	BillingAddress string  `gorm:"size:255;not null;default:''" json:"billing_address"`
	Orders         []Order `gorm:"constraint:OnDelete:CASCADE" json:"orders,omitempty"`
}

// CustomerWithRevenue is a customer row annotated with lifetime revenue,
// the sum of quantity times current product price over their orders.
// Customers without orders have no revenue at all, not a zero.
type CustomerWithRevenue struct {
	Customer     `gorm:"embedded"`
	TotalRevenue decimal.NullDecimal `json:"total_revenue"`
}
