package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a product in the catalogue. Prices are exact
// decimals; revenue figures derived from them must never pick up float
// rounding.
type Product struct {
	gorm.Model
	Name       string             `gorm:"size:255;not null;index" json:"name"`
	Slug       string             `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Price      decimal.Decimal    `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity   int                `gorm:"not null;default:0" json:"quantity"`
	Attributes []ProductAttribute `gorm:"constraint:OnDelete:CASCADE" json:"attributes,omitempty"`
}

// ProductAttribute is one name/value pair describing its product
// (colour, material, size).
type ProductAttribute struct {
	gorm.Model
	ProductID uint   `gorm:"not null;index" json:"product_id"`
	Name      string `gorm:"size:255;not null" json:"name"`
	Value     string `gorm:"size:255;not null" json:"value"`
}
