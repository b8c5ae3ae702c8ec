package seeders

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/vanik/app/models"
	"github.com/shashiranjanraj/vanik/pkg/auth"
)

func init() {
	Register("demo", SeedDemo)
}

// SeedDemo loads a small working dataset: three products, three customers
// (one of them without orders), a handful of orders and one already
// verified login. Running it twice is a no-op.
func SeedDemo(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []models.Product{
		{
			Name:     "Notebook",
			Slug:     "notebook",
			Price:    decimal.NewFromFloat(10.00),
			Quantity: 40,
			Attributes: []models.ProductAttribute{
				{Name: "format", Value: "A5"},
				{Name: "cover", Value: "hardback"},
			},
		},
		{
			Name:     "Fountain Pen",
			Slug:     "fountain-pen",
			Price:    decimal.NewFromFloat(5.00),
			Quantity: 120,
		},
		{
			Name:     "Canvas Backpack",
			Slug:     "canvas-backpack",
			Price:    decimal.NewFromFloat(49.90),
			Quantity: 15,
		},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	customers := []models.Customer{
		{Name: "Asha Verma", Email: "asha@example.com", Phone: "+91 98100 00001", BillingAddress: "14 Lake Road, Pune"},
		{Name: "Ben Mercer", Email: "ben@example.com", Phone: "+44 7700 900002", BillingAddress: "3 Harbour Lane, Bristol"},
		{Name: "Carla Ortiz", Email: "carla@example.com"},
	}
	if err := db.Create(&customers).Error; err != nil {
		return err
	}

	// Asha: 2 × 10.00 + 1 × 5.00 = 25.00 lifetime revenue.
	// Carla stays without orders so the list shows a blank revenue.
	orders := []models.Order{
		{CustomerID: customers[0].ID, ProductID: products[0].ID, Quantity: 2},
		{CustomerID: customers[0].ID, ProductID: products[1].ID, Quantity: 1},
		{CustomerID: customers[1].ID, ProductID: products[2].ID, Quantity: 3},
	}
	if err := db.Create(&orders).Error; err != nil {
		return err
	}

	hash, err := auth.HashPassword("password")
	if err != nil {
		return err
	}
	admin := models.User{
		FirstName: "Admin",
		Email:     "admin@vanik.local",
		Password:  hash,
		IsActive:  true,
	}
	return db.Create(&admin).Error
}
