package controllers_test

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/vanik/app/models"
	"github.com/shashiranjanraj/vanik/internal/kernel"
	"github.com/shashiranjanraj/vanik/pkg/testkit"
)

// newApp boots the full handler stack on a fresh in-memory database, so
// requests pass through the same middleware chain as in production.
func newApp(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()

	db := testkit.OpenDB(t,
		&models.User{},
		&models.Product{}, &models.ProductAttribute{},
		&models.Customer{}, &models.Order{},
	)
	return kernel.Handler(), db
}

type store struct {
	notebook, pen, backpack models.Product
	asha, ben, carla        models.Customer
}

// seedStore loads the standing fixture: Asha at 25.00 revenue, Ben at
// 149.70, Carla without orders.
func seedStore(t *testing.T, db *gorm.DB) store {
	t.Helper()

	s := store{
		notebook: models.Product{Name: "Notebook", Slug: "notebook", Price: decimal.NewFromFloat(10.00), Quantity: 40},
		pen:      models.Product{Name: "Fountain Pen", Slug: "fountain-pen", Price: decimal.NewFromFloat(5.00), Quantity: 120},
		backpack: models.Product{Name: "Canvas Backpack", Slug: "canvas-backpack", Price: decimal.NewFromFloat(49.90), Quantity: 15},
	}
	for _, p := range []*models.Product{&s.notebook, &s.pen, &s.backpack} {
		if err := db.Create(p).Error; err != nil {
			t.Fatalf("seed product: %v", err)
		}
	}

	s.asha = models.Customer{Name: "Asha Verma", Email: "asha@example.com", Phone: "+91 98100 00001", BillingAddress: "14 Lake Road, Pune"}
	s.ben = models.Customer{Name: "Ben Mercer", Email: "ben@example.com"}
	s.carla = models.Customer{Name: "Carla Ortiz", Email: "carla@example.com"}
	for _, c := range []*models.Customer{&s.asha, &s.ben, &s.carla} {
		if err := db.Create(c).Error; err != nil {
			t.Fatalf("seed customer: %v", err)
		}
	}

	orders := []models.Order{
		{CustomerID: s.asha.ID, ProductID: s.notebook.ID, Quantity: 2},
		{CustomerID: s.asha.ID, ProductID: s.pen.ID, Quantity: 1},
		{CustomerID: s.ben.ID, ProductID: s.backpack.ID, Quantity: 3},
	}
	if err := db.Create(&orders).Error; err != nil {
		t.Fatalf("seed orders: %v", err)
	}
	return s
}
