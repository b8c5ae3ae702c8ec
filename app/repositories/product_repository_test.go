package repositories_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/vanik/app/models"
	"github.com/shashiranjanraj/vanik/app/repositories"
	"github.com/shashiranjanraj/vanik/pkg/orm"
	"github.com/shashiranjanraj/vanik/pkg/testkit"
)

func TestProductPageSize(t *testing.T) {
	db := openShopDB(t)
	seedShop(t, db)

	repo := repositories.NewProductRepository()

	products, p, err := repo.Page(1)
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	if len(products) != repositories.PerPage {
		t.Fatalf("expected %d products on page 1, got %d", repositories.PerPage, len(products))
	}
	if p.Pages != 2 {
		t.Errorf("3 products at %d per page should give 2 pages, got %d", repositories.PerPage, p.Pages)
	}

	// The trailing page holds just the remainder.
	products, p, err = repo.Page(2)
	if err != nil {
		t.Fatalf("page 2: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product on page 2, got %d", len(products))
	}
	if products[0].Slug != "canvas-backpack" {
		t.Errorf("pages are ordered by id, got %q on page 2", products[0].Slug)
	}
}

func TestFindBySlug(t *testing.T) {
	db := openShopDB(t)
	seedShop(t, db)

	attrs := []models.ProductAttribute{
		{Name: "format", Value: "A5"},
		{Name: "cover", Value: "hardback"},
	}
	var notebook models.Product
	if err := db.Where("slug = ?", "notebook").First(&notebook).Error; err != nil {
		t.Fatalf("load notebook: %v", err)
	}
	for i := range attrs {
		attrs[i].ProductID = notebook.ID
	}
	if err := db.Create(&attrs).Error; err != nil {
		t.Fatalf("seed attributes: %v", err)
	}

	repo := repositories.NewProductRepository()
	product, err := repo.FindBySlug("notebook")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if product.Name != "Notebook" {
		t.Errorf("got %q", product.Name)
	}
	if len(product.Attributes) != 2 {
		t.Errorf("expected 2 attributes preloaded, got %d", len(product.Attributes))
	}

	if _, err := repo.FindBySlug("no-such-slug"); !orm.IsNotFound(err) {
		t.Errorf("expected a not-found error, got %v", err)
	}
}

func TestSlugExists(t *testing.T) {
	db := openShopDB(t)
	s := seedShop(t, db)

	repo := repositories.NewProductRepository()

	taken, err := repo.SlugExists("fountain-pen", s.notebook.ID)
	if err != nil {
		t.Fatalf("slug exists: %v", err)
	}
	if !taken {
		t.Error("another product's slug should count as taken")
	}

	own, err := repo.SlugExists("notebook", s.notebook.ID)
	if err != nil {
		t.Fatalf("slug exists: %v", err)
	}
	if own {
		t.Error("a product's own slug must not count as taken")
	}
}

func TestTotalQuantityForIsPageScoped(t *testing.T) {
	db := openShopDB(t)
	s := seedShop(t, db)

	repo := repositories.NewProductRepository()

	// Only the given products count: notebook (2) + pen (1), the
	// backpack's 3 are out of scope.
	total, err := repo.TotalQuantityFor([]models.Product{s.notebook, s.pen})
	if err != nil {
		t.Fatalf("total quantity: %v", err)
	}
	if total != 3 {
		t.Errorf("expected 3 units over the given products, got %d", total)
	}

	total, err = repo.TotalQuantityFor(nil)
	if err != nil {
		t.Fatalf("total quantity of nothing: %v", err)
	}
	if total != 0 {
		t.Errorf("no products means no units, got %d", total)
	}
}

func TestAveragePrice(t *testing.T) {
	db := openShopDB(t)

	repo := repositories.NewProductRepository()

	// Empty catalogue: no average at all.
	avg, err := repo.AveragePrice()
	if err != nil {
		t.Fatalf("average: %v", err)
	}
	if avg.Valid {
		t.Errorf("expected null average with no products, got %s", avg.Decimal)
	}

	prices := []models.Product{
		{Name: "A", Slug: "a", Price: decimal.NewFromInt(10)},
		{Name: "B", Slug: "b", Price: decimal.NewFromInt(5)},
		{Name: "C", Slug: "c", Price: decimal.NewFromInt(3)},
	}
	if err := db.Create(&prices).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	avg, err = repo.AveragePrice()
	if err != nil {
		t.Fatalf("average: %v", err)
	}
	if !avg.Valid || !avg.Decimal.Equal(decimal.NewFromInt(6)) {
		t.Errorf("expected average 6, got valid=%v %s", avg.Valid, avg.Decimal)
	}
}

func TestCreatePersistsAttributes(t *testing.T) {
	db := openShopDB(t)

	repo := repositories.NewProductRepository()
	product := models.Product{
		Name:     "Desk Lamp",
		Slug:     "desk-lamp",
		Price:    decimal.NewFromFloat(34.50),
		Quantity: 8,
		Attributes: []models.ProductAttribute{
			{Name: "colour", Value: "brass"},
		},
	}
	if err := repo.Create(&product); err != nil {
		t.Fatalf("create: %v", err)
	}
	if product.ID == 0 {
		t.Fatal("create should backfill the id")
	}

	var count int64
	if err := db.Model(&models.ProductAttribute{}).Where("product_id = ?", product.ID).Count(&count).Error; err != nil {
		t.Fatalf("count attributes: %v", err)
	}
	if count != 1 {
		t.Errorf("expected the attribute row to be written, got %d", count)
	}
}
