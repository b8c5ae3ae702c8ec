package repositories_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/vanik/app/models"
	"github.com/shashiranjanraj/vanik/app/repositories"
	"github.com/shashiranjanraj/vanik/pkg/orm"
	"github.com/shashiranjanraj/vanik/pkg/testkit"
)

type shop struct {
	notebook, pen, backpack models.Product
	asha, ben, carla        models.Customer
}

// seedShop loads the standing fixture: three products, three customers,
// Asha with 2 notebooks + 1 pen (25.00), Ben with 3 backpacks (149.70)
// and Carla without any orders.
func seedShop(t *testing.T, db *gorm.DB) shop {
	t.Helper()

	s := shop{
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

func openShopDB(t *testing.T) *gorm.DB {
	t.Helper()
	return testkit.OpenDB(t,
		&models.Product{}, &models.ProductAttribute{},
		&models.Customer{}, &models.Order{},
	)
}

func requireRevenue(t *testing.T, got decimal.NullDecimal, want string) {
	t.Helper()
	if !got.Valid {
		t.Fatalf("expected revenue %s, got null", want)
	}
	if !got.Decimal.Equal(decimal.RequireFromString(want)) {
		t.Fatalf("expected revenue %s, got %s", want, got.Decimal)
	}
}

func TestPageAnnotatesRevenue(t *testing.T) {
	db := openShopDB(t)
	seedShop(t, db)

	repo := repositories.NewCustomerRepository()
	rows, p, err := repo.Page("", 1)
	if err != nil {
		t.Fatalf("page: %v", err)
	}

	if len(rows) != repositories.PerPage {
		t.Fatalf("expected a full first page of %d, got %d", repositories.PerPage, len(rows))
	}
	if p.Pages != 2 || p.Total != 3 {
		t.Errorf("pagination: got %d pages over %d rows", p.Pages, p.Total)
	}

	if rows[0].Name != "Asha Verma" {
		t.Fatalf("rows must come back ordered by id, got %q first", rows[0].Name)
	}
	requireRevenue(t, rows[0].TotalRevenue, "25.00")
	requireRevenue(t, rows[1].TotalRevenue, "149.70")
}

func TestRevenueFollowsCurrentPrice(t *testing.T) {
	db := openShopDB(t)
	s := seedShop(t, db)

	repo := repositories.NewCustomerRepository()

	// 2 × 10.00 + 1 × 5.00 before the price change.
	rev, err := repo.Revenue(s.asha.ID)
	if err != nil {
		t.Fatalf("revenue: %v", err)
	}
	requireRevenue(t, rev, "25.00")

	// Raising the notebook price reprices past orders too; nothing is
	// stored on the order itself.
	s.notebook.Price = decimal.NewFromFloat(12.00)
	if err := db.Save(&s.notebook).Error; err != nil {
		t.Fatalf("save product: %v", err)
	}

	rev, err = repo.Revenue(s.asha.ID)
	if err != nil {
		t.Fatalf("revenue after reprice: %v", err)
	}
	requireRevenue(t, rev, "29.00")
}

func TestCustomerWithoutOrdersHasNullRevenue(t *testing.T) {
	db := openShopDB(t)
	seedShop(t, db)

	repo := repositories.NewCustomerRepository()
	rows, _, err := repo.Page("", 2)
	if err != nil {
		t.Fatalf("page 2: %v", err)
	}
	if len(rows) != 1 || rows[0].Name != "Carla Ortiz" {
		t.Fatalf("expected Carla alone on page 2, got %+v", rows)
	}
	if rows[0].TotalRevenue.Valid {
		t.Errorf("zero orders must yield a null revenue, got %s", rows[0].TotalRevenue.Decimal)
	}
}

func TestSearchMatchesNameOrEmail(t *testing.T) {
	db := openShopDB(t)
	seedShop(t, db)

	repo := repositories.NewCustomerRepository()

	// Case-insensitive over the name.
	rows, _, err := repo.Page("MERCER", 1)
	if err != nil {
		t.Fatalf("search name: %v", err)
	}
	if len(rows) != 1 || rows[0].Name != "Ben Mercer" {
		t.Fatalf("search MERCER: got %+v", rows)
	}

	// And over the email.
	rows, _, err = repo.Page("carla@", 1)
	if err != nil {
		t.Fatalf("search email: %v", err)
	}
	if len(rows) != 1 || rows[0].Email != "carla@example.com" {
		t.Fatalf("search carla@: got %+v", rows)
	}

	// A term hitting every row still paginates.
	_, p, err := repo.Page("example.com", 1)
	if err != nil {
		t.Fatalf("search all: %v", err)
	}
	if p.Total != 3 || p.Pages != 2 {
		t.Errorf("search example.com: got %d rows over %d pages", p.Total, p.Pages)
	}
}

func TestPageClampsOutOfRange(t *testing.T) {
	db := openShopDB(t)
	seedShop(t, db)

	repo := repositories.NewCustomerRepository()
	rows, p, err := repo.Page("", 99)
	if err != nil {
		t.Fatalf("page 99: %v", err)
	}
	if p.Page != 2 {
		t.Errorf("expected clamp to last page 2, got %d", p.Page)
	}
	if len(rows) != 1 {
		t.Errorf("last page should hold the one remaining customer, got %d", len(rows))
	}
}

func TestAllWithRevenueOrdering(t *testing.T) {
	db := openShopDB(t)
	seedShop(t, db)

	repo := repositories.NewCustomerRepository()
	rows, err := repo.AllWithRevenue()
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	for i, name := range []string{"Asha Verma", "Ben Mercer", "Carla Ortiz"} {
		if rows[i].Name != name {
			t.Errorf("row %d: got %q, want %q", i, rows[i].Name, name)
		}
	}
}

func TestTotals(t *testing.T) {
	db := openShopDB(t)
	seedShop(t, db)

	repo := repositories.NewCustomerRepository()
	totals, err := repo.Totals()
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if totals.Customers != 3 {
		t.Errorf("expected 3 customers, got %d", totals.Customers)
	}
	requireRevenue(t, totals.Revenue, "174.70")
}

func TestTotalsWithoutOrders(t *testing.T) {
	db := openShopDB(t)
	if err := db.Create(&models.Customer{Name: "Solo", Email: "solo@example.com"}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	repo := repositories.NewCustomerRepository()
	totals, err := repo.Totals()
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if totals.Customers != 1 {
		t.Errorf("expected 1 customer, got %d", totals.Customers)
	}
	if totals.Revenue.Valid {
		t.Errorf("no orders anywhere should mean a null revenue sum, got %s", totals.Revenue.Decimal)
	}
}

func TestDeleteCascadesToOrders(t *testing.T) {
	db := openShopDB(t)
	s := seedShop(t, db)

	repo := repositories.NewCustomerRepository()
	if err := repo.Delete(&s.asha); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := repo.FindByID(s.asha.ID); !orm.IsNotFound(err) {
		t.Errorf("deleted customer should be gone, got %v", err)
	}

	var orphans int64
	err := db.Model(&models.Order{}).Where("customer_id = ?", s.asha.ID).Count(&orphans).Error
	if err != nil {
		t.Fatalf("count orders: %v", err)
	}
	if orphans != 0 {
		t.Errorf("expected the customer's orders to be removed, %d remain", orphans)
	}

	// Ben's revenue is untouched by the cascade.
	totals, err := repo.Totals()
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	requireRevenue(t, totals.Revenue, "149.70")
}

func TestFindByIDPreloadsOrderLines(t *testing.T) {
	db := openShopDB(t)
	s := seedShop(t, db)

	repo := repositories.NewCustomerRepository()
	customer, err := repo.FindByID(s.asha.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(customer.Orders) != 2 {
		t.Fatalf("expected 2 order lines, got %d", len(customer.Orders))
	}
	if customer.Orders[0].Product.Name == "" {
		t.Error("order lines should carry their product")
	}
}

func TestFindByIDMissing(t *testing.T) {
	openShopDB(t)

	repo := repositories.NewCustomerRepository()
	if _, err := repo.FindByID(424242); !orm.IsNotFound(err) {
		t.Errorf("expected a not-found error, got %v", err)
	}
}

func TestEmailExists(t *testing.T) {
	db := openShopDB(t)
	s := seedShop(t, db)

	repo := repositories.NewCustomerRepository()

	taken, err := repo.EmailExists("ben@example.com", s.asha.ID)
	if err != nil {
		t.Fatalf("email exists: %v", err)
	}
	if !taken {
		t.Error("another customer's email should count as taken")
	}

	// A customer keeping their own email is not a duplicate.
	own, err := repo.EmailExists("asha@example.com", s.asha.ID)
	if err != nil {
		t.Fatalf("email exists: %v", err)
	}
	if own {
		t.Error("a customer's own email must not count as taken")
	}
}
