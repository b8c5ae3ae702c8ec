package repositories

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/vanik/app/models"
	"github.com/shashiranjanraj/vanik/pkg/orm"
)

// revenueSelect annotates each customer with lifetime revenue derived
// from current product prices. Orders removed by a cascade stay soft
// deleted, so the join has to skip them explicitly.
const revenueSelect = "customers.*, SUM(orders.quantity * products.price) AS total_revenue"

// Totals carries the grand figures shown above the customer list.
// Revenue is null while no orders exist at all.
type Totals struct {
	Customers int64
	Revenue   decimal.NullDecimal
}

// CustomerRepository handles database operations for Customer, including
// the revenue annotation used by the list, detail and export views.
type CustomerRepository struct{}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

// annotated builds the revenue-annotated base query, one row per
// customer ordered by id. Grouped chains cannot be counted reliably, so
// callers paginate with a separate count (see Page).
func (r *CustomerRepository) annotated() *orm.Query {
	return orm.DB().Model(&models.Customer{}).
		Select(revenueSelect).
		Joins("LEFT JOIN orders ON orders.customer_id = customers.id AND orders.deleted_at IS NULL").
		Joins("LEFT JOIN products ON products.id = orders.product_id").
		Group("customers.id").
		Order("customers.id")
}

// applySearch narrows q to customers whose name or email contains the
// term, case-insensitively. An empty term leaves q untouched.
func (r *CustomerRepository) applySearch(q *orm.Query, term string) *orm.Query {
	if term == "" {
		return q
	}
	needle := "%" + strings.ToLower(term) + "%"
	return q.Where("lower(customers.name) LIKE ? OR lower(customers.email) LIKE ?", needle, needle)
}

// Page returns one page of revenue-annotated customers matching the
// search term. Customers without orders come back with a null revenue.
func (r *CustomerRepository) Page(search string, page int) ([]models.CustomerWithRevenue, orm.Pagination, error) {
	total, err := r.applySearch(orm.DB().Model(&models.Customer{}), search).Count()
	if err != nil {
		return nil, orm.Pagination{}, err
	}

	p := orm.NewPagination(page, PerPage, total)

	var rows []models.CustomerWithRevenue
	err = r.applySearch(r.annotated(), search).
		Offset(p.Offset()).
		Limit(p.PerPage).
		Scan(&rows)
	return rows, p, err
}

// AllWithRevenue returns the full annotated collection ordered by id.
// Exports serialize this snapshot, so every format sees the same rows in
// the same order.
func (r *CustomerRepository) AllWithRevenue() ([]models.CustomerWithRevenue, error) {
	var rows []models.CustomerWithRevenue
	err := r.annotated().Scan(&rows)
	return rows, err
}

// Totals computes the customer count and the revenue sum across all
// customers.
func (r *CustomerRepository) Totals() (Totals, error) {
	var t Totals

	var err error
	t.Customers, err = orm.DB().Model(&models.Customer{}).Count()
	if err != nil {
		return t, err
	}

	var row struct {
		Total decimal.NullDecimal
	}
	err = orm.DB().Model(&models.Order{}).
		Select("SUM(orders.quantity * products.price) AS total").
		Joins("JOIN products ON products.id = orders.product_id").
		Scan(&row)
	t.Revenue = row.Total
	return t, err
}

// Revenue computes the revenue sum for a single customer. Null when they
// have no orders.
func (r *CustomerRepository) Revenue(id uint) (decimal.NullDecimal, error) {
	var row struct {
		Total decimal.NullDecimal
	}
	err := orm.DB().Model(&models.Order{}).
		Select("SUM(orders.quantity * products.price) AS total").
		Joins("JOIN products ON products.id = orders.product_id").
		Where("orders.customer_id = ?", id).
		Scan(&row)
	return row.Total, err
}

// FindByID loads one customer with their order lines.
func (r *CustomerRepository) FindByID(id uint) (models.Customer, error) {
	var customer models.Customer
	err := orm.DB().Model(&models.Customer{}).
		Preload("Orders").
		Preload("Orders.Product").
		Where("id = ?", id).
		First(&customer)
	return customer, err
}

// EmailExists reports whether another customer already uses the email.
func (r *CustomerRepository) EmailExists(email string, excludeID uint) (bool, error) {
	total, err := orm.DB().Model(&models.Customer{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count()
	return total > 0, err
}

// Create persists a new customer record.
func (r *CustomerRepository) Create(customer *models.Customer) error {
	return orm.DB().Create(customer)
}

// Update persists changes to an existing customer.
func (r *CustomerRepository) Update(customer *models.Customer) error {
	return orm.DB().Save(customer)
}

// Delete removes the customer and cascades to their orders inside one
// transaction.
func (r *CustomerRepository) Delete(customer *models.Customer) error {
	return orm.Transaction(func(tx *orm.Query) error {
		if err := tx.Where("customer_id = ?", customer.ID).Delete(&models.Order{}); err != nil {
			return err
		}
		return tx.Delete(customer)
	})
}
