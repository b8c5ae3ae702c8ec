package repositories

import (
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/vanik/app/models"
	"github.com/shashiranjanraj/vanik/pkg/collection"
	"github.com/shashiranjanraj/vanik/pkg/orm"
)

// PerPage is the fixed listing page size across the app.
const PerPage = 2

// ProductRepository handles database operations for Product.
type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// Page returns one page of products ordered by id.
func (r *ProductRepository) Page(page int) ([]models.Product, orm.Pagination, error) {
	var products []models.Product
	pagination, err := orm.DB().Model(&models.Product{}).
		Order("id").
		GetWithPagination(&products, page, PerPage)
	return products, pagination, err
}

// FindBySlug loads one product with its attributes.
func (r *ProductRepository) FindBySlug(slug string) (models.Product, error) {
	var product models.Product
	err := orm.DB().Model(&models.Product{}).
		Preload("Attributes").
		Where("slug = ?", slug).
		First(&product)
	return product, err
}

// SlugExists reports whether another product already owns the slug.
func (r *ProductRepository) SlugExists(slug string, excludeID uint) (bool, error) {
	total, err := orm.DB().Model(&models.Product{}).
		Where("slug = ? AND id <> ?", slug, excludeID).
		Count()
	return total > 0, err
}

// TotalQuantityFor sums ordered quantities for the given products only.
// The listing pairs this with a global average price; the page-scoped sum
// matches the original report and is kept as-is.
func (r *ProductRepository) TotalQuantityFor(products []models.Product) (int64, error) {
	if len(products) == 0 {
		return 0, nil
	}

	ids := collection.Pluck(products, func(p models.Product) uint { return p.ID })

	var row struct {
		Total sql.NullInt64
	}
	err := orm.DB().Model(&models.Order{}).
		Select("SUM(quantity) AS total").
		Where("product_id IN ?", ids).
		Scan(&row)
	return row.Total.Int64, err
}

// AveragePrice averages price over every product. Null with no products.
func (r *ProductRepository) AveragePrice() (decimal.NullDecimal, error) {
	var row struct {
		Avg decimal.NullDecimal
	}
	err := orm.DB().Model(&models.Product{}).
		Select("AVG(price) AS avg").
		Scan(&row)
	return row.Avg, err
}

// Create persists a new product together with its attributes.
func (r *ProductRepository) Create(product *models.Product) error {
	return orm.DB().Create(product)
}

// Update persists changes to an existing product.
func (r *ProductRepository) Update(product *models.Product) error {
	return orm.DB().Save(product)
}
