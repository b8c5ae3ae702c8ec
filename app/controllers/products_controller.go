package controllers

import (
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/vanik/app/models"
	"github.com/shashiranjanraj/vanik/app/repositories"
	"github.com/shashiranjanraj/vanik/app/views"
	"github.com/shashiranjanraj/vanik/pkg/bind"
	"github.com/shashiranjanraj/vanik/pkg/orm"
	"github.com/shashiranjanraj/vanik/pkg/router"
)

type ProductsController struct {
	products *repositories.ProductRepository
}

func NewProductsController() *ProductsController {
	return &ProductsController{products: repositories.NewProductRepository()}
}

// Index renders the paginated product list on the home page.
func (c *ProductsController) Index(w http.ResponseWriter, r *http.Request) {
	products, page, err := c.products.Page(pageParam(r))
	if err != nil {
		internalError(w, r, err)
		return
	}

	views.Render(w, r, "index.html", map[string]interface{}{
		"Products": products,
		"Page":     page,
	})
}

// Report renders the product list together with the ordered-quantity sum
// for the visible page and the global average price.
func (c *ProductsController) Report(w http.ResponseWriter, r *http.Request) {
	products, page, err := c.products.Page(pageParam(r))
	if err != nil {
		internalError(w, r, err)
		return
	}

	totalQuantity, err := c.products.TotalQuantityFor(products)
	if err != nil {
		internalError(w, r, err)
		return
	}

	averagePrice, err := c.products.AveragePrice()
	if err != nil {
		internalError(w, r, err)
		return
	}

	views.Render(w, r, "product/index.html", map[string]interface{}{
		"Products":      products,
		"Page":          page,
		"TotalQuantity": totalQuantity,
		"AveragePrice":  averagePrice,
	})
}

// Show renders the product detail page with its attributes.
func (c *ProductsController) Show(w http.ResponseWriter, r *http.Request) {
	product, err := c.products.FindBySlug(router.Param(r, "slug"))
	if err != nil {
		if orm.IsNotFound(err) {
			views.NotFound(w, r)
			return
		}
		internalError(w, r, err)
		return
	}

	views.Render(w, r, "product/product-detail.html", map[string]interface{}{
		"Product": product,
	})
}

// Create renders the empty add-product form.
func (c *ProductsController) Create(w http.ResponseWriter, r *http.Request) {
	views.Render(w, r, "product/add-product.html", map[string]interface{}{
		"Form":   ProductForm{},
		"Errors": map[string]string{},
	})
}

// Store validates the submitted product and saves it. A blank slug is
// derived from the name.
func (c *ProductsController) Store(w http.ResponseWriter, r *http.Request) {
	var form ProductForm
	errs, err := bind.Form(r, &form)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if errs == nil {
		errs = map[string]string{}
	}

	slug := form.Slug
	if slug == "" && form.Name != "" {
		slug = slugify(form.Name)
	}

	if len(errs) == 0 {
		exists, err := c.products.SlugExists(slug, 0)
		if err != nil {
			internalError(w, r, err)
			return
		}
		if exists {
			errs["slug"] = "A product with this slug already exists."
		}
	}

	if len(errs) > 0 {
		views.Render(w, r, "product/add-product.html", map[string]interface{}{
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	price, _ := decimal.NewFromString(form.Price) // validated numeric above
	quantity, _ := strconv.Atoi(form.Quantity)    // validated integer above

	product := models.Product{
		Name:     form.Name,
		Slug:     slug,
		Price:    price,
		Quantity: quantity,
	}
	if err := c.products.Create(&product); err != nil {
		internalError(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// Edit renders the update form pre-filled from the stored product.
func (c *ProductsController) Edit(w http.ResponseWriter, r *http.Request) {
	product, err := c.products.FindBySlug(router.Param(r, "slug"))
	if err != nil {
		if orm.IsNotFound(err) {
			views.NotFound(w, r)
			return
		}
		internalError(w, r, err)
		return
	}

	views.Render(w, r, "product/update-product.html", map[string]interface{}{
		"Product": product,
		"Form": ProductForm{
			Name:     product.Name,
			Slug:     product.Slug,
			Price:    product.Price.StringFixed(2),
			Quantity: strconv.Itoa(product.Quantity),
		},
		"Errors": map[string]string{},
	})
}

// Update validates the submitted changes and saves them.
func (c *ProductsController) Update(w http.ResponseWriter, r *http.Request) {
	product, err := c.products.FindBySlug(router.Param(r, "slug"))
	if err != nil {
		if orm.IsNotFound(err) {
			views.NotFound(w, r)
			return
		}
		internalError(w, r, err)
		return
	}

	var form ProductForm
	errs, err := bind.Form(r, &form)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if errs == nil {
		errs = map[string]string{}
	}

	slug := form.Slug
	if slug == "" && form.Name != "" {
		slug = slugify(form.Name)
	}

	if len(errs) == 0 {
		exists, err := c.products.SlugExists(slug, product.ID)
		if err != nil {
			internalError(w, r, err)
			return
		}
		if exists {
			errs["slug"] = "A product with this slug already exists."
		}
	}

	if len(errs) > 0 {
		views.Render(w, r, "product/update-product.html", map[string]interface{}{
			"Product": product,
			"Form":    form,
			"Errors":  errs,
		})
		return
	}

	price, _ := decimal.NewFromString(form.Price)
	quantity, _ := strconv.Atoi(form.Quantity)

	product.Name = form.Name
	product.Slug = slug
	product.Price = price
	product.Quantity = quantity
	if err := c.products.Update(&product); err != nil {
		internalError(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}
