package controllers

import (
	"fmt"
	"net/http"

	"github.com/shashiranjanraj/vanik/app/models"
	"github.com/shashiranjanraj/vanik/app/repositories"
	"github.com/shashiranjanraj/vanik/app/views"
	"github.com/shashiranjanraj/vanik/pkg/bind"
	"github.com/shashiranjanraj/vanik/pkg/collection"
	"github.com/shashiranjanraj/vanik/pkg/export"
	"github.com/shashiranjanraj/vanik/pkg/logger"
	"github.com/shashiranjanraj/vanik/pkg/metrics"
	"github.com/shashiranjanraj/vanik/pkg/orm"
)

type CustomersController struct {
	customers *repositories.CustomerRepository
}

func NewCustomersController() *CustomersController {
	return &CustomersController{customers: repositories.NewCustomerRepository()}
}

// Index renders the searchable, revenue-annotated customer list with the
// grand totals above it.
func (c *CustomersController) Index(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	customers, page, err := c.customers.Page(search, pageParam(r))
	if err != nil {
		internalError(w, r, err)
		return
	}

	totals, err := c.customers.Totals()
	if err != nil {
		internalError(w, r, err)
		return
	}

	views.Render(w, r, "customer/customers.html", map[string]interface{}{
		"Customers":      customers,
		"Page":           page,
		"Search":         search,
		"TotalCustomers": totals.Customers,
		"TotalRevenue":   totals.Revenue,
	})
}

// Show renders one customer with their orders and revenue total.
func (c *CustomersController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		views.NotFound(w, r)
		return
	}

	customer, err := c.customers.FindByID(id)
	if err != nil {
		if orm.IsNotFound(err) {
			views.NotFound(w, r)
			return
		}
		internalError(w, r, err)
		return
	}

	revenue, err := c.customers.Revenue(id)
	if err != nil {
		internalError(w, r, err)
		return
	}

	views.Render(w, r, "customer/customer-details.html", map[string]interface{}{
		"Customer":     customer,
		"TotalRevenue": revenue,
	})
}

// Create renders the empty add-customer form.
func (c *CustomersController) Create(w http.ResponseWriter, r *http.Request) {
	views.Render(w, r, "customer/add-customer.html", map[string]interface{}{
		"Form":   CustomerForm{},
		"Errors": map[string]string{},
	})
}

// Store validates the submitted customer and saves it.
func (c *CustomersController) Store(w http.ResponseWriter, r *http.Request) {
	var form CustomerForm
	errs, err := bind.Form(r, &form)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if errs == nil {
		errs = map[string]string{}
	}

	if len(errs) == 0 {
		exists, err := c.customers.EmailExists(form.Email, 0)
		if err != nil {
			internalError(w, r, err)
			return
		}
		if exists {
			errs["email"] = "A customer with this email already exists."
		}
	}

	if len(errs) > 0 {
		views.Render(w, r, "customer/add-customer.html", map[string]interface{}{
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	customer := models.Customer{
		Name:           form.Name,
		Email:          form.Email,
		Phone:          form.Phone,
		BillingAddress: form.BillingAddress,
	}
	if err := c.customers.Create(&customer); err != nil {
		internalError(w, r, err)
		return
	}

	http.Redirect(w, r, "/customers", http.StatusFound)
}

// Edit renders the update form pre-filled from the stored customer.
func (c *CustomersController) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		views.NotFound(w, r)
		return
	}

	customer, err := c.customers.FindByID(id)
	if err != nil {
		if orm.IsNotFound(err) {
			views.NotFound(w, r)
			return
		}
		internalError(w, r, err)
		return
	}

	views.Render(w, r, "customer/update-customer.html", map[string]interface{}{
		"Customer": customer,
		"Form": CustomerForm{
			Name:           customer.Name,
			Email:          customer.Email,
			Phone:          customer.Phone,
			BillingAddress: customer.BillingAddress,
		},
		"Errors": map[string]string{},
	})
}

// Update validates the submitted changes and saves them, then returns to
// the customer's detail page.
func (c *CustomersController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		views.NotFound(w, r)
		return
	}

	customer, err := c.customers.FindByID(id)
	if err != nil {
		if orm.IsNotFound(err) {
			views.NotFound(w, r)
			return
		}
		internalError(w, r, err)
		return
	}

	var form CustomerForm
	errs, err := bind.Form(r, &form)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if errs == nil {
		errs = map[string]string{}
	}

	if len(errs) == 0 {
		exists, err := c.customers.EmailExists(form.Email, customer.ID)
		if err != nil {
			internalError(w, r, err)
			return
		}
		if exists {
			errs["email"] = "A customer with this email already exists."
		}
	}

	if len(errs) > 0 {
		views.Render(w, r, "customer/update-customer.html", map[string]interface{}{
			"Customer": customer,
			"Form":     form,
			"Errors":   errs,
		})
		return
	}

	customer.Name = form.Name
	customer.Email = form.Email
	customer.Phone = form.Phone
	customer.BillingAddress = form.BillingAddress
	if err := c.customers.Update(&customer); err != nil {
		internalError(w, r, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/customers/%d", customer.ID), http.StatusFound)
}

// Delete renders the confirmation page. The destructive step only
// happens on the POST in Destroy.
func (c *CustomersController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		views.NotFound(w, r)
		return
	}

	customer, err := c.customers.FindByID(id)
	if err != nil {
		if orm.IsNotFound(err) {
			views.NotFound(w, r)
			return
		}
		internalError(w, r, err)
		return
	}

	views.Render(w, r, "customer/delete-customer.html", map[string]interface{}{
		"Customer": customer,
	})
}

// Destroy deletes the customer and their orders.
func (c *CustomersController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		views.NotFound(w, r)
		return
	}

	customer, err := c.customers.FindByID(id)
	if err != nil {
		if orm.IsNotFound(err) {
			views.NotFound(w, r)
			return
		}
		internalError(w, r, err)
		return
	}

	if err := c.customers.Delete(&customer); err != nil {
		internalError(w, r, err)
		return
	}

	http.Redirect(w, r, "/customers", http.StatusFound)
}

// Export streams the annotated customer collection in the requested
// format. Every format serializes the same snapshot in the same order.
// Unknown formats get the legacy 404 "Bad requests" answer.
func (c *CustomersController) Export(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	switch format {
	case "csv", "json", "xlsx":
	default:
		metrics.ExportsTotal.WithLabelValues("rejected").Inc()
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("Bad requests"))
		return
	}

	customers, err := c.customers.AllWithRevenue()
	if err != nil {
		internalError(w, r, err)
		return
	}

	rows := collection.Map(customers, func(cust models.CustomerWithRevenue) export.Row {
		return export.Row{
			ID:             cust.ID,
			Name:           cust.Name,
			Email:          cust.Email,
			Phone:          cust.Phone,
			BillingAddress: cust.BillingAddress,
			TotalRevenue:   export.NewMoney(cust.TotalRevenue),
		}
	})

	metrics.ExportsTotal.WithLabelValues(format).Inc()

	switch format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="customers.csv"`)
		err = export.WriteCSV(w, rows)
	case "json":
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="customers.json"`)
		err = export.WriteJSON(w, rows)
	case "xlsx":
		w.Header().Set("Content-Type", "application/ms-excel")
		w.Header().Set("Content-Disposition", `attachment; filename="customers.xlsx"`)
		err = export.WriteXLSX(w, rows)
	}
	if err != nil {
		// Headers are gone at this point; all we can do is log.
		logger.Error("export failed", "format", format, "error", err)
	}
}
