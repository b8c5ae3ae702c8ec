// Package routes wires every named route to its controller action.
package routes

import (
	"github.com/shashiranjanraj/vanik/app/controllers"
	"github.com/shashiranjanraj/vanik/app/views"
	"github.com/shashiranjanraj/vanik/pkg/router"
)

// RegisterWeb mounts the full HTML surface on r. GET and POST handlers
// of the same form share one route name.
func RegisterWeb(r *router.Router) {
	products := controllers.NewProductsController()
	customers := controllers.NewCustomersController()
	auth := controllers.NewAuthController()
	mailer := controllers.NewMailController()

	r.Get("/", "index", products.Index)

	r.Get("/products", "products.index", products.Report)
	r.Get("/products/add", "products.add", products.Create)
	r.Post("/products/add", "products.add", products.Store)
	r.Get("/products/{slug}", "products.show", products.Show)
	r.Get("/products/{slug}/update", "products.update", products.Edit)
	r.Post("/products/{slug}/update", "products.update", products.Update)

	r.Get("/customers", "customers.index", customers.Index)
	r.Get("/customers/add", "customers.add", customers.Create)
	r.Post("/customers/add", "customers.add", customers.Store)
	r.Get("/customers/export", "customers.export", customers.Export)
	r.Get("/customers/{id}", "customers.show", customers.Show)
	r.Get("/customers/{id}/update", "customers.update", customers.Edit)
	r.Post("/customers/{id}/update", "customers.update", customers.Update)
	r.Get("/customers/{id}/delete", "customers.delete", customers.Delete)
	r.Post("/customers/{id}/delete", "customers.delete", customers.Destroy)

	r.Get("/register", "register", auth.ShowRegister)
	r.Post("/register", "register", auth.Register)
	r.Get("/login", "login", auth.ShowLogin)
	r.Post("/login", "login", auth.Login)
	r.Get("/logout", "logout", auth.Logout)
	r.Post("/logout", "logout", auth.Logout)

	r.Get("/verify-email-done", "verify-email.done", auth.VerifyEmailDone)
	r.Get("/verify-email/{uidb64}/{token}", "verify-email.confirm", auth.VerifyEmailConfirm)
	r.Get("/verify-email-complete", "verify-email.complete", auth.VerifyEmailComplete)

	r.Get("/send-email", "send-email", mailer.Form)
	r.Post("/send-email", "send-email", mailer.Send)

	r.NotFound(views.NotFound)
}
