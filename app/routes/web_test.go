package routes_test

import (
	"testing"

	"github.com/shashiranjanraj/vanik/app/routes"
	"github.com/shashiranjanraj/vanik/pkg/router"
)

func TestRegisterWebNamesEveryRoute(t *testing.T) {
	r := router.New()
	routes.RegisterWeb(r)

	names := []string{
		"index",
		"products.index", "products.add", "products.show", "products.update",
		"customers.index", "customers.add", "customers.export",
		"customers.show", "customers.update", "customers.delete",
		"register", "login", "logout",
		"verify-email.done", "verify-email.confirm", "verify-email.complete",
		"send-email",
	}
	for _, name := range names {
		if _, ok := r.Path(name); !ok {
			t.Errorf("route %q is not registered", name)
		}
	}
}

func TestFormRoutesMergeVerbs(t *testing.T) {
	r := router.New()
	routes.RegisterWeb(r)

	for _, route := range r.Routes() {
		if route.Name == "login" && route.Method != "GET|POST" {
			t.Errorf("login should answer GET and POST, got %q", route.Method)
		}
		if route.Name == "customers.export" && route.Method != "GET" {
			t.Errorf("export is GET only, got %q", route.Method)
		}
	}
}

func TestReversal(t *testing.T) {
	r := router.New()
	routes.RegisterWeb(r)

	url, err := r.URL("products.update", map[string]string{"slug": "notebook"})
	if err != nil {
		t.Fatalf("reverse: %v", err)
	}
	if url != "/products/notebook/update" {
		t.Errorf("got %q", url)
	}

	url, err = r.URL("verify-email.confirm", map[string]string{"uidb64": "MQ", "token": "abc"})
	if err != nil {
		t.Fatalf("reverse: %v", err)
	}
	if url != "/verify-email/MQ/abc" {
		t.Errorf("got %q", url)
	}
}
