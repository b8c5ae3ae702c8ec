package router_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shashiranjanraj/vanik/pkg/router"
)

func TestMethodRouting(t *testing.T) {
	r := router.New()
	r.Get("/customers", "customers.index", func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, "list")
	})
	r.Post("/customers/add", "customers.add", func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, "created")
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/customers", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "list" {
		t.Errorf("GET /customers: got %d %q", rec.Code, rec.Body.String())
	}

	// Wrong verb on a mounted path.
	rec = httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/customers/add", nil))
	if rec.Code == http.StatusOK {
		t.Errorf("GET on a POST-only route should not succeed, got %d", rec.Code)
	}
}

func TestPathParams(t *testing.T) {
	r := router.New()
	r.Get("/products/{slug}", "products.show", func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, router.Param(req, "slug"))
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/notebook", nil))
	if rec.Body.String() != "notebook" {
		t.Errorf("expected slug notebook, got %q", rec.Body.String())
	}
}

func TestURLReversal(t *testing.T) {
	r := router.New()
	r.Get("/customers/{id}/update", "customers.update", func(w http.ResponseWriter, req *http.Request) {})

	url, err := r.URL("customers.update", map[string]string{"id": "7"})
	if err != nil {
		t.Fatalf("reverse: %v", err)
	}
	if url != "/customers/7/update" {
		t.Errorf("expected /customers/7/update, got %q", url)
	}

	if _, err := r.URL("customers.update", nil); err == nil {
		t.Error("reversal without params must fail for a parameterised route")
	}
	if _, err := r.URL("nope", nil); err == nil {
		t.Error("reversal of an unknown name must fail")
	}
}

func TestRoutesMergesVerbsUnderOneName(t *testing.T) {
	r := router.New()
	handler := func(w http.ResponseWriter, req *http.Request) {}
	r.Get("/login", "login", handler)
	r.Post("/login", "login", handler)

	routes := r.Routes()
	if len(routes) != 1 {
		t.Fatalf("expected one merged route, got %d", len(routes))
	}
	if routes[0].Method != "GET|POST" {
		t.Errorf("expected merged verbs GET|POST, got %q", routes[0].Method)
	}
}

func TestNotFoundHandler(t *testing.T) {
	r := router.New()
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, "custom 404")
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if rec.Code != http.StatusNotFound || rec.Body.String() != "custom 404" {
		t.Errorf("got %d %q", rec.Code, rec.Body.String())
	}
}

func TestGroupPrefixing(t *testing.T) {
	r := router.New()
	admin := r.Group("/admin")
	admin.Get("/reports", "admin.reports", func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, "reports")
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/reports", nil))
	if rec.Body.String() != "reports" {
		t.Errorf("expected grouped route to resolve, got %d %q", rec.Code, rec.Body.String())
	}
}
