// Package views renders the embedded HTML template set. Every page
// template is parsed together with the shared layout; mail bodies under
// templates/mail are standalone.
//
// Render injects the signed-in user and any pending flash notices, then
// persists the session before the first byte of the body goes out.
package views

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/vanik/pkg/logger"
	"github.com/shashiranjanraj/vanik/pkg/middleware"
	"github.com/shashiranjanraj/vanik/pkg/session"
)

var funcs = template.FuncMap{
	"money": Money,
	"price": Price,
}

// Money renders a nullable decimal with two places. Null renders as an
// empty string: customers without orders show a blank revenue, not "0".
func Money(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.StringFixed(2)
}

// Price renders a decimal amount with two places.
func Price(d decimal.Decimal) string {
	return d.StringFixed(2)
}

var (
	pages  = map[string]*template.Template{}
	emails = map[string]*template.Template{}
)

func init() {
	patterns := []string{
		"templates/*.html",
		"templates/*/*.html",
		"templates/*/*/*.html",
	}

	for _, pattern := range patterns {
		paths, err := fs.Glob(files, pattern)
		if err != nil {
			panic(err)
		}
		for _, p := range paths {
			name := strings.TrimPrefix(p, "templates/")
			switch {
			case name == "layout.html":
			case strings.HasPrefix(name, "mail/"):
				emails[name] = template.Must(
					template.New(path.Base(name)).Funcs(funcs).ParseFS(files, p))
			default:
				pages[name] = template.Must(
					template.New("layout.html").Funcs(funcs).ParseFS(files, "templates/layout.html", p))
			}
		}
	}
}

// Render writes the named page wrapped in the site layout with HTTP 200.
func Render(w http.ResponseWriter, r *http.Request, name string, data map[string]interface{}) {
	RenderStatus(w, r, http.StatusOK, name, data)
}

// RenderStatus is Render with an explicit status code. The template runs
// into a buffer first, so a render failure becomes a clean 500 instead
// of a half-written page.
func RenderStatus(w http.ResponseWriter, r *http.Request, status int, name string, data map[string]interface{}) {
	tmpl, ok := pages[name]
	if !ok {
		logger.Error("views: unknown template", "name", name)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if data == nil {
		data = map[string]interface{}{}
	}
	data["User"] = middleware.UserFrom(r.Context())
	data["Path"] = r.URL.Path

	sess := session.FromCtx(r)
	if _, ok := data["Flashes"]; !ok {
		data["Flashes"] = sess.PopFlashes()
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		logger.Error("views: render failed", "name", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := sess.Save(w); err != nil {
		logger.Error("views: session save failed", "error", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// NotFound renders the shared 404 page. Routes and controllers funnel
// every missing-record lookup through here.
func NotFound(w http.ResponseWriter, r *http.Request) {
	RenderStatus(w, r, http.StatusNotFound, "errors/404.html", nil)
}

// RenderString renders a standalone template (mail bodies) to a string.
func RenderString(name string, data interface{}) (string, error) {
	tmpl, ok := emails[name]
	if !ok {
		return "", fmt.Errorf("views: unknown template %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, path.Base(name), data); err != nil {
		return "", fmt.Errorf("views: render %q: %w", name, err)
	}
	return buf.String(), nil
}
