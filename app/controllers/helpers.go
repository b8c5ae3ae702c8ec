// Package controllers holds the HTTP handlers. Each controller is a thin
// adapter: bind the request, call a repository or service, render a view
// or redirect.
package controllers

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/shashiranjanraj/vanik/pkg/logger"
	"github.com/shashiranjanraj/vanik/pkg/router"
)

// pageParam reads the ?page= query value. Anything that is not a
// positive integer falls back to page 1; pages past the end are clamped
// later by the paginator.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// idParam reads a numeric path parameter. ok is false for anything that
// does not parse, which callers turn into a 404.
func idParam(r *http.Request, name string) (uint, bool) {
	id, err := strconv.ParseUint(router.Param(r, name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// internalError logs the failure and answers with a plain 500.
func internalError(w http.ResponseWriter, r *http.Request, err error) {
	logger.Error("request failed", "path", r.URL.Path, "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

var slugRE = regexp.MustCompile(`[^a-z0-9]+`)

// slugify derives a URL-safe slug from a product name: lowercased, runs
// of any other characters collapsed into single hyphens.
func slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugRE.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
