package testkit

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Get performs a GET against h and returns the recorded response.
func Get(h http.Handler, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// PostForm submits form as a browser would: url-encoded body with the
// matching content type.
func PostForm(h http.Handler, target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// Cookies parses the Set-Cookie headers of a recorded response, so a
// session handed out by one request can be replayed on the next.
func Cookies(rec *httptest.ResponseRecorder) []*http.Cookie {
	return (&http.Response{Header: rec.Header()}).Cookies()
}

// AssertRedirect checks for a 302 to the given location.
func AssertRedirect(t *testing.T, rec *httptest.ResponseRecorder, location string) {
	t.Helper()
	assert.Equal(t, http.StatusFound, rec.Code, "expected a redirect, body: %s", rec.Body.String())
	assert.Equal(t, location, rec.Header().Get("Location"))
}

// AssertBodyContains checks that the rendered page carries the fragment.
func AssertBodyContains(t *testing.T, rec *httptest.ResponseRecorder, fragment string) {
	t.Helper()
	assert.Contains(t, rec.Body.String(), fragment)
}
