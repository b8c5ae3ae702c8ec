package middleware

import (
	"context"
	"net/http"
)

// userKey is the context key under which Authenticate stores the resolved
// user for the request.
type userKey struct{}

// Authenticate resolves the signed-in user once per request and stores it
// in the request context. resolve inspects the session cookie and returns
// the user record, or nil for anonymous requests. Wire it after the
// session middleware.
func Authenticate(resolve func(r *http.Request) interface{}) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user := resolve(r); user != nil {
				ctx := context.WithValue(r.Context(), userKey{}, user)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserFrom returns the user stored by Authenticate, or nil when the
// request is anonymous.
func UserFrom(ctx context.Context) interface{} {
	return ctx.Value(userKey{})
}
