// Package kernel assembles the application's HTTP handler: the global
// middleware stack, the named web routes and the operational endpoints.
package kernel

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/vanik/app/repositories"
	"github.com/shashiranjanraj/vanik/app/routes"
	"github.com/shashiranjanraj/vanik/pkg/metrics"
	"github.com/shashiranjanraj/vanik/pkg/middleware"
	"github.com/shashiranjanraj/vanik/pkg/reqid"
	"github.com/shashiranjanraj/vanik/pkg/router"
	"github.com/shashiranjanraj/vanik/pkg/session"
)

// Handler builds the complete HTTP handler.
func Handler() http.Handler {
	r := router.New()

	// Global middleware stack, outermost first:
	//  1. Prometheus metrics: outermost for accurate total latency
	//  2. Recovery:           catches panics before they kill the goroutine
	//  3. Request ID:         inject unique ID before anything logs
	//  4. Logger:             logs request_id from context
	//  5. Session:            load/create the session cookie
	//  6. Rate limiter:       reject abusers early
	//  7. Authenticate:       resolve the session user for the views
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(session.Middleware(session.DefaultOptions()))
	r.Use(middleware.RateLimit(200, time.Minute))
	r.Use(middleware.Authenticate(resolveUser))

	// Prometheus endpoint sits outside the web routes.
	r.Handle(http.MethodGet, "/metrics", "metrics", metrics.Handler())

	routes.RegisterWeb(r)

	return r.Handler()
}

// resolveUser maps the session's user_id onto a loaded account. The
// untyped nil for anonymous requests matters here: a typed nil pointer
// inside the interface would make templates believe someone is signed in.
func resolveUser(r *http.Request) interface{} {
	sess := session.FromCtx(r)
	id, ok := sess.GetInt("user_id")
	if !ok || id <= 0 {
		return nil
	}

	user, err := repositories.NewUserRepository().FindByIDCached(uint(id))
	if err != nil {
		return nil
	}
	return &user
}
