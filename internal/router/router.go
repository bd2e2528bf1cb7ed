// Package router sets up all HTTP routes and middleware chains for the
// Posterdesk server.
package router

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"posterdesk/internal/handlers"
	"posterdesk/internal/middleware"
	"posterdesk/web"
)

// New creates and returns the configured Chi router with all middleware
// and routes wired up.
func New(posters *handlers.Poster) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check.
	r.Get("/health", healthHandler)

	// Embedded static assets.
	staticFS, err := fs.Sub(web.StaticFS, "static")
	if err == nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	}

	// The root redirects to the poster list.
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/posters", http.StatusSeeOther)
	})

	// Programmatic JSON writes get a per-IP rate limit; browser form
	// traffic does not.
	jsonLimiter := middleware.NewRateLimiter(60, time.Minute)

	r.Route("/posters", func(r chi.Router) {
		r.Get("/", posters.List)
		r.Get("/new", posters.NewForm)
		r.Post("/new", posters.Create)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/edit", posters.EditForm)
			r.Post("/edit", posters.Update)
			r.Post("/delete", posters.Delete)
			r.Get("/preview", posters.Preview)
			r.Get("/json", posters.DataJSON)
			r.With(jsonLimiter.Middleware).Post("/update-json", posters.UpdateJSON)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
