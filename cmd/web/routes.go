package main

import (
	"errors"
	"net/http"

	"github.com/AdamBeresnev/op-bracket/internal/app"
	"github.com/AdamBeresnev/op-bracket/internal/bracket"
	"github.com/AdamBeresnev/op-bracket/internal/httputil"
	"github.com/AdamBeresnev/op-bracket/internal/locale"
	"github.com/AdamBeresnev/op-bracket/views"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func newRouter(application *app.App, catalog *locale.Catalog, corsOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	if len(corsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   corsOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost},
			AllowedHeaders:   []string{"Content-Type", "HX-Request", "HX-Target", "HX-Current-URL", "HX-Trigger"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}
	r.Use(application.Sessions().LoadAndSave)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httputil.NotFound(w, r, "Page not found", nil)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		tr := catalog.For(r.Header.Get("Accept-Language"))
		if err := views.Render(w, r, views.Page(application.State(r.Context()), tr)); err != nil {
			httputil.InternalServerError(w, r, "Failed to render page", err)
		}
	})

	r.Post("/events/{event}", func(w http.ResponseWriter, r *http.Request) {
		ev, err := bracket.ParseEvent(chi.URLParam(r, "event"))
		if err != nil {
			httputil.BadRequest(w, r, "Unknown event", err)
			return
		}

		b, err := application.Dispatch(r.Context(), ev)
		if err != nil {
			if errors.Is(err, bracket.ErrUnknownEvent) {
				httputil.BadRequest(w, r, "Unknown event", err)
				return
			}
			httputil.InternalServerError(w, r, "Failed to apply event", err)
			return
		}

		// Plain form posts go back to the page, htmx swaps the fragment in place
		if r.Header.Get("HX-Request") == "" {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		tr := catalog.For(r.Header.Get("Accept-Language"))
		if err := views.Render(w, r, views.Fragment(b, tr)); err != nil {
			httputil.InternalServerError(w, r, "Failed to render bracket", err)
		}
	})

	return r
}
