// Package web serves the public site and the admin panel. All content lives
// in the upstream portfolio API; handlers fetch on demand and render
// server-side templates, with HTMX fragments for row-level updates.
package web

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tahmid/folio/internal/activity"
	"github.com/tahmid/folio/internal/assets"
	"github.com/tahmid/folio/internal/portfolio"
	"github.com/tahmid/folio/internal/session"
	"github.com/tahmid/folio/internal/sse"
)

// Handlers bundles the dependencies shared by every route.
type Handlers struct {
	logger   *slog.Logger
	gate     *session.Gate
	client   *portfolio.Client
	policy   portfolio.SavePolicy
	assets   *assets.Store
	activity *activity.DB
	broker   *sse.Broker
	defs     []resourceDef
	tokens   *tokenStore
}

func NewHandlers(
	logger *slog.Logger,
	gate *session.Gate,
	client *portfolio.Client,
	store *assets.Store,
	log *activity.DB,
	broker *sse.Broker,
) *Handlers {
	return &Handlers{
		logger:   logger,
		gate:     gate,
		client:   client,
		policy:   portfolio.NewSavePolicy(),
		assets:   store,
		activity: log,
		broker:   broker,
		defs:     resourceDefs(client),
		tokens:   newTokenStore(),
	}
}

func (h *Handlers) def(slug string) *resourceDef {
	for i := range h.defs {
		if h.defs[i].slug == slug {
			return &h.defs[i]
		}
	}
	return nil
}

// NewRouter wires the public pages, the auth endpoints, and the gated admin
// panel.
func NewRouter(h *Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/", h.home)
	r.Get("/blog", h.blogIndex)
	r.Get("/blog/{slug}", h.blogPost)
	r.Get("/assets/{filename}", h.serveAsset)

	r.Get("/admin", h.loginPage)
	r.Post("/admin/login", h.login)
	r.Post("/admin/logout", h.logout)

	r.Route("/admin/dashboard", func(r chi.Router) {
		r.Use(h.requireAdmin)

		r.Get("/", h.dashboard)
		r.Get("/about", h.aboutForm)
		r.Post("/about", h.aboutSave)
		r.Get("/contact", h.contactForm)
		r.Post("/contact", h.contactSave)
		r.Get("/skills", h.skillsForm)
		r.Post("/skills", h.skillsSave)
		r.Get("/images", h.imageLibrary)
		r.Post("/images", h.uploadImage)
		r.Delete("/images/{filename}", h.deleteImage)
		r.Get("/events", h.broker.ServeHTTP)

		r.Route("/{resource}", func(r chi.Router) {
			r.Use(h.withResource)
			r.Get("/", h.resourceList)
			r.Get("/new", h.resourceForm)
			r.Post("/new", h.resourceSave)
			r.Get("/edit/{id}", h.resourceForm)
			r.Post("/edit/{id}", h.resourceSave)
			r.Delete("/{id}", h.resourceDelete)
		})
	})

	return r
}
