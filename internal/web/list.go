package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tahmid/folio/internal/activity"
	"github.com/tahmid/folio/internal/apperr"
	"github.com/tahmid/folio/internal/portfolio"
	"github.com/tahmid/folio/internal/sse"
)

type ctxKey int

const defKey ctxKey = 0

// withResource resolves the {resource} slug to its definition and stores it
// on the request context. Unknown slugs 404.
func (h *Handlers) withResource(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		def := h.def(chi.URLParam(r, "resource"))
		if def == nil {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), defKey, def)))
	})
}

func resourceFrom(r *http.Request) *resourceDef {
	return r.Context().Value(defKey).(*resourceDef)
}

type listPageData struct {
	Def   *resourceDef
	Rows  []listRow
	Flash string
	Error string
}

func (h *Handlers) resourceList(w http.ResponseWriter, r *http.Request) {
	def := resourceFrom(r)
	data := listPageData{Def: def, Flash: r.URL.Query().Get("msg")}
	rows, err := def.list(r.Context())
	if err != nil {
		h.logger.Error("list", "resource", def.slug, "error", err)
		data.Error = portfolio.UserMessage(err)
	}
	data.Rows = rows
	h.render(w, http.StatusOK, "list.html", data)
}

// resourceDelete removes one entity. The row is already gone client-side by
// the time this runs; on success we return an empty body so the removal
// sticks without a list re-fetch.
func (h *Handlers) resourceDelete(w http.ResponseWriter, r *http.Request) {
	def := resourceFrom(r)
	id := chi.URLParam(r, "id")

	if err := def.remove(r.Context(), id); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			w.WriteHeader(http.StatusOK)
			return
		}
		h.logger.Error("delete", "resource", def.slug, "id", id, "error", err)
		http.Error(w, portfolio.UserMessage(err), http.StatusBadGateway)
		return
	}

	h.recordActivity(activity.ActionDeleted, def.slug, id, "")
	w.WriteHeader(http.StatusOK)
}

// recordActivity logs an admin action and notifies dashboard listeners.
func (h *Handlers) recordActivity(action, resource, id, title string) {
	actor := "admin"
	if rec, ok := h.gate.Current(); ok {
		actor = rec.Username
	}
	if err := h.activity.Record(activity.Entry{
		Actor:    actor,
		Action:   action,
		Resource: resource,
		EntityID: id,
		Title:    title,
	}); err != nil {
		h.logger.Error("record activity", "error", err)
	}
	h.broker.Publish(sse.ContentEvent{Resource: resource, Action: action, Title: title})
}
