package web

import (
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/tahmid/folio/internal/activity"
)

type loginPageData struct {
	Error string
}

func (h *Handlers) loginPage(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" && h.gate.IsAuthenticated() {
		http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
		return
	}
	h.render(w, http.StatusOK, "login.html", loginPageData{})
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")
	if !h.gate.Login(username, password) {
		h.logger.Warn("login rejected", "username", username)
		h.render(w, http.StatusUnauthorized, "login.html", loginPageData{Error: "Invalid username or password."})
		return
	}
	setSessionCookie(w)
	h.logger.Info("login", "username", username)
	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}

func (h *Handlers) logout(w http.ResponseWriter, r *http.Request) {
	h.gate.Logout()
	clearSessionCookie(w)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

type dashboardData struct {
	Name   string
	Counts []resourceCount
	Recent []activity.Entry
	Flash  string
}

type resourceCount struct {
	Slug   string
	Plural string
	Count  int
}

func (h *Handlers) dashboard(w http.ResponseWriter, r *http.Request) {
	counts := make([]resourceCount, len(h.defs))
	g, ctx := errgroup.WithContext(r.Context())
	for i := range h.defs {
		def := &h.defs[i]
		idx := i
		g.Go(func() error {
			rows, err := def.list(ctx)
			if err != nil {
				h.logger.Warn("dashboard count", "resource", def.slug, "error", err)
			}
			counts[idx] = resourceCount{Slug: def.slug, Plural: def.plural, Count: len(rows)}
			return nil
		})
	}
	_ = g.Wait()

	recent, err := h.activity.Recent(10)
	if err != nil {
		h.logger.Error("recent activity", "error", err)
	}

	name := ""
	if rec, ok := h.gate.Current(); ok {
		name = rec.Name
	}
	h.render(w, http.StatusOK, "dashboard.html", dashboardData{
		Name:   name,
		Counts: counts,
		Recent: recent,
		Flash:  r.URL.Query().Get("msg"),
	})
}
