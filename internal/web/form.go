package web

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/tahmid/folio/internal/activity"
	"github.com/tahmid/folio/internal/portfolio"
)

type formPageData struct {
	Def    *resourceDef
	ID     string
	Values map[string]string
	Images []string
	Token  string
	Error  string
}

func (h *Handlers) resourceForm(w http.ResponseWriter, r *http.Request) {
	def := resourceFrom(r)
	id := chi.URLParam(r, "id")

	values := map[string]string{}
	if id != "" {
		loaded, err := def.load(r.Context(), id)
		if err != nil {
			h.logger.Error("load entity", "resource", def.slug, "id", id, "error", err)
			h.renderListError(w, r, def, portfolio.UserMessage(err))
			return
		}
		values = loaded
	}

	h.render(w, http.StatusOK, "form.html", formPageData{
		Def:    def,
		ID:     id,
		Values: values,
		Images: h.assets.List(),
		Token:  h.tokens.Issue(),
	})
}

func (h *Handlers) resourceSave(w http.ResponseWriter, r *http.Request) {
	def := resourceFrom(r)
	id := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	listURL := "/admin/dashboard/" + def.slug + "/"
	if !h.tokens.Consume(r.PostFormValue("form_token")) {
		http.Redirect(w, r, listURL, http.StatusSeeOther)
		return
	}

	save, err := def.decode(id, r.PostForm)
	if err != nil {
		h.renderFormError(w, def, id, r.PostForm, err.Error())
		return
	}

	var title string
	err = h.policy.Do(r.Context(), func(ctx context.Context) error {
		var saveErr error
		title, saveErr = save(ctx)
		return saveErr
	})
	if err != nil {
		h.logger.Error("save", "resource", def.slug, "id", id, "error", err)
		h.renderFormError(w, def, id, r.PostForm, portfolio.UserMessage(err))
		return
	}

	h.recordActivity(activity.ActionSaved, def.slug, id, title)
	http.Redirect(w, r, listURL+"?msg="+url.QueryEscape(def.singular+" saved."), http.StatusSeeOther)
}

// renderFormError echoes submitted inputs back into the form after a failed
// save so the admin does not lose their edits.
func (h *Handlers) renderFormError(w http.ResponseWriter, def *resourceDef, id string, v url.Values, msg string) {
	values := make(map[string]string, len(def.fields))
	for _, f := range def.fields {
		values[f.Name] = v.Get(f.Name)
	}
	h.render(w, http.StatusOK, "form.html", formPageData{
		Def:    def,
		ID:     id,
		Values: values,
		Images: h.assets.List(),
		Token:  h.tokens.Issue(),
		Error:  msg,
	})
}

func (h *Handlers) renderListError(w http.ResponseWriter, r *http.Request, def *resourceDef, msg string) {
	rows, err := def.list(r.Context())
	if err != nil {
		rows = nil
	}
	h.render(w, http.StatusOK, "list.html", listPageData{Def: def, Rows: rows, Error: msg})
}
