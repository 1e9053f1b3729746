package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/tahmid/folio/internal/forms"
)

//go:embed templates/*.html
var tmplFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"slugify": forms.Slugify,
}).ParseFS(tmplFS, "templates/*.html"))

func (h *Handlers) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		h.logger.Error("template render failed",
			slog.String("template", name),
			slog.String("error", err.Error()))
	}
}
