package web

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

// maxUploadBytes caps image uploads at 10 MiB.
const maxUploadBytes = 10 << 20

func (h *Handlers) serveAsset(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "filename"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	path, err := h.assets.Path(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, path)
}

type imagesPageData struct {
	Images []string
	Flash  string
	Error  string
}

func (h *Handlers) imageLibrary(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "images.html", imagesPageData{
		Images: h.assets.List(),
		Flash:  r.URL.Query().Get("msg"),
		Error:  r.URL.Query().Get("err"),
	})
}

func (h *Handlers) uploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Redirect(w, r, "/admin/dashboard/images?err="+url.QueryEscape("Upload too large or malformed."), http.StatusSeeOther)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Redirect(w, r, "/admin/dashboard/images?err="+url.QueryEscape("Choose a file to upload."), http.StatusSeeOther)
		return
	}
	defer file.Close()

	if _, err := h.assets.Save(header.Filename, file); err != nil {
		h.logger.Error("upload asset", "name", header.Filename, "error", err)
		http.Redirect(w, r, "/admin/dashboard/images?err="+url.QueryEscape("Could not store that file."), http.StatusSeeOther)
		return
	}

	h.logger.Info("asset uploaded", "name", header.Filename)
	http.Redirect(w, r, "/admin/dashboard/images?msg="+url.QueryEscape("Uploaded "+header.Filename+"."), http.StatusSeeOther)
}

func (h *Handlers) deleteImage(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "filename"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := h.assets.Remove(name); err != nil {
		h.logger.Error("delete asset", "name", name, "error", err)
		http.Error(w, "could not delete", http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusOK)
}
