package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/tahmid/folio/internal/forms"
	"github.com/tahmid/folio/internal/models"
)

// homePageData carries every section of the public page. Sections whose
// fetch failed render empty rather than failing the whole page.
type homePageData struct {
	About        models.AboutProfile
	Projects     []models.Project
	Experiences  []models.Experience
	Certificates []models.Certificate
	Achievements []models.Achievement
	Skills       []models.SkillCategory
	Contact      models.ContactDetails
}

func (h *Handlers) home(w http.ResponseWriter, r *http.Request) {
	var data homePageData
	g, ctx := errgroup.WithContext(r.Context())

	section := func(name string, fetch func() error) {
		g.Go(func() error {
			if err := fetch(); err != nil {
				h.logger.Warn("home section", "section", name, "error", err)
			}
			return nil
		})
	}

	section("about", func() (err error) {
		data.About, err = h.client.About(ctx)
		return
	})
	section("projects", func() (err error) {
		data.Projects, err = h.client.Projects().List(ctx)
		return
	})
	section("experiences", func() (err error) {
		data.Experiences, err = h.client.Experiences().List(ctx)
		return
	})
	section("certificates", func() (err error) {
		data.Certificates, err = h.client.Certificates().List(ctx)
		return
	})
	section("achievements", func() (err error) {
		data.Achievements, err = h.client.Achievements().List(ctx)
		return
	})
	section("skills", func() (err error) {
		data.Skills, err = h.client.Skills(ctx)
		return
	})
	section("contact", func() (err error) {
		data.Contact, err = h.client.Contact(ctx)
		return
	})
	_ = g.Wait()

	h.render(w, http.StatusOK, "home.html", data)
}

type blogIndexData struct {
	Posts []models.Blog
}

func (h *Handlers) blogIndex(w http.ResponseWriter, r *http.Request) {
	posts, err := h.client.Blogs().List(r.Context())
	if err != nil {
		h.logger.Error("blog index", "error", err)
		posts = nil
	}
	h.render(w, http.StatusOK, "blog_index.html", blogIndexData{Posts: posts})
}

type blogPostData struct {
	Post models.Blog
}

// blogPost resolves a post by the slug of its title.
func (h *Handlers) blogPost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	posts, err := h.client.Blogs().List(r.Context())
	if err != nil {
		h.logger.Error("blog post", "slug", slug, "error", err)
		http.Error(w, "blog unavailable", http.StatusBadGateway)
		return
	}
	for _, p := range posts {
		if forms.Slugify(p.Title) == slug {
			h.render(w, http.StatusOK, "blog_post.html", blogPostData{Post: p})
			return
		}
	}
	http.NotFound(w, r)
}
