package web

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/tahmid/folio/internal/activity"
	"github.com/tahmid/folio/internal/apperr"
	"github.com/tahmid/folio/internal/forms"
	"github.com/tahmid/folio/internal/models"
	"github.com/tahmid/folio/internal/portfolio"
)

type aboutPageData struct {
	Profile models.AboutProfile
	Images  []string
	Token   string
	Flash   string
	Error   string
}

func (h *Handlers) aboutForm(w http.ResponseWriter, r *http.Request) {
	profile, err := h.client.About(r.Context())
	if err != nil && !errors.Is(err, apperr.ErrNotFound) {
		h.logger.Error("load about", "error", err)
		h.render(w, http.StatusOK, "about.html", aboutPageData{
			Token: h.tokens.Issue(),
			Error: portfolio.UserMessage(err),
		})
		return
	}
	h.render(w, http.StatusOK, "about.html", aboutPageData{
		Profile: profile,
		Images:  h.assets.List(),
		Token:   h.tokens.Issue(),
		Flash:   r.URL.Query().Get("msg"),
	})
}

func aboutFromForm(v url.Values) (models.AboutProfile, error) {
	draft := map[string]any{}
	for _, name := range []string{
		"name", "title", "description", "longDescription", "image", "resumeUrl",
		"socialLinks.github", "socialLinks.linkedin", "socialLinks.facebook",
		"socialLinks.instagram", "socialLinks.codeforces", "socialLinks.codechef",
		"socialLinks.youtube",
	} {
		forms.SetField(draft, name, strings.TrimSpace(v.Get(name)))
	}
	return decodeDraft[models.AboutProfile](draft)
}

func (h *Handlers) aboutSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	if !h.tokens.Consume(r.PostFormValue("form_token")) {
		http.Redirect(w, r, "/admin/dashboard/about", http.StatusSeeOther)
		return
	}

	profile, err := aboutFromForm(r.PostForm)
	if err == nil {
		err = profile.Validate()
	}
	if err != nil {
		h.render(w, http.StatusOK, "about.html", aboutPageData{
			Profile: profile,
			Images:  h.assets.List(),
			Token:   h.tokens.Issue(),
			Error:   err.Error(),
		})
		return
	}

	err = h.policy.Do(r.Context(), func(ctx context.Context) error {
		_, saveErr := h.client.SaveAbout(ctx, profile)
		return saveErr
	})
	if err != nil {
		h.logger.Error("save about", "error", err)
		h.render(w, http.StatusOK, "about.html", aboutPageData{
			Profile: profile,
			Images:  h.assets.List(),
			Token:   h.tokens.Issue(),
			Error:   portfolio.UserMessage(err),
		})
		return
	}

	h.recordActivity(activity.ActionSaved, "about", "", profile.Name)
	http.Redirect(w, r, "/admin/dashboard/about?msg="+url.QueryEscape("Profile saved."), http.StatusSeeOther)
}

type contactPageData struct {
	Contact models.ContactDetails
	Token   string
	Flash   string
	Error   string
}

func (h *Handlers) contactForm(w http.ResponseWriter, r *http.Request) {
	contact, err := h.client.Contact(r.Context())
	if err != nil && !errors.Is(err, apperr.ErrNotFound) {
		h.logger.Error("load contact", "error", err)
		h.render(w, http.StatusOK, "contact.html", contactPageData{
			Token: h.tokens.Issue(),
			Error: portfolio.UserMessage(err),
		})
		return
	}
	h.render(w, http.StatusOK, "contact.html", contactPageData{
		Contact: contact,
		Token:   h.tokens.Issue(),
		Flash:   r.URL.Query().Get("msg"),
	})
}

func contactFromForm(v url.Values) (models.ContactDetails, error) {
	draft := map[string]any{}
	for _, name := range []string{
		"email", "phone", "address", "linkedin_url", "github_url", "twitter_url",
	} {
		forms.SetField(draft, name, strings.TrimSpace(v.Get(name)))
	}
	draft["available_for"] = forms.ParseList(v.Get("available_for"))
	return decodeDraft[models.ContactDetails](draft)
}

func (h *Handlers) contactSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	if !h.tokens.Consume(r.PostFormValue("form_token")) {
		http.Redirect(w, r, "/admin/dashboard/contact", http.StatusSeeOther)
		return
	}

	contact, err := contactFromForm(r.PostForm)
	if err == nil && !models.ValidEmail(contact.Email) {
		err = errors.New(models.EmailErrorMessage)
	}
	if err == nil {
		err = contact.Validate()
	}
	if err != nil {
		h.render(w, http.StatusOK, "contact.html", contactPageData{
			Contact: contact,
			Token:   h.tokens.Issue(),
			Error:   err.Error(),
		})
		return
	}

	err = h.policy.Do(r.Context(), func(ctx context.Context) error {
		_, saveErr := h.client.SaveContact(ctx, contact)
		return saveErr
	})
	if err != nil {
		h.logger.Error("save contact", "error", err)
		h.render(w, http.StatusOK, "contact.html", contactPageData{
			Contact: contact,
			Token:   h.tokens.Issue(),
			Error:   portfolio.UserMessage(err),
		})
		return
	}

	h.recordActivity(activity.ActionSaved, "contact", "", contact.Email)
	http.Redirect(w, r, "/admin/dashboard/contact?msg="+url.QueryEscape("Contact details saved."), http.StatusSeeOther)
}
