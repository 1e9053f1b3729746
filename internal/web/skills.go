package web

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/tahmid/folio/internal/activity"
	"github.com/tahmid/folio/internal/forms"
	"github.com/tahmid/folio/internal/models"
	"github.com/tahmid/folio/internal/portfolio"
)

type skillsPageData struct {
	Categories []models.SkillCategory
	Token      string
	Flash      string
	Error      string
}

func (h *Handlers) skillsForm(w http.ResponseWriter, r *http.Request) {
	cats, err := h.client.Skills(r.Context())
	if err != nil {
		h.logger.Error("load skills", "error", err)
		h.render(w, http.StatusOK, "skills.html", skillsPageData{
			Token: h.tokens.Issue(),
			Error: portfolio.UserMessage(err),
		})
		return
	}
	h.render(w, http.StatusOK, "skills.html", skillsPageData{
		Categories: cats,
		Token:      h.tokens.Issue(),
		Flash:      r.URL.Query().Get("msg"),
	})
}

// skillsFromForm rebuilds the full category list from the indexed inputs.
// Categories flagged for deletion are dropped, per-category additions are
// appended, and levels are clamped to 0..100.
func skillsFromForm(v url.Values) []models.SkillCategory {
	catCount, _ := strconv.Atoi(v.Get("cat_count"))
	out := make([]models.SkillCategory, 0, catCount+1)

	for i := 0; i < catCount; i++ {
		if v.Get(fmt.Sprintf("delete_cat_%d", i)) == "on" {
			continue
		}
		cat := models.SkillCategory{
			ID:       strings.TrimSpace(v.Get(fmt.Sprintf("cat_id_%d", i))),
			Category: strings.TrimSpace(v.Get(fmt.Sprintf("cat_name_%d", i))),
			Skills:   []models.Skill{},
		}

		skillCount, _ := strconv.Atoi(v.Get(fmt.Sprintf("skill_count_%d", i)))
		for j := 0; j < skillCount; j++ {
			if v.Get(fmt.Sprintf("delete_skill_%d_%d", i, j)) == "on" {
				continue
			}
			name := strings.TrimSpace(v.Get(fmt.Sprintf("skill_name_%d_%d", i, j)))
			if name == "" {
				continue
			}
			cat.Skills = append(cat.Skills, models.Skill{
				Name:  name,
				Level: forms.ParseLevel(v.Get(fmt.Sprintf("skill_level_%d_%d", i, j))),
			})
		}

		if name := strings.TrimSpace(v.Get(fmt.Sprintf("new_skill_name_%d", i))); name != "" {
			cat.Skills = append(cat.Skills, models.Skill{
				Name:  name,
				Level: forms.ParseLevel(v.Get(fmt.Sprintf("new_skill_level_%d", i))),
			})
		}
		out = append(out, cat)
	}

	if name := strings.TrimSpace(v.Get("new_category")); name != "" {
		out = append(out, models.SkillCategory{Category: name, Skills: []models.Skill{}})
	}
	return out
}

func (h *Handlers) skillsSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	if !h.tokens.Consume(r.PostFormValue("form_token")) {
		http.Redirect(w, r, "/admin/dashboard/skills", http.StatusSeeOther)
		return
	}

	cats := skillsFromForm(r.PostForm)
	for _, cat := range cats {
		if err := cat.Validate(); err != nil {
			h.render(w, http.StatusOK, "skills.html", skillsPageData{
				Categories: cats,
				Token:      h.tokens.Issue(),
				Error:      err.Error(),
			})
			return
		}
	}

	err := h.policy.Do(r.Context(), func(ctx context.Context) error {
		_, saveErr := h.client.ReplaceSkills(ctx, cats)
		return saveErr
	})
	if err != nil {
		h.logger.Error("save skills", "error", err)
		h.render(w, http.StatusOK, "skills.html", skillsPageData{
			Categories: cats,
			Token:      h.tokens.Issue(),
			Error:      portfolio.UserMessage(err),
		})
		return
	}

	h.recordActivity(activity.ActionSaved, "skills", "", "")

	// Render from a fresh fetch so server-assigned category ids show up.
	fresh, err := h.client.Skills(r.Context())
	if err != nil {
		h.logger.Warn("refetch skills", "error", err)
		http.Redirect(w, r, "/admin/dashboard/skills?msg="+url.QueryEscape("Skills saved."), http.StatusSeeOther)
		return
	}
	h.render(w, http.StatusOK, "skills.html", skillsPageData{
		Categories: fresh,
		Token:      h.tokens.Issue(),
		Flash:      "Skills saved.",
	})
}
