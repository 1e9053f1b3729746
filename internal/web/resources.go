package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/tahmid/folio/internal/forms"
	"github.com/tahmid/folio/internal/models"
	"github.com/tahmid/folio/internal/portfolio"
)

// field describes one input on a generic admin form. Name doubles as the
// draft field path; "parent.child" names address nested objects.
type field struct {
	Name     string
	Label    string
	Type     string // text, textarea, number, date, url, checkbox, list, image
	Required bool
}

// listRow is what a generic admin list renders per entity.
type listRow struct {
	ID       string
	Title    string
	Subtitle string
}

// resourceDef parameterizes the generic list and form handlers for one
// collection resource: endpoint wiring, field schema, and codecs.
type resourceDef struct {
	slug     string
	singular string
	plural   string
	fields   []field

	list   func(ctx context.Context) ([]listRow, error)
	load   func(ctx context.Context, id string) (map[string]string, error)
	decode func(id string, v url.Values) (saveFunc, error)
	remove func(ctx context.Context, id string) error
}

// saveFunc persists a decoded, validated entity and returns its title.
type saveFunc func(ctx context.Context) (string, error)

// Template accessors.
func (d *resourceDef) Slug() string     { return d.slug }
func (d *resourceDef) Singular() string { return d.singular }
func (d *resourceDef) Plural() string   { return d.plural }
func (d *resourceDef) Fields() []field  { return d.fields }

type validatable interface {
	Validate() error
}

// decodeDraft converts a draft assembled by the form binder into the typed
// entity via its JSON shape.
func decodeDraft[T any](draft map[string]any) (T, error) {
	var out T
	data, err := json.Marshal(draft)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(data, &out)
	return out, err
}

// resourceFor builds a resourceDef over one upstream collection.
func resourceFor[T validatable](
	res portfolio.Resource[T],
	slug, singular, plural string,
	fields []field,
	row func(T) listRow,
	toForm func(T) map[string]string,
	fromForm func(url.Values) (T, error),
) resourceDef {
	return resourceDef{
		slug:     slug,
		singular: singular,
		plural:   plural,
		fields:   fields,
		list: func(ctx context.Context) ([]listRow, error) {
			items, err := res.List(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([]listRow, len(items))
			for i, it := range items {
				rows[i] = row(it)
			}
			return rows, nil
		},
		load: func(ctx context.Context, id string) (map[string]string, error) {
			entity, err := res.Get(ctx, id)
			if err != nil {
				return nil, err
			}
			return toForm(entity), nil
		},
		decode: func(id string, v url.Values) (saveFunc, error) {
			entity, err := fromForm(v)
			if err != nil {
				return nil, err
			}
			if err := entity.Validate(); err != nil {
				return nil, err
			}
			return func(ctx context.Context) (string, error) {
				var saved T
				var saveErr error
				if id == "" {
					saved, saveErr = res.Create(ctx, entity)
				} else {
					saved, saveErr = res.Update(ctx, id, entity)
				}
				if saveErr != nil {
					return "", saveErr
				}
				return row(saved).Title, nil
			}, nil
		},
		remove: res.Delete,
	}
}

// textFields copies plain (possibly nested) string inputs into the draft.
func textFields(draft map[string]any, v url.Values, names ...string) {
	for _, name := range names {
		forms.SetField(draft, name, strings.TrimSpace(v.Get(name)))
	}
}

func joinList(items []string) string {
	return strings.Join(items, "\n")
}

func resourceDefs(c *portfolio.Client) []resourceDef {
	projects := resourceFor(c.Projects(), "projects", "Project", "Projects",
		[]field{
			{Name: "title", Label: "Title", Type: "text", Required: true},
			{Name: "completion_date", Label: "Completion Date", Type: "date"},
			{Name: "short_description", Label: "Short Description", Type: "textarea", Required: true},
			{Name: "detailed_description", Label: "Detailed Description", Type: "textarea", Required: true},
			{Name: "role", Label: "Role", Type: "text", Required: true},
			{Name: "photo_url", Label: "Photo", Type: "image"},
			{Name: "featured", Label: "Featured", Type: "checkbox"},
			{Name: "live_url", Label: "Live URL", Type: "url"},
			{Name: "github_url", Label: "GitHub URL", Type: "url"},
			{Name: "tags", Label: "Tags (one per line)", Type: "list"},
		},
		func(p models.Project) listRow {
			return listRow{ID: p.ID, Title: p.Title, Subtitle: p.Role}
		},
		func(p models.Project) map[string]string {
			return map[string]string{
				"title":                p.Title,
				"completion_date":      p.CompletionDate,
				"short_description":    p.ShortDescription,
				"detailed_description": p.DetailedDescription,
				"role":                 p.Role,
				"photo_url":            p.PhotoURL,
				"featured":             checkbox(p.Featured),
				"live_url":             p.LiveURL,
				"github_url":           p.GitHubURL,
				"tags":                 joinList(p.Tags),
			}
		},
		func(v url.Values) (models.Project, error) {
			draft := map[string]any{}
			textFields(draft, v, "title", "completion_date", "short_description",
				"detailed_description", "role", "photo_url", "live_url", "github_url")
			draft["featured"] = v.Get("featured") == "on"
			draft["tags"] = forms.ParseList(v.Get("tags"))
			return decodeDraft[models.Project](draft)
		},
	)

	experiences := resourceFor(c.Experiences(), "experience", "Experience", "Experience",
		[]field{
			{Name: "company_name", Label: "Company", Type: "text", Required: true},
			{Name: "position", Label: "Position", Type: "text", Required: true},
			{Name: "duration", Label: "Duration", Type: "text", Required: true},
			{Name: "description", Label: "Description", Type: "textarea", Required: true},
			{Name: "responsibilities", Label: "Responsibilities (one per line)", Type: "list"},
			{Name: "technologies", Label: "Technologies (one per line)", Type: "list"},
		},
		func(e models.Experience) listRow {
			return listRow{ID: e.ID, Title: e.CompanyName, Subtitle: e.Position}
		},
		func(e models.Experience) map[string]string {
			return map[string]string{
				"company_name":     e.CompanyName,
				"position":         e.Position,
				"duration":         e.Duration,
				"description":      e.Description,
				"responsibilities": joinList(e.Responsibilities),
				"technologies":     joinList(e.Technologies),
			}
		},
		func(v url.Values) (models.Experience, error) {
			draft := map[string]any{}
			textFields(draft, v, "company_name", "position", "duration", "description")
			draft["responsibilities"] = forms.ParseList(v.Get("responsibilities"))
			draft["technologies"] = forms.ParseList(v.Get("technologies"))
			return decodeDraft[models.Experience](draft)
		},
	)

	certificates := resourceFor(c.Certificates(), "certificates", "Certificate", "Certificates",
		[]field{
			{Name: "title", Label: "Title", Type: "text", Required: true},
			{Name: "issuer", Label: "Issuer", Type: "text", Required: true},
			{Name: "date", Label: "Date", Type: "date", Required: true},
			{Name: "credential_url", Label: "Credential URL", Type: "url"},
			{Name: "photo", Label: "Photo", Type: "image"},
		},
		func(ct models.Certificate) listRow {
			return listRow{ID: ct.ID, Title: ct.Title, Subtitle: ct.Issuer}
		},
		func(ct models.Certificate) map[string]string {
			return map[string]string{
				"title":          ct.Title,
				"issuer":         ct.Issuer,
				"date":           ct.Date,
				"credential_url": ct.CredentialURL,
				"photo":          ct.Photo,
			}
		},
		func(v url.Values) (models.Certificate, error) {
			draft := map[string]any{}
			textFields(draft, v, "title", "issuer", "date", "credential_url", "photo")
			return decodeDraft[models.Certificate](draft)
		},
	)

	achievements := resourceFor(c.Achievements(), "achievements", "Achievement", "Achievements",
		[]field{
			{Name: "title", Label: "Title", Type: "text", Required: true},
			{Name: "organization", Label: "Organization", Type: "text", Required: true},
			{Name: "year", Label: "Year", Type: "number", Required: true},
			{Name: "image", Label: "Image", Type: "image"},
			{Name: "description", Label: "Description", Type: "textarea", Required: true},
			{Name: "icon", Label: "Icon", Type: "text"},
		},
		func(a models.Achievement) listRow {
			return listRow{ID: a.ID, Title: a.Title, Subtitle: fmt.Sprintf("%s, %d", a.Organization, a.Year)}
		},
		func(a models.Achievement) map[string]string {
			return map[string]string{
				"title":        a.Title,
				"organization": a.Organization,
				"year":         strconv.Itoa(a.Year),
				"image":        a.Image,
				"description":  a.Description,
				"icon":         a.Icon,
			}
		},
		func(v url.Values) (models.Achievement, error) {
			draft := map[string]any{}
			textFields(draft, v, "title", "organization", "image", "description", "icon")
			year, _ := strconv.Atoi(strings.TrimSpace(v.Get("year")))
			draft["year"] = year
			return decodeDraft[models.Achievement](draft)
		},
	)

	blogs := resourceFor(c.Blogs(), "blog", "Blog Post", "Blog Posts",
		[]field{
			{Name: "title", Label: "Title", Type: "text", Required: true},
			{Name: "excerpt", Label: "Excerpt", Type: "textarea", Required: true},
			{Name: "content_markdown", Label: "Content (Markdown)", Type: "textarea", Required: true},
			{Name: "cover_image_url", Label: "Cover Image", Type: "image"},
			{Name: "publication_date", Label: "Publication Date", Type: "date"},
			{Name: "author", Label: "Author", Type: "text"},
			{Name: "tags", Label: "Tags (one per line)", Type: "list"},
		},
		func(b models.Blog) listRow {
			return listRow{ID: b.ID, Title: b.Title, Subtitle: b.Author}
		},
		func(b models.Blog) map[string]string {
			return map[string]string{
				"title":            b.Title,
				"excerpt":          b.Excerpt,
				"content_markdown": b.ContentMarkdown,
				"cover_image_url":  b.CoverImageURL,
				"publication_date": b.PublicationDate,
				"author":           b.Author,
				"tags":             joinList(b.Tags),
			}
		},
		func(v url.Values) (models.Blog, error) {
			draft := map[string]any{}
			textFields(draft, v, "title", "excerpt", "content_markdown",
				"cover_image_url", "publication_date", "author")
			draft["tags"] = forms.ParseList(v.Get("tags"))
			return decodeDraft[models.Blog](draft)
		},
	)

	return []resourceDef{projects, experiences, certificates, achievements, blogs}
}

func checkbox(b bool) string {
	if b {
		return "on"
	}
	return ""
}
