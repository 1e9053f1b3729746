// Package portfolio is the HTTP client for the upstream content API. All
// successful responses arrive in a {"data": ...} envelope; error responses
// carry an optional "message" field that is surfaced to the admin verbatim.
package portfolio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tahmid/folio/internal/apperr"
	"github.com/tahmid/folio/internal/models"
)

// RequestError is a non-2xx upstream response. Message is the body's
// "message" field when present.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("upstream status %d", e.StatusCode)
}

// Client performs calls against the upstream API.
type Client struct {
	baseURL   string
	contactID string
	hc        *http.Client
}

// New creates a client for the API at baseURL. contactID addresses the
// fixed contact-details record.
func New(baseURL, contactID string, timeout time.Duration) *Client {
	return &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		contactID: contactID,
		hc:        &http.Client{Timeout: timeout},
	}
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// do issues one request. in (if non-nil) is sent as JSON; on 2xx the
// envelope's data field is decoded into out (if non-nil). Transport
// failures map to apperr.ErrNoResponse; 401/403/404 map to sentinels; any
// other non-2xx becomes a *RequestError.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("portfolio: encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("portfolio: build %s %s: %w", method, path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("portfolio: %s %s: %w", method, path, apperr.ErrNoResponse)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return fmt.Errorf("portfolio: %s %s: %w", method, path, apperr.ErrNoResponse)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var env envelope
		_ = json.Unmarshal(raw, &env)
		switch resp.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("portfolio: %s %s: %w", method, path, apperr.ErrNotFound)
		case http.StatusUnauthorized:
			return fmt.Errorf("portfolio: %s %s: %w", method, path, apperr.ErrUnauthorized)
		case http.StatusForbidden:
			return fmt.Errorf("portfolio: %s %s: %w", method, path, apperr.ErrForbidden)
		default:
			return &RequestError{StatusCode: resp.StatusCode, Message: env.Message}
		}
	}

	if out == nil {
		return nil
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("portfolio: decode %s %s: %w", method, path, err)
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("portfolio: decode %s %s data: %w", method, path, err)
	}
	return nil
}

// Resource is the generic CRUD surface for one collection endpoint.
type Resource[T any] struct {
	c    *Client
	base string
}

// List fetches the whole collection; an empty result is an empty slice.
func (r Resource[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.c.do(ctx, http.MethodGet, r.base, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// Get fetches one entity by id.
func (r Resource[T]) Get(ctx context.Context, id string) (T, error) {
	var out T
	err := r.c.do(ctx, http.MethodGet, r.base+"/"+id, nil, &out)
	return out, err
}

// Create persists a new entity and returns it with its server-assigned id.
func (r Resource[T]) Create(ctx context.Context, entity T) (T, error) {
	var out T
	err := r.c.do(ctx, http.MethodPost, r.base, entity, &out)
	return out, err
}

// Update replaces the entity with the given id.
func (r Resource[T]) Update(ctx context.Context, id string, entity T) (T, error) {
	var out T
	err := r.c.do(ctx, http.MethodPut, r.base+"/"+id, entity, &out)
	return out, err
}

// Delete removes the entity with the given id.
func (r Resource[T]) Delete(ctx context.Context, id string) error {
	return r.c.do(ctx, http.MethodDelete, r.base+"/"+id, nil, nil)
}

// Projects returns the projects resource.
func (c *Client) Projects() Resource[models.Project] {
	return Resource[models.Project]{c: c, base: "/projects"}
}

// Experiences returns the work experience resource.
func (c *Client) Experiences() Resource[models.Experience] {
	return Resource[models.Experience]{c: c, base: "/experiences"}
}

// Certificates returns the certificates resource.
func (c *Client) Certificates() Resource[models.Certificate] {
	return Resource[models.Certificate]{c: c, base: "/certificates"}
}

// Achievements returns the achievements resource.
func (c *Client) Achievements() Resource[models.Achievement] {
	return Resource[models.Achievement]{c: c, base: "/achievements"}
}

// Blogs returns the blog posts resource.
func (c *Client) Blogs() Resource[models.Blog] {
	return Resource[models.Blog]{c: c, base: "/blogs"}
}

// About fetches the singleton profile.
func (c *Client) About(ctx context.Context) (models.AboutProfile, error) {
	var out models.AboutProfile
	err := c.do(ctx, http.MethodGet, "/about", nil, &out)
	return out, err
}

// SaveAbout replaces the singleton profile.
func (c *Client) SaveAbout(ctx context.Context, p models.AboutProfile) (models.AboutProfile, error) {
	var out models.AboutProfile
	err := c.do(ctx, http.MethodPost, "/about", p, &out)
	return out, err
}

// Contact fetches the contact-details record at the configured fixed id.
func (c *Client) Contact(ctx context.Context) (models.ContactDetails, error) {
	var out models.ContactDetails
	err := c.do(ctx, http.MethodGet, "/contacts/"+c.contactID, nil, &out)
	return out, err
}

// SaveContact replaces the contact-details record.
func (c *Client) SaveContact(ctx context.Context, cd models.ContactDetails) (models.ContactDetails, error) {
	var out models.ContactDetails
	err := c.do(ctx, http.MethodPut, "/contacts/"+c.contactID, cd, &out)
	return out, err
}

// Skills fetches all skill categories.
func (c *Client) Skills(ctx context.Context) ([]models.SkillCategory, error) {
	var out []models.SkillCategory
	if err := c.do(ctx, http.MethodGet, "/skills", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.SkillCategory{}
	}
	return out, nil
}

// ReplaceSkills replaces the entire skill category list in one PATCH call.
func (c *Client) ReplaceSkills(ctx context.Context, cats []models.SkillCategory) ([]models.SkillCategory, error) {
	var out []models.SkillCategory
	if err := c.do(ctx, http.MethodPatch, "/skills", cats, &out); err != nil {
		return nil, err
	}
	return out, nil
}
