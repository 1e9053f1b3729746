// Package testutil provides a fake upstream content API for tests: an
// in-memory HTTP server speaking the {"data": ...} envelope with scripted
// failures and a request log.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

type entity = map[string]any

// FakeAPI is the in-memory upstream.
type FakeAPI struct {
	Server *httptest.Server

	mu          sync.Mutex
	collections map[string][]entity
	about       entity
	contact     entity
	skills      []entity
	requests    []string
	failures    int
	failStatus  int
	failMessage string
	nextID      int
}

// NewFakeAPI starts the fake server. It is shut down via t.Cleanup.
func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()
	api := &FakeAPI{
		collections: map[string][]entity{
			"projects":     {},
			"experiences":  {},
			"certificates": {},
			"achievements": {},
			"blogs":        {},
		},
		about:   entity{},
		contact: entity{"_id": "contact", "email": "", "phone": "", "address": "", "available_for": []any{}},
		skills:  []entity{},
	}

	r := chi.NewRouter()
	r.Use(api.record)

	r.Get("/about", func(w http.ResponseWriter, _ *http.Request) {
		api.mu.Lock()
		defer api.mu.Unlock()
		writeData(w, http.StatusOK, api.about)
	})
	r.Post("/about", func(w http.ResponseWriter, req *http.Request) {
		var in entity
		if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid body")
			return
		}
		api.mu.Lock()
		defer api.mu.Unlock()
		api.about = in
		writeData(w, http.StatusOK, in)
	})

	r.Get("/contacts/{id}", func(w http.ResponseWriter, _ *http.Request) {
		api.mu.Lock()
		defer api.mu.Unlock()
		writeData(w, http.StatusOK, api.contact)
	})
	r.Put("/contacts/{id}", func(w http.ResponseWriter, req *http.Request) {
		var in entity
		if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid body")
			return
		}
		api.mu.Lock()
		defer api.mu.Unlock()
		in["_id"] = api.contact["_id"]
		api.contact = in
		writeData(w, http.StatusOK, in)
	})

	r.Get("/skills", func(w http.ResponseWriter, _ *http.Request) {
		api.mu.Lock()
		defer api.mu.Unlock()
		writeData(w, http.StatusOK, api.skills)
	})
	r.Patch("/skills", func(w http.ResponseWriter, req *http.Request) {
		var in []entity
		if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid body")
			return
		}
		api.mu.Lock()
		defer api.mu.Unlock()
		for _, cat := range in {
			if id, _ := cat["_id"].(string); id == "" {
				api.nextID++
				cat["_id"] = fmt.Sprintf("srv%d", api.nextID)
			}
		}
		api.skills = in
		writeData(w, http.StatusOK, in)
	})

	r.Route("/{collection}", func(r chi.Router) {
		r.Get("/", api.list)
		r.Post("/", api.create)
		r.Get("/{id}", api.get)
		r.Put("/{id}", api.update)
		r.Delete("/{id}", api.delete)
	})

	api.Server = httptest.NewServer(r)
	t.Cleanup(api.Server.Close)
	return api
}

// URL returns the fake API base URL.
func (a *FakeAPI) URL() string { return a.Server.URL }

// FailNext makes the next n requests fail with the given status and
// optional body message.
func (a *FakeAPI) FailNext(n, status int, message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failures = n
	a.failStatus = status
	a.failMessage = message
}

// Requests returns the request log as "METHOD /path" lines.
func (a *FakeAPI) Requests() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.requests))
	copy(out, a.requests)
	return out
}

// CountRequests returns how many logged requests match the given prefix.
func (a *FakeAPI) CountRequests(prefix string) int {
	n := 0
	for _, r := range a.Requests() {
		if strings.HasPrefix(r, prefix) {
			n++
		}
	}
	return n
}

// Seed inserts an entity into a collection, assigning an id when absent.
func (a *FakeAPI) Seed(collection string, e entity) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	id, _ := e["_id"].(string)
	if id == "" {
		a.nextID++
		id = fmt.Sprintf("srv%d", a.nextID)
		e["_id"] = id
	}
	a.collections[collection] = append(a.collections[collection], e)
	return id
}

// SeedSkills replaces the skill categories.
func (a *FakeAPI) SeedSkills(cats []entity) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.skills = cats
}

// SetContact replaces the contact record.
func (a *FakeAPI) SetContact(c entity) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.contact = c
}

// Collection returns a copy of a collection's entities.
func (a *FakeAPI) Collection(name string) []entity {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]entity, len(a.collections[name]))
	copy(out, a.collections[name])
	return out
}

// Skills returns the current skill categories.
func (a *FakeAPI) Skills() []entity {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]entity, len(a.skills))
	copy(out, a.skills)
	return out
}

func (a *FakeAPI) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		a.requests = append(a.requests, r.Method+" "+r.URL.Path)
		fail := a.failures > 0
		status, msg := a.failStatus, a.failMessage
		if fail {
			a.failures--
		}
		a.mu.Unlock()

		if fail {
			writeMessage(w, status, msg)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (a *FakeAPI) list(w http.ResponseWriter, r *http.Request) {
	col := chi.URLParam(r, "collection")
	a.mu.Lock()
	defer a.mu.Unlock()
	items, ok := a.collections[col]
	if !ok {
		writeMessage(w, http.StatusNotFound, "unknown collection")
		return
	}
	writeData(w, http.StatusOK, items)
}

func (a *FakeAPI) create(w http.ResponseWriter, r *http.Request) {
	col := chi.URLParam(r, "collection")
	var in entity
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid body")
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.collections[col]; !ok {
		writeMessage(w, http.StatusNotFound, "unknown collection")
		return
	}
	a.nextID++
	in["_id"] = fmt.Sprintf("srv%d", a.nextID)
	a.collections[col] = append(a.collections[col], in)
	writeData(w, http.StatusCreated, in)
}

func (a *FakeAPI) get(w http.ResponseWriter, r *http.Request) {
	col, id := chi.URLParam(r, "collection"), chi.URLParam(r, "id")
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, e := range a.collections[col] {
		if e["_id"] == id {
			writeData(w, http.StatusOK, e)
			return
		}
	}
	writeMessage(w, http.StatusNotFound, "not found")
}

func (a *FakeAPI) update(w http.ResponseWriter, r *http.Request) {
	col, id := chi.URLParam(r, "collection"), chi.URLParam(r, "id")
	var in entity
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid body")
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	for i, e := range a.collections[col] {
		if e["_id"] == id {
			in["_id"] = id
			a.collections[col][i] = in
			writeData(w, http.StatusOK, in)
			return
		}
	}
	writeMessage(w, http.StatusNotFound, "not found")
}

func (a *FakeAPI) delete(w http.ResponseWriter, r *http.Request) {
	col, id := chi.URLParam(r, "collection"), chi.URLParam(r, "id")
	a.mu.Lock()
	defer a.mu.Unlock()
	items := a.collections[col]
	for i, e := range items {
		if e["_id"] == id {
			a.collections[col] = append(items[:i:i], items[i+1:]...)
			writeData(w, http.StatusOK, entity{"deleted": true})
			return
		}
	}
	writeMessage(w, http.StatusNotFound, "not found")
}

func writeData(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"data": v})
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if msg == "" {
		_, _ = w.Write([]byte(`{}`))
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"message": msg})
}
