package portfolio

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/tahmid/folio/internal/apperr"
	"github.com/tahmid/folio/internal/models"
	"github.com/tahmid/folio/internal/testutil"
)

func testClient(t *testing.T) (*Client, *testutil.FakeAPI) {
	t.Helper()
	api := testutil.NewFakeAPI(t)
	return New(api.URL(), "contact", 5*time.Second), api
}

func TestResourceCreateListGet(t *testing.T) {
	c, api := testClient(t)
	ctx := context.Background()

	created, err := c.Achievements().Create(ctx, models.Achievement{
		Title:        "Hackathon Win",
		Organization: "ACME Corp",
		Year:         2023,
		Description:  "1st place",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Error("server should assign an id")
	}

	list, err := c.Achievements().List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].Organization != "ACME Corp" {
		t.Errorf("list = %+v", list)
	}

	got, err := c.Achievements().Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Year != 2023 {
		t.Errorf("year = %d", got.Year)
	}
	if n := api.CountRequests("POST /achievements"); n != 1 {
		t.Errorf("POST count = %d", n)
	}
}

func TestResourceListEmpty(t *testing.T) {
	c, _ := testClient(t)
	list, err := c.Projects().List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Errorf("empty collection should yield empty slice, got %v", list)
	}
}

func TestResourceUpdateAndDelete(t *testing.T) {
	c, api := testClient(t)
	ctx := context.Background()

	id := api.Seed("certificates", map[string]any{"title": "Old", "issuer": "X", "date": "2020"})

	updated, err := c.Certificates().Update(ctx, id, models.Certificate{Title: "New", Issuer: "X", Date: "2021"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "New" || updated.ID != id {
		t.Errorf("updated = %+v", updated)
	}

	if err := c.Certificates().Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(api.Collection("certificates")) != 0 {
		t.Error("certificate should be gone upstream")
	}
}

func TestGetNotFound(t *testing.T) {
	c, _ := testClient(t)
	_, err := c.Projects().Get(context.Background(), "missing")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestValidationErrorCarriesMessage(t *testing.T) {
	c, api := testClient(t)
	api.FailNext(1, http.StatusUnprocessableEntity, "title is taken")

	_, err := c.Blogs().Create(context.Background(), models.Blog{Title: "x"})
	var re *RequestError
	if !errors.As(err, &re) {
		t.Fatalf("err = %v, want *RequestError", err)
	}
	if re.StatusCode != http.StatusUnprocessableEntity || re.Message != "title is taken" {
		t.Errorf("got %+v", re)
	}
}

func TestNoResponseMapsToSentinel(t *testing.T) {
	c := New("http://127.0.0.1:1", "contact", 200*time.Millisecond)
	_, err := c.Projects().List(context.Background())
	if !errors.Is(err, apperr.ErrNoResponse) {
		t.Errorf("err = %v, want ErrNoResponse", err)
	}
}

func TestAboutSingletonRoundTrip(t *testing.T) {
	c, _ := testClient(t)
	ctx := context.Background()

	in := models.AboutProfile{
		Name:        "Tahmid",
		Title:       "Engineer",
		Description: "Builds things",
		SocialLinks: models.SocialLinks{GitHub: "https://github.com/tahmid"},
	}
	if _, err := c.SaveAbout(ctx, in); err != nil {
		t.Fatalf("SaveAbout: %v", err)
	}
	got, err := c.About(ctx)
	if err != nil {
		t.Fatalf("About: %v", err)
	}
	if got.Name != "Tahmid" || got.SocialLinks.GitHub != in.SocialLinks.GitHub {
		t.Errorf("got %+v", got)
	}
}

func TestContactFixedID(t *testing.T) {
	c, api := testClient(t)
	ctx := context.Background()

	saved, err := c.SaveContact(ctx, models.ContactDetails{
		Email:        "me@example.com",
		Phone:        "123",
		Address:      "Dhaka",
		AvailableFor: []string{"Freelance"},
	})
	if err != nil {
		t.Fatalf("SaveContact: %v", err)
	}
	if saved.Email != "me@example.com" {
		t.Errorf("saved = %+v", saved)
	}
	if n := api.CountRequests("PUT /contacts/contact"); n != 1 {
		t.Errorf("PUT /contacts/contact count = %d", n)
	}

	got, err := c.Contact(ctx)
	if err != nil {
		t.Fatalf("Contact: %v", err)
	}
	if got.Address != "Dhaka" {
		t.Errorf("got %+v", got)
	}
}

func TestReplaceSkillsAssignsIDs(t *testing.T) {
	c, api := testClient(t)
	ctx := context.Background()

	out, err := c.ReplaceSkills(ctx, []models.SkillCategory{
		{Category: "Backend", Skills: []models.Skill{{Name: "Go", Level: 90}}},
	})
	if err != nil {
		t.Fatalf("ReplaceSkills: %v", err)
	}
	if len(out) != 1 || out[0].ID == "" {
		t.Errorf("out = %+v", out)
	}
	if n := api.CountRequests("PATCH /skills"); n != 1 {
		t.Errorf("PATCH count = %d", n)
	}
}
