package activity

import (
	"os"
	"testing"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	dbFile, err := os.CreateTemp("", "folio-activity-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := Open(dbFile.Name())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRecordAndRecent(t *testing.T) {
	db := testDB(t)

	entries := []Entry{
		{Actor: "admin", Action: ActionSaved, Resource: "projects", EntityID: "p1", Title: "Folio"},
		{Actor: "admin", Action: ActionDeleted, Resource: "certificates", EntityID: "c1", Title: "Old Cert"},
		{Actor: "admin", Action: ActionSaved, Resource: "blogs", EntityID: "b1", Title: "Hello"},
	}
	for _, e := range entries {
		if err := db.Record(e); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	got, err := db.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	// Most recent first.
	if got[0].Resource != "blogs" || got[2].Resource != "projects" {
		t.Errorf("order = %s, %s, %s", got[0].Resource, got[1].Resource, got[2].Resource)
	}
	if got[1].Action != ActionDeleted || got[1].Title != "Old Cert" {
		t.Errorf("entry = %+v", got[1])
	}
	if got[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should default to now")
	}
}

func TestRecentLimit(t *testing.T) {
	db := testDB(t)
	for i := 0; i < 5; i++ {
		if err := db.Record(Entry{Actor: "admin", Action: ActionSaved, Resource: "projects"}); err != nil {
			t.Fatal(err)
		}
	}
	got, err := db.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestRecentEmpty(t *testing.T) {
	db := testDB(t)
	got, err := db.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}
