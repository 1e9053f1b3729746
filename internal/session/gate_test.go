package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var testAccounts = []Account{
	{Username: "admin", Password: "admin123", Name: "Admin User"},
}

func testStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return store
}

func TestLoginWritesRecord(t *testing.T) {
	store := testStore(t)
	g := NewGate(store, 24*time.Hour, testAccounts)

	if !g.Login("admin", "admin123") {
		t.Fatal("valid credentials should log in")
	}
	rec, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if rec == nil {
		t.Fatal("record should exist after login")
	}
	if rec.Username != "admin" || rec.Name != "Admin User" {
		t.Errorf("record = %+v", rec)
	}
	if !g.IsAuthenticated() {
		t.Error("should be authenticated right after login")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	store := testStore(t)
	g := NewGate(store, 24*time.Hour, testAccounts)

	if g.Login("admin", "wrong") {
		t.Error("wrong password should fail")
	}
	if g.Login("nobody", "admin123") {
		t.Error("unknown user should fail")
	}
	if g.IsAuthenticated() {
		t.Error("failed login should not authenticate")
	}
}

func TestIsAuthenticated_NoRecord(t *testing.T) {
	g := NewGate(testStore(t), 24*time.Hour, testAccounts)
	if g.IsAuthenticated() {
		t.Error("no record should mean not authenticated")
	}
}

func TestIsAuthenticated_ExpiryBoundary(t *testing.T) {
	store := testStore(t)
	base := time.Now()

	// Record written exactly 24h minus a minute ago → still valid.
	now := base
	g := NewGate(store, 24*time.Hour, testAccounts, WithClock(func() time.Time { return now }))
	if !g.Login("admin", "admin123") {
		t.Fatal("login failed")
	}

	now = base.Add(24*time.Hour - time.Minute)
	if !g.IsAuthenticated() {
		t.Error("record inside TTL should authenticate")
	}

	// Past 24h → expired and cleared.
	now = base.Add(24*time.Hour + time.Minute)
	if g.IsAuthenticated() {
		t.Error("record past TTL should not authenticate")
	}
	rec, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if rec != nil {
		t.Error("expired record should be cleared")
	}
}

func TestLogoutThenIsAuthenticated(t *testing.T) {
	store := testStore(t)
	g := NewGate(store, 24*time.Hour, testAccounts)

	g.Login("admin", "admin123")
	g.Logout()
	if g.IsAuthenticated() {
		t.Error("logout must always leave the gate closed")
	}
	// Logout with no record must not blow up.
	g.Logout()
}

func TestMalformedRecordFailsOpenToLogin(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	g := NewGate(store, 24*time.Hour, testAccounts)
	if g.IsAuthenticated() {
		t.Error("malformed record should not authenticate")
	}
	// Login must recover by overwriting the bad record.
	if !g.Login("admin", "admin123") {
		t.Fatal("login over malformed record failed")
	}
	if !g.IsAuthenticated() {
		t.Error("login should replace the malformed record")
	}
}

func TestCurrent(t *testing.T) {
	g := NewGate(testStore(t), 24*time.Hour, testAccounts)

	if _, ok := g.Current(); ok {
		t.Error("Current with no record should report false")
	}
	g.Login("admin", "admin123")
	rec, ok := g.Current()
	if !ok {
		t.Fatal("Current after login should report true")
	}
	if rec.Name != "Admin User" {
		t.Errorf("name = %q", rec.Name)
	}
}
