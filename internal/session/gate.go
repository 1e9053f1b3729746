package session

import (
	"log/slog"
	"time"
)

// Account is one entry in the login allow-list.
type Account struct {
	Username string
	Password string
	Name     string
}

// Gate decides whether a caller may view or mutate admin data. It reads and
// writes only the persisted session record; no network is involved.
type Gate struct {
	store    Store
	ttl      time.Duration
	accounts []Account
	now      func() time.Time
}

// Option configures a Gate.
type Option func(*Gate)

// WithClock overrides the time source, used by expiry tests.
func WithClock(now func() time.Time) Option {
	return func(g *Gate) { g.now = now }
}

// NewGate creates a gate over store with the given record lifetime and
// allow-list.
func NewGate(store Store, ttl time.Duration, accounts []Account, opts ...Option) *Gate {
	g := &Gate{
		store:    store,
		ttl:      ttl,
		accounts: accounts,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Login checks the credentials against the allow-list and, on match, writes
// a fresh record. It reports whether the credentials matched.
func (g *Gate) Login(username, password string) bool {
	for _, acc := range g.accounts {
		if acc.Username != username || acc.Password != password {
			continue
		}
		rec := Record{
			Username:  acc.Username,
			Name:      acc.Name,
			Timestamp: g.now().UnixMilli(),
		}
		if err := g.store.Save(rec); err != nil {
			slog.Error("session: save record failed", slog.String("error", err.Error()))
			return false
		}
		return true
	}
	return false
}

// Logout deletes the stored record unconditionally.
func (g *Gate) Logout() {
	if err := g.store.Clear(); err != nil {
		slog.Error("session: clear record failed", slog.String("error", err.Error()))
	}
}

// IsAuthenticated reports whether a valid, unexpired record exists. An
// expired record is cleared; a malformed record counts as not authenticated
// and never propagates as an error to the caller.
func (g *Gate) IsAuthenticated() bool {
	rec, err := g.store.Load()
	if err != nil {
		slog.Warn("session: unreadable record treated as logged out", slog.String("error", err.Error()))
		return false
	}
	if rec == nil {
		return false
	}
	age := g.now().UnixMilli() - rec.Timestamp
	if age > g.ttl.Milliseconds() {
		g.Logout()
		return false
	}
	return true
}

// Current returns the logged-in record, if any.
func (g *Gate) Current() (Record, bool) {
	if !g.IsAuthenticated() {
		return Record{}, false
	}
	rec, err := g.store.Load()
	if err != nil || rec == nil {
		return Record{}, false
	}
	return *rec, true
}
