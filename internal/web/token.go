package web

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

// tokenStore guards against duplicate form submission. Every rendered form
// carries a fresh token; consuming a token twice fails, so a double click
// issues at most one upstream save.
type tokenStore struct {
	mu   sync.Mutex
	used map[string]time.Time
}

func newTokenStore() *tokenStore {
	return &tokenStore{used: make(map[string]time.Time)}
}

// Issue returns a fresh random token.
func (s *tokenStore) Issue() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

// Consume marks a token as used and reports whether this was its first use.
// An empty token never passes.
func (s *tokenStore) Consume(token string) bool {
	if token == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for t, at := range s.used {
		if now.Sub(at) > time.Hour {
			delete(s.used, t)
		}
	}

	if _, seen := s.used[token]; seen {
		return false
	}
	s.used[token] = now
	return true
}
