package mem

import (
	"sync"
	"time"
)

type RevokedTokenStore interface {
	// Revoke marks a token unusable until its natural expiry.
	Revoke(token string, ttl time.Duration)

	// IsRevoked reports whether the token was revoked and is still within
	// its TTL. Expired entries are cleaned up on read.
	IsRevoked(token string) bool
}

type entry struct {
	expiresAt time.Time
}

type RevokedTokens struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewRevokedTokens() *RevokedTokens {
	return &RevokedTokens{
		data: make(map[string]entry),
	}
}

func (s *RevokedTokens) Revoke(token string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = entry{
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *RevokedTokens) IsRevoked(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[token]
	if !ok {
		return false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, token) // cleanup expired
		return false
	}
	return true
}
