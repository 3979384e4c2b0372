package usecases

import (
	"sync"
	"time"

	"github.com/samirrijal/placesbridge/internal/core/domain"
	"github.com/samirrijal/placesbridge/internal/pkg/metrics"
)

// SessionManager holds the one current autocomplete session token.
// Refresh and read are serialized; a refreshed token replaces the old one
// wholesale.
type SessionManager struct {
	mu       sync.Mutex
	token    domain.SessionToken
	mintedAt time.Time
	maxAge   time.Duration

	now  func() time.Time
	mint func() domain.SessionToken
}

// SessionOption customizes a SessionManager.
type SessionOption func(*SessionManager)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) SessionOption {
	return func(m *SessionManager) { m.now = now }
}

// WithMinter replaces the token generator.
func WithMinter(mint func() domain.SessionToken) SessionOption {
	return func(m *SessionManager) { m.mint = mint }
}

// NewSessionManager creates a SessionManager. A zero maxAge keeps a token
// until it is explicitly refreshed.
func NewSessionManager(maxAge time.Duration, opts ...SessionOption) *SessionManager {
	m := &SessionManager{
		maxAge: maxAge,
		now:    time.Now,
		mint:   domain.NewSessionToken,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Token returns the cached token, minting and caching a new one when
// forceRefresh is set, nothing is cached, or the cached token is too old.
func (m *SessionManager) Token(forceRefresh bool) domain.SessionToken {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	var reason string
	switch {
	case forceRefresh:
		reason = "refresh"
	case m.token == "":
		reason = "initial"
	case m.maxAge > 0 && now.Sub(m.mintedAt) >= m.maxAge:
		reason = "expired"
	}
	if reason != "" {
		m.token = m.mint()
		m.mintedAt = now
		metrics.SessionTokensMinted.WithLabelValues(reason).Inc()
	}
	return m.token
}

// Current returns the cached token without minting.
func (m *SessionManager) Current() (domain.SessionToken, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, m.token != ""
}

// Reset drops the cached token.
func (m *SessionManager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.mintedAt = time.Time{}
}
