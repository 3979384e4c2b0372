package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionToken groups keystroke-driven autocomplete calls into one billable
// session. It is opaque to callers; two tokens are the same session iff equal.
type SessionToken string

// NewSessionToken mints a fresh random token.
func NewSessionToken() SessionToken {
	return SessionToken(uuid.NewString())
}

func (t SessionToken) String() string { return string(t) }

// RequestLogEntry is one audited outbound autocomplete call.
type RequestLogEntry struct {
	ID           int64        `json:"id"`
	SessionToken SessionToken `json:"session_token"`
	Query        string       `json:"query"`
	ResultCount  int          `json:"result_count"`
	Status       string       `json:"status"`
	Cached       bool         `json:"cached"`
	LatencyMS    int64        `json:"latency_ms"`
	CreatedAt    time.Time    `json:"created_at"`
}
