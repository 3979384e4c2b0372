package http

import (
	"context"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/samirrijal/placesbridge/internal/adapters/channel"
	"github.com/samirrijal/placesbridge/internal/core/usecases"
)

// Pinger is a backing service that can report connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Dependencies holds everything the HTTP, WebSocket and GraphQL handlers need.
type Dependencies struct {
	// One slot per transport; the plugin fills them on attach.
	REST      *channel.Slot
	WebSocket *channel.Slot
	GraphQL   *channel.Slot

	Plugin     interface{ Attached() bool }
	Sessions   *usecases.SessionManager
	RequestLog *usecases.RequestLogService

	NATS  *nats.Conn
	DB    Pinger
	Cache Pinger

	// RequestTimeout bounds a single autocomplete call on every HTTP transport.
	RequestTimeout time.Duration

	// OpenAPISpec is the contract served at /docs/openapi.yaml.
	OpenAPISpec string
}

func (d *Dependencies) openAPISpec() string {
	if d.OpenAPISpec != "" {
		return d.OpenAPISpec
	}
	return "api/openapi.yaml"
}

func (d *Dependencies) requestTimeout() time.Duration {
	if d.RequestTimeout > 0 {
		return d.RequestTimeout
	}
	return 15 * time.Second
}
