package ports

import (
	"context"
	"time"

	"github.com/samirrijal/placesbridge/internal/core/domain"
)

// RequestLogRepository persists the audit trail of outbound autocomplete calls.
type RequestLogRepository interface {
	Insert(ctx context.Context, entry *domain.RequestLogEntry) error
	ListBySession(ctx context.Context, token domain.SessionToken, limit int) ([]domain.RequestLogEntry, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
