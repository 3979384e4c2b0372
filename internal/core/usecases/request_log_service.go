package usecases

import (
	"context"
	"time"

	"github.com/samirrijal/placesbridge/internal/core/domain"
	"github.com/samirrijal/placesbridge/internal/core/ports"
)

// RequestLogService exposes the autocomplete audit trail.
type RequestLogService struct {
	repo ports.RequestLogRepository
}

// NewRequestLogService creates a new RequestLogService.
func NewRequestLogService(repo ports.RequestLogRepository) *RequestLogService {
	return &RequestLogService{repo: repo}
}

// ListBySession returns the calls made under one session token, newest first.
func (s *RequestLogService) ListBySession(ctx context.Context, token domain.SessionToken, limit int) ([]domain.RequestLogEntry, error) {
	if token == "" {
		return nil, domain.InvalidArgumentf("session token must not be empty")
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.repo.ListBySession(ctx, token, limit)
}

// Purge deletes entries older than retention.
func (s *RequestLogService) Purge(ctx context.Context, retention time.Duration, now time.Time) (int64, error) {
	if retention <= 0 {
		return 0, domain.InvalidArgumentf("retention must be positive, got %s", retention)
	}
	return s.repo.DeleteOlderThan(ctx, now.Add(-retention))
}
