package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/samirrijal/placesbridge/internal/core/domain"
)

// RequestLogRepo implements ports.RequestLogRepository.
type RequestLogRepo struct {
	db *DB
}

func NewRequestLogRepo(db *DB) *RequestLogRepo {
	return &RequestLogRepo{db: db}
}

func (r *RequestLogRepo) Insert(ctx context.Context, e *domain.RequestLogEntry) error {
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO autocomplete_requests
			(session_token, query, result_count, status, cached, latency_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, now()))
		RETURNING id, created_at
	`, string(e.SessionToken), e.Query, e.ResultCount, e.Status, e.Cached, e.LatencyMS, nullTime(e.CreatedAt),
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert request log: %w", err)
	}
	return nil
}

func (r *RequestLogRepo) ListBySession(ctx context.Context, token domain.SessionToken, limit int) ([]domain.RequestLogEntry, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, session_token, query, result_count, status, cached, latency_ms, created_at
		FROM autocomplete_requests
		WHERE session_token = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, string(token), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []domain.RequestLogEntry{}
	for rows.Next() {
		var (
			e   domain.RequestLogEntry
			tok string
		)
		if err := rows.Scan(&e.ID, &tok, &e.Query, &e.ResultCount, &e.Status, &e.Cached, &e.LatencyMS, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.SessionToken = domain.SessionToken(tok)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *RequestLogRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM autocomplete_requests WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge request log: %w", err)
	}
	return tag.RowsAffected(), nil
}

func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
