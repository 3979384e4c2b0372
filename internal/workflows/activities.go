package workflows

import (
	"context"
	"fmt"
	"time"

	"go.temporal.io/sdk/activity"

	"github.com/samirrijal/placesbridge/internal/core/usecases"
)

// RetentionActivities holds the activity implementations for RetentionWorkflow.
type RetentionActivities struct {
	RequestLog *usecases.RequestLogService
}

// PurgeRequestLog deletes audit rows older than retentionDays before now.
func (a *RetentionActivities) PurgeRequestLog(ctx context.Context, retentionDays int, now time.Time) (int64, error) {
	retention := time.Duration(retentionDays) * 24 * time.Hour
	n, err := a.RequestLog.Purge(ctx, retention, now)
	if err != nil {
		return 0, fmt.Errorf("purge request log: %w", err)
	}
	activity.GetLogger(ctx).Info("request log purged", "deleted", n, "retentionDays", retentionDays)
	return n, nil
}
