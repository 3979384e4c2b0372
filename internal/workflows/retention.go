package workflows

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

const (
	// RetentionWorkflowID keeps a single cron run per namespace.
	RetentionWorkflowID = "placesbridge-request-log-retention"
	// RetentionCron runs the purge daily at 03:00 UTC.
	RetentionCron = "0 3 * * *"
)

// RetentionInput is the input for RetentionWorkflow.
type RetentionInput struct {
	RetentionDays int
}

// RetentionResult reports what one run deleted.
type RetentionResult struct {
	Deleted int64
	Cutoff  time.Time
}

// RetentionWorkflow deletes request-log rows older than the retention window.
func RetentionWorkflow(ctx workflow.Context, input RetentionInput) (RetentionResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting retention workflow", "retentionDays", input.RetentionDays)

	if input.RetentionDays <= 0 {
		return RetentionResult{}, temporal.NewNonRetryableApplicationError(
			"retention days must be positive", "InvalidRetention", nil)
	}

	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 5 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 3,
		},
	})

	now := workflow.Now(ctx)
	var deleted int64
	err := workflow.ExecuteActivity(ctx, "PurgeRequestLog", input.RetentionDays, now).Get(ctx, &deleted)
	if err != nil {
		return RetentionResult{}, err
	}

	res := RetentionResult{
		Deleted: deleted,
		Cutoff:  now.Add(-time.Duration(input.RetentionDays) * 24 * time.Hour),
	}
	logger.Info("Retention run complete", "deleted", deleted)
	return res, nil
}
