package main

import (
	"context"
	"errors"
	"log"
	"log/slog"

	enumspb "go.temporal.io/api/enums/v1"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"github.com/samirrijal/placesbridge/internal/adapters/postgres"
	"github.com/samirrijal/placesbridge/internal/core/usecases"
	"github.com/samirrijal/placesbridge/internal/pkg/config"
	"github.com/samirrijal/placesbridge/internal/pkg/logging"
	"github.com/samirrijal/placesbridge/internal/workflows"
)

func main() {
	cfg, err := config.Load("placesbridge-janitor")
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logging.Setup(cfg.Telemetry.ServiceName, cfg.Log.Level, cfg.Log.Format)

	ctx := context.Background()
	db, err := postgres.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	c, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    slog.Default(),
	})
	if err != nil {
		log.Fatalf("temporal client: %v", err)
	}
	defer c.Close()

	if err := scheduleRetention(ctx, c, cfg.Temporal); err != nil {
		log.Fatalf("schedule retention: %v", err)
	}

	w := worker.New(c, cfg.Temporal.TaskQueue, worker.Options{})
	w.RegisterWorkflow(workflows.RetentionWorkflow)
	w.RegisterActivity(&workflows.RetentionActivities{
		RequestLog: usecases.NewRequestLogService(postgres.NewRequestLogRepo(db)),
	})

	slog.Info("janitor worker started", "task_queue", cfg.Temporal.TaskQueue, "retention_days", cfg.Temporal.RetentionDays)
	if err := w.Run(worker.InterruptCh()); err != nil {
		log.Fatalf("worker: %v", err)
	}
}

// scheduleRetention starts the daily cron workflow unless it is already running.
func scheduleRetention(ctx context.Context, c client.Client, cfg config.TemporalConfig) error {
	_, err := c.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:                    workflows.RetentionWorkflowID,
		TaskQueue:             cfg.TaskQueue,
		CronSchedule:          workflows.RetentionCron,
		WorkflowIDReusePolicy: enumspb.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
	}, workflows.RetentionWorkflow, workflows.RetentionInput{RetentionDays: cfg.RetentionDays})

	var started *serviceerror.WorkflowExecutionAlreadyStarted
	if errors.As(err, &started) {
		slog.Info("retention workflow already scheduled", "workflow_id", workflows.RetentionWorkflowID)
		return nil
	}
	return err
}
