// internal/common/camunda/worker.go
package camunda

import (
	"context"
	"time"

	"skillgap-analyzer/internal/common/config"
	apperrors "skillgap-analyzer/internal/common/errors"
	"skillgap-analyzer/internal/common/logger"
	"skillgap-analyzer/internal/common/metrics"
	"skillgap-analyzer/internal/common/observability"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
)

// JobHandler completes or fails the job itself and returns the error, if
// any, so it can be counted.
type JobHandler interface {
	Handle(client worker.JobClient, job entities.Job) error
}

type Worker struct {
	worker   worker.JobWorker
	logger   logger.Logger
	taskType string
}

// StartWorker opens a job worker for taskType. It returns nil when the
// worker is disabled in configuration.
func StartWorker(
	client zbc.Client,
	taskType string,
	wcfg config.WorkerConfig,
	handler JobHandler,
	obs *observability.Observability,
	log logger.Logger,
) *Worker {
	log = log.WithFields(map[string]interface{}{"taskType": taskType})
	if !wcfg.Enabled {
		log.Info("worker disabled", nil)
		return nil
	}

	jobWorker := client.NewJobWorker().
		JobType(taskType).
		Handler(instrument(taskType, handler, obs, log)).
		MaxJobsActive(wcfg.MaxJobsActive).
		Timeout(time.Duration(wcfg.Timeout) * time.Millisecond).
		Open()

	log.Info("worker started", map[string]interface{}{
		"maxJobsActive": wcfg.MaxJobsActive,
		"timeoutMs":     wcfg.Timeout,
	})

	return &Worker{worker: jobWorker, logger: log, taskType: taskType}
}

// instrument wraps a handler with the job metrics.
func instrument(taskType string, handler JobHandler, obs *observability.Observability, log logger.Logger) worker.JobHandler {
	return func(client worker.JobClient, job entities.Job) {
		start := time.Now()
		metrics.WorkerJobsActive.WithLabelValues(taskType).Inc()
		defer metrics.WorkerJobsActive.WithLabelValues(taskType).Dec()

		status := "completed"
		if err := handler.Handle(client, job); err != nil {
			code := string(apperrors.AsStandardError(err).Code)
			status = "failed"
			metrics.WorkerJobsFailed.WithLabelValues(taskType, code).Inc()
			log.Debug("job handler returned error", map[string]interface{}{
				"jobKey":    job.Key,
				"errorCode": code,
			})
		} else {
			metrics.WorkerJobsCompleted.WithLabelValues(taskType).Inc()
		}

		elapsed := time.Since(start)
		metrics.WorkerJobDuration.WithLabelValues(taskType).Observe(elapsed.Seconds())
		obs.RecordJob(context.Background(), taskType, status, elapsed)
	}
}

func (w *Worker) Stop() {
	if w == nil {
		return
	}
	w.logger.Info("stopping worker", nil)
	w.worker.Close()
	w.worker.AwaitClose()
}
