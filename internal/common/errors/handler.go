// internal/common/errors/handler.go
package errors

import (
	"context"
	"encoding/json"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

// JobErrorHandler reports failed jobs back to the broker: retryable errors
// fail the job with a retry budget, everything else is thrown as a BPMN error.
type JobErrorHandler struct {
	logger Logger
}

// commandTimeout bounds the fail/throw command. It is applied to a context
// detached from the job's deadline, which may already have expired.
const commandTimeout = 5 * time.Second

type Logger interface {
	Error(msg string, fields map[string]interface{})
}

func NewJobErrorHandler(logger Logger) *JobErrorHandler {
	return &JobErrorHandler{logger: logger}
}

// HandleJobError handles any error in a worker job
func (h *JobErrorHandler) HandleJobError(ctx context.Context, client worker.JobClient, job entities.Job, err error) {
	stdErr := AsStandardError(err)
	bpmnErr := ConvertToBPMNError(stdErr)

	h.logError(job, stdErr, bpmnErr)

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), commandTimeout)
	defer cancel()

	if bpmnErr.Retries > 0 && job.Retries > 0 {
		h.failJobWithRetries(ctx, client, job, bpmnErr)
		return
	}
	h.throwBPMNError(ctx, client, job, bpmnErr)
}

func (h *JobErrorHandler) failJobWithRetries(ctx context.Context, client worker.JobClient, job entities.Job, bpmnErr *BPMNError) {
	// job.Retries is what the broker has left; never raise it.
	retries := bpmnErr.Retries
	if int(job.Retries)-1 < retries {
		retries = int(job.Retries) - 1
	}

	cmd := client.NewFailJobCommand().
		JobKey(job.Key).
		Retries(int32(retries)).
		ErrorMessage(bpmnErr.Message)

	if varsJSON, err := json.Marshal(bpmnErr.ToErrorVariables()); err == nil {
		if withVars, err := cmd.VariablesFromString(string(varsJSON)); err == nil {
			_, err = withVars.Send(ctx)
			h.logSendFailure(job, "fail job", err)
			return
		}
	}

	_, err := cmd.Send(ctx)
	h.logSendFailure(job, "fail job", err)
}

func (h *JobErrorHandler) throwBPMNError(ctx context.Context, client worker.JobClient, job entities.Job, bpmnErr *BPMNError) {
	cmd := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(bpmnErr.Code).
		ErrorMessage(bpmnErr.Message)

	if varsJSON, err := json.Marshal(bpmnErr.ToErrorVariables()); err == nil {
		if withVars, err := cmd.VariablesFromString(string(varsJSON)); err == nil {
			_, err = withVars.Send(ctx)
			h.logSendFailure(job, "throw error", err)
			return
		}
	}

	_, err := cmd.Send(ctx)
	h.logSendFailure(job, "throw error", err)
}

func (h *JobErrorHandler) logSendFailure(job entities.Job, command string, err error) {
	if err == nil {
		return
	}
	h.logger.Error("failed to send "+command+" command", map[string]interface{}{
		"jobKey": job.Key,
		"error":  err,
	})
}

func (h *JobErrorHandler) logError(job entities.Job, stdErr *StandardError, bpmnErr *BPMNError) {
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":           job.Key,
		"jobType":          job.Type,
		"errorCode":        string(stdErr.Code),
		"message":          bpmnErr.Message,
		"details":          stdErr.Details,
		"retryable":        stdErr.Retryable,
		"retries":          bpmnErr.Retries,
		"errorCategory":    GetErrorCategory(stdErr.Code),
		"workflowInstance": job.ProcessInstanceKey,
	})
}
