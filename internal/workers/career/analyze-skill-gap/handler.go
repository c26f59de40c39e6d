// internal/workers/career/analyze-skill-gap/handler.go
package analyzeskillgap

import (
	"context"
	"encoding/json"

	"skillgap-analyzer/internal/common/errors"
	"skillgap-analyzer/internal/common/logger"
	"skillgap-analyzer/internal/common/metrics"
	"skillgap-analyzer/internal/skillgap"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "analyze-skill-gap"

type Handler struct {
	config   *Config
	provider skillgap.Provider
	errors   *errors.JobErrorHandler
	logger   logger.Logger
}

func NewHandler(config *Config, provider skillgap.Provider, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:   config,
		provider: provider,
		errors:   errors.NewJobErrorHandler(log),
		logger:   log,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) error {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		inputErr := errors.NewInvalidInputError("variables", "parse input: "+err.Error())
		h.errors.HandleJobError(ctx, client, job, inputErr)
		return inputErr
	}

	output, err := h.Execute(ctx, &input)
	if err != nil {
		h.errors.HandleJobError(ctx, client, job, err)
		return err
	}

	return h.completeJob(ctx, client, job, output)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	catalog, err := h.provider.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	res, err := skillgap.ComputeSkillGap(catalog, input.TargetRole, input.CurrentSkills)
	if err != nil {
		metrics.SkillGapAnalyses.WithLabelValues("unknown", string(errors.AsStandardError(err).Code)).Inc()
		return nil, err
	}
	metrics.SkillGapAnalyses.WithLabelValues(res.TargetRole, "ok").Inc()

	h.logger.Info("skill gap analyzed", map[string]interface{}{
		"role":          res.TargetRole,
		"gapPercentage": res.GapPercentage,
		"missing":       len(res.MissingSkills),
	})

	return &Output{
		TargetRole:        res.TargetRole,
		RequiredSkills:    res.RequiredSkills,
		MatchedSkills:     res.MatchedSkills,
		MissingSkills:     res.MissingSkills,
		GapPercentage:     res.GapPercentage,
		Recommendation:    res.Recommendation,
		LearningOrder:     skillgap.SuggestLearningOrder(catalog, res.MissingSkills, res.TargetRole),
		UnsequencedSkills: skillgap.Unsequenced(catalog, res.MissingSkills, res.TargetRole),
		IsReady:           len(res.MissingSkills) == 0,
	}, nil
}

func (h *Handler) completeJob(ctx context.Context, client worker.JobClient, job entities.Job, output *Output) error {
	cmd, err := client.NewCompleteJobCommand().JobKey(job.Key).VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err,
		})
		return err
	}
	if _, err := cmd.Send(ctx); err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err,
		})
		return err
	}
	return nil
}
