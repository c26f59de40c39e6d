// internal/workers/career/generate-roadmap/handler.go
package generateroadmap

import (
	"context"
	"encoding/json"
	"strings"

	"skillgap-analyzer/internal/common/errors"
	"skillgap-analyzer/internal/common/logger"
	"skillgap-analyzer/internal/roadmap"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "generate-roadmap"

type Handler struct {
	config *Config
	errors *errors.JobErrorHandler
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config: config,
		errors: errors.NewJobErrorHandler(log),
		logger: log,
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

	cmd, err := client.NewCompleteJobCommand().JobKey(job.Key).VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{"jobKey": job.Key, "error": err})
		return err
	}
	if _, err := cmd.Send(ctx); err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{"jobKey": job.Key, "error": err})
		return err
	}
	return nil
}

func (h *Handler) Execute(_ context.Context, input *Input) (*Output, error) {
	role := strings.TrimSpace(input.TargetRole)

	if input.MissingSkills != nil {
		rm, err := roadmap.ForSkills(role, input.MissingSkills, input.Timeframe)
		if err != nil {
			return nil, err
		}
		h.logger.Debug("skill roadmap generated", map[string]interface{}{
			"role":   rm.TargetRole,
			"skills": rm.TotalSkills,
		})
		return &Output{TargetRole: rm.TargetRole, SkillRoadmap: rm}, nil
	}

	if role == "" {
		return nil, errors.NewInvalidInputError("targetRole", "Please provide a target role")
	}
	return &Output{
		TargetRole: role,
		Phases:     roadmap.ForRole(role),
		Generic:    !roadmap.HasCurriculum(role),
	}, nil
}
