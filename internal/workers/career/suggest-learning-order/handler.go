// internal/workers/career/suggest-learning-order/handler.go
package suggestlearningorder

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"skillgap-analyzer/internal/common/errors"
	"skillgap-analyzer/internal/common/logger"
	"skillgap-analyzer/internal/skillgap"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "suggest-learning-order"

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

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	role := strings.TrimSpace(input.TargetRole)
	if role == "" {
		return nil, errors.NewInvalidInputError("targetRole", "Please provide a target role")
	}
	if input.MissingSkills == nil {
		return nil, errors.NewInvalidInputError("missingSkills", "Please provide missing skills as an array")
	}
	for i, s := range input.MissingSkills {
		if strings.TrimSpace(s) == "" {
			return nil, errors.NewInvalidInputError("missingSkills", fmt.Sprintf("missingSkills[%d] must not be blank", i))
		}
	}

	catalog, err := h.provider.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	if canonical, ok := catalog.Resolve(role); ok {
		role = canonical
	} else if h.config.RequireKnownRole {
		return nil, errors.NewRoleNotFoundError(role, catalog.Roles())
	}

	_, hasOrder := catalog.LearningOrder(role)
	output := &Output{
		TargetRole:        role,
		LearningOrder:     skillgap.SuggestLearningOrder(catalog, input.MissingSkills, role),
		UnsequencedSkills: skillgap.Unsequenced(catalog, input.MissingSkills, role),
		HasPrerequisites:  hasOrder,
	}

	h.logger.Debug("learning order suggested", map[string]interface{}{
		"role":        role,
		"ordered":     len(output.LearningOrder),
		"unsequenced": len(output.UnsequencedSkills),
	})
	return output, nil
}
