package handler

import (
	"net/http"

	apperrors "skillgap-analyzer/internal/common/errors"
	"skillgap-analyzer/internal/common/logger"
	"skillgap-analyzer/internal/common/metrics"
	"skillgap-analyzer/internal/common/validation"
	"skillgap-analyzer/internal/http/dto"
	"skillgap-analyzer/internal/http/middleware"
	"skillgap-analyzer/internal/models"
	"skillgap-analyzer/internal/skillgap"

	"github.com/gin-gonic/gin"
)

var analyzeSchema = validation.MustCompile("analyze-request", dto.AnalyzeRequestSchema)

var roleCategories = map[string]string{
	"full stack developer": "Development",
	"frontend developer":   "Development",
	"backend developer":    "Development",
	"mobile developer":     "Development",
	"data scientist":       "Data Science",
	"data analyst":         "Data Science",
	"devops engineer":      "Operations",
}

type SkillGapHandler struct {
	provider skillgap.Provider
	errors   *ErrorWriter
	logger   logger.Logger
}

func NewSkillGapHandler(provider skillgap.Provider, errs *ErrorWriter, log logger.Logger) *SkillGapHandler {
	return &SkillGapHandler{
		provider: provider,
		errors:   errs,
		logger:   log.WithFields(map[string]interface{}{"handler": "skill-gap"}),
	}
}

func (h *SkillGapHandler) Analyze(c *gin.Context) {
	var req dto.AnalyzeRequest
	if err := bindJSON(c, analyzeSchema, &req); err != nil {
		h.errors.Write(c, err)
		return
	}

	catalog, err := h.provider.Catalog(c.Request.Context())
	if err != nil {
		h.errors.Write(c, err)
		return
	}

	res, err := skillgap.ComputeSkillGap(catalog, req.TargetRole, req.CurrentSkills)
	if err != nil {
		metrics.SkillGapAnalyses.WithLabelValues("unknown", string(apperrors.AsStandardError(err).Code)).Inc()
		h.errors.Write(c, err)
		return
	}
	metrics.SkillGapAnalyses.WithLabelValues(res.TargetRole, "ok").Inc()

	order := skillgap.SuggestLearningOrder(catalog, res.MissingSkills, res.TargetRole)
	unsequenced := skillgap.Unsequenced(catalog, res.MissingSkills, res.TargetRole)

	h.logger.Info("skill gap analyzed", map[string]interface{}{
		"requestId":     middleware.RequestID(c),
		"role":          res.TargetRole,
		"gapPercentage": res.GapPercentage,
		"missing":       len(res.MissingSkills),
	})

	c.JSON(http.StatusOK, dto.OK(dto.ToSkillGapResponse(res, req.CurrentSkills, order, unsequenced)))
}

func (h *SkillGapHandler) Roles(c *gin.Context) {
	catalog, err := h.provider.Catalog(c.Request.Context())
	if err != nil {
		h.errors.Write(c, err)
		return
	}

	names := catalog.Roles()
	roles := make([]models.RoleSummary, 0, len(names))
	for i, name := range names {
		skills, _ := catalog.RequiredSkills(name)
		category, ok := roleCategories[skillgap.Fold(name)]
		if !ok {
			category = "General"
		}
		roles = append(roles, models.RoleSummary{
			ID:                 i + 1,
			Name:               name,
			Category:           category,
			RequiredSkillCount: len(skills),
		})
	}

	c.JSON(http.StatusOK, dto.List(roles, len(roles)))
}
