package handler

import (
	"net/http"
	"strings"

	"skillgap-analyzer/internal/common/validation"
	"skillgap-analyzer/internal/http/dto"
	"skillgap-analyzer/internal/roadmap"

	"github.com/gin-gonic/gin"
)

var (
	roadmapSchema         = validation.MustCompile("roadmap-request", dto.RoadmapRequestSchema)
	generateRoadmapSchema = validation.MustCompile("generate-roadmap-request", dto.GenerateRoadmapRequestSchema)
)

type RoadmapHandler struct {
	errors *ErrorWriter
}

func NewRoadmapHandler(errs *ErrorWriter) *RoadmapHandler {
	return &RoadmapHandler{errors: errs}
}

// ForRole serves the fixed three-phase curriculum. Unknown roles get the
// generic curriculum rather than an error.
func (h *RoadmapHandler) ForRole(c *gin.Context) {
	var req dto.RoadmapRequest
	if err := bindJSON(c, roadmapSchema, &req); err != nil {
		h.errors.Write(c, err)
		return
	}

	role := strings.TrimSpace(req.Role)
	c.JSON(http.StatusOK, dto.OK(dto.RoadmapResponse{
		Role:    role,
		Roadmap: roadmap.ForRole(role),
	}))
}

func (h *RoadmapHandler) Generate(c *gin.Context) {
	var req dto.GenerateRoadmapRequest
	if err := bindJSON(c, generateRoadmapSchema, &req); err != nil {
		h.errors.Write(c, err)
		return
	}

	rm, err := roadmap.ForSkills(req.TargetRole, req.MissingSkills, req.Timeframe)
	if err != nil {
		h.errors.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(rm))
}

func (h *RoadmapHandler) Templates(c *gin.Context) {
	templates := roadmap.Templates()
	c.JSON(http.StatusOK, dto.List(templates, len(templates)))
}
