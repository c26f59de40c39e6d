package router

import (
	"skillgap-analyzer/internal/common/logger"
	"skillgap-analyzer/internal/common/observability"
	"skillgap-analyzer/internal/http/handler"
	"skillgap-analyzer/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups what New mounts.
type Handlers struct {
	SkillGap *handler.SkillGapHandler
	Roadmap  *handler.RoadmapHandler
	News     *handler.NewsHandler
	Health   *handler.HealthHandler
}

type Options struct {
	AllowedOrigins []string
	Observability  *observability.Observability
	Logger         logger.Logger
}

func New(h Handlers, opts Options) *gin.Engine {
	engine := gin.New()
	engine.Use(
		middleware.RequestIDMiddleware(),
		middleware.Recovery(opts.Logger),
		middleware.CORS(opts.AllowedOrigins),
		middleware.AccessLog(opts.Logger),
		middleware.Metrics(opts.Observability),
	)

	engine.GET("/", h.Health.Root)
	engine.GET("/health", h.Health.Health)
	engine.GET("/ready", h.Health.Ready)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := engine.Group("/api")
	SkillGapRouter(api.Group("/skill-gap"), h.SkillGap)
	RoadmapRouter(api.Group("/roadmap"), h.Roadmap)
	NewsRouter(api.Group("/news"), h.News)

	engine.NoRoute(h.Health.NotFound)
	return engine
}

func SkillGapRouter(rg *gin.RouterGroup, h *handler.SkillGapHandler) {
	rg.POST("", h.Analyze)
	rg.POST("/analyze", h.Analyze)
	rg.GET("/roles", h.Roles)
}

func RoadmapRouter(rg *gin.RouterGroup, h *handler.RoadmapHandler) {
	rg.POST("", h.ForRole)
	rg.POST("/generate", h.Generate)
	rg.GET("/templates", h.Templates)
}

func NewsRouter(rg *gin.RouterGroup, h *handler.NewsHandler) {
	rg.GET("", h.List)
	rg.GET("/categories", h.Categories)
	rg.GET("/:id", h.Get)
}
