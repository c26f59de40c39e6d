package handler

import (
	"context"
	"net/http"
	"strconv"

	apperrors "skillgap-analyzer/internal/common/errors"
	"skillgap-analyzer/internal/http/dto"
	"skillgap-analyzer/internal/models"

	"github.com/gin-gonic/gin"
)

// NewsService is the part of the news client the handler uses.
type NewsService interface {
	TopStoriesByCategory(ctx context.Context, category string, limit int) ([]models.NewsItem, error)
	Item(ctx context.Context, id int64) (*models.NewsItem, error)
	Categories() []models.NewsCategory
}

type NewsHandler struct {
	news   NewsService
	errors *ErrorWriter
}

func NewNewsHandler(news NewsService, errs *ErrorWriter) *NewsHandler {
	return &NewsHandler{news: news, errors: errs}
}

func (h *NewsHandler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			h.errors.Write(c, apperrors.NewInvalidInputError("limit", "limit must be a positive integer"))
			return
		}
		limit = n
	}

	items, err := h.news.TopStoriesByCategory(c.Request.Context(), c.Query("category"), limit)
	if err != nil {
		h.errors.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.List(items, len(items)))
}

func (h *NewsHandler) Categories(c *gin.Context) {
	categories := h.news.Categories()
	c.JSON(http.StatusOK, dto.List(categories, len(categories)))
}

func (h *NewsHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		h.errors.Write(c, apperrors.NewInvalidInputError("id", "id must be a positive integer"))
		return
	}

	item, err := h.news.Item(c.Request.Context(), id)
	if err != nil {
		h.errors.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(item))
}
