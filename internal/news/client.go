// Package news proxies top stories from the Hacker News API.
package news

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net"
	"strings"
	"time"

	"skillgap-analyzer/internal/common/config"
	apperrors "skillgap-analyzer/internal/common/errors"
	commonhttp "skillgap-analyzer/internal/common/http"
	"skillgap-analyzer/internal/common/logger"
	"skillgap-analyzer/internal/common/metrics"
	"skillgap-analyzer/internal/models"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const (
	cacheKeyPrefix = "news:top:"
	maxParallel    = 8
)

// item is the subset of a Hacker News item the service reads.
type item struct {
	ID      int64  `json:"id"`
	Type    string `json:"type"`
	By      string `json:"by"`
	Time    int64  `json:"time"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Score   int    `json:"score"`
	Deleted bool   `json:"deleted"`
	Dead    bool   `json:"dead"`
}

func (i *item) toModel() models.NewsItem {
	return models.NewsItem{
		ID:    i.ID,
		Title: i.Title,
		URL:   i.URL,
		Score: i.Score,
		By:    i.By,
		Type:  i.Type,
		Time:  i.Time,
	}
}

func (i *item) listable() bool {
	return i != nil && !i.Deleted && !i.Dead && strings.TrimSpace(i.Title) != ""
}

type Client struct {
	http         *commonhttp.Client
	baseURL      string
	timeout      time.Duration
	defaultLimit int
	maxLimit     int
	cache        *redis.Client
	cacheTTL     time.Duration
	logger       logger.Logger
}

// NewClient builds a news client. cache may be nil, which disables caching.
func NewClient(cfg config.NewsConfig, cache *redis.Client, log logger.Logger) *Client {
	timeout := time.Duration(cfg.Timeout) * time.Millisecond
	c := &Client{
		http:         commonhttp.NewClient(timeout),
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		timeout:      timeout,
		defaultLimit: cfg.DefaultLimit,
		maxLimit:     cfg.MaxLimit,
		cacheTTL:     time.Duration(cfg.CacheTTL) * time.Millisecond,
		logger:       log.WithFields(map[string]interface{}{"component": "news"}),
	}
	if cfg.CacheEnabled {
		c.cache = cache
	}
	return c
}

// Limit clamps a requested item count to [1, maxLimit]; zero or negative
// selects the default.
func (c *Client) Limit(requested int) int {
	switch {
	case requested <= 0:
		return c.defaultLimit
	case requested > c.maxLimit:
		return c.maxLimit
	default:
		return requested
	}
}

// TopStories returns up to limit current top stories that have a title.
func (c *Client) TopStories(ctx context.Context, limit int) ([]models.NewsItem, error) {
	limit = c.Limit(limit)
	key := fmt.Sprintf("%s%d", cacheKeyPrefix, limit)

	if cached, ok := c.getCached(ctx, key); ok {
		return cached, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var ids []int64
	if err := c.http.GetJSON(ctx, c.baseURL+"/topstories.json", &ids); err != nil {
		return nil, c.mapError(ctx, err)
	}

	// Some top ids are jobs or deleted items, so fetch spares.
	candidates := ids
	if n := 2 * limit; len(candidates) > n {
		candidates = candidates[:n]
	}

	items, err := c.fetchItems(ctx, candidates)
	if err != nil {
		return nil, c.mapError(ctx, err)
	}

	out := make([]models.NewsItem, 0, limit)
	for _, it := range items {
		if len(out) == limit {
			break
		}
		if it.listable() {
			out = append(out, it.toModel())
		}
	}

	c.setCached(ctx, key, out)
	return out, nil
}

// Item returns one item by id.
func (c *Client) Item(ctx context.Context, id int64) (*models.NewsItem, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	it, err := c.fetchItem(ctx, id)
	if err != nil {
		return nil, c.mapError(ctx, err)
	}
	// the API answers null for ids it does not know
	if it == nil || it.Deleted {
		return nil, apperrors.NewNewsNotFoundError(id)
	}
	out := it.toModel()
	return &out, nil
}

func (c *Client) fetchItem(ctx context.Context, id int64) (*item, error) {
	var it *item
	if err := c.http.GetJSON(ctx, fmt.Sprintf("%s/item/%d.json", c.baseURL, id), &it); err != nil {
		return nil, err
	}
	return it, nil
}

// fetchItems loads ids concurrently and returns them in input order. A
// single failed item is skipped; the call fails only if every item fails.
func (c *Client) fetchItems(ctx context.Context, ids []int64) ([]*item, error) {
	items := make([]*item, len(ids))
	errs := make([]error, len(ids))

	var g errgroup.Group
	g.SetLimit(maxParallel)
	for i, id := range ids {
		g.Go(func() error {
			items[i], errs[i] = c.fetchItem(ctx, id)
			return nil
		})
	}
	_ = g.Wait()

	var firstErr error
	failed := 0
	for i, err := range errs {
		if err == nil {
			continue
		}
		failed++
		if firstErr == nil {
			firstErr = err
		}
		c.logger.Warn("skipping news item", map[string]interface{}{
			"id":    ids[i],
			"error": err,
		})
	}
	if len(ids) > 0 && failed == len(ids) {
		return nil, firstErr
	}
	return items, nil
}

func (c *Client) mapError(ctx context.Context, err error) error {
	var netErr net.Error
	if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(ctx.Err(), context.DeadlineExceeded) ||
		(stderrors.As(err, &netErr) && netErr.Timeout()) {
		return apperrors.NewNewsTimeoutError(c.timeout)
	}
	return apperrors.NewNewsFetchFailedError(err)
}

func (c *Client) getCached(ctx context.Context, key string) ([]models.NewsItem, bool) {
	if c.cache == nil {
		return nil, false
	}

	data, err := c.cache.Get(ctx, key).Bytes()
	if err != nil {
		metrics.NewsCacheLookups.WithLabelValues("miss").Inc()
		if err != redis.Nil {
			c.logger.Warn("news cache read failed", map[string]interface{}{"key": key, "error": err})
		}
		return nil, false
	}

	var items []models.NewsItem
	if err := json.Unmarshal(data, &items); err != nil {
		c.logger.Warn("discarding corrupt news cache entry", map[string]interface{}{"key": key, "error": err})
		return nil, false
	}
	metrics.NewsCacheLookups.WithLabelValues("hit").Inc()
	return items, true
}

func (c *Client) setCached(ctx context.Context, key string, items []models.NewsItem) {
	if c.cache == nil || c.cacheTTL <= 0 {
		return
	}

	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, key, data, c.cacheTTL).Err(); err != nil {
		c.logger.Warn("news cache write failed", map[string]interface{}{"key": key, "error": err})
	}
}
