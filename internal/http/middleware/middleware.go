// Package middleware holds the gin middleware shared by every route.
package middleware

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	apperrors "skillgap-analyzer/internal/common/errors"
	"skillgap-analyzer/internal/common/logger"
	"skillgap-analyzer/internal/common/metrics"
	"skillgap-analyzer/internal/common/observability"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "requestID"
	maxRequestIDLen = 64
)

// RequestIDMiddleware propagates the caller's X-Request-ID or assigns a new one.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(RequestIDHeader))
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestID returns the id assigned to the current request.
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// CORS allows the listed origins; "*" or an empty list allows any.
// Entries may use a single wildcard, e.g. "https://*.example.com".
// Preflight requests are answered with 204.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader},
		AllowWildcard: true,
		MaxAge:        12 * time.Hour,
	}
	for _, o := range allowedOrigins {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "*" {
			cfg.AllowOrigins = nil
			break
		}
		if o != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, o)
		}
	}
	cfg.AllowAllOrigins = len(cfg.AllowOrigins) == 0

	return cors.New(cfg)
}

// AccessLog writes one structured line per request.
func AccessLog(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := map[string]interface{}{
			"requestId":  RequestID(c),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"route":      route(c),
			"status":     c.Writer.Status(),
			"durationMs": time.Since(start).Milliseconds(),
			"clientIp":   c.ClientIP(),
		}
		switch status := c.Writer.Status(); {
		case status >= 500:
			log.Error("request completed", fields)
		case status >= 400:
			log.Warn("request completed", fields)
		default:
			log.Info("request completed", fields)
		}
	}
}

// Recovery turns a panic into a 500 error envelope.
func Recovery(log logger.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		log.Error("panic recovered", map[string]interface{}{
			"requestId": RequestID(c),
			"path":      c.Request.URL.Path,
			"panic":     fmt.Sprint(recovered),
		})
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Internal Server Error",
			"code":      string(apperrors.ErrCodeInternal),
			"requestId": RequestID(c),
		})
	})
}

// Metrics records request counts and latencies in both the prometheus
// collectors and the OpenTelemetry instruments. obs may be nil.
func Metrics(obs *observability.Observability) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		elapsed := time.Since(start)
		r := route(c)
		status := c.Writer.Status()

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, r, strconv.Itoa(status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, r).Observe(elapsed.Seconds())
		obs.RecordRequest(c.Request.Context(), c.Request.Method, r, status, elapsed)
	}
}

// route is the matched route pattern; unmatched paths share one label.
func route(c *gin.Context) string {
	if r := c.FullPath(); r != "" {
		return r
	}
	return "unmatched"
}
