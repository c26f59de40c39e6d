package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func corsEngine(origins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestIDMiddleware(), CORS(origins))
	engine.GET("/api/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	engine.POST("/api/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return engine
}

func serve(engine *gin.Engine, method, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/ping", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	if method == http.MethodOptions {
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name        string
		origins     []string
		method      string
		origin      string
		wantStatus  int
		wantAllowed string
	}{
		{
			name:        "wildcard allows any origin",
			origins:     []string{"*"},
			method:      http.MethodGet,
			origin:      "http://localhost:3000",
			wantStatus:  http.StatusOK,
			wantAllowed: "*",
		},
		{
			name:        "empty list allows any origin",
			method:      http.MethodGet,
			origin:      "http://localhost:3000",
			wantStatus:  http.StatusOK,
			wantAllowed: "*",
		},
		{
			name:        "listed origin is echoed",
			origins:     []string{"https://app.example.com/"},
			method:      http.MethodGet,
			origin:      "https://app.example.com",
			wantStatus:  http.StatusOK,
			wantAllowed: "https://app.example.com",
		},
		{
			name:        "subdomain wildcard",
			origins:     []string{"https://*.example.com"},
			method:      http.MethodGet,
			origin:      "https://admin.example.com",
			wantStatus:  http.StatusOK,
			wantAllowed: "https://admin.example.com",
		},
		{
			name:       "unlisted origin is rejected",
			origins:    []string{"https://app.example.com"},
			method:     http.MethodGet,
			origin:     "https://evil.test",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "no origin header passes through",
			origins:    []string{"https://app.example.com"},
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
		},
		{
			name:        "preflight",
			origins:     []string{"https://app.example.com"},
			method:      http.MethodOptions,
			origin:      "https://app.example.com",
			wantStatus:  http.StatusNoContent,
			wantAllowed: "https://app.example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(corsEngine(tt.origins), tt.method, tt.origin)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantAllowed, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORS_ExposesRequestID(t *testing.T) {
	rec := serve(corsEngine([]string{"*"}), http.MethodGet, "http://localhost:3000")

	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	assert.Contains(t, strings.ToLower(rec.Header().Get("Access-Control-Expose-Headers")), "x-request-id")
}
