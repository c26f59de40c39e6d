// internal/workers/career/suggest-learning-order/config.go
package suggestlearningorder

import (
	"time"

	"skillgap-analyzer/internal/common/config"
)

type Config struct {
	Timeout time.Duration
	// RequireKnownRole rejects roles missing from the catalog instead of
	// passing the skills through unordered.
	RequireKnownRole bool
}

func LoadConfig() *Config {
	return &Config{
		Timeout:          10 * time.Second,
		RequireKnownRole: true,
	}
}

// Apply overlays the worker's entry from the workers section.
func (c *Config) Apply(wcfg config.WorkerConfig) *Config {
	if wcfg.Timeout > 0 {
		c.Timeout = config.GetDuration(wcfg.Timeout)
	}
	c.RequireKnownRole = !wcfg.AllowUnknownRole
	return c
}
