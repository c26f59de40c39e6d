// internal/workers/career/analyze-skill-gap/config.go
package analyzeskillgap

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
