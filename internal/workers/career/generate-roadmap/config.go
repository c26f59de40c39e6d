// internal/workers/career/generate-roadmap/config.go
package generateroadmap

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
