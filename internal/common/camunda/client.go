// internal/common/camunda/client.go
package camunda

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"skillgap-analyzer/internal/common/config"
	"skillgap-analyzer/internal/common/logger"

	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
)

var (
	ErrBrokerUnavailable = stderrors.New("zeebe broker unavailable")
	ErrBrokerTimeout     = stderrors.New("zeebe request timed out")
	ErrBrokerRejected    = stderrors.New("zeebe rejected the command")
)

// Client wraps the Zeebe gRPC client with connection checks and retries.
type Client struct {
	client zbc.Client
	config *ClientConfig
	logger logger.Logger
}

type ClientConfig struct {
	GatewayAddress         string
	UsePlaintextConnection bool
	ConnectionTimeout      time.Duration
	RequestTimeout         time.Duration
	RetryConfig            *RetryConfig
}

// RetryConfig defines retry behavior for transient failures.
type RetryConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

var DefaultRetryConfig = &RetryConfig{
	MaxRetries: 3,
	BaseDelay:  1 * time.Second,
	MaxDelay:   10 * time.Second,
}

// ConfigFromApp derives the client settings from the camunda section.
func ConfigFromApp(cfg config.CamundaConfig) *ClientConfig {
	return &ClientConfig{
		GatewayAddress:         cfg.BrokerAddress,
		UsePlaintextConnection: cfg.Plaintext,
		ConnectionTimeout:      config.GetDuration(cfg.Timeout),
		RequestTimeout:         config.GetDuration(cfg.RequestTimeout),
		RetryConfig:            DefaultRetryConfig,
	}
}

// NewClient connects to the gateway and verifies the connection with a
// topology request.
func NewClient(cfg *ClientConfig, log logger.Logger) (*Client, error) {
	if cfg.RetryConfig == nil {
		cfg.RetryConfig = DefaultRetryConfig
	}
	if cfg.ConnectionTimeout <= 0 {
		cfg.ConnectionTimeout = 10 * time.Second
	}

	zeebeClient, err := zbc.NewClient(&zbc.ClientConfig{
		GatewayAddress:         cfg.GatewayAddress,
		UsePlaintextConnection: cfg.UsePlaintextConnection,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Zeebe client: %w", err)
	}

	c := &Client{
		client: zeebeClient,
		config: cfg,
		logger: log.WithFields(map[string]interface{}{"component": "zeebe", "gateway": cfg.GatewayAddress}),
	}

	if err := c.HealthCheck(context.Background()); err != nil {
		zeebeClient.Close()
		return nil, fmt.Errorf("failed to connect to Zeebe broker at %s: %w", cfg.GatewayAddress, err)
	}

	return c, nil
}

// Raw returns the underlying Zeebe client for job worker registration.
func (c *Client) Raw() zbc.Client {
	return c.client
}

func (c *Client) Close() error {
	return c.client.Close()
}

// ExecuteWithRetry runs a Zeebe command with exponential backoff. Only
// transient failures are retried.
func (c *Client) ExecuteWithRetry(
	ctx context.Context,
	commandFunc func(context.Context) (interface{}, error),
	operationName string,
) (interface{}, error) {
	return executeWithRetry(ctx, c.config.RetryConfig, c.logger, commandFunc, operationName)
}

func executeWithRetry(
	ctx context.Context,
	retry *RetryConfig,
	log logger.Logger,
	commandFunc func(context.Context) (interface{}, error),
	operationName string,
) (interface{}, error) {
	for attempt := 0; ; attempt++ {
		result, err := commandFunc(ctx)
		if err == nil {
			return result, nil
		}

		if !isRetryableZeebeError(err) || attempt >= retry.MaxRetries {
			return nil, mapZeebeError(err, operationName, attempt)
		}

		delay := retry.BaseDelay * time.Duration(1<<attempt)
		if delay > retry.MaxDelay {
			delay = retry.MaxDelay
		}
		log.Warn("zeebe command failed, retrying", map[string]interface{}{
			"operation":   operationName,
			"attempt":     attempt + 1,
			"nextRetryIn": delay.String(),
			"error":       err,
		})

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, fmt.Errorf("operation %s cancelled after %d attempts: %w", operationName, attempt+1, ctx.Err())
		}
	}
}

func isRetryableZeebeError(err error) bool {
	msg := strings.ToLower(err.Error())
	retryablePhrases := []string{
		"connection refused",
		"connection reset",
		"timeout",
		"deadline exceeded",
		"unavailable",
		"unreachable",
		"broken pipe",
	}
	for _, phrase := range retryablePhrases {
		if strings.Contains(msg, phrase) {
			return true
		}
	}
	return false
}

// mapZeebeError classifies a Zeebe failure under one of the sentinel errors.
func mapZeebeError(err error, operation string, attempt int) error {
	msg := fmt.Sprintf("zeebe operation '%s' failed", operation)
	if attempt > 0 {
		msg += fmt.Sprintf(" after %d attempts", attempt+1)
	}

	lower := strings.ToLower(err.Error())
	switch {
	case strings.Contains(lower, "timeout") || strings.Contains(lower, "deadline exceeded"):
		return fmt.Errorf("%s: %w: %v", msg, ErrBrokerTimeout, err)
	case strings.Contains(lower, "connection refused") ||
		strings.Contains(lower, "connection reset") ||
		strings.Contains(lower, "unavailable") ||
		strings.Contains(lower, "unreachable") ||
		strings.Contains(lower, "broken pipe"):
		return fmt.Errorf("%s: %w: %v", msg, ErrBrokerUnavailable, err)
	default:
		return fmt.Errorf("%s: %w: %v", msg, ErrBrokerRejected, err)
	}
}

// HealthCheck sends a topology request to the broker.
func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.config.ConnectionTimeout)
	defer cancel()

	if _, err := c.client.NewTopologyCommand().Send(ctx); err != nil {
		return fmt.Errorf("zeebe health check failed: %w", err)
	}
	return nil
}
