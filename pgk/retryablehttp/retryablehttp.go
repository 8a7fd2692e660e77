package retryablehttp

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"time"
)

var ErrRetriesExhausted = errors.New("retries exhausted")

const defaultRetryAfter = 60 * time.Second

// StatusError - последний повторяемый ответ перед отказом
type StatusError struct {
	StatusCode int
	Status     string
	RetryAfter time.Duration
}

func (e *StatusError) Error() string {
	return "unexpected response status: " + e.Status
}

type RetryConfig struct {
	MaxRetries int           // попытки после первой, по умолчанию 3
	BaseDelay  time.Duration // по умолчанию 100ms
	MaxDelay   time.Duration // по умолчанию 5s
	MaxJitter  time.Duration // по умолчанию 100ms
	Timeout    time.Duration // на одну попытку, 0 - без таймаута
}

type RetryableClient struct {
	client      *http.Client
	retryConfig RetryConfig
}

func NewRetryableClient(config RetryConfig) *RetryableClient {
	if config.MaxRetries == 0 {
		config.MaxRetries = 3
	}
	if config.BaseDelay == 0 {
		config.BaseDelay = 100 * time.Millisecond
	}
	if config.MaxDelay == 0 {
		config.MaxDelay = 5 * time.Second
	}
	if config.MaxJitter == 0 {
		config.MaxJitter = 100 * time.Millisecond
	}

	return &RetryableClient{
		client:      &http.Client{Timeout: config.Timeout},
		retryConfig: config,
	}
}

// isRetryable - определяет, нужно ли делать retry: сетевые ошибки, 5xx, 429 и 408
func (c *RetryableClient) isRetryable(resp *http.Response, err error) bool {
	if err != nil {
		return true
	}

	if resp == nil {
		return false
	}

	statusCode := resp.StatusCode
	return statusCode == 0 ||
		(statusCode >= 500 && statusCode <= 599) ||
		statusCode == http.StatusTooManyRequests ||
		statusCode == http.StatusRequestTimeout
}

// Do - отправляет запрос с контекстом ctx, повторяя его с экспоненциальной задержкой и jitter.
// Для запросов с телом нужен GetBody, чтобы тело можно было отправить повторно
func (c *RetryableClient) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt <= c.retryConfig.MaxRetries; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		attemptReq, err := cloneRequest(ctx, req)
		if err != nil {
			return nil, err
		}

		resp, err := c.client.Do(attemptReq)
		if err == nil && !c.isRetryable(resp, nil) {
			return resp, nil
		}

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		if resp != nil {
			lastErr = &StatusError{
				StatusCode: resp.StatusCode,
				Status:     resp.Status,
				RetryAfter: retryAfter(resp),
			}
			if resp.Body != nil {
				resp.Body.Close()
			}
		} else {
			lastErr = err
		}

		if attempt == c.retryConfig.MaxRetries {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.backoffDelay(attempt)):
		}
	}

	return nil, fmt.Errorf("%s %s: %w after %d attempts: %w",
		req.Method, req.URL.Redacted(), ErrRetriesExhausted, c.retryConfig.MaxRetries+1, lastErr)
}

func cloneRequest(ctx context.Context, req *http.Request) (*http.Request, error) {
	clone := req.Clone(ctx)
	if req.Body == nil || req.GetBody == nil {
		return clone, nil
	}

	body, err := req.GetBody()
	if err != nil {
		return nil, fmt.Errorf("replay request body: %w", err)
	}
	clone.Body = body

	return clone, nil
}

// retryAfter - читает заголовок Retry-After в секундах
func retryAfter(resp *http.Response) time.Duration {
	if v := resp.Header.Get("Retry-After"); v != "" {
		if seconds, err := strconv.ParseInt(v, 10, 64); err == nil && seconds >= 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultRetryAfter
}

// backoffDelay - вычисляет задержку BaseDelay*2^attempt, не больше MaxDelay, плюс jitter
func (c *RetryableClient) backoffDelay(attempt int) time.Duration {
	backoff := time.Duration(1<<uint(attempt)) * c.retryConfig.BaseDelay
	if backoff > c.retryConfig.MaxDelay {
		backoff = c.retryConfig.MaxDelay
	}

	jitter := time.Duration(rand.Int63n(int64(c.retryConfig.MaxJitter)))
	return backoff + jitter
}
