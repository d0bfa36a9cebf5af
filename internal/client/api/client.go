package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// DefaultTimeout ограничивает время одного запроса, если не задано иное
const DefaultTimeout = 30 * time.Second

// Client is the single execution path for every outbound request (the gateway).
// It attaches headers, serializes and parses JSON and converts transport and
// HTTP failures into NetworkError, RequestError and MalformedResponseError.
// Client keeps no state between calls and never retries.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	metrics    *Metrics
	logger     *slog.Logger
	baseURL    string
}

// Option настраивает Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. The client is copied,
// so later options never modify the caller's value.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			clone := *hc
			c.httpClient = &clone
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithRateLimit throttles outbound requests. rps <= 0 disables the limit.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics instruments the transport with the given collectors.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient создает новый API клиент
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  slog.Default(),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	// Инструментируем транспорт после всех опций, чтобы WithHTTPClient его не потерял
	if c.metrics != nil {
		c.httpClient.Transport = c.metrics.Wrap(c.httpClient.Transport)
	}

	return c
}

// BaseURL returns the configured origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do executes one request. token is attached as a bearer credential when not
// empty and body is sent as JSON when not nil. On success the raw body text is
// returned; when result is not nil the text must also parse as JSON into it.
func (c *Client) Do(ctx context.Context, method, path, token string, body, result any) (string, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return "", fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", &NetworkError{Method: method, Path: path, Err: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.DebugContext(ctx, "api request failed", "method", method, "path", path, "error", err)
		return "", &NetworkError{Method: method, Path: path, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа целиком как текст
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &NetworkError{Method: method, Path: path, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	c.logger.DebugContext(ctx, "api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
		"request_id", req.Header.Get("X-Request-ID"),
	)

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &RequestError{
			Method: method,
			Path:   path,
			Status: resp.StatusCode,
			Body:   string(respBody),
		}
	}

	text := string(respBody)

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return text, &MalformedResponseError{Method: method, Path: path, Body: text, Err: err}
		}
	}

	return text, nil
}
