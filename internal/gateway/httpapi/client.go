// Package httpapi реализует HTTP-шлюз для запросов к REST API.
package httpapi

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"tubegem/internal/gateway/youtube"

	"go.uber.org/zap"
)

// HTTPClientConfig конфигурация HTTP клиента
type HTTPClientConfig struct {
	MaxIdleConns          int
	MaxIdleConnsPerHost   int
	IdleConnTimeout       time.Duration
	TLSHandshakeTimeout   time.Duration
	ResponseHeaderTimeout time.Duration
	DisableKeepAlives     bool
}

// Config конфигурация шлюза
type Config struct {
	Endpoint         string
	HTTPClientConfig HTTPClientConfig
	RetryConfig      RetryConfig
}

// StatusError означает ответ API со статусом вне диапазона 2xx
type StatusError struct {
	Code int
	Body string
}

// Error возвращает текст ошибки
func (e *StatusError) Error() string {
	return fmt.Sprintf("api request failed with status %d: %s", e.Code, e.Body)
}

// Client представляет HTTP-шлюз к REST API
type Client struct {
	httpClient *http.Client
	endpoint   string
	retry      RetryConfig
	logger     *zap.Logger
}

var _ youtube.Gateway = (*Client)(nil)

// NewClient создает новый HTTP-шлюз с пулом соединений
func NewClient(config Config, logger *zap.Logger) *Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          config.HTTPClientConfig.MaxIdleConns,
		MaxIdleConnsPerHost:   config.HTTPClientConfig.MaxIdleConnsPerHost,
		IdleConnTimeout:       config.HTTPClientConfig.IdleConnTimeout,
		TLSHandshakeTimeout:   config.HTTPClientConfig.TLSHandshakeTimeout,
		ResponseHeaderTimeout: config.HTTPClientConfig.ResponseHeaderTimeout,
		DisableKeepAlives:     config.HTTPClientConfig.DisableKeepAlives,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: false,
			MinVersion:         tls.VersionTLS12,
		},
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   60 * time.Second,
	}

	logger.Info("HTTP gateway created with connection pooling",
		zap.String("endpoint", config.Endpoint),
		zap.Int("max_idle_conns", config.HTTPClientConfig.MaxIdleConns),
		zap.Int("max_idle_conns_per_host", config.HTTPClientConfig.MaxIdleConnsPerHost))

	return &Client{
		httpClient: client,
		endpoint:   config.Endpoint,
		retry:      config.RetryConfig,
		logger:     logger,
	}
}

// Get выполняет GET-запрос к path относительно базового endpoint
// и декодирует JSON-ответ. Повторы выполняются согласно RetryConfig.
func (c *Client) Get(ctx context.Context, path string, query youtube.Query) (map[string]any, error) {
	requestURL, err := c.buildURL(path, query)
	if err != nil {
		return nil, fmt.Errorf("failed to build request URL: %w", err)
	}

	var body map[string]any
	err = WithRetry(ctx, c.logger, c.retry, func() error {
		decoded, reqErr := c.doRequest(ctx, requestURL)
		if reqErr != nil {
			return reqErr
		}
		body = decoded
		return nil
	})
	if err != nil {
		return nil, err
	}

	return body, nil
}

// doRequest выполняет одиночный запрос и декодирует тело ответа
func (c *Client) doRequest(ctx context.Context, requestURL string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("Failed to close response body", zap.Error(closeErr))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &StatusError{Code: resp.StatusCode, Body: string(bodyBytes)}
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return body, nil
}

// buildURL собирает URL запроса из базового endpoint, пути и параметров
func (c *Client) buildURL(path string, query youtube.Query) (string, error) {
	parsed, err := url.Parse(c.endpoint + path)
	if err != nil {
		return "", err
	}

	values := parsed.Query()
	for key, value := range query {
		values.Set(key, fmt.Sprint(value))
	}
	parsed.RawQuery = values.Encode()

	return parsed.String(), nil
}
