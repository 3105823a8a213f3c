package jsonclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	retrierconfig "order-service/pkg/retrier"
	"order-service/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 1 * time.Second
	maxElapsedTime  = 2 * time.Second
	randomization   = 0.5
	multiplier      = 2.0

	// тело ошибки читаем только чтобы освободить соединение
	maxDrainBytes = 4 << 10
)

// Client делает GET запросы к JSON API соседнего сервиса с ретраями
// на 429/502/503/504 и транспортных ошибках.
type Client struct {
	service string
	baseURL string
	doer    doer
	retrier retrier
}

func New(service, baseURL string, doer doer) *Client {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &Client{
		service: service,
		baseURL: strings.TrimRight(baseURL, "/"),
		doer:    doer,
		retrier: backoff_adapter.New(retryConfig),
	}
}

// GetJSON запрашивает baseURL+path и декодирует тело в out.
// 404 возвращается как ErrNotFound без повторов.
func (c *Client) GetJSON(ctx context.Context, method, path string, out any) error {
	var attempt uint64
	start := time.Now()

	err := c.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return c.get(ctx, path, out)
	})

	status := statusLabel(err)
	GatewayRequestDuration.WithLabelValues(c.service, method, status).Observe(time.Since(start).Seconds())
	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(c.service, method, status).Inc()
	}

	if err != nil {
		return fmt.Errorf("gateway %s, %s: %w", c.service, method, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %w", ErrInvalidRequest, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.doer.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		drain(resp.Body)
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		drain(resp.Body)
		return &StatusError{Code: resp.StatusCode}
	}

	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return fmt.Errorf("%w: decode response: %w", ErrInvalidResponse, err)
	}
	return nil
}

func isRetryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.Code {
		case http.StatusTooManyRequests,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		default:
			return false
		}
	}

	// пустое тело (io.EOF) и битый JSON тоже сюда, остальное - транспорт
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidRequest) || errors.Is(err, ErrInvalidResponse) {
		return false
	}
	return true
}

func statusLabel(err error) string {
	if err == nil {
		return "200"
	}
	if errors.Is(err, ErrNotFound) {
		return "404"
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.Code)
	}
	return "error"
}

func drain(body io.Reader) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, maxDrainBytes))
}
