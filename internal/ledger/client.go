package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/StudioLIQ/tickasting-sub000/internal/clock"
)

type (
	// Metrics records metrics for adapter calls.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// StatusError reports a non-2xx response from the ledger API.
type StatusError struct {
	Code       int
	RetryAfter time.Duration
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("ledger api status %d", e.Code)
}

// RateLimited reports whether the error is a 429-equivalent response.
func (e *StatusError) RateLimited() bool {
	return e.Code == http.StatusTooManyRequests
}

// ClientConfig tunes the REST client. Zero values fall back to defaults.
type ClientConfig struct {
	BaseURL           string
	RequestsPerSecond int
	MaxRetries        int
	BackoffBase       time.Duration
	HTTPTimeout       time.Duration
}

const (
	defaultRequestsPerSecond = 10
	defaultMaxRetries        = 5
	defaultBackoffBase       = 500 * time.Millisecond
	defaultHTTPTimeout       = 30 * time.Second
)

// Client is a rate-limited REST implementation of Adapter against a
// Kaspa-style node API. Rate-limit responses are retried with a linear
// backoff by attempt count, honoring a server-provided Retry-After hint,
// bounded by MaxRetries.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	limiter     ratelimit.Limiter
	metrics     Metrics
	logger      *zap.Logger
	maxRetries  int
	backoffBase time.Duration
	sleep       func(context.Context, time.Duration) error
}

// NewClient constructs a Client.
func NewClient(cfg ClientConfig, metrics Metrics, logger *zap.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("ledger base url is required")
	}
	if metrics == nil {
		return nil, errors.New("ledger metrics is required")
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = defaultRequestsPerSecond
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = defaultBackoffBase
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = defaultHTTPTimeout
	}

	return &Client{
		baseURL:     cfg.BaseURL,
		httpClient:  &http.Client{Timeout: cfg.HTTPTimeout},
		limiter:     ratelimit.New(cfg.RequestsPerSecond),
		metrics:     metrics,
		logger:      logger,
		maxRetries:  cfg.MaxRetries,
		backoffBase: cfg.BackoffBase,
		sleep:       clock.SleepWithContext,
	}, nil
}

// ListAddressTransactions returns one page of transactions addressed to the
// given address.
func (c *Client) ListAddressTransactions(ctx context.Context, address string, opts ListOptions) (page AddressTransactionsPage, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("list_address_transactions", err, started)
	}()

	q := url.Values{}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Cursor != "" {
		q.Set("cursor", opts.Cursor)
	}
	if opts.AcceptedOnly {
		q.Set("acceptedOnly", "true")
	}

	path := fmt.Sprintf("/addresses/%s/transactions", url.PathEscape(address))
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	err = c.doJSON(ctx, http.MethodGet, path, nil, &page)
	return page, err
}

// GetTransactionsAcceptance resolves acceptance status and confirmation
// depth for a batch of transaction ids.
func (c *Client) GetTransactionsAcceptance(ctx context.Context, txids []string) (acceptances []Acceptance, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_transactions_acceptance", err, started)
	}()

	body := struct {
		TxIDs []string `json:"txids"`
	}{TxIDs: txids}

	err = c.doJSON(ctx, http.MethodPost, "/transactions/acceptance", body, &acceptances)
	return acceptances, err
}

// GetBlockDetails resolves an accepting block. An unknown block returns
// (nil, nil).
func (c *Client) GetBlockDetails(ctx context.Context, blockRef string) (details *BlockDetails, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_block_details", err, started)
	}()

	var out BlockDetails
	err = c.doJSON(ctx, http.MethodGet, "/blocks/"+url.PathEscape(blockRef), nil, &out)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	for attempt := 1; ; attempt++ {
		err := c.doOnce(ctx, method, path, body, out)
		if err == nil {
			return nil
		}

		var statusErr *StatusError
		if !errors.As(err, &statusErr) || !statusErr.RateLimited() || attempt >= c.maxRetries {
			return err
		}

		delay := c.backoffBase * time.Duration(attempt)
		if statusErr.RetryAfter > 0 {
			delay = statusErr.RetryAfter
		}
		c.logger.Warn("ledger api rate limited, backing off",
			zap.String("path", path),
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay))
		if sleepErr := c.sleep(ctx, delay); sleepErr != nil {
			return sleepErr
		}
	}
}

func (c *Client) doOnce(ctx context.Context, method, path string, body, out any) error {
	c.limiter.Take()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ledger api request: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, RetryAfter: parseRetryAfter(resp)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseRetryAfter(resp *http.Response) time.Duration {
	raw := resp.Header.Get("Retry-After")
	if raw == "" {
		return 0
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
