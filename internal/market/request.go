package market

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"time"
)

// StatusError is a non-2xx upstream response, surfaced after any retry
// budget is spent. Status and body pass through to callers unchanged.
type StatusError struct {
	Status int
	Body   []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("market api responded with %d", e.Status)
}

// Throttled reports whether the upstream was rate limiting the caller.
func (e *StatusError) Throttled() bool {
	return e.Status == http.StatusForbidden || e.Status == http.StatusTooManyRequests
}

// fetch performs a GET with throttle-aware retries. Each attempt — retries
// included — acquires a fresh dispatcher slot first. On 403/429 the attempt
// backs off delay+jitter and doubles delay, up to the retry budget; any
// other non-2xx is terminal immediately. Network-level failures are never
// retried.
func (c *Client) fetch(ctx context.Context, path string) ([]byte, error) {
	delay := c.retryDelay

	for attempt := 0; ; attempt++ {
		if err := c.limiter.Acquire(ctx); err != nil {
			return nil, err
		}

		status, body, err := c.doRequest(ctx, path)
		if err != nil {
			return nil, err
		}

		throttled := status == http.StatusForbidden || status == http.StatusTooManyRequests
		if throttled && attempt < c.maxRetries {
			wait := delay
			if c.retryJitter > 0 {
				wait += time.Duration(rand.Int64N(int64(c.retryJitter)))
			}
			c.logger.Warn("throttled by upstream",
				"status", status,
				"path", path,
				"wait", wait,
				"retries_left", c.maxRetries-attempt,
			)

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}

			delay *= 2
			continue
		}

		if status < 200 || status >= 300 {
			return nil, &StatusError{Status: status, Body: body}
		}

		return body, nil
	}
}

// doRequest performs a single HTTP attempt and returns the status and body.
// An error here is transport-level (dial, TLS, timeout, read).
func (c *Client) doRequest(ctx context.Context, path string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}

	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read response: %w", err)
	}

	return resp.StatusCode, body, nil
}

// setHeaders applies the masking header set the upstream expects from a
// browser client. None of these are a protocol requirement.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.userAgents[rand.IntN(len(c.userAgents))])
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Platform", "pc")
	req.Header.Set("Language", "en")
	req.Header.Set("Referer", "https://warframe.market/")
	req.Header.Set("Origin", "https://warframe.market")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
}
