package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/jsamuelsen11/todosync/internal/platform/logging"
)

// jitterFraction is the randomization factor applied to every delay (±25%).
const jitterFraction = 0.25

// doWithRetry sends req, retrying transient failures with exponential
// backoff. Only requests the remote API treats as idempotent (GET, PUT,
// DELETE) are retried after a 5xx or a broken connection: a repeated POST
// would create a second list or task. A POST is retried only when the server
// provably did not process it, which is a 429 or a failed dial.
//
// The result is written to resp rather than returned to avoid false
// positives from the bodyclose linter; the caller closes the body.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retryCfg.maxAttempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retryCfg.maxAttempts)
	}

	body, err := bufferRequestBody(req)
	if err != nil {
		return err
	}

	policy := c.retryCfg.newBackOff()
	idempotent := isIdempotent(req.Method)

	var (
		lastErr    error
		retryAfter time.Duration
	)
	for attempt := range c.retryCfg.maxAttempts {
		if attempt > 0 {
			delay := policy.NextBackOff()
			if retryAfter > 0 {
				delay = retryAfter
			}
			if err := c.waitForRetry(ctx, req, attempt, delay, lastErr); err != nil {
				return err
			}
		}
		final := attempt == c.retryCfg.maxAttempts-1

		resetRequestBody(req, body)

		r, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if final || !shouldRetryError(err, idempotent) {
				return err
			}
			retryAfter = 0
			continue
		}

		if !shouldRetryStatus(r.StatusCode, idempotent) {
			*resp = r
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)
		if final {
			*resp = r
			return lastErr
		}

		retryAfter = parseRetryAfter(r.Header.Get("Retry-After"), c.retryCfg.maxInterval, time.Now())
		drainResponseBody(r)
	}

	return lastErr
}

// newBackOff returns a fresh backoff sequence for one request.
func (rc retryConfig) newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = rc.initialInterval
	b.MaxInterval = rc.maxInterval
	b.Multiplier = rc.multiplier
	b.RandomizationFactor = jitterFraction
	b.Reset()
	return b
}

// bufferRequestBody reads and closes the request body so it can be replayed.
// Returns nil if the body is nil.
func bufferRequestBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()

	return b, nil
}

func resetRequestBody(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
}

// drainResponseBody discards the body so the connection can be reused.
func drainResponseBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

func (c *Client) waitForRetry(ctx context.Context, req *http.Request, attempt int, delay time.Duration, lastErr error) error {
	logging.FromContext(ctx).WarnContext(ctx, "retrying remote API request",
		slog.String("method", req.Method),
		slog.String("url", req.URL.Redacted()),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retryCfg.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// isIdempotent reports whether repeating a request with method leaves the
// remote state unchanged.
func isIdempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

// shouldRetryError reports whether a transport error is worth another
// attempt. Cancellation never is. A non-idempotent request is retried only
// if the connection was never established.
func shouldRetryError(err error, idempotent bool) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if idempotent {
		return true
	}

	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}

// shouldRetryStatus reports whether a response status is worth another
// attempt. 429 is always retried; 5xx only for idempotent requests.
func shouldRetryStatus(status int, idempotent bool) bool {
	if status == http.StatusTooManyRequests {
		return true
	}
	return idempotent && status >= http.StatusInternalServerError
}

// parseRetryAfter reads a Retry-After header given in seconds or as an HTTP
// date. The result is capped at maxWait; absent or invalid values yield 0.
func parseRetryAfter(v string, maxWait time.Duration, now time.Time) time.Duration {
	if v == "" {
		return 0
	}

	var d time.Duration
	if secs, err := strconv.Atoi(v); err == nil {
		d = time.Duration(secs) * time.Second
	} else if at, err := http.ParseTime(v); err == nil {
		d = at.Sub(now)
	}

	switch {
	case d <= 0:
		return 0
	case d > maxWait:
		return maxWait
	default:
		return d
	}
}
