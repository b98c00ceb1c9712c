package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/todosync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todosync/internal/app/action"
	"github.com/jsamuelsen11/todosync/internal/platform/logging"
)

// Timeout returns middleware that bounds how long an operation request may
// take. The handler runs with a context carrying the deadline, so in-flight
// remote calls are canceled when it passes. If the handler has not produced
// a response by then, a 504 problem with kind network_failure is written and
// whatever the handler writes afterwards is discarded.
//
// A panic in the handler is re-raised on the serving goroutine so Recovery
// still sees it.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			buf := &bufferedResponse{ctx: ctx}
			done := make(chan any, 1)

			go func() {
				defer func() { done <- recover() }()
				next.ServeHTTP(buf, r.WithContext(ctx))
			}()

			select {
			case p := <-done:
				if p != nil {
					panic(p)
				}
			case <-ctx.Done():
				if !buf.expire() {
					if p := <-done; p != nil {
						panic(p)
					}
				}
			}

			if buf.commit(w) {
				return
			}
			logging.FromContext(r.Context()).WarnContext(r.Context(), "request deadline exceeded",
				slog.String("method", r.Method),
				slog.String("route", routePattern(r)),
				slog.Duration("timeout", timeout),
			)
			dto.WriteFailure(w, r, http.StatusGatewayTimeout, action.NetworkFailure,
				fmt.Sprintf("request did not complete within %s", timeout))
		})
	}
}

// bufferedResponse holds the handler's response until Timeout decides
// whether to send it. A response not started before the deadline is expired;
// further writes are dropped.
type bufferedResponse struct {
	ctx     context.Context
	mu      sync.Mutex
	header  http.Header
	body    []byte
	status  int
	kind    string
	expired bool
}

func (b *bufferedResponse) Header() http.Header {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.header == nil {
		b.header = make(http.Header)
	}
	return b.header
}

func (b *bufferedResponse) WriteHeader(code int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.started() {
		return
	}
	if !b.expired {
		b.status = code
	}
}

// RecordFailure keeps the failure kind so it reaches the outer writers with
// the response.
func (b *bufferedResponse) RecordFailure(kind string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.expired {
		b.kind = kind
	}
}

// started reports whether a status was chosen, expiring the response when
// the deadline passed first. Must be called with b.mu held.
func (b *bufferedResponse) started() bool {
	if b.status == 0 && b.ctx.Err() != nil {
		b.expired = true
	}
	return b.status != 0
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.started() && !b.expired {
		b.status = http.StatusOK
	}
	if b.expired {
		return 0, http.ErrHandlerTimeout
	}
	b.body = append(b.body, p...)
	return len(p), nil
}

// expire marks the response as timed out. It reports false when the handler
// has already chosen a status, in which case that response wins.
func (b *bufferedResponse) expire() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.status != 0 {
		return false
	}
	b.expired = true
	return true
}

// commit copies the buffered response to w. It reports false, writing
// nothing, when the response expired.
func (b *bufferedResponse) commit(w http.ResponseWriter) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.expired {
		return false
	}

	if rec, ok := w.(dto.FailureRecorder); ok && b.kind != "" {
		rec.RecordFailure(b.kind)
	}
	maps.Copy(w.Header(), b.header)
	if b.status != 0 {
		w.WriteHeader(b.status)
	}
	if len(b.body) > 0 {
		_, _ = w.Write(b.body)
	}
	return true
}
