// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// The middleware chain processes requests in this order:
//
//	Recovery → RequestID → OpenTelemetry → Logging → Timeout → Handler
//
// Each middleware is a func(http.Handler) http.Handler registered on the chi
// router in that order.
package middleware

import (
	"net/http"

	"github.com/jsamuelsen11/todosync/internal/adapters/http/dto"
)

// responseWriter records what a handler sent back so that recovery, otel,
// and logging can report it: the status, the body size, and the failure kind
// of a problem response.
type responseWriter struct {
	http.ResponseWriter
	statusCode  int
	started     bool
	written     int64
	failureKind string
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

// WriteHeader keeps the first status sent.
func (rw *responseWriter) WriteHeader(code int) {
	if rw.started {
		return
	}
	rw.statusCode = code
	rw.started = true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.started = true
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// RecordFailure notes the kind of a problem response and passes it on to
// any recording writer underneath, so every layer of the chain sees it.
func (rw *responseWriter) RecordFailure(kind string) {
	rw.failureKind = kind
	if inner, ok := rw.ResponseWriter.(dto.FailureRecorder); ok {
		inner.RecordFailure(kind)
	}
}

// Unwrap lets http.ResponseController reach the server's writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
