package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/todosync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todosync/internal/app/action"
)

// panicDetail is the only panic information sent to clients. The value and
// stack trace go to the log.
const panicDetail = "internal server error"

// Recovery returns middleware that turns a panic in a downstream handler into
// a 500 problem response. A panicking handler is treated like a panicking
// operation procedure: the problem carries kind network_failure. If the
// handler had already started the response, only the log entry is emitted.
//
// http.ErrAbortHandler is re-raised so net/http can abort the connection
// silently.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("route", routePattern(r)),
					slog.Bool("response_started", rw.started),
				)

				if !rw.started {
					dto.WriteFailure(rw, r, http.StatusInternalServerError, action.NetworkFailure, panicDetail)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
