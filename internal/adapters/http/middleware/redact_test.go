package middleware_test

import (
	"log/slog"
	"net/http"
	"testing"

	"github.com/jsamuelsen11/todosync/internal/adapters/http/middleware"
)

const redactedValue = "[REDACTED]"

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers http.Header
		want    []slog.Attr
	}{
		{
			name:    "remote api key",
			headers: http.Header{"Api-Key": {"remote-key"}},
			want:    []slog.Attr{slog.String("Api-Key", redactedValue)},
		},
		{
			name:    "bearer authorization",
			headers: http.Header{"Authorization": {"Bearer secret-token"}},
			want:    []slog.Attr{slog.String("Authorization", redactedValue)},
		},
		{
			name:    "session cookie",
			headers: http.Header{"Cookie": {"session=abc123"}, "Set-Cookie": {"session=def456"}},
			want: []slog.Attr{
				slog.String("Cookie", redactedValue),
				slog.String("Set-Cookie", redactedValue),
			},
		},
		{
			name:    "non-canonical key",
			headers: http.Header{"x-api-key": {"raw"}},
			want:    []slog.Attr{slog.String("x-api-key", redactedValue)},
		},
		{
			name: "sync request",
			headers: http.Header{
				"X-Request-Id":  {"ui-sync-42"},
				"Content-Type":  {"application/json"},
				"Authorization": {"Bearer secret"},
				"Accept":        {"application/problem+json", "application/json"},
			},
			want: []slog.Attr{
				slog.String("Accept", "application/problem+json,application/json"),
				slog.String("Authorization", redactedValue),
				slog.String("Content-Type", "application/json"),
				slog.String("X-Request-Id", "ui-sync-42"),
			},
		},
		{
			name:    "no headers",
			headers: http.Header{},
			want:    []slog.Attr{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := middleware.RedactHeaders(tt.headers)
			if len(got) != len(tt.want) {
				t.Fatalf("RedactHeaders() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if !got[i].Equal(tt.want[i]) {
					t.Errorf("attr[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRedactHeaders_LeavesInputUntouched(t *testing.T) {
	t.Parallel()

	headers := http.Header{"Api-Key": {"remote-key"}}
	_ = middleware.RedactHeaders(headers)

	if got := headers.Get("Api-Key"); got != "remote-key" {
		t.Errorf("Api-Key after redaction = %q, want %q", got, "remote-key")
	}
}
