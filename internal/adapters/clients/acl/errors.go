// Package acl implements the Anti-Corruption Layer between the remote
// todo-list API and the domain. Resource translators live in subpackages
// (acl/lists, acl/tasks); envelope and transport error mapping live here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/todosync/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// errorBody covers the error shapes the remote API and its gateways emit:
// a bare {"message": ...}, RFC 9457 problem details, or an envelope.
type errorBody struct {
	Message  string   `json:"message"`
	Detail   string   `json:"detail"`
	Messages []string `json:"messages"`
}

func (b errorBody) text() string {
	switch {
	case b.Detail != "":
		return b.Detail
	case b.Message != "":
		return b.Message
	case len(b.Messages) > 0:
		return b.Messages[0]
	default:
		return ""
	}
}

// TranslateHTTPError maps a non-2xx response to a domain error. The result
// always wraps a sentinel and never a typed domain error: a non-2xx status
// means no envelope was received, so callers classify it as a transport
// failure.
func TranslateHTTPError(resp *http.Response) error {
	msg := fmt.Sprintf("request failed with status code %d", resp.StatusCode)
	if detail := parseErrorBody(resp).text(); detail != "" {
		msg += ": " + detail
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", msg, domain.ErrNotFound)

	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("%s: %w", msg, domain.ErrValidation)

	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%s: %w", msg, domain.ErrConflict)

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s: %w", msg, domain.ErrForbidden)

	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", msg, domain.ErrUnavailable)

	default:
		return fmt.Errorf("unexpected status: %s", msg)
	}
}

// parseErrorBody attempts to read a JSON error body. Returns an empty
// errorBody if the body is absent, not JSON, or undecodable.
func parseErrorBody(resp *http.Response) errorBody {
	if resp.Body == nil {
		return errorBody{}
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.Contains(ct, "json") {
		return errorBody{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return errorBody{}
	}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return errorBody{}
	}
	return eb
}
