package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/todosync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todosync/internal/app/action"
	"github.com/jsamuelsen11/todosync/internal/domain"
)

// Route parameter names.
const (
	paramListID = "listId"
	paramTaskID = "taskId"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// writeOutcome writes a rejected outcome as problem details, or renders the
// fulfilled value with the given status. A nil render writes no body.
func writeOutcome[T any](
	w http.ResponseWriter,
	r *http.Request,
	o action.Outcome[T],
	status int,
	render func(T) any,
) {
	if !o.Fulfilled() {
		dto.WriteRejection(w, r, o.Rejection)
		return
	}
	if render == nil {
		w.WriteHeader(status)
		return
	}
	writeJSON(w, status, render(o.Value))
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

// decodeTitle decodes and validates a TitleRequest. Returns false and writes
// an error response on failure.
func decodeTitle(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req dto.TitleRequest
	if !decodeAndValidate(w, r, &req) {
		return "", false
	}
	return *req.Title, true
}
