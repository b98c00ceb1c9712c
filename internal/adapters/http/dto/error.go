package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/jsamuelsen11/todosync/internal/app/action"
	"github.com/jsamuelsen11/todosync/internal/domain"
)

// ErrorResponse represents an RFC 9457 Problem Details response.
//
// Kind and Messages are extension members set on rejected operations: Kind
// is the classified failure and Messages the server's messages, which inline
// UIs render next to the input that triggered them.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
	Kind     string        `json:"kind,omitempty"`
	Messages []string      `json:"messages,omitempty"`
}

// ErrorDetail represents a single field-level validation error within
// an ErrorResponse.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// NewErrorResponse creates an RFC 9457 ErrorResponse from a domain error.
// The request is used to populate the instance field with the request URI.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := domainErrorToStatus(err)

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = validationFieldsToDetails(verr.Fields)
	}

	return resp
}

// NewRejectionResponse creates an RFC 9457 ErrorResponse from a rejected
// operation. Detail is the message the global error banner shows; when the
// rejection leaves the banner untouched, the first server message is used
// instead.
func NewRejectionResponse(r *http.Request, rej *action.Rejection) ErrorResponse {
	status := rejectionToStatus(rej.Kind)

	detail := rej.Text()
	if detail == "" && len(rej.Messages) > 0 {
		detail = rej.Messages[0]
	}

	return ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
		Kind:     rej.Kind.String(),
		Messages: rej.Messages,
	}
}

// WriteErrorResponse writes an RFC 9457 error response for the given domain
// error. It sets the Content-Type to application/problem+json, writes the
// appropriate HTTP status code, and marshals the error body as JSON.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	writeProblem(w, r, NewErrorResponse(r, err))
}

// WriteRejection writes an RFC 9457 error response for a rejected operation.
func WriteRejection(w http.ResponseWriter, r *http.Request, rej *action.Rejection) {
	writeProblem(w, r, NewRejectionResponse(r, rej))
}

// WriteFailure writes an RFC 9457 error response for a request that failed
// outside any operation, such as an expired deadline or a recovered panic.
// kind classifies the failure the way rejected operations are classified.
func WriteFailure(w http.ResponseWriter, r *http.Request, status int, kind action.Kind, detail string) {
	writeProblem(w, r, ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
		Kind:     kind.String(),
	})
}

// FailureRecorder is implemented by response writers that note the kind of a
// failed request for request logs and spans.
type FailureRecorder interface {
	RecordFailure(kind string)
}

func writeProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	if rec, ok := w.(FailureRecorder); ok && resp.Kind != "" {
		rec.RecordFailure(resp.Kind)
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// domainErrorToStatus maps domain sentinel errors to HTTP status codes.
func domainErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// rejectionToStatus maps a rejection kind to an HTTP status code.
func rejectionToStatus(k action.Kind) int {
	switch k {
	case action.ApplicationRejection:
		return http.StatusUnprocessableEntity
	case action.NotFoundLocal:
		return http.StatusNotFound
	case action.NetworkFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// validationFieldsToDetails converts domain validation fields to sorted
// ErrorDetail entries.
func validationFieldsToDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{
			Location: "body." + field,
			Message:  msg,
		})
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].Location < details[j].Location
	})
	return details
}
