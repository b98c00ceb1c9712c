package dto

import "sort"

// Readiness states reported by /health/ready.
const (
	ReadinessReady    = "ready"
	ReadinessNotReady = "not_ready"
)

// CheckResponse is the outcome of one dependency check.
type CheckResponse struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ReadinessResponse reports whether the bridge can serve operations: the
// remote API must be reachable and the app state must have settled.
type ReadinessResponse struct {
	Status string          `json:"status"`
	Checks []CheckResponse `json:"checks"`
}

// Ready reports whether every check passed.
func (r ReadinessResponse) Ready() bool {
	return r.Status == ReadinessReady
}

// ToReadinessResponse builds a ReadinessResponse from registry results keyed
// by checker name. Checks are sorted by name.
func ToReadinessResponse(results map[string]error) ReadinessResponse {
	resp := ReadinessResponse{
		Status: ReadinessReady,
		Checks: make([]CheckResponse, 0, len(results)),
	}
	for name, err := range results {
		c := CheckResponse{Name: name, Status: "ok"}
		if err != nil {
			c.Status = "failing"
			c.Error = err.Error()
			resp.Status = ReadinessNotReady
		}
		resp.Checks = append(resp.Checks, c)
	}
	sort.Slice(resp.Checks, func(i, j int) bool {
		return resp.Checks[i].Name < resp.Checks[j].Name
	})
	return resp
}
