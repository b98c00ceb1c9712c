package domain

// RequestStatus is the lifecycle of the most recently observed remote request.
type RequestStatus string

const (
	StatusIdle      RequestStatus = "idle"
	StatusLoading   RequestStatus = "loading"
	StatusSucceeded RequestStatus = "succeeded"
	StatusFailed    RequestStatus = "failed"
)

// IsValid returns true if the status is one of the defined constants.
func (s RequestStatus) IsValid() bool {
	switch s {
	case StatusIdle, StatusLoading, StatusSucceeded, StatusFailed:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s RequestStatus) String() string {
	return string(s)
}
