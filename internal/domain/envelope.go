package domain

// Result codes of the remote API. ResultCodeSuccess is returned when a write
// was accepted; any other value is an application-level rejection.
const (
	ResultCodeSuccess = 0
	ResultCodeError   = 1
	ResultCodeCaptcha = 10
)

// Envelope is the uniform wrapper the remote API returns from write calls.
type Envelope[T any] struct {
	ResultCode int
	Messages   []string
	Data       T
}

// OK reports whether the envelope carries the success result code.
func (e Envelope[T]) OK() bool {
	return e.ResultCode == ResultCodeSuccess
}

// Identity is the authenticated account returned by the session check.
type Identity struct {
	ID    int64
	Email string
	Login string
}
